package domain

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// PriceCatalog maps lowercase flavors to prices. Immutable after construction.
type PriceCatalog struct {
	prices map[string]decimal.Decimal
}

// NewPriceCatalog creates a catalog from flavor prices; flavors are lowercased
func NewPriceCatalog(prices map[string]decimal.Decimal) *PriceCatalog {
	normalized := make(map[string]decimal.Decimal, len(prices))
	for flavor, price := range prices {
		normalized[strings.ToLower(flavor)] = price
	}
	return &PriceCatalog{prices: normalized}
}

// ParsePriceCatalog creates a catalog from decimal strings such as "2.50"
func ParsePriceCatalog(raw map[string]string) (*PriceCatalog, error) {
	prices := make(map[string]decimal.Decimal, len(raw))
	for flavor, value := range raw {
		price, err := decimal.NewFromString(value)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid price for flavor %q", flavor)
		}
		if price.IsNegative() {
			return nil, errors.Errorf("negative price for flavor %q", flavor)
		}
		prices[flavor] = price
	}
	return NewPriceCatalog(prices), nil
}

// Lookup returns the price for a flavor, ignoring case
func (c *PriceCatalog) Lookup(flavor string) (decimal.Decimal, bool) {
	price, ok := c.prices[strings.ToLower(flavor)]
	return price, ok
}

// Len returns the number of priced flavors
func (c *PriceCatalog) Len() int {
	return len(c.prices)
}
