package domain

import (
	"github.com/coffeeshop/coffee-system/shared/models"
	"github.com/shopspring/decimal"
)

// FallbackCash records charges locally when the payment service is unreachable
type FallbackCash struct {
	receiptIDs *models.Sequence
}

// NewFallbackCash creates a cash register with its own receipt id sequence
func NewFallbackCash(receiptIDs *models.Sequence) *FallbackCash {
	if receiptIDs == nil {
		receiptIDs = models.NewSequence(1)
	}
	return &FallbackCash{receiptIDs: receiptIDs}
}

// PayByCash always accepts the charge. The receipt balance is the amount paid in cash.
func (c *FallbackCash) PayByCash(ordered CoffeeOrdered, price decimal.Decimal) CoffeePayed {
	return CoffeePayed{
		Order: ordered.Order,
		Cup:   ordered.Cup,
		Receipt: Receipt{
			ID:      c.receiptIDs.Next(),
			Balance: price,
		},
	}
}
