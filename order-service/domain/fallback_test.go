package domain

import (
	"strings"
	"testing"

	"github.com/coffeeshop/coffee-system/shared/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackBarista_MakeCoffee(t *testing.T) {
	tests := []struct {
		name       string
		flavor     string
		wantKind   StatusKind
		wantDetail string
	}{
		{name: "lowercase flavor", flavor: "melange", wantKind: StatusCoffeeOrdered},
		{name: "mixed case flavor", flavor: "Espresso", wantKind: StatusCoffeeOrdered},
		{name: "uppercase flavor", flavor: "CAPPUCCINO", wantKind: StatusCoffeeOrdered},
		{name: "unknown flavor", flavor: "Latte Macchiato", wantKind: StatusNotPossible, wantDetail: models.FlavorNotOffered},
		{name: "partial match is rejected", flavor: "black coffee", wantKind: StatusNotPossible, wantDetail: models.FlavorNotOffered},
		{name: "empty flavor", flavor: "", wantKind: StatusNotPossible, wantDetail: models.FlavorNotOffered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			barista := NewFallbackBarista(nil)
			order := Order{Flavor: tt.flavor, CreditCardNumber: "1234"}.WithNumber(5)

			status := barista.MakeCoffee(order)
			require.Equal(t, tt.wantKind, status.Kind())
			assert.Equal(t, int64(5), status.OrderNumber())

			switch s := status.(type) {
			case CoffeeOrdered:
				assert.Equal(t, tt.flavor, s.Cup.Flavor)
				assert.Equal(t, int64(1), s.Cup.ID)
			case NotPossible:
				assert.Equal(t, ReasonBaristaUnavailable, s.Reason)
				assert.Equal(t, models.ErrorCodeBadRequest, s.Error.Message)
				assert.Equal(t, tt.wantDetail, s.Error.Detail())
				assert.True(t, strings.HasPrefix(s.Error.Detail(), "We don't offer this flavor."))
			default:
				t.Fatalf("unexpected status %T", status)
			}
		})
	}
}

func TestFallbackBarista_UsesOwnSequence(t *testing.T) {
	barista := NewFallbackBarista(models.NewSequence(100))
	order := Order{Flavor: "black"}.WithNumber(1)

	first := barista.MakeCoffee(order).(CoffeeOrdered)
	second := barista.MakeCoffee(order).(CoffeeOrdered)

	assert.Equal(t, int64(100), first.Cup.ID)
	assert.Equal(t, int64(101), second.Cup.ID)
}

func TestFallbackCash_PayByCash(t *testing.T) {
	cash := NewFallbackCash(nil)
	ordered := CoffeeOrdered{
		Order: Order{Flavor: "Ristretto", CreditCardNumber: "4111"}.WithNumber(9),
		Cup:   Cup{ID: 3, Flavor: "Ristretto"},
	}
	price := decimal.RequireFromString("2.40")

	payed := cash.PayByCash(ordered, price)
	assert.Equal(t, ordered.Order, payed.Order)
	assert.Equal(t, ordered.Cup, payed.Cup)
	assert.Equal(t, int64(1), payed.Receipt.ID)
	assert.True(t, price.Equal(payed.Receipt.Balance))

	again := cash.PayByCash(ordered, price)
	assert.Equal(t, int64(2), again.Receipt.ID)
}
