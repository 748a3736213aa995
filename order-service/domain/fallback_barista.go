package domain

import (
	"github.com/coffeeshop/coffee-system/shared/models"
)

// FallbackBarista brews locally when the barista service cannot
type FallbackBarista struct {
	cupIDs *models.Sequence
}

// NewFallbackBarista creates a fallback barista with its own cup id sequence
func NewFallbackBarista(cupIDs *models.Sequence) *FallbackBarista {
	if cupIDs == nil {
		cupIDs = models.NewSequence(1)
	}
	return &FallbackBarista{cupIDs: cupIDs}
}

// MakeCoffee returns CoffeeOrdered for offered flavors and NotPossible otherwise
func (b *FallbackBarista) MakeCoffee(order Order) OrderStatus {
	if !models.IsKnownFlavor(order.Flavor) {
		return OrderNotPossible(order, ReasonBaristaUnavailable,
			models.NewErrorResponse(models.ErrorCodeBadRequest, models.FlavorNotOffered))
	}

	return CoffeeOrdered{
		Order: order,
		Cup: Cup{
			ID:     b.cupIDs.Next(),
			Flavor: order.Flavor,
		},
	}
}
