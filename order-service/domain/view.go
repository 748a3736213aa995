package domain

import (
	"github.com/coffeeshop/coffee-system/shared/models"
)

// StatusView is the JSON representation of an OrderStatus
type StatusView struct {
	Status  StatusKind            `json:"status"`
	Order   Order                 `json:"order"`
	Cup     *Cup                  `json:"cup,omitempty"`
	Receipt *Receipt              `json:"receipt,omitempty"`
	Reason  Reason                `json:"reason,omitempty"`
	Error   *models.ErrorResponse `json:"error,omitempty"`
}

// NewStatusView renders a status for clients and events
func NewStatusView(status OrderStatus) StatusView {
	switch s := status.(type) {
	case Accepted:
		return StatusView{Status: s.Kind(), Order: s.Order}
	case CoffeeOrdered:
		cup := s.Cup
		return StatusView{Status: s.Kind(), Order: s.Order, Cup: &cup}
	case CoffeePayed:
		cup, receipt := s.Cup, s.Receipt
		return StatusView{Status: s.Kind(), Order: s.Order, Cup: &cup, Receipt: &receipt}
	case NotPossible:
		errResp := s.Error
		return StatusView{Status: s.Kind(), Order: s.Order, Reason: s.Reason, Error: &errResp}
	default:
		panic("unknown order status")
	}
}
