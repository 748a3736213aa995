package domain

import (
	"github.com/shopspring/decimal"
)

// Order represents a customer's coffee order
type Order struct {
	OrderNumber      *int64 `json:"orderNumber"`
	Flavor           string `json:"flavor"`
	CreditCardNumber string `json:"creditCardNumber"`
}

// Number returns the assigned order number, or 0 when the order has not been accepted yet
func (o Order) Number() int64 {
	if o.OrderNumber == nil {
		return 0
	}
	return *o.OrderNumber
}

// WithNumber returns a copy of the order carrying the given number
func (o Order) WithNumber(number int64) Order {
	o.OrderNumber = &number
	return o
}

// Cup is a brewed coffee handed out by a barista
type Cup struct {
	ID     int64  `json:"id"`
	Flavor string `json:"flavor"`
}

// Receipt is the proof of a charge. Balance is the account balance after the charge.
type Receipt struct {
	ID      int64           `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}
