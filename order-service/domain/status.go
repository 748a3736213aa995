package domain

import (
	"github.com/coffeeshop/coffee-system/shared/models"
)

// StatusKind identifies an order status variant
type StatusKind string

const (
	StatusAccepted      StatusKind = "ACCEPTED"
	StatusCoffeeOrdered StatusKind = "COFFEE_ORDERED"
	StatusCoffeePayed   StatusKind = "COFFEE_PAYED"
	StatusNotPossible   StatusKind = "NOT_POSSIBLE"
)

func (k StatusKind) rank() int {
	switch k {
	case StatusAccepted:
		return 0
	case StatusCoffeeOrdered:
		return 1
	case StatusCoffeePayed, StatusNotPossible:
		return 2
	default:
		return -1
	}
}

// IsTerminal reports whether no further transitions may follow this kind
func (k StatusKind) IsTerminal() bool {
	return k == StatusCoffeePayed || k == StatusNotPossible
}

// Reason explains why an order could not be fulfilled
type Reason string

const (
	ReasonBaristaUnavailable Reason = "BARISTA_NOT_AVAILABLE"
	ReasonInsufficientFunds  Reason = "INSUFFICIENT_FUNDS"
	ReasonPaymentNotPossible Reason = "PAYMENT_NOT_POSSIBLE"
	ReasonUnknown            Reason = "NONE"
)

// Description returns a human readable explanation of the reason
func (r Reason) Description() string {
	switch r {
	case ReasonBaristaUnavailable:
		return "Barista not available."
	case ReasonInsufficientFunds:
		return "Insufficient funds."
	case ReasonPaymentNotPossible:
		return "Payment not possible."
	default:
		return "No reason."
	}
}

// OrderStatus is the state of an order in the saga.
// Implementations are Accepted, CoffeeOrdered, CoffeePayed and NotPossible.
type OrderStatus interface {
	Kind() StatusKind
	OrderNumber() int64
	isOrderStatus()
}

// Accepted is the first status of every order
type Accepted struct {
	Order Order
}

// CoffeeOrdered means a barista produced a cup for the order
type CoffeeOrdered struct {
	Order Order
	Cup   Cup
}

// CoffeePayed means the cup was charged. Terminal.
type CoffeePayed struct {
	Order   Order
	Cup     Cup
	Receipt Receipt
}

// NotPossible means the order failed. Terminal.
type NotPossible struct {
	Order  Order
	Reason Reason
	Error  models.ErrorResponse
}

func (Accepted) Kind() StatusKind      { return StatusAccepted }
func (CoffeeOrdered) Kind() StatusKind { return StatusCoffeeOrdered }
func (CoffeePayed) Kind() StatusKind   { return StatusCoffeePayed }
func (NotPossible) Kind() StatusKind   { return StatusNotPossible }

func (s Accepted) OrderNumber() int64      { return s.Order.Number() }
func (s CoffeeOrdered) OrderNumber() int64 { return s.Order.Number() }
func (s CoffeePayed) OrderNumber() int64   { return s.Order.Number() }
func (s NotPossible) OrderNumber() int64   { return s.Order.Number() }

func (Accepted) isOrderStatus()      {}
func (CoffeeOrdered) isOrderStatus() {}
func (CoffeePayed) isOrderStatus()   {}
func (NotPossible) isOrderStatus()   {}

// OrderNotPossible builds a NotPossible status for the order
func OrderNotPossible(order Order, reason Reason, errResp models.ErrorResponse) NotPossible {
	if errResp.Details == nil {
		errResp.Details = []string{}
	}
	return NotPossible{
		Order:  order,
		Reason: reason,
		Error:  errResp,
	}
}

// UnknownFailure is the NotPossible status used when a downstream error cannot be interpreted
func UnknownFailure(order Order) NotPossible {
	return OrderNotPossible(order, ReasonUnknown, models.EmptyErrorResponse())
}

// CanTransition reports whether next may replace prev in the order store.
// A nil prev accepts anything; terminal statuses accept nothing; otherwise the saga only moves forward.
func CanTransition(prev, next OrderStatus) bool {
	if next == nil {
		return false
	}
	if prev == nil {
		return true
	}
	if prev.Kind().IsTerminal() {
		return false
	}
	return next.Kind().rank() > prev.Kind().rank()
}
