package domain

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrStatusRegression is returned when a write would move an order backwards
	ErrStatusRegression = errors.New("order status cannot move backwards")
	// ErrMissingOrderNumber is returned when a status without an order number is saved
	ErrMissingOrderNumber = errors.New("order number is required")
)

// OrderStore keeps the latest status of every accepted order
type OrderStore interface {
	// Save stores status as the latest one for its order number
	Save(ctx context.Context, status OrderStatus) error
	// FindByNumber returns nil, nil when the number was never assigned
	FindByNumber(ctx context.Context, orderNumber int64) (OrderStatus, error)
}
