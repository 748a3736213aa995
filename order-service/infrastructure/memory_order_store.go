package infrastructure

import (
	"context"
	"sync"

	"github.com/coffeeshop/coffee-system/order-service/domain"
	"github.com/coffeeshop/coffee-system/shared/telemetry"
	"github.com/pkg/errors"
)

// MemoryOrderStore implements OrderStore with a map guarded by a RWMutex
type MemoryOrderStore struct {
	mu       sync.RWMutex
	statuses map[int64]domain.OrderStatus
}

// NewMemoryOrderStore creates a new MemoryOrderStore
func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{
		statuses: make(map[int64]domain.OrderStatus),
	}
}

// Save stores the status if it moves the order forward
func (s *MemoryOrderStore) Save(ctx context.Context, status domain.OrderStatus) error {
	if status == nil {
		return errors.New("order status is required")
	}

	number := status.OrderNumber()
	if number < 1 {
		return domain.ErrMissingOrderNumber
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.statuses[number]
	if !domain.CanTransition(prev, status) {
		return errors.Wrapf(domain.ErrStatusRegression, "order %d: %s to %s", number, prev.Kind(), status.Kind())
	}

	s.statuses[number] = status
	if prev == nil {
		telemetry.RecordGauge(ctx, "orders_stored", "Orders held by the in-memory store", float64(len(s.statuses)))
	}
	return nil
}

// FindByNumber returns the latest status, or nil when the order is unknown
func (s *MemoryOrderStore) FindByNumber(_ context.Context, orderNumber int64) (domain.OrderStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.statuses[orderNumber], nil
}
