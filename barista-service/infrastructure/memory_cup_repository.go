package infrastructure

import (
	"context"
	"sort"
	"sync"

	"github.com/coffeeshop/coffee-system/barista-service/domain"
	"github.com/coffeeshop/coffee-system/shared/models"
)

// MemoryCupRepository implements CupRepository in memory
type MemoryCupRepository struct {
	mu   sync.RWMutex
	ids  *models.Sequence
	cups map[int64]domain.Cup
}

// NewMemoryCupRepository creates a new MemoryCupRepository
func NewMemoryCupRepository() *MemoryCupRepository {
	return &MemoryCupRepository{
		ids:  models.NewSequence(1),
		cups: make(map[int64]domain.Cup),
	}
}

// Save assigns the next unused id to new cups
func (r *MemoryCupRepository) Save(_ context.Context, cup *domain.Cup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cup.ID == 0 {
		id := r.ids.Next()
		for _, taken := r.cups[id]; taken; _, taken = r.cups[id] {
			id = r.ids.Next()
		}
		cup.ID = id
	}

	r.cups[cup.ID] = *cup
	return nil
}

// FindByID finds a cup by id
func (r *MemoryCupRepository) FindByID(_ context.Context, id int64) (*domain.Cup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cup, ok := r.cups[id]
	if !ok {
		return nil, nil
	}
	return &cup, nil
}

// FindAll returns all cups ordered by id
func (r *MemoryCupRepository) FindAll(_ context.Context) ([]*domain.Cup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cups := make([]*domain.Cup, 0, len(r.cups))
	for _, cup := range r.cups {
		cup := cup
		cups = append(cups, &cup)
	}
	sort.Slice(cups, func(i, j int) bool { return cups[i].ID < cups[j].ID })
	return cups, nil
}

// Delete removes a cup
func (r *MemoryCupRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cups[id]; !ok {
		return false, nil
	}
	delete(r.cups, id)
	return true, nil
}
