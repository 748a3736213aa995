package infrastructure

import (
	"context"
	"sync"

	"github.com/coffeeshop/coffee-system/payment-service/domain"
	"github.com/shopspring/decimal"
)

// MemoryAccountRepository implements AccountRepository in memory with one lock per card
type MemoryAccountRepository struct {
	mu       sync.Mutex
	locks    map[string]*sync.Mutex
	accounts sync.Map
}

// NewMemoryAccountRepository creates a new MemoryAccountRepository
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		locks: make(map[string]*sync.Mutex),
	}
}

func (r *MemoryAccountRepository) lockFor(creditCardNumber string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[creditCardNumber]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[creditCardNumber] = lock
	}
	return lock
}

// Update applies fn to a copy of the account and stores it only if fn succeeds
func (r *MemoryAccountRepository) Update(
	_ context.Context,
	creditCardNumber string,
	openingBalance decimal.Decimal,
	fn func(*domain.Account) error,
) (*domain.Account, error) {
	lock := r.lockFor(creditCardNumber)
	lock.Lock()
	defer lock.Unlock()

	var account domain.Account
	if stored, ok := r.accounts.Load(creditCardNumber); ok {
		account = stored.(domain.Account)
	} else {
		account = *domain.NewAccount(creditCardNumber, openingBalance)
	}

	if err := fn(&account); err != nil {
		return nil, err
	}

	r.accounts.Store(creditCardNumber, account)
	return &account, nil
}

// FindByCardNumber returns a copy of the stored account
func (r *MemoryAccountRepository) FindByCardNumber(_ context.Context, creditCardNumber string) (*domain.Account, error) {
	stored, ok := r.accounts.Load(creditCardNumber)
	if !ok {
		return nil, nil
	}
	account := stored.(domain.Account)
	return &account, nil
}
