package domain

import (
	"context"
	"fmt"

	"github.com/coffeeshop/coffee-system/shared/models"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidPrice is returned for negative charges
	ErrInvalidPrice = errors.New("price must not be negative")
	// ErrMissingCreditCard is returned when no card number is given
	ErrMissingCreditCard = errors.New("credit card number is required")
)

// InsufficientFundsError is returned when a charge would reach the debt floor
type InsufficientFundsError struct {
	CreditCardNumber string
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("Insufficient funds for credit card: %s", e.CreditCardNumber)
}

// Account is the balance kept for a credit card
type Account struct {
	CreditCardNumber string
	Balance          decimal.Decimal
	Timestamps       models.Timestamps
}

// NewAccount opens an account with the given starting balance
func NewAccount(creditCardNumber string, openingBalance decimal.Decimal) *Account {
	return &Account{
		CreditCardNumber: creditCardNumber,
		Balance:          openingBalance,
		Timestamps:       models.NewTimestamps(),
	}
}

// Charge subtracts price from the balance. A charge whose resulting balance is at or
// below debtFloor is rejected and leaves the account untouched.
func (a *Account) Charge(price, debtFloor decimal.Decimal) error {
	if price.IsNegative() {
		return ErrInvalidPrice
	}

	next := a.Balance.Sub(price)
	if next.LessThanOrEqual(debtFloor) {
		return &InsufficientFundsError{CreditCardNumber: a.CreditCardNumber}
	}

	a.Balance = next
	a.Timestamps = a.Timestamps.Update()
	return nil
}

// Receipt reports the balance after a committed charge
type Receipt struct {
	ID      int64           `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}

// AccountRepository persists accounts
type AccountRepository interface {
	// Update runs fn on the account for creditCardNumber while holding that card exclusively.
	// Missing accounts are opened with openingBalance first. Nothing is stored when fn fails.
	Update(ctx context.Context, creditCardNumber string, openingBalance decimal.Decimal, fn func(*Account) error) (*Account, error)
	// FindByCardNumber returns nil, nil for cards that were never charged
	FindByCardNumber(ctx context.Context, creditCardNumber string) (*Account, error)
}
