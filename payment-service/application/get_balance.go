package application

import (
	"context"

	"github.com/coffeeshop/coffee-system/payment-service/domain"
	"github.com/coffeeshop/coffee-system/shared/telemetry"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrAccountNotFound is returned for cards that were never charged
var ErrAccountNotFound = errors.New("account not found")

// GetBalanceResponse represents the response for getting a balance
type GetBalanceResponse struct {
	CreditCardNumber string          `json:"creditCardNumber"`
	Balance          decimal.Decimal `json:"balance"`
	UpdatedAt        string          `json:"updatedAt"`
}

// GetBalance use case
type GetBalance struct {
	accountRepository domain.AccountRepository
}

// NewGetBalance creates a new GetBalance use case
func NewGetBalance(accountRepository domain.AccountRepository) *GetBalance {
	return &GetBalance{accountRepository: accountRepository}
}

// Execute returns the current balance of a card
func (uc *GetBalance) Execute(ctx context.Context, creditCardNumber string) (*GetBalanceResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "get_balance")
	defer span.End()

	account, err := uc.accountRepository.FindByCardNumber(ctx, creditCardNumber)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to find account")
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	return &GetBalanceResponse{
		CreditCardNumber: account.CreditCardNumber,
		Balance:          account.Balance,
		UpdatedAt:        account.Timestamps.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
