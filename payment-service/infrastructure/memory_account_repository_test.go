package infrastructure

import (
	"context"
	"testing"

	"github.com/coffeeshop/coffee-system/payment-service/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var (
	testOpening = decimal.NewFromInt(10)
	testFloor   = decimal.NewFromInt(-10)
)

func charge(price string) func(*domain.Account) error {
	return func(a *domain.Account) error {
		return a.Charge(decimal.RequireFromString(price), testFloor)
	}
}

func TestMemoryAccountRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	account, err := repo.Update(ctx, "4111", testOpening, charge("2.20"))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("7.8").Equal(account.Balance))

	account, err = repo.Update(ctx, "4111", testOpening, charge("2.20"))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("5.6").Equal(account.Balance))

	other, err := repo.Update(ctx, "5500", testOpening, charge("1"))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(9).Equal(other.Balance))
}

func TestMemoryAccountRepository_FailedUpdateIsNotStored(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	_, err := repo.Update(ctx, "4111", testOpening, charge("19"))
	require.NoError(t, err)

	_, err = repo.Update(ctx, "4111", testOpening, charge("1"))
	var funds *domain.InsufficientFundsError
	require.ErrorAs(t, err, &funds)

	account, err := repo.FindByCardNumber(ctx, "4111")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-9).Equal(account.Balance))
}

func TestMemoryAccountRepository_FailedFirstUpdateOpensNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	_, err := repo.Update(ctx, "4111", testOpening, charge("25"))
	require.Error(t, err)

	account, err := repo.FindByCardNumber(ctx, "4111")
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestMemoryAccountRepository_FindByCardNumberReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	_, err := repo.Update(ctx, "4111", testOpening, charge("1"))
	require.NoError(t, err)

	account, err := repo.FindByCardNumber(ctx, "4111")
	require.NoError(t, err)
	account.Balance = decimal.NewFromInt(1000)

	again, err := repo.FindByCardNumber(ctx, "4111")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(9).Equal(again.Balance))
}

func TestMemoryAccountRepository_ConcurrentChargesRespectTheFloor(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	// 10 - 19*1 = -9 is the lowest reachable balance; the 20th charge would hit -10
	const attempts = 40
	results := make([]error, attempts)
	var g errgroup.Group
	for i := 0; i < attempts; i++ {
		g.Go(func() error {
			_, results[i] = repo.Update(ctx, "4111", testOpening, charge("1"))
			return nil
		})
	}
	require.NoError(t, g.Wait())

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 19, succeeded)

	account, err := repo.FindByCardNumber(ctx, "4111")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-9).Equal(account.Balance), account.Balance.String())
}
