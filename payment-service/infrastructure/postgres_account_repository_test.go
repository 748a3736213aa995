package infrastructure

import (
	"context"
	"os"
	"testing"

	"github.com/coffeeshop/coffee-system/payment-service/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// newTestDB connects to PAYMENT_TEST_DATABASE_URL or skips the test
func newTestDB(t *testing.T) *sqlx.DB {
	url := os.Getenv("PAYMENT_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("PAYMENT_TEST_DATABASE_URL not set")
	}

	db, err := sqlx.Connect("postgres", url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestPostgresAccountRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgresAccountRepository(newTestDB(t))
	card := uuid.NewString()

	account, err := repo.Update(ctx, card, testOpening, charge("2.20"))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("7.8").Equal(account.Balance))

	_, err = repo.Update(ctx, card, testOpening, charge("20"))
	var funds *domain.InsufficientFundsError
	require.ErrorAs(t, err, &funds)

	stored, err := repo.FindByCardNumber(ctx, card)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("7.8").Equal(stored.Balance))

	missing, err := repo.FindByCardNumber(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostgresAccountRepository_ConcurrentCharges(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgresAccountRepository(newTestDB(t))
	card := uuid.NewString()

	var g errgroup.Group
	for i := 0; i < 25; i++ {
		g.Go(func() error {
			_, _ = repo.Update(ctx, card, testOpening, charge("1"))
			return nil
		})
	}
	require.NoError(t, g.Wait())

	account, err := repo.FindByCardNumber(ctx, card)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-9).Equal(account.Balance), account.Balance.String())
}
