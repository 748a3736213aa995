package infrastructure

import (
	"context"
	"os"
	"testing"

	"github.com/coffeeshop/coffee-system/barista-service/domain"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to BARISTA_TEST_DATABASE_URL or skips the test
func newTestDB(t *testing.T) *sqlx.DB {
	url := os.Getenv("BARISTA_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("BARISTA_TEST_DATABASE_URL not set")
	}

	db, err := sqlx.Connect("postgres", url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestPostgresCupRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgresCupRepository(newTestDB(t))

	cup, err := domain.NewCup(strPtr("Espresso"))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, cup))
	require.Positive(t, cup.ID)

	found, err := repo.FindByID(ctx, cup.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Espresso", found.Flavor)

	found.Flavor = "Black"
	require.NoError(t, repo.Save(ctx, found))

	updated, err := repo.FindByID(ctx, cup.ID)
	require.NoError(t, err)
	assert.Equal(t, "Black", updated.Flavor)

	next, err := domain.NewCup(strPtr("Melange"))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, next))
	assert.Greater(t, next.ID, cup.ID)

	cups, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(cups), 2)

	deleted, err := repo.Delete(ctx, cup.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	missing, err := repo.FindByID(ctx, cup.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func strPtr(s string) *string {
	return &s
}
