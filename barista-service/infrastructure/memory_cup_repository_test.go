package infrastructure

import (
	"context"
	"testing"

	"github.com/coffeeshop/coffee-system/barista-service/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestMemoryCupRepository_Save(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCupRepository()

	first := &domain.Cup{Flavor: "Melange"}
	require.NoError(t, repo.Save(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	given := &domain.Cup{ID: 2, Flavor: "Black"}
	require.NoError(t, repo.Save(ctx, given))

	next := &domain.Cup{Flavor: "Espresso"}
	require.NoError(t, repo.Save(ctx, next))
	assert.Equal(t, int64(3), next.ID, "ids taken by given cups are skipped")

	given.Flavor = "Ristretto"
	require.NoError(t, repo.Save(ctx, given))
	found, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Ristretto", found.Flavor)
}

func TestMemoryCupRepository_FindAllAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCupRepository()

	for _, flavor := range []string{"Melange", "Black", "Espresso"} {
		require.NoError(t, repo.Save(ctx, &domain.Cup{Flavor: flavor}))
	}

	cups, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, cups, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{cups[0].ID, cups[1].ID, cups[2].ID})

	deleted, err := repo.Delete(ctx, 2)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, 2)
	require.NoError(t, err)
	assert.False(t, deleted)

	missing, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryCupRepository_ConcurrentSavesGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCupRepository()

	var g errgroup.Group
	for i := 0; i < 100; i++ {
		g.Go(func() error {
			return repo.Save(ctx, &domain.Cup{Flavor: "Cappuccino"})
		})
	}
	require.NoError(t, g.Wait())

	cups, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, cups, 100)
}
