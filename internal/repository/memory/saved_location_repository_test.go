package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopi-routing/internal/domain"
)

func TestSavedLocationRepository_ReplaceAndList(t *testing.T) {
	repo := NewSavedLocationRepository()
	ctx := context.Background()

	empty, err := repo.List(ctx, "user-1")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	input := []domain.SavedLocation{
		{ID: "a", Name: "A", Tags: []string{"beach"}},
		{ID: "b", Name: "B"},
	}
	require.NoError(t, repo.ReplaceAll(ctx, "user-1", input))

	// изменения входного среза не попадают в хранилище
	input[0].Name = "mutated"
	input[0].Tags[0] = "mutated"

	got, err := repo.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, []string{"beach"}, got[0].Tags)
	assert.Equal(t, []string{}, got[1].Tags)

	require.NoError(t, repo.ReplaceAll(ctx, "user-1", nil))
	got, err = repo.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSavedLocationRepository_OwnersAreIsolated(t *testing.T) {
	repo := NewSavedLocationRepository()
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, "user-1", []domain.SavedLocation{{ID: "a"}}))
	require.NoError(t, repo.ReplaceAll(ctx, "user-2", []domain.SavedLocation{{ID: "b"}, {ID: "c"}}))

	u1, _ := repo.List(ctx, "user-1")
	u2, _ := repo.List(ctx, "user-2")
	assert.Len(t, u1, 1)
	assert.Len(t, u2, 2)
}

func TestSavedLocationRepository_ConcurrentAccess(t *testing.T) {
	repo := NewSavedLocationRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = repo.ReplaceAll(ctx, "user", []domain.SavedLocation{{ID: "a"}})
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.List(ctx, "user")
		}()
	}
	wg.Wait()

	got, err := repo.List(ctx, "user")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
