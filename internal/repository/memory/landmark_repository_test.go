package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/pkg/errors"
)

func TestLandmarkRepository_ListAll(t *testing.T) {
	repo := NewLandmarkRepository()

	landmarks, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, landmarks, 12)
	assert.Equal(t, "burj-khalifa", landmarks[0].ID)
	assert.Equal(t, "global-village", landmarks[11].ID)
}

func TestLandmarkRepository_ListByType(t *testing.T) {
	repo := NewLandmarkRepository()

	tests := []struct {
		landmarkType domain.LandmarkType
		want         []string
	}{
		{domain.LandmarkTypeHotel, []string{"burj-al-arab", "atlantis"}},
		{domain.LandmarkTypePhoto, []string{"dubai-fountain", "jumeirah-beach", "la-mer"}},
		{domain.LandmarkTypeCafe, []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.landmarkType), func(t *testing.T) {
			landmarks, err := repo.List(context.Background(), tt.landmarkType)
			require.NoError(t, err)

			ids := make([]string, 0, len(landmarks))
			for _, l := range landmarks {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestLandmarkRepository_GetByID(t *testing.T) {
	repo := NewLandmarkRepository()

	l, err := repo.GetByID(context.Background(), "museum-future")
	require.NoError(t, err)
	assert.Equal(t, "Museum of the Future", l.Name)
	assert.Equal(t, 150, l.VisitDurationMin)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, errors.ErrLandmarkNotFound)
}

func TestLandmarkRepository_ResultsAreCopies(t *testing.T) {
	repo := NewLandmarkRepository()
	ctx := context.Background()

	l, err := repo.GetByID(ctx, "burj-khalifa")
	require.NoError(t, err)
	l.Name = "changed"
	l.Variations[0] = "changed"

	again, err := repo.GetByID(ctx, "burj-khalifa")
	require.NoError(t, err)
	assert.Equal(t, "Burj Khalifa", again.Name)
	assert.Equal(t, "burj khalifa", again.Variations[0])
}

func TestNewLandmarkRepositoryFrom_FirstIDWins(t *testing.T) {
	repo := NewLandmarkRepositoryFrom([]domain.Landmark{
		{ID: "x", Name: "first"},
		{ID: "x", Name: "second"},
	})

	all, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "first", all[0].Name)
}

func TestLandmarkRepository_CancelledContext(t *testing.T) {
	repo := NewLandmarkRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}
