package memory

import (
	"context"
	"sync"

	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/domain/repository"
)

type savedLocationRepository struct {
	mu    sync.RWMutex
	store map[string][]domain.SavedLocation
}

// NewSavedLocationRepository - хранилище коллекций в памяти процесса
func NewSavedLocationRepository() repository.SavedLocationRepository {
	return &savedLocationRepository{
		store: make(map[string][]domain.SavedLocation),
	}
}

func (r *savedLocationRepository) List(ctx context.Context, ownerID string) ([]domain.SavedLocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyLocations(r.store[ownerID]), nil
}

func (r *savedLocationRepository) ReplaceAll(ctx context.Context, ownerID string, locations []domain.SavedLocation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(locations) == 0 {
		delete(r.store, ownerID)
		return nil
	}
	r.store[ownerID] = copyLocations(locations)
	return nil
}

func copyLocations(src []domain.SavedLocation) []domain.SavedLocation {
	dst := make([]domain.SavedLocation, len(src))
	for i, loc := range src {
		loc.Tags = append([]string{}, loc.Tags...)
		dst[i] = loc
	}
	return dst
}
