package repository

import (
	"context"

	"github.com/loopi-routing/internal/domain"
)

// SavedLocationRepository хранит коллекции сохранённых мест.
// Коллекция владельца всегда записывается целиком.
type SavedLocationRepository interface {
	// List возвращает коллекцию владельца в порядке добавления
	List(ctx context.Context, ownerID string) ([]domain.SavedLocation, error)

	// ReplaceAll перезаписывает коллекцию владельца
	ReplaceAll(ctx context.Context, ownerID string, locations []domain.SavedLocation) error
}
