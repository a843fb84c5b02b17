package repository

import (
	"context"

	"github.com/loopi-routing/internal/domain"
)

// LandmarkRepository - справочник достопримечательностей
type LandmarkRepository interface {
	// List возвращает достопримечательности; пустой тип означает все
	List(ctx context.Context, landmarkType domain.LandmarkType) ([]*domain.Landmark, error)

	// GetByID возвращает достопримечательность по ID
	GetByID(ctx context.Context, id string) (*domain.Landmark, error)
}
