package repository

import (
	"context"
	"time"

	"github.com/loopi-routing/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetRoadRoute получает дорожный маршрут из кеша
	GetRoadRoute(ctx context.Context, key string) (*domain.RoadRoute, error)

	// SetRoadRoute сохраняет дорожный маршрут в кеше
	SetRoadRoute(ctx context.Context, key string, route *domain.RoadRoute, ttl time.Duration) error
}
