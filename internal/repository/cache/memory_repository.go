package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/domain/repository"
)

// memoryRepository - кеш в памяти процесса для запуска без Redis
type memoryRepository struct {
	store  *gocache.Cache
	logger *zap.Logger
}

// NewMemoryCacheRepository создает кеш в памяти.
// defaultTTL используется, когда Set вызван с нулевым TTL.
func NewMemoryCacheRepository(defaultTTL, cleanupInterval time.Duration, logger *zap.Logger) repository.CacheRepository {
	return &memoryRepository{
		store:  gocache.New(defaultTTL, cleanupInterval),
		logger: logger,
	}
}

func (r *memoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	val, found := r.store.Get(key)
	if !found {
		return nil, nil // Cache miss
	}

	data, ok := val.([]byte)
	if !ok {
		return nil, fmt.Errorf("cache get error: unexpected value type %T", val)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return data, nil
}

func (r *memoryRepository) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	r.store.Set(key, append([]byte(nil), value...), ttl)

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, key string) error {
	r.store.Delete(key)
	return nil
}

func (r *memoryRepository) Exists(_ context.Context, key string) (bool, error) {
	_, found := r.store.Get(key)
	return found, nil
}

func (r *memoryRepository) GetRoadRoute(ctx context.Context, key string) (*domain.RoadRoute, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return decodeRoadRoute(data, r.logger)
}

func (r *memoryRepository) SetRoadRoute(ctx context.Context, key string, route *domain.RoadRoute, ttl time.Duration) error {
	data, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("marshal road route: %w", err)
	}
	return r.Set(ctx, key, data, ttl)
}
