package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetRoadRoute получает дорожный маршрут из кеша
func (r *cacheRepository) GetRoadRoute(ctx context.Context, key string) (*domain.RoadRoute, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return decodeRoadRoute(data, r.logger)
}

// SetRoadRoute сохраняет дорожный маршрут в кеше
func (r *cacheRepository) SetRoadRoute(ctx context.Context, key string, route *domain.RoadRoute, ttl time.Duration) error {
	data, err := json.Marshal(route)
	if err != nil {
		r.logger.Error("Failed to marshal road route", zap.Error(err))
		return fmt.Errorf("marshal road route: %w", err)
	}

	return r.Set(ctx, key, data, ttl)
}

func decodeRoadRoute(data []byte, logger *zap.Logger) (*domain.RoadRoute, error) {
	if data == nil {
		return nil, nil // Cache miss
	}

	var route domain.RoadRoute
	if err := json.Unmarshal(data, &route); err != nil {
		logger.Error("Failed to unmarshal road route from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal road route: %w", err)
	}

	return &route, nil
}
