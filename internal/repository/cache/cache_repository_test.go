package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/loopi-routing/internal/config"
	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/repository/cache"
)

// getTestRedis подключается к локальному Redis или пропускает тест
func getTestRedis(t *testing.T) *cache.Redis {
	r, err := cache.NewRedis(&config.RedisConfig{
		Host: "localhost",
		Port: 6379,
		DB:   1, // Use DB 1 for tests
	}, zap.NewNop())
	if err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}
	return r
}

func TestCacheRepository_RoadRoute(t *testing.T) {
	r := getTestRedis(t)
	defer r.Close()

	repo := cache.NewCacheRepository(r)
	ctx := context.Background()
	key := "test:route:cache"
	defer repo.Delete(ctx, key)

	got, err := repo.GetRoadRoute(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	route := &domain.RoadRoute{
		Geometry:  orb.LineString{{55.1390, 25.1124}, {55.1174, 25.1304}},
		DistanceM: 4100,
		DurationS: 420,
		Source:    domain.RouteSourceOSRM,
	}
	require.NoError(t, repo.SetRoadRoute(ctx, key, route, time.Minute))

	exists, err := repo.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err = repo.GetRoadRoute(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, route, got)
}
