package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	viper.Reset()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("API_PORT", "9090")
	t.Setenv("CACHE_DRIVER", "Memory")
	t.Setenv("ROUTE_CACHE_TTL", "60")
	t.Setenv("OSRM_BASE_URL", "http://osrm.local:5000/")
	t.Setenv("LANDMARK_SOURCE", "postgres")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, time.Minute, cfg.Cache.RouteCacheTTL)
	assert.Equal(t, "http://osrm.local:5000", cfg.OSRM.BaseURL)
	assert.True(t, cfg.UsesPostgres())
	assert.False(t, cfg.UsesRedisCache())
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Cache.RouteCacheTTL)
	assert.Equal(t, "https://router.project-osrm.org", cfg.OSRM.BaseURL)
	assert.Equal(t, 10, cfg.OSRM.RequestTimeout)
	assert.Equal(t, 100, cfg.OSRM.MaxWaypoints)
	assert.Equal(t, 4, cfg.OSRM.MaxParallel)
	assert.Equal(t, "static", cfg.Landmark.Source)
	assert.Equal(t, 8000.0, cfg.Landmark.ClusterRadiusM)
	assert.Equal(t, "route-sequencing-workers", cfg.Worker.ConsumerGroup)
	assert.Equal(t, 3, cfg.Worker.MaxRetries)
}

func TestConfig_Addresses(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Redis:  RedisConfig{Host: "redis", Port: 6379},
	}

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, "redis:6379", cfg.GetRedisAddr())
}
