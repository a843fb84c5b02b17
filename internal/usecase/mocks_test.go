package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/loopi-routing/internal/domain"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetRoadRoute(ctx context.Context, key string) (*domain.RoadRoute, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoadRoute), args.Error(1)
}

func (m *MockCacheRepository) SetRoadRoute(ctx context.Context, key string, route *domain.RoadRoute, ttl time.Duration) error {
	args := m.Called(ctx, key, route, ttl)
	return args.Error(0)
}

// MockRoutingRepository is a mock of RoutingRepository
type MockRoutingRepository struct {
	mock.Mock
}

func (m *MockRoutingRepository) GetRoute(ctx context.Context, mode domain.TravelMode, points []domain.Point) (*domain.RoadRoute, error) {
	args := m.Called(ctx, mode, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoadRoute), args.Error(1)
}

// MockSavedLocationRepository is a mock of SavedLocationRepository
type MockSavedLocationRepository struct {
	mock.Mock
}

func (m *MockSavedLocationRepository) List(ctx context.Context, ownerID string) ([]domain.SavedLocation, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedLocation), args.Error(1)
}

func (m *MockSavedLocationRepository) ReplaceAll(ctx context.Context, ownerID string, locations []domain.SavedLocation) error {
	args := m.Called(ctx, ownerID, locations)
	return args.Error(0)
}
