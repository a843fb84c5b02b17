package repository

import (
	"context"

	"github.com/loopi-routing/internal/domain"
)

// RoutingRepository определяет методы для работы с сервисом дорожной маршрутизации
type RoutingRepository interface {
	// GetRoute возвращает маршрут по дорогам через точки строго в заданном порядке
	GetRoute(ctx context.Context, mode domain.TravelMode, points []domain.Point) (*domain.RoadRoute, error)
}
