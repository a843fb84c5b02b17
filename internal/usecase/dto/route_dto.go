package dto

import "github.com/loopi-routing/internal/domain"

// PointInput - точка, выбранная пользователем на карте.
// Ноль - корректная координата, поэтому lat/lng без required.
type PointInput struct {
	ID   string  `json:"id" validate:"required,max=128"`
	Name string  `json:"name" validate:"max=256"`
	Lat  float64 `json:"lat" validate:"min=-90,max=90"`
	Lng  float64 `json:"lng" validate:"min=-180,max=180"`
}

// ToDomain конвертирует во внутреннюю точку
func (p PointInput) ToDomain() domain.Point {
	return domain.Point{ID: p.ID, Name: p.Name, Lat: p.Lat, Lng: p.Lng}
}

// ToDomainPoints конвертирует список точек, сохраняя порядок
func ToDomainPoints(in []PointInput) []domain.Point {
	points := make([]domain.Point, len(in))
	for i, p := range in {
		points[i] = p.ToDomain()
	}
	return points
}

// SequenceRequest - запрос на упорядочивание точек
type SequenceRequest struct {
	Mode   string       `json:"mode" validate:"required,travelmode"`
	Points []PointInput `json:"points" validate:"max=500,dive"`
}

// SequenceResponse - порядок посещения и шаги маршрута
type SequenceResponse struct {
	Mode             domain.TravelMode  `json:"mode"`
	Stops            []domain.Point     `json:"stops"`
	Steps            []domain.RouteStep `json:"steps"`
	TotalDistanceKm  float64            `json:"total_distance_km"`
	TotalDurationMin int                `json:"total_duration_min"`
}

// PlanRequest - запрос на полный маршрут: порядок + геометрия по дорогам.
// SessionID связывает последовательные запросы одной карты.
type PlanRequest struct {
	SessionID string       `json:"session_id,omitempty" validate:"omitempty,max=128"`
	Mode      string       `json:"mode" validate:"required,travelmode"`
	Points    []PointInput `json:"points" validate:"max=500,dive"`
}

// PlanResponse - полный маршрут
type PlanResponse struct {
	SessionID        string             `json:"session_id,omitempty"`
	Generation       uint64             `json:"generation,omitempty"`
	Mode             domain.TravelMode  `json:"mode"`
	Stops            []domain.Point     `json:"stops"`
	Steps            []domain.RouteStep `json:"steps"`
	TotalDistanceKm  float64            `json:"total_distance_km"`
	TotalDurationMin int                `json:"total_duration_min"`
	Road             *domain.RoadRoute  `json:"road,omitempty"`
}

// SegmentInput - отрезок маршрута; пустой mode берётся из запроса
type SegmentInput struct {
	From PointInput `json:"from"`
	To   PointInput `json:"to"`
	Mode string     `json:"mode,omitempty" validate:"omitempty,travelmode"`
}

// SegmentsRequest - запрос на построение маршрутов по отрезкам
type SegmentsRequest struct {
	Mode     string         `json:"mode" validate:"required,travelmode"`
	Segments []SegmentInput `json:"segments" validate:"required,min=1,max=50,dive"`
}

// SegmentRoute - дорожный маршрут одного отрезка
type SegmentRoute struct {
	From domain.Point      `json:"from"`
	To   domain.Point      `json:"to"`
	Mode domain.TravelMode `json:"mode"`
	Road *domain.RoadRoute `json:"road"`
}

// SegmentsResponse - маршруты отрезков в порядке запроса
type SegmentsResponse struct {
	Segments  []SegmentRoute `json:"segments"`
	Fallbacks int            `json:"fallbacks"`
}
