package domain

import "github.com/paulmach/orb"

// Point - точка маршрута, выбранная пользователем на карте
type Point struct {
	ID   string  `json:"id" db:"id"`
	Name string  `json:"name" db:"name"`
	Lat  float64 `json:"lat" db:"lat"`
	Lng  float64 `json:"lng" db:"lng"`
}

// OrbPoint возвращает точку в порядке (lng, lat), как её ждут orb и OSRM
func (p Point) OrbPoint() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLng float64 `json:"min_lng" db:"min_lng"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLng float64 `json:"max_lng" db:"max_lng"`
}

// BoundingBoxFromBound конвертирует orb.Bound в BoundingBox
func BoundingBoxFromBound(b orb.Bound) BoundingBox {
	return BoundingBox{
		MinLat: b.Min.Lat(),
		MinLng: b.Min.Lon(),
		MaxLat: b.Max.Lat(),
		MaxLng: b.Max.Lon(),
	}
}
