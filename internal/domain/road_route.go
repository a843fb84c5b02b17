package domain

import "github.com/paulmach/orb"

// RouteSource - откуда получена геометрия маршрута
type RouteSource string

const (
	RouteSourceOSRM         RouteSource = "osrm"
	RouteSourceStraightLine RouteSource = "straight_line"
)

// RoadRoute - геометрия маршрута по дорогам (или прямыми отрезками при fallback)
type RoadRoute struct {
	Geometry  orb.LineString `json:"geometry"`
	DistanceM float64        `json:"distance_m"`
	DurationS float64        `json:"duration_s"`
	Source    RouteSource    `json:"source"`
	Bounds    BoundingBox    `json:"bounds"`
}

// NewStraightLineRoute строит ломаную через точки в заданном порядке.
// Расстояние и время не заполняются: OSRM их не посчитал.
func NewStraightLineRoute(points []Point) *RoadRoute {
	line := make(orb.LineString, 0, len(points))
	for _, p := range points {
		line = append(line, p.OrbPoint())
	}

	route := &RoadRoute{
		Geometry: line,
		Source:   RouteSourceStraightLine,
	}
	if len(line) > 0 {
		route.Bounds = BoundingBoxFromBound(line.Bound())
	}
	return route
}

// IsFallback сообщает, что маршрут построен без OSRM
func (r *RoadRoute) IsFallback() bool {
	return r.Source == RouteSourceStraightLine
}
