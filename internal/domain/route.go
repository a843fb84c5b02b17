package domain

// TravelMode - способ передвижения между точками маршрута
type TravelMode string

const (
	TravelModeDriving TravelMode = "driving"
	TravelModeWalking TravelMode = "walking"
)

// Средние скорости для оценки времени в пути, км/ч
const (
	DrivingSpeedKmh = 40.0
	WalkingSpeedKmh = 5.0
)

// ParseTravelMode разбирает строковое значение режима
func ParseTravelMode(s string) (TravelMode, bool) {
	switch TravelMode(s) {
	case TravelModeDriving:
		return TravelModeDriving, true
	case TravelModeWalking:
		return TravelModeWalking, true
	}
	return "", false
}

// IsValid проверяет, что режим известен
func (m TravelMode) IsValid() bool {
	_, ok := ParseTravelMode(string(m))
	return ok
}

// SpeedKmh возвращает среднюю скорость режима.
// Всё, что не driving, считается пешей прогулкой.
func (m TravelMode) SpeedKmh() float64 {
	if m == TravelModeDriving {
		return DrivingSpeedKmh
	}
	return WalkingSpeedKmh
}

// Profile возвращает имя профиля OSRM
func (m TravelMode) Profile() string {
	if m == TravelModeDriving {
		return "car"
	}
	return "foot"
}

// RouteStep - один переход между соседними точками в порядке посещения
type RouteStep struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_min"`
	Order       int     `json:"order"`
}

// Segment - пара точек, для которой строится отдельный дорожный маршрут
type Segment struct {
	From Point      `json:"from"`
	To   Point      `json:"to"`
	Mode TravelMode `json:"mode"`
}
