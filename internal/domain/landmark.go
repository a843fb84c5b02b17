package domain

import "strings"

// LandmarkType - тип иконки, которую пользователь перетаскивает на карту
type LandmarkType string

const (
	LandmarkTypeHotel      LandmarkType = "hotel"
	LandmarkTypeRestaurant LandmarkType = "restaurant"
	LandmarkTypeCafe       LandmarkType = "cafe"
	LandmarkTypeAttraction LandmarkType = "attraction"
	LandmarkTypeActivity   LandmarkType = "activity"
	LandmarkTypePhoto      LandmarkType = "photo"
)

// IsValid проверяет, что тип известен
func (t LandmarkType) IsValid() bool {
	switch t {
	case LandmarkTypeHotel, LandmarkTypeRestaurant, LandmarkTypeCafe,
		LandmarkTypeAttraction, LandmarkTypeActivity, LandmarkTypePhoto:
		return true
	}
	return false
}

// DefaultClusterRadiusM - радиус поиска кластеров вокруг точки сброса иконки
const DefaultClusterRadiusM = 8000.0

// Landmark - достопримечательность из справочника
type Landmark struct {
	ID               string       `json:"id" db:"id"`
	Name             string       `json:"name" db:"name"`
	Tag              string       `json:"tag" db:"tag"`
	Type             LandmarkType `json:"type" db:"type"`
	Lat              float64      `json:"lat" db:"lat"`
	Lng              float64      `json:"lng" db:"lng"`
	VisitDurationMin int          `json:"visit_duration_min" db:"visit_duration_min"`
	PeakHours        string       `json:"peak_hours" db:"peak_hours"`
	OffPeakHours     string       `json:"off_peak_hours" db:"off_peak_hours"`
	MomentCount      int          `json:"moment_count" db:"moment_count"`
	Variations       []string     `json:"variations" db:"-"`
}

// MentionedIn проверяет, упоминается ли достопримечательность в тексте.
// text должен быть уже в нижнем регистре.
func (l *Landmark) MentionedIn(text string) bool {
	for _, v := range l.Variations {
		if v == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

// LandmarkCluster - достопримечательность рядом с точкой сброса иконки
type LandmarkCluster struct {
	Landmark
	DistanceM float64 `json:"distance_m"`
}
