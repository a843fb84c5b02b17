package dto

import "github.com/loopi-routing/internal/domain"

// LandmarksResponse - список достопримечательностей
type LandmarksResponse struct {
	Landmarks []*domain.Landmark `json:"landmarks"`
	Total     int                `json:"total"`
}

// ClusterRequest - поиск кластеров вокруг точки, куда пользователь бросил иконку
type ClusterRequest struct {
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lng     float64 `json:"lng" validate:"min=-180,max=180"`
	Type    string  `json:"type" validate:"required,landmarktype"`
	RadiusM float64 `json:"radius_m,omitempty" validate:"omitempty,min=10,max=100000"`
}

// ClusterResponse - кластеры, отсортированные по расстоянию
type ClusterResponse struct {
	Clusters []domain.LandmarkCluster `json:"clusters"`
	Total    int                      `json:"total"`
	RadiusM  float64                  `json:"radius_m"`
}

// ExtractRequest - текст (например, ответ чат-бота) для поиска упоминаний
type ExtractRequest struct {
	Text string `json:"text" validate:"required,max=20000"`
}
