package dto

import "github.com/loopi-routing/internal/domain"

// SavedLocationInput - место для сохранения в избранное
type SavedLocationInput struct {
	ID          string   `json:"id" validate:"required,max=128"`
	Name        string   `json:"name" validate:"required,max=256"`
	Description string   `json:"description" validate:"max=2000"`
	Image       string   `json:"image" validate:"omitempty,url"`
	Type        string   `json:"type" validate:"max=64"`
	Tags        []string `json:"tags" validate:"max=32,dive,max=64"`
	Lat         float64  `json:"lat" validate:"min=-90,max=90"`
	Lng         float64  `json:"lng" validate:"min=-180,max=180"`
	City        *string  `json:"city,omitempty"`
	Country     *string  `json:"country,omitempty"`
}

// ToDomain конвертирует во внутреннюю модель
func (s SavedLocationInput) ToDomain() domain.SavedLocation {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.SavedLocation{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Image:       s.Image,
		Type:        s.Type,
		Tags:        tags,
		Lat:         s.Lat,
		Lng:         s.Lng,
		City:        s.City,
		Country:     s.Country,
	}
}

// ReplaceSavedLocationsRequest - новая коллекция целиком
type ReplaceSavedLocationsRequest struct {
	Locations []SavedLocationInput `json:"locations" validate:"max=1000,dive"`
}

// SavedLocationsResponse - коллекция владельца
type SavedLocationsResponse struct {
	OwnerID   string                 `json:"owner_id"`
	Locations []domain.SavedLocation `json:"locations"`
	Total     int                    `json:"total"`
}
