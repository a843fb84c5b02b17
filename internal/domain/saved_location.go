package domain

// SavedLocation - место, сохранённое пользователем в избранное
type SavedLocation struct {
	ID          string   `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Description string   `json:"description" db:"description"`
	Image       string   `json:"image" db:"image"`
	Type        string   `json:"type" db:"type"`
	Tags        []string `json:"tags" db:"-"`
	Lat         float64  `json:"lat" db:"lat"`
	Lng         float64  `json:"lng" db:"lng"`
	City        *string  `json:"city,omitempty" db:"city"`
	Country     *string  `json:"country,omitempty" db:"country"`
}
