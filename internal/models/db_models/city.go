package db_models

import "github.com/lib/pq"

// City is admin-managed reference data with an independent lifecycle.
type City struct {
	BaseModel
	Name        string  `gorm:"not null;index"`
	Country     string  `gorm:"not null;index"`
	Latitude    float64
	Longitude   float64
	CostIndex   int            `gorm:"check:cost_index >= 1 AND cost_index <= 5"`
	Popularity  float64        `gorm:"index"`
	Tags        pq.StringArray `gorm:"type:text[]"`
	Description string
	ImageURL    string

	Activities []Activity `gorm:"foreignKey:CityID"`
}
