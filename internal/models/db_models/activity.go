package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ActivityType string

const (
	ActivitySightseeing ActivityType = "sightseeing"
	ActivityFood        ActivityType = "food"
	ActivityCulture     ActivityType = "culture"
	ActivityNature      ActivityType = "nature"
	ActivityAdventure   ActivityType = "adventure"
	ActivityNightlife   ActivityType = "nightlife"
	ActivityShopping    ActivityType = "shopping"
	ActivityRelaxation  ActivityType = "relaxation"
)

func ValidActivityType(t string) bool {
	switch ActivityType(t) {
	case ActivitySightseeing, ActivityFood, ActivityCulture, ActivityNature,
		ActivityAdventure, ActivityNightlife, ActivityShopping, ActivityRelaxation:
		return true
	}
	return false
}

// Activity is reference data scoped to one City.
type Activity struct {
	BaseModel
	CityID          uuid.UUID    `gorm:"index;not null"`
	Name            string       `gorm:"not null"`
	Type            ActivityType `gorm:"index;not null"`
	DurationMinutes int
	EstimatedCost   float64
	Rating          float64        `gorm:"check:rating >= 1 AND rating <= 5"`
	Tags            pq.StringArray `gorm:"type:text[]"`
	Description     string

	City City `gorm:"foreignKey:CityID"`
}
