package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Budget is embedded in Trip. Total is derived, never authoritative:
// every write path that touches a category must call Recompute in the
// same operation.
type Budget struct {
	Transport     float64 `json:"transport"`
	Accommodation float64 `json:"accommodation"`
	Activities    float64 `json:"activities"`
	Meals         float64 `json:"meals"`
	Others        float64 `json:"others"`
	Total         float64 `json:"total"`
}

func (b *Budget) Recompute() {
	b.Total = b.Transport + b.Accommodation + b.Activities + b.Meals + b.Others
}

type Trip struct {
	BaseModel
	OwnerID     uuid.UUID `gorm:"index;not null"`
	Title       string    `gorm:"not null"`
	Description string
	StartDate   *time.Time
	EndDate     *time.Time

	Cities     []TripCity     `gorm:"foreignKey:TripID"`
	Activities []TripActivity `gorm:"foreignKey:TripID"`

	Budget Budget `gorm:"embedded;embeddedPrefix:budget_" json:"budget"`

	IsPublic   bool
	ShareToken *string `gorm:"uniqueIndex"`

	// Version guards every owned write (optimistic concurrency).
	Version int `gorm:"default:1"`
}

// TripCity is an ordered city visit inside one trip. It references
// shared City rows and never participates in budget computation.
type TripCity struct {
	BaseModel
	TripID        uuid.UUID `gorm:"index;not null"`
	CityID        uuid.UUID `gorm:"not null"`
	OrderIndex    int
	ArrivalDate   *time.Time
	DepartureDate *time.Time

	City City `gorm:"foreignKey:CityID"`
}

// TripActivity is a booked activity inside one trip. Cost is captured
// at booking time so later edits to the reference Activity do not
// shift past budgets.
type TripActivity struct {
	BaseModel
	TripID     uuid.UUID `gorm:"index;not null"`
	ActivityID uuid.UUID `gorm:"not null"`
	Date       *time.Time
	StartTime  string
	EndTime    string
	Cost       float64
	Notes      string

	Activity Activity `gorm:"foreignKey:ActivityID"`
}
