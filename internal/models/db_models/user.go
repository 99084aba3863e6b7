package db_models

import (
	"gorm.io/datatypes"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	BaseModel
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"` // stored lowercased
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"default:user"`

	Preferences datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	// Saved destinations are shared City references, never owned.
	SavedCities []City `gorm:"many2many:user_saved_cities"`

	Trips []Trip `gorm:"foreignKey:OwnerID"`
}
