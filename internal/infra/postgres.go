package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"roamly/internal/models/db_models"
	"roamly/pkg/config"
)

func NewPostgres(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DB.URL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.City{},
		&db_models.Activity{},
		&db_models.Trip{},
		&db_models.TripCity{},
		&db_models.TripActivity{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

func ClosePostgres(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
