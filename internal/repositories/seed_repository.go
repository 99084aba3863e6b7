package repositories

import (
	"context"

	"gorm.io/gorm"

	"roamly/internal/models/db_models"
)

type SeedRepository interface {
	// Reset wipes all reference data and repopulates it in one
	// transaction. Destructive; the service layer gates it to
	// non-production environments.
	Reset(ctx context.Context, cities []db_models.City) error
}

type seedRepository struct {
	db *gorm.DB
}

func NewSeedRepository(db *gorm.DB) SeedRepository {
	return &seedRepository{db: db}
}

func (r *seedRepository) Reset(ctx context.Context, cities []db_models.City) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").
			Delete(&db_models.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("1 = 1").
			Delete(&db_models.City{}).Error; err != nil {
			return err
		}
		return tx.Create(&cities).Error
	})
}
