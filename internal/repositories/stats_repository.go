package repositories

import (
	"context"

	"gorm.io/gorm"

	"roamly/internal/models/db_models"
)

type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountTrips(ctx context.Context) (int64, error)
	CountPublicTrips(ctx context.Context) (int64, error)
	CountCities(ctx context.Context) (int64, error)
	CountActivities(ctx context.Context) (int64, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.User{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountTrips(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Trip{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountPublicTrips(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Trip{}).
		Where("is_public = ?", true).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountCities(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.City{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountActivities(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Activity{}).Count(&n).Error
	return n, err
}
