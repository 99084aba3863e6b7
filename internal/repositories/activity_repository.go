package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roamly/internal/models/db_models"
	"roamly/internal/models/request_models"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *db_models.Activity) (uuid.UUID, error)
	Update(ctx context.Context, activity *db_models.Activity) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Activity, error)
	List(ctx context.Context, filter request_models.ActivityFilter, page, pageSize int) ([]db_models.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *db_models.Activity) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return uuid.Nil, err
	}
	return activity.ID, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *db_models.Activity) error {
	res := r.db.WithContext(ctx).Save(activity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Activity{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

// List carries no default sort order; rows come back however the
// store iterates.
func (r *activityRepository) List(ctx context.Context, filter request_models.ActivityFilter, page, pageSize int) ([]db_models.Activity, error) {
	q := r.db.WithContext(ctx).Model(&db_models.Activity{})

	if filter.CityID != "" {
		q = q.Where("city_id = ?", filter.CityID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.MinCost != nil {
		q = q.Where("estimated_cost >= ?", *filter.MinCost)
	}
	if filter.MaxCost != nil {
		q = q.Where("estimated_cost <= ?", *filter.MaxCost)
	}

	var activities []db_models.Activity
	err := q.Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
