package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roamly/internal/models/db_models"
	"roamly/internal/models/request_models"
)

type CityRepository interface {
	Create(ctx context.Context, city *db_models.City) (uuid.UUID, error)
	Update(ctx context.Context, city *db_models.City) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.City, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.City, error)

	// List applies only the predicates present in the filter and
	// sorts by popularity descending.
	List(ctx context.Context, filter request_models.CityFilter, page, pageSize int) ([]db_models.City, error)

	// ListTopExcluding returns the most popular cities not in the
	// exclude set. Popularity ties fall back to store iteration
	// order, which is not stable.
	ListTopExcluding(ctx context.Context, exclude []uuid.UUID, limit int) ([]db_models.City, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) Create(ctx context.Context, city *db_models.City) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(city).Error; err != nil {
		return uuid.Nil, err
	}
	return city.ID, nil
}

func (r *cityRepository) Update(ctx context.Context, city *db_models.City) error {
	res := r.db.WithContext(ctx).Save(city)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.City{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *cityRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.City, error) {
	var city db_models.City
	err := r.db.WithContext(ctx).First(&city, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.City, error) {
	var cities []db_models.City
	if len(ids) == 0 {
		return cities, nil
	}
	err := r.db.WithContext(ctx).Find(&cities, "id IN ?", ids).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) List(ctx context.Context, filter request_models.CityFilter, page, pageSize int) ([]db_models.City, error) {
	q := r.db.WithContext(ctx).Model(&db_models.City{})

	if filter.Country != "" {
		q = q.Where("country = ?", filter.Country)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR country ILIKE ?", pattern, pattern)
	}
	if filter.MinCost != nil {
		q = q.Where("cost_index >= ?", *filter.MinCost)
	}
	if filter.MaxCost != nil {
		q = q.Where("cost_index <= ?", *filter.MaxCost)
	}

	var cities []db_models.City
	err := q.Order("popularity DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) ListTopExcluding(ctx context.Context, exclude []uuid.UUID, limit int) ([]db_models.City, error) {
	q := r.db.WithContext(ctx).Model(&db_models.City{})
	if len(exclude) > 0 {
		q = q.Where("id NOT IN ?", exclude)
	}

	var cities []db_models.City
	err := q.Order("popularity DESC").Limit(limit).Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}
