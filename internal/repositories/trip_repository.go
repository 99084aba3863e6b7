package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"roamly/internal/models/db_models"
	"roamly/pkg/utils"
)

type TripRepository interface {
	Create(ctx context.Context, trip *db_models.Trip) error

	// FindByIDAndOwner filters by (id, owner_id) jointly so a
	// non-owner's lookup is indistinguishable from a missing trip.
	FindByIDAndOwner(ctx context.Context, tripID, ownerID uuid.UUID) (*db_models.Trip, error)

	// FindByShareToken only returns trips that are currently public.
	FindByShareToken(ctx context.Context, token string) (*db_models.Trip, error)

	ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]db_models.Trip, error)

	// SaveOwned persists a mutated trip. The write is guarded by the
	// version read earlier; utils.ErrVersionConflict means a
	// concurrent writer won and the caller must re-read.
	SaveOwned(ctx context.Context, trip *db_models.Trip) error

	DeleteOwned(ctx context.Context, tripID, ownerID uuid.UUID) (bool, error)

	DistinctCityIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(trip).Error
}

func (r *tripRepository) FindByIDAndOwner(ctx context.Context, tripID, ownerID uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", tripID, ownerID).
		Preload("Cities", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_cities.order_index")
		}).
		Preload("Cities.City").
		Preload("Activities").
		Preload("Activities.Activity").
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) FindByShareToken(ctx context.Context, token string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("share_token = ? AND is_public = ?", token, true).
		Preload("Cities", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_cities.order_index")
		}).
		Preload("Cities.City").
		Preload("Activities").
		Preload("Activities.Activity").
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) SaveOwned(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.Trip{}).
			Where("id = ? AND owner_id = ? AND version = ?", trip.ID, trip.OwnerID, trip.Version).
			Updates(map[string]interface{}{
				"title":                trip.Title,
				"description":          trip.Description,
				"start_date":           trip.StartDate,
				"end_date":             trip.EndDate,
				"budget_transport":     trip.Budget.Transport,
				"budget_accommodation": trip.Budget.Accommodation,
				"budget_activities":    trip.Budget.Activities,
				"budget_meals":         trip.Budget.Meals,
				"budget_others":        trip.Budget.Others,
				"budget_total":         trip.Budget.Total,
				"is_public":            trip.IsPublic,
				"share_token":          trip.ShareToken,
				"version":              trip.Version + 1,
				"updated_at":           time.Now().Unix(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrVersionConflict
		}

		// Wipe and recreate itinerary rows, same as any full rewrite
		// of materialized children.
		if err := tx.Unscoped().Where("trip_id = ?", trip.ID).
			Delete(&db_models.TripCity{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("trip_id = ?", trip.ID).
			Delete(&db_models.TripActivity{}).Error; err != nil {
			return err
		}

		for i := range trip.Cities {
			trip.Cities[i].TripID = trip.ID
		}
		for i := range trip.Activities {
			trip.Activities[i].TripID = trip.ID
		}
		if len(trip.Cities) > 0 {
			if err := tx.Omit(clause.Associations).Create(&trip.Cities).Error; err != nil {
				return err
			}
		}
		if len(trip.Activities) > 0 {
			if err := tx.Omit(clause.Associations).Create(&trip.Activities).Error; err != nil {
				return err
			}
		}

		trip.Version++
		return nil
	})
}

func (r *tripRepository) DeleteOwned(ctx context.Context, tripID, ownerID uuid.UUID) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND owner_id = ?", tripID, ownerID).
			Delete(&db_models.Trip{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&db_models.TripCity{}).Error; err != nil {
			return err
		}
		return tx.Where("trip_id = ?", tripID).
			Delete(&db_models.TripActivity{}).Error
	})
	return deleted, err
}

func (r *tripRepository) DistinctCityIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&db_models.TripCity{}).
		Distinct("trip_cities.city_id").
		Joins("JOIN trips ON trips.id = trip_cities.trip_id").
		Where("trips.owner_id = ? AND trips.deleted_at IS NULL", ownerID).
		Pluck("trip_cities.city_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
