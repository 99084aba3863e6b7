package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roamly/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	Update(ctx context.Context, user *db_models.User) error
	ReplaceSavedCities(ctx context.Context, user *db_models.User, cities []db_models.City) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	ListAll(ctx context.Context, page, pageSize int) ([]db_models.User, error)

	// Delete removes the user and cascades to owned trips and their
	// itinerary rows in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).
		Preload("SavedCities").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).
		Model(user).
		Select("Name", "Preferences").
		Updates(user).Error
}

func (r *userRepository) ReplaceSavedCities(ctx context.Context, user *db_models.User, cities []db_models.City) error {
	return r.db.WithContext(ctx).
		Model(user).
		Association("SavedCities").
		Replace(cities)
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

func (r *userRepository) ListAll(ctx context.Context, page, pageSize int) ([]db_models.User, error) {
	var users []db_models.User
	err := r.db.WithContext(ctx).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Order("created_at").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tripIDs := tx.Model(&db_models.Trip{}).
			Select("id").
			Where("owner_id = ?", id)

		if err := tx.Where("trip_id IN (?)", tripIDs).
			Delete(&db_models.TripActivity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id IN (?)", tripIDs).
			Delete(&db_models.TripCity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).
			Delete(&db_models.Trip{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&db_models.User{BaseModel: db_models.BaseModel{ID: id}}).
			Association("SavedCities").Clear(); err != nil {
			return err
		}
		return tx.Delete(&db_models.User{}, "id = ?", id).Error
	})
}
