package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"roamly/internal/models/request_models"
	"roamly/internal/models/response_models"
	"roamly/internal/repositories"
	"roamly/pkg/logger"
	"roamly/pkg/utils"
)

type UserServiceInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.UserResponse, error)

	// DeleteAccount removes the user and every trip they own.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type UserService struct {
	userRepo repositories.UserRepository
	cityRepo repositories.CityRepository
}

func NewUserService(userRepo repositories.UserRepository, cityRepo repositories.CityRepository) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
		cityRepo: cityRepo,
	}
}

func (u *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		logger.L().Error("find user", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (u *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		logger.L().Error("find user", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Preferences != nil {
		user.Preferences = datatypes.JSON(req.Preferences)
	}
	if err := u.userRepo.Update(ctx, user); err != nil {
		logger.L().Error("update user", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	if req.SavedDestinations != nil {
		ids := make([]uuid.UUID, 0, len(*req.SavedDestinations))
		for _, raw := range *req.SavedDestinations {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, utils.ErrCityNotFound
			}
			ids = append(ids, id)
		}

		cities, err := u.cityRepo.FindByIDs(ctx, ids)
		if err != nil {
			logger.L().Error("find cities", zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
		if len(cities) != len(ids) {
			return nil, utils.ErrCityNotFound
		}
		if err := u.userRepo.ReplaceSavedCities(ctx, user, cities); err != nil {
			logger.L().Error("replace saved cities", zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
	}

	return u.GetProfile(ctx, userID)
}

func (u *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		logger.L().Error("find user", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}
	if err := u.userRepo.Delete(ctx, userID); err != nil {
		logger.L().Error("delete user", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}
