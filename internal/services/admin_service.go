package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"roamly/internal/models/response_models"
	"roamly/internal/repositories"
	"roamly/pkg/logger"
	"roamly/pkg/utils"
)

type AdminServiceInterface interface {
	GetStats(ctx context.Context) (*response_models.StatsResponse, error)
	ListUsers(ctx context.Context, page, pageSize int) ([]response_models.UserResponse, error)

	// DeleteUser cascades to the target's trips. Admins cannot delete
	// themselves; that is rejected before any store call.
	DeleteUser(ctx context.Context, callerID, targetID uuid.UUID) error
}

type AdminService struct {
	userRepo  repositories.UserRepository
	statsRepo repositories.StatsRepository
}

func NewAdminService(userRepo repositories.UserRepository, statsRepo repositories.StatsRepository) AdminServiceInterface {
	return &AdminService{
		userRepo:  userRepo,
		statsRepo: statsRepo,
	}
}

func (a *AdminService) GetStats(ctx context.Context) (*response_models.StatsResponse, error) {
	var (
		stats response_models.StatsResponse
		err   error
	)
	if stats.Users, err = a.statsRepo.CountUsers(ctx); err != nil {
		return nil, a.statsErr(err)
	}
	if stats.Trips, err = a.statsRepo.CountTrips(ctx); err != nil {
		return nil, a.statsErr(err)
	}
	if stats.PublicTrips, err = a.statsRepo.CountPublicTrips(ctx); err != nil {
		return nil, a.statsErr(err)
	}
	if stats.Cities, err = a.statsRepo.CountCities(ctx); err != nil {
		return nil, a.statsErr(err)
	}
	if stats.Activities, err = a.statsRepo.CountActivities(ctx); err != nil {
		return nil, a.statsErr(err)
	}
	return &stats, nil
}

func (a *AdminService) statsErr(err error) error {
	logger.L().Error("collect stats", zap.Error(err))
	return utils.ErrDatabaseError
}

func (a *AdminService) ListUsers(ctx context.Context, page, pageSize int) ([]response_models.UserResponse, error) {
	users, err := a.userRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		logger.L().Error("list users", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out, nil
}

func (a *AdminService) DeleteUser(ctx context.Context, callerID, targetID uuid.UUID) error {
	if callerID == targetID {
		return utils.ErrSelfDeletion
	}

	user, err := a.userRepo.FindByID(ctx, targetID)
	if err != nil {
		logger.L().Error("find user", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	if err := a.userRepo.Delete(ctx, targetID); err != nil {
		logger.L().Error("delete user", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}
