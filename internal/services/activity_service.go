package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"roamly/internal/models/db_models"
	"roamly/internal/models/request_models"
	"roamly/internal/models/response_models"
	"roamly/internal/repositories"
	"roamly/pkg/logger"
	"roamly/pkg/utils"
)

type ActivityServiceInterface interface {
	ListActivities(ctx context.Context, filter request_models.ActivityFilter, page, pageSize int) ([]response_models.ActivityResponse, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*response_models.ActivityResponse, error)
	CreateActivity(ctx context.Context, req request_models.CreateActivityRequest) (*response_models.ActivityResponse, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, req request_models.UpdateActivityRequest) (*response_models.ActivityResponse, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	cityRepo     repositories.CityRepository
}

func NewActivityService(activityRepo repositories.ActivityRepository, cityRepo repositories.CityRepository) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
		cityRepo:     cityRepo,
	}
}

func (a *ActivityService) ListActivities(ctx context.Context, filter request_models.ActivityFilter, page, pageSize int) ([]response_models.ActivityResponse, error) {
	activities, err := a.activityRepo.List(ctx, filter, page, pageSize)
	if err != nil {
		logger.L().Error("list activities", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, toActivityResponse(&activities[i]))
	}
	return out, nil
}

func (a *ActivityService) GetActivity(ctx context.Context, id uuid.UUID) (*response_models.ActivityResponse, error) {
	activity, err := a.activityRepo.FindByID(ctx, id)
	if err != nil {
		logger.L().Error("find activity", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}
	resp := toActivityResponse(activity)
	return &resp, nil
}

func (a *ActivityService) CreateActivity(ctx context.Context, req request_models.CreateActivityRequest) (*response_models.ActivityResponse, error) {
	cityID, err := uuid.Parse(req.CityID)
	if err != nil {
		return nil, utils.ErrCityNotFound
	}
	city, err := a.cityRepo.FindByID(ctx, cityID)
	if err != nil {
		logger.L().Error("find city", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	activity := &db_models.Activity{
		CityID:          cityID,
		Name:            req.Name,
		Type:            db_models.ActivityType(req.Type),
		DurationMinutes: req.DurationMinutes,
		EstimatedCost:   req.EstimatedCost,
		Rating:          req.Rating,
		Tags:            req.Tags,
		Description:     req.Description,
	}
	if _, err := a.activityRepo.Create(ctx, activity); err != nil {
		logger.L().Error("create activity", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	resp := toActivityResponse(activity)
	return &resp, nil
}

func (a *ActivityService) UpdateActivity(ctx context.Context, id uuid.UUID, req request_models.UpdateActivityRequest) (*response_models.ActivityResponse, error) {
	activity, err := a.activityRepo.FindByID(ctx, id)
	if err != nil {
		logger.L().Error("find activity", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.Type != nil {
		activity.Type = db_models.ActivityType(*req.Type)
	}
	if req.DurationMinutes != nil {
		activity.DurationMinutes = *req.DurationMinutes
	}
	if req.EstimatedCost != nil {
		activity.EstimatedCost = *req.EstimatedCost
	}
	if req.Rating != nil {
		activity.Rating = *req.Rating
	}
	if req.Tags != nil {
		activity.Tags = *req.Tags
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}

	if err := a.activityRepo.Update(ctx, activity); err != nil {
		logger.L().Error("update activity", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	resp := toActivityResponse(activity)
	return &resp, nil
}

func (a *ActivityService) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	activity, err := a.activityRepo.FindByID(ctx, id)
	if err != nil {
		logger.L().Error("find activity", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if activity == nil {
		return utils.ErrActivityNotFound
	}
	if err := a.activityRepo.Delete(ctx, id); err != nil {
		logger.L().Error("delete activity", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func toActivityResponse(activity *db_models.Activity) response_models.ActivityResponse {
	return response_models.ActivityResponse{
		ID:              activity.ID.String(),
		CityID:          activity.CityID.String(),
		Name:            activity.Name,
		Type:            string(activity.Type),
		DurationMinutes: activity.DurationMinutes,
		EstimatedCost:   activity.EstimatedCost,
		Rating:          activity.Rating,
		Tags:            activity.Tags,
		Description:     activity.Description,
	}
}
