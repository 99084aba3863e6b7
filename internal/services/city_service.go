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

type CityServiceInterface interface {
	ListCities(ctx context.Context, filter request_models.CityFilter, page, pageSize int) ([]response_models.CityResponse, error)
	GetCity(ctx context.Context, id uuid.UUID) (*response_models.CityResponse, error)
	CreateCity(ctx context.Context, req request_models.CreateCityRequest) (*response_models.CityResponse, error)
	UpdateCity(ctx context.Context, id uuid.UUID, req request_models.UpdateCityRequest) (*response_models.CityResponse, error)
	DeleteCity(ctx context.Context, id uuid.UUID) error
}

type CityService struct {
	cityRepo repositories.CityRepository
}

func NewCityService(cityRepo repositories.CityRepository) CityServiceInterface {
	return &CityService{cityRepo: cityRepo}
}

func (c *CityService) ListCities(ctx context.Context, filter request_models.CityFilter, page, pageSize int) ([]response_models.CityResponse, error) {
	cities, err := c.cityRepo.List(ctx, filter, page, pageSize)
	if err != nil {
		logger.L().Error("list cities", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CityResponse, 0, len(cities))
	for i := range cities {
		out = append(out, toCityResponse(&cities[i]))
	}
	return out, nil
}

func (c *CityService) GetCity(ctx context.Context, id uuid.UUID) (*response_models.CityResponse, error) {
	city, err := c.cityRepo.FindByID(ctx, id)
	if err != nil {
		logger.L().Error("find city", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}
	resp := toCityResponse(city)
	return &resp, nil
}

func (c *CityService) CreateCity(ctx context.Context, req request_models.CreateCityRequest) (*response_models.CityResponse, error) {
	city := &db_models.City{
		Name:        req.Name,
		Country:     req.Country,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		CostIndex:   req.CostIndex,
		Popularity:  req.Popularity,
		Tags:        req.Tags,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if _, err := c.cityRepo.Create(ctx, city); err != nil {
		logger.L().Error("create city", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	resp := toCityResponse(city)
	return &resp, nil
}

func (c *CityService) UpdateCity(ctx context.Context, id uuid.UUID, req request_models.UpdateCityRequest) (*response_models.CityResponse, error) {
	city, err := c.cityRepo.FindByID(ctx, id)
	if err != nil {
		logger.L().Error("find city", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	if req.Name != nil {
		city.Name = *req.Name
	}
	if req.Country != nil {
		city.Country = *req.Country
	}
	if req.Latitude != nil {
		city.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		city.Longitude = *req.Longitude
	}
	if req.CostIndex != nil {
		city.CostIndex = *req.CostIndex
	}
	if req.Popularity != nil {
		city.Popularity = *req.Popularity
	}
	if req.Tags != nil {
		city.Tags = *req.Tags
	}
	if req.Description != nil {
		city.Description = *req.Description
	}
	if req.ImageURL != nil {
		city.ImageURL = *req.ImageURL
	}

	if err := c.cityRepo.Update(ctx, city); err != nil {
		logger.L().Error("update city", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	resp := toCityResponse(city)
	return &resp, nil
}

func (c *CityService) DeleteCity(ctx context.Context, id uuid.UUID) error {
	city, err := c.cityRepo.FindByID(ctx, id)
	if err != nil {
		logger.L().Error("find city", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if city == nil {
		return utils.ErrCityNotFound
	}
	if err := c.cityRepo.Delete(ctx, id); err != nil {
		logger.L().Error("delete city", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func toCityResponse(city *db_models.City) response_models.CityResponse {
	return response_models.CityResponse{
		ID:          city.ID.String(),
		Name:        city.Name,
		Country:     city.Country,
		Latitude:    city.Latitude,
		Longitude:   city.Longitude,
		CostIndex:   city.CostIndex,
		Popularity:  city.Popularity,
		Tags:        city.Tags,
		Description: city.Description,
		ImageURL:    city.ImageURL,
	}
}
