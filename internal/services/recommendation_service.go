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

const recommendationLimit = 6

type RecommendationServiceInterface interface {
	GetDestinations(ctx context.Context, userID uuid.UUID) ([]response_models.CityResponse, error)
}

type RecommendationService struct {
	tripRepo repositories.TripRepository
	cityRepo repositories.CityRepository
}

func NewRecommendationService(tripRepo repositories.TripRepository, cityRepo repositories.CityRepository) RecommendationServiceInterface {
	return &RecommendationService{
		tripRepo: tripRepo,
		cityRepo: cityRepo,
	}
}

// GetDestinations is a plain exclusion filter: the most popular
// cities the caller has not already put on a trip. Popularity ties
// resolve in store iteration order, which is not stable.
func (r *RecommendationService) GetDestinations(ctx context.Context, userID uuid.UUID) ([]response_models.CityResponse, error) {
	visited, err := r.tripRepo.DistinctCityIDs(ctx, userID)
	if err != nil {
		logger.L().Error("collect visited cities", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	cities, err := r.cityRepo.ListTopExcluding(ctx, visited, recommendationLimit)
	if err != nil {
		logger.L().Error("list recommendations", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CityResponse, 0, len(cities))
	for i := range cities {
		out = append(out, toCityResponse(&cities[i]))
	}
	return out, nil
}
