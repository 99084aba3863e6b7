package recommendations_fx

import (
	"go.uber.org/fx"

	"roamly/internal/repositories"
	"roamly/internal/services"
)

var Module = fx.Provide(provideRecommendationService)

func provideRecommendationService(tripRepo repositories.TripRepository, cityRepo repositories.CityRepository) services.RecommendationServiceInterface {
	return services.NewRecommendationService(tripRepo, cityRepo)
}
