package trips_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamly/internal/repositories"
	"roamly/internal/services"
)

var Module = fx.Provide(provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	cityRepo repositories.CityRepository,
	activityRepo repositories.ActivityRepository,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, cityRepo, activityRepo)
}
