package activities_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamly/internal/repositories"
	"roamly/internal/services"
)

var Module = fx.Provide(provideActivityRepo, provideActivityService)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(activityRepo repositories.ActivityRepository, cityRepo repositories.CityRepository) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo, cityRepo)
}
