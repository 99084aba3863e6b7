package cities_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamly/internal/repositories"
	"roamly/internal/services"
)

var Module = fx.Provide(provideCityRepo, provideCityService)

func provideCityRepo(db *gorm.DB) repositories.CityRepository {
	return repositories.NewCityRepository(db)
}

func provideCityService(cityRepo repositories.CityRepository) services.CityServiceInterface {
	return services.NewCityService(cityRepo)
}
