package users_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamly/internal/repositories"
	"roamly/internal/services"
)

var Module = fx.Provide(provideUserRepo, provideUserService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepository, cityRepo repositories.CityRepository) services.UserServiceInterface {
	return services.NewUserService(userRepo, cityRepo)
}
