package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamly/internal/repositories"
	"roamly/internal/services"
)

var Module = fx.Provide(provideStatsRepo, provideAdminService)

func provideStatsRepo(db *gorm.DB) repositories.StatsRepository {
	return repositories.NewStatsRepository(db)
}

func provideAdminService(userRepo repositories.UserRepository, statsRepo repositories.StatsRepository) services.AdminServiceInterface {
	return services.NewAdminService(userRepo, statsRepo)
}
