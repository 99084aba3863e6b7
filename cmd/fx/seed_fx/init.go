package seed_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamly/internal/repositories"
	"roamly/internal/services"
	"roamly/pkg/config"
)

var Module = fx.Provide(provideSeedRepo, provideSeedService)

func provideSeedRepo(db *gorm.DB) repositories.SeedRepository {
	return repositories.NewSeedRepository(db)
}

func provideSeedService(seedRepo repositories.SeedRepository, cfg *config.Config) services.SeedServiceInterface {
	return services.NewSeedService(seedRepo, cfg)
}
