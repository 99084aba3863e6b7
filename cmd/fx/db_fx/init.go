package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamly/internal/infra"
	"roamly/pkg/config"
)

var Module = fx.Provide(provideDB)

func provideDB(cfg *config.Config) (*gorm.DB, error) {
	return infra.NewPostgres(cfg)
}
