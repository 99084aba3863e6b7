package auth_fx

import (
	"go.uber.org/fx"

	"roamly/internal/repositories"
	"roamly/internal/services"
	"roamly/pkg/config"
	"roamly/pkg/memcache"
	"roamly/pkg/utils"
)

var Module = fx.Provide(
	provideJWTMaker,
	provideResetTokens,
	provideMailService,
	provideAuthService,
)

func provideJWTMaker(cfg *config.Config) *utils.JWTMaker {
	return utils.NewJWTMaker(cfg)
}

func provideResetTokens() memcache.ResetTokenStore {
	return memcache.NewResetTokens()
}

func provideMailService(cfg *config.Config) services.MailServiceInterface {
	return services.NewMailService(cfg)
}

func provideAuthService(
	userRepo repositories.UserRepository,
	jwtMaker *utils.JWTMaker,
	mailService services.MailServiceInterface,
	resetTokens memcache.ResetTokenStore,
) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, jwtMaker, mailService, resetTokens)
}
