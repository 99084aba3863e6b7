package controllers_fx

import (
	"go.uber.org/fx"

	"roamly/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewCityController),
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewRecommendationController),
	fx.Provide(controllers.NewSeedController),
)
