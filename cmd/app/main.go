package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"roamly/cmd/fx/activities_fx"
	"roamly/cmd/fx/admin_fx"
	"roamly/cmd/fx/auth_fx"
	"roamly/cmd/fx/cities_fx"
	"roamly/cmd/fx/controllers_fx"
	"roamly/cmd/fx/db_fx"
	"roamly/cmd/fx/recommendations_fx"
	"roamly/cmd/fx/seed_fx"
	"roamly/cmd/fx/trips_fx"
	"roamly/cmd/fx/users_fx"
	"roamly/internal/api/controllers"
	"roamly/internal/infra"
	"roamly/pkg/config"
	"roamly/pkg/logger"
	"roamly/pkg/middleware"
	"roamly/pkg/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	// Unknown JSON fields are a client bug, not something to ignore.
	gin.EnableJsonDecoderDisallowUnknownFields()

	app := fx.New(
		fx.Supply(cfg),
		db_fx.Module,
		auth_fx.Module,
		users_fx.Module,
		trips_fx.Module,
		cities_fx.Module,
		activities_fx.Module,
		admin_fx.Module,
		recommendations_fx.Module,
		seed_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.L().Info("starting HTTP server", zap.String("port", cfg.Server.Port))
				if err := engine.Run(":" + cfg.Server.Port); err != nil {
					logger.L().Fatal("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.L().Info("stopping HTTP server")
			return infra.ClosePostgres(db)
		},
	})
}

func ProvideRouter(
	jwtMaker *utils.JWTMaker,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	tripController *controllers.TripController,
	cityController *controllers.CityController,
	activityController *controllers.ActivityController,
	adminController *controllers.AdminController,
	recommendationController *controllers.RecommendationController,
	seedController *controllers.SeedController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, jwtMaker,
		authController, userController, tripController, cityController,
		activityController, adminController, recommendationController, seedController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	jwtMaker *utils.JWTMaker,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	tripController *controllers.TripController,
	cityController *controllers.CityController,
	activityController *controllers.ActivityController,
	adminController *controllers.AdminController,
	recommendationController *controllers.RecommendationController,
	seedController *controllers.SeedController,
) {
	authRequired := middleware.JWTAuthMiddleware(jwtMaker)
	adminOnly := middleware.RoleMiddleware("admin")

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", authController.SignUp)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/forgot-password", authController.ForgotPassword)
	authGroup.POST("/reset-password", authController.ResetPassword)

	usersGroup := r.Group("/users", authRequired)
	usersGroup.GET("/profile", userController.GetProfile)
	usersGroup.PUT("/profile", userController.UpdateProfile)
	usersGroup.DELETE("/profile", userController.DeleteProfile)

	tripsGroup := r.Group("/trips", authRequired)
	tripsGroup.POST("", tripController.CreateTrip)
	tripsGroup.GET("", tripController.ListTrips)
	tripsGroup.GET("/:id", tripController.GetTrip)
	tripsGroup.PUT("/:id", tripController.UpdateTrip)
	tripsGroup.DELETE("/:id", tripController.DeleteTrip)
	tripsGroup.POST("/:id/cities", tripController.AddCity)
	tripsGroup.DELETE("/:id/cities/:cityId", tripController.RemoveCity)
	tripsGroup.POST("/:id/activities", tripController.AddActivity)
	tripsGroup.DELETE("/:id/activities/:activityId", tripController.RemoveActivity)
	tripsGroup.PUT("/:id/budget", tripController.ReplaceBudget)
	tripsGroup.POST("/:id/share", tripController.ShareTrip)

	r.GET("/shared/:token", tripController.GetSharedTrip)

	citiesGroup := r.Group("/cities")
	citiesGroup.GET("", cityController.ListCities)
	citiesGroup.GET("/:id", cityController.GetCity)
	citiesGroup.POST("", authRequired, adminOnly, cityController.CreateCity)
	citiesGroup.PUT("/:id", authRequired, adminOnly, cityController.UpdateCity)
	citiesGroup.DELETE("/:id", authRequired, adminOnly, cityController.DeleteCity)

	activitiesGroup := r.Group("/activities")
	activitiesGroup.GET("", activityController.ListActivities)
	activitiesGroup.GET("/:id", activityController.GetActivity)
	activitiesGroup.POST("", authRequired, adminOnly, activityController.CreateActivity)
	activitiesGroup.PUT("/:id", authRequired, adminOnly, activityController.UpdateActivity)
	activitiesGroup.DELETE("/:id", authRequired, adminOnly, activityController.DeleteActivity)

	adminGroup := r.Group("/admin", authRequired, adminOnly)
	adminGroup.GET("/stats", adminController.GetStats)
	adminGroup.GET("/users", adminController.ListUsers)
	adminGroup.DELETE("/users/:id", adminController.DeleteUser)

	recommendationsGroup := r.Group("/recommendations", authRequired)
	recommendationsGroup.GET("/destinations", recommendationController.GetDestinations)

	r.POST("/seed", seedController.Seed)
}
