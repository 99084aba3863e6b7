package services

import (
	"context"

	"go.uber.org/zap"

	"roamly/internal/models/db_models"
	"roamly/internal/repositories"
	"roamly/pkg/config"
	"roamly/pkg/logger"
	"roamly/pkg/utils"
)

type SeedServiceInterface interface {
	// Seed wipes and repopulates the City/Activity reference data.
	// Refused outright in production.
	Seed(ctx context.Context) error
}

type SeedService struct {
	seedRepo repositories.SeedRepository
	cfg      *config.Config
}

func NewSeedService(seedRepo repositories.SeedRepository, cfg *config.Config) SeedServiceInterface {
	return &SeedService{
		seedRepo: seedRepo,
		cfg:      cfg,
	}
}

func (s *SeedService) Seed(ctx context.Context) error {
	if s.cfg.IsProduction() {
		return utils.ErrSeedDisabled
	}

	if err := s.seedRepo.Reset(ctx, seedCities()); err != nil {
		logger.L().Error("seed reference data", zap.Error(err))
		return utils.ErrDatabaseError
	}
	logger.L().Info("reference data reseeded")
	return nil
}

func seedCities() []db_models.City {
	return []db_models.City{
		{
			Name: "Paris", Country: "France",
			Latitude: 48.8566, Longitude: 2.3522,
			CostIndex: 4, Popularity: 98,
			Tags:        []string{"romance", "museums", "food"},
			Description: "The city of light, packed with galleries, cafes and boulevards.",
			Activities: []db_models.Activity{
				{Name: "Louvre Museum", Type: db_models.ActivityCulture, DurationMinutes: 240, EstimatedCost: 22, Rating: 4.8, Tags: []string{"art", "indoor"}},
				{Name: "Seine Dinner Cruise", Type: db_models.ActivityFood, DurationMinutes: 120, EstimatedCost: 89, Rating: 4.5},
				{Name: "Eiffel Tower Summit", Type: db_models.ActivitySightseeing, DurationMinutes: 150, EstimatedCost: 28, Rating: 4.7},
			},
		},
		{
			Name: "Tokyo", Country: "Japan",
			Latitude: 35.6762, Longitude: 139.6503,
			CostIndex: 4, Popularity: 95,
			Tags:        []string{"food", "technology", "temples"},
			Description: "Neon, noodles and a shrine around every corner.",
			Activities: []db_models.Activity{
				{Name: "Tsukiji Outer Market Tour", Type: db_models.ActivityFood, DurationMinutes: 180, EstimatedCost: 55, Rating: 4.9, Tags: []string{"seafood"}},
				{Name: "Senso-ji Temple", Type: db_models.ActivityCulture, DurationMinutes: 90, EstimatedCost: 0, Rating: 4.6},
				{Name: "Shibuya Nightlife Crawl", Type: db_models.ActivityNightlife, DurationMinutes: 240, EstimatedCost: 70, Rating: 4.3},
			},
		},
		{
			Name: "Rome", Country: "Italy",
			Latitude: 41.9028, Longitude: 12.4964,
			CostIndex: 3, Popularity: 93,
			Tags:        []string{"history", "food", "architecture"},
			Description: "Two and a half millennia of history on open display.",
			Activities: []db_models.Activity{
				{Name: "Colosseum Underground", Type: db_models.ActivitySightseeing, DurationMinutes: 180, EstimatedCost: 45, Rating: 4.8},
				{Name: "Trastevere Food Walk", Type: db_models.ActivityFood, DurationMinutes: 210, EstimatedCost: 65, Rating: 4.7},
			},
		},
		{
			Name: "Barcelona", Country: "Spain",
			Latitude: 41.3851, Longitude: 2.1734,
			CostIndex: 3, Popularity: 90,
			Tags:        []string{"beach", "architecture", "nightlife"},
			Description: "Gaudi, tapas and a city beach in one compact grid.",
			Activities: []db_models.Activity{
				{Name: "Sagrada Familia", Type: db_models.ActivitySightseeing, DurationMinutes: 120, EstimatedCost: 26, Rating: 4.9},
				{Name: "Barceloneta Beach Day", Type: db_models.ActivityRelaxation, DurationMinutes: 300, EstimatedCost: 0, Rating: 4.2},
			},
		},
		{
			Name: "Bangkok", Country: "Thailand",
			Latitude: 13.7563, Longitude: 100.5018,
			CostIndex: 1, Popularity: 88,
			Tags:        []string{"street-food", "temples", "markets"},
			Description: "Street food capital with golden temples between the towers.",
			Activities: []db_models.Activity{
				{Name: "Grand Palace", Type: db_models.ActivityCulture, DurationMinutes: 150, EstimatedCost: 15, Rating: 4.6},
				{Name: "Chatuchak Market", Type: db_models.ActivityShopping, DurationMinutes: 240, EstimatedCost: 0, Rating: 4.4},
				{Name: "Khao San Night Out", Type: db_models.ActivityNightlife, DurationMinutes: 240, EstimatedCost: 30, Rating: 4.0},
			},
		},
		{
			Name: "Queenstown", Country: "New Zealand",
			Latitude: -45.0312, Longitude: 168.6626,
			CostIndex: 4, Popularity: 78,
			Tags:        []string{"adventure", "mountains", "lakes"},
			Description: "Adventure sports base camp ringed by the Remarkables.",
			Activities: []db_models.Activity{
				{Name: "Nevis Bungy Jump", Type: db_models.ActivityAdventure, DurationMinutes: 240, EstimatedCost: 185, Rating: 4.9},
				{Name: "Lake Wakatipu Cruise", Type: db_models.ActivityNature, DurationMinutes: 90, EstimatedCost: 45, Rating: 4.5},
			},
		},
		{
			Name: "Lisbon", Country: "Portugal",
			Latitude: 38.7223, Longitude: -9.1393,
			CostIndex: 2, Popularity: 85,
			Tags:        []string{"coast", "food", "history"},
			Description: "Hills, trams and pastel de nata by the Atlantic.",
			Activities: []db_models.Activity{
				{Name: "Alfama Walking Tour", Type: db_models.ActivityCulture, DurationMinutes: 150, EstimatedCost: 20, Rating: 4.6},
				{Name: "Sintra Day Trip", Type: db_models.ActivityNature, DurationMinutes: 480, EstimatedCost: 75, Rating: 4.7},
			},
		},
		{
			Name: "Reykjavik", Country: "Iceland",
			Latitude: 64.1466, Longitude: -21.9426,
			CostIndex: 5, Popularity: 72,
			Tags:        []string{"nature", "northern-lights", "hot-springs"},
			Description: "Gateway to lava fields, glaciers and the midnight sun.",
			Activities: []db_models.Activity{
				{Name: "Blue Lagoon Soak", Type: db_models.ActivityRelaxation, DurationMinutes: 180, EstimatedCost: 95, Rating: 4.4},
				{Name: "Golden Circle Drive", Type: db_models.ActivityNature, DurationMinutes: 480, EstimatedCost: 110, Rating: 4.8},
			},
		},
	}
}
