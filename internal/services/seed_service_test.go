package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamly/internal/models/db_models"
	"roamly/pkg/config"
	"roamly/pkg/utils"
)

type fakeSeedRepo struct {
	resets int
	last   []db_models.City
}

func (f *fakeSeedRepo) Reset(ctx context.Context, cities []db_models.City) error {
	f.resets++
	f.last = cities
	return nil
}

func TestSeed_RefusedInProduction(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Env = "production"
	repo := &fakeSeedRepo{}
	svc := NewSeedService(repo, cfg)

	err := svc.Seed(context.Background())
	assert.ErrorIs(t, err, utils.ErrSeedDisabled)
	assert.Zero(t, repo.resets)
}

func TestSeed_LoadsFixtures(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Env = "development"
	repo := &fakeSeedRepo{}
	svc := NewSeedService(repo, cfg)

	require.NoError(t, svc.Seed(context.Background()))
	assert.Equal(t, 1, repo.resets)
	assert.NotEmpty(t, repo.last)

	for _, city := range repo.last {
		assert.GreaterOrEqual(t, city.CostIndex, 1)
		assert.LessOrEqual(t, city.CostIndex, 5)
		for _, activity := range city.Activities {
			assert.True(t, db_models.ValidActivityType(string(activity.Type)), "unknown type %q", activity.Type)
		}
	}
}
