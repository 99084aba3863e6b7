package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamly/internal/models/db_models"
	"roamly/internal/models/request_models"
	"roamly/pkg/utils"
)

func seedThreeCities(repo *fakeCityRepo) (paris, rome, bangkok uuid.UUID) {
	paris = repo.add(db_models.City{Name: "Paris", Country: "France", CostIndex: 4, Popularity: 98})
	rome = repo.add(db_models.City{Name: "Rome", Country: "Italy", CostIndex: 3, Popularity: 93})
	bangkok = repo.add(db_models.City{Name: "Bangkok", Country: "Thailand", CostIndex: 1, Popularity: 88})
	return
}

func TestListCities_SearchIsCaseInsensitive(t *testing.T) {
	repo := newFakeCityRepo()
	seedThreeCities(repo)
	svc := NewCityService(repo)

	cities, err := svc.ListCities(context.Background(), request_models.CityFilter{Search: "PAR"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Paris", cities[0].Name)
}

func TestListCities_CostBoundsAndPopularityOrder(t *testing.T) {
	repo := newFakeCityRepo()
	seedThreeCities(repo)
	svc := NewCityService(repo)

	min, max := 1, 3
	cities, err := svc.ListCities(context.Background(), request_models.CityFilter{MinCost: &min, MaxCost: &max}, 1, 20)
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Rome", cities[0].Name)
	assert.Equal(t, "Bangkok", cities[1].Name)
}

func TestGetCity_NotFound(t *testing.T) {
	svc := NewCityService(newFakeCityRepo())

	_, err := svc.GetCity(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrCityNotFound)
}

func TestUpdateCity_MergesOnlyProvidedFields(t *testing.T) {
	repo := newFakeCityRepo()
	parisID, _, _ := seedThreeCities(repo)
	svc := NewCityService(repo)

	popularity := 99.0
	resp, err := svc.UpdateCity(context.Background(), parisID, request_models.UpdateCityRequest{Popularity: &popularity})
	require.NoError(t, err)
	assert.Equal(t, 99.0, resp.Popularity)
	assert.Equal(t, "Paris", resp.Name)
	assert.Equal(t, 4, resp.CostIndex)
}

func TestDeleteCity_NotFound(t *testing.T) {
	svc := NewCityService(newFakeCityRepo())

	err := svc.DeleteCity(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrCityNotFound)
}
