package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"roamly/internal/models/db_models"
	"roamly/internal/models/request_models"
	"roamly/pkg/utils"
)

// In-memory repository fakes. They mirror the store contracts the
// services rely on: not-found reads return (nil, nil) and owned trip
// writes are guarded by the version read earlier.

type fakeTripRepo struct {
	mu    sync.Mutex
	trips map[uuid.UUID]*db_models.Trip

	// forcedConflicts makes the next n SaveOwned calls fail with a
	// version conflict without touching the stored row.
	forcedConflicts int
	saveCalls       int
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[uuid.UUID]*db_models.Trip)}
}

func cloneTrip(t *db_models.Trip) *db_models.Trip {
	out := *t
	out.Cities = append([]db_models.TripCity(nil), t.Cities...)
	out.Activities = append([]db_models.TripActivity(nil), t.Activities...)
	if t.ShareToken != nil {
		token := *t.ShareToken
		out.ShareToken = &token
	}
	return &out
}

func (f *fakeTripRepo) Create(ctx context.Context, trip *db_models.Trip) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	f.trips[trip.ID] = cloneTrip(trip)
	return nil
}

func (f *fakeTripRepo) FindByIDAndOwner(ctx context.Context, tripID, ownerID uuid.UUID) (*db_models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	trip, ok := f.trips[tripID]
	if !ok || trip.OwnerID != ownerID {
		return nil, nil
	}
	return cloneTrip(trip), nil
}

func (f *fakeTripRepo) FindByShareToken(ctx context.Context, token string) (*db_models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, trip := range f.trips {
		if trip.IsPublic && trip.ShareToken != nil && *trip.ShareToken == token {
			return cloneTrip(trip), nil
		}
	}
	return nil, nil
}

func (f *fakeTripRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]db_models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Trip
	for _, trip := range f.trips {
		if trip.OwnerID == ownerID {
			out = append(out, *cloneTrip(trip))
		}
	}
	return out, nil
}

func (f *fakeTripRepo) SaveOwned(ctx context.Context, trip *db_models.Trip) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.forcedConflicts > 0 {
		f.forcedConflicts--
		return utils.ErrVersionConflict
	}
	stored, ok := f.trips[trip.ID]
	if !ok || stored.OwnerID != trip.OwnerID || stored.Version != trip.Version {
		return utils.ErrVersionConflict
	}
	trip.Version++
	f.trips[trip.ID] = cloneTrip(trip)
	return nil
}

func (f *fakeTripRepo) DeleteOwned(ctx context.Context, tripID, ownerID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	trip, ok := f.trips[tripID]
	if !ok || trip.OwnerID != ownerID {
		return false, nil
	}
	delete(f.trips, tripID)
	return true, nil
}

func (f *fakeTripRepo) DistinctCityIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[uuid.UUID]bool)
	var out []uuid.UUID
	for _, trip := range f.trips {
		if trip.OwnerID != ownerID {
			continue
		}
		for _, tc := range trip.Cities {
			if !seen[tc.CityID] {
				seen[tc.CityID] = true
				out = append(out, tc.CityID)
			}
		}
	}
	return out, nil
}

type fakeCityRepo struct {
	mu     sync.Mutex
	cities map[uuid.UUID]*db_models.City
}

func newFakeCityRepo() *fakeCityRepo {
	return &fakeCityRepo{cities: make(map[uuid.UUID]*db_models.City)}
}

func (f *fakeCityRepo) add(city db_models.City) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	if city.ID == uuid.Nil {
		city.ID = uuid.New()
	}
	f.cities[city.ID] = &city
	return city.ID
}

func (f *fakeCityRepo) Create(ctx context.Context, city *db_models.City) (uuid.UUID, error) {
	return f.add(*city), nil
}

func (f *fakeCityRepo) Update(ctx context.Context, city *db_models.City) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cities[city.ID]; !ok {
		return utils.ErrCityNotFound
	}
	clone := *city
	f.cities[city.ID] = &clone
	return nil
}

func (f *fakeCityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.cities, id)
	return nil
}

func (f *fakeCityRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.City, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	city, ok := f.cities[id]
	if !ok {
		return nil, nil
	}
	clone := *city
	return &clone, nil
}

func (f *fakeCityRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.City, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.City
	for _, id := range ids {
		if city, ok := f.cities[id]; ok {
			out = append(out, *city)
		}
	}
	return out, nil
}

func (f *fakeCityRepo) List(ctx context.Context, filter request_models.CityFilter, page, pageSize int) ([]db_models.City, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.City
	for _, city := range f.cities {
		if filter.Country != "" && city.Country != filter.Country {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(city.Name), needle) &&
				!strings.Contains(strings.ToLower(city.Country), needle) {
				continue
			}
		}
		if filter.MinCost != nil && city.CostIndex < *filter.MinCost {
			continue
		}
		if filter.MaxCost != nil && city.CostIndex > *filter.MaxCost {
			continue
		}
		out = append(out, *city)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Popularity > out[j].Popularity })
	return out, nil
}

func (f *fakeCityRepo) ListTopExcluding(ctx context.Context, exclude []uuid.UUID, limit int) ([]db_models.City, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	excluded := make(map[uuid.UUID]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}
	var out []db_models.City
	for _, city := range f.cities {
		if !excluded[city.ID] {
			out = append(out, *city)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Popularity > out[j].Popularity })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeActivityRepo struct {
	mu         sync.Mutex
	activities map[uuid.UUID]*db_models.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: make(map[uuid.UUID]*db_models.Activity)}
}

func (f *fakeActivityRepo) add(activity db_models.Activity) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	f.activities[activity.ID] = &activity
	return activity.ID
}

func (f *fakeActivityRepo) Create(ctx context.Context, activity *db_models.Activity) (uuid.UUID, error) {
	return f.add(*activity), nil
}

func (f *fakeActivityRepo) Update(ctx context.Context, activity *db_models.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.activities[activity.ID]; !ok {
		return utils.ErrActivityNotFound
	}
	clone := *activity
	f.activities[activity.ID] = &clone
	return nil
}

func (f *fakeActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.activities, id)
	return nil
}

func (f *fakeActivityRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	activity, ok := f.activities[id]
	if !ok {
		return nil, nil
	}
	clone := *activity
	return &clone, nil
}

func (f *fakeActivityRepo) List(ctx context.Context, filter request_models.ActivityFilter, page, pageSize int) ([]db_models.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Activity
	for _, activity := range f.activities {
		if filter.CityID != "" && activity.CityID.String() != filter.CityID {
			continue
		}
		if filter.Type != "" && string(activity.Type) != filter.Type {
			continue
		}
		if filter.MinCost != nil && activity.EstimatedCost < *filter.MinCost {
			continue
		}
		if filter.MaxCost != nil && activity.EstimatedCost > *filter.MaxCost {
			continue
		}
		out = append(out, *activity)
	}
	return out, nil
}

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*db_models.User
	deleted []uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*db_models.User)}
}

func (f *fakeUserRepo) add(user db_models.User) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = &user
	return user.ID
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.add(*user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *db_models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[user.ID]
	if !ok {
		return utils.ErrUserNotFound
	}
	stored.Name = user.Name
	stored.Preferences = user.Preferences
	return nil
}

func (f *fakeUserRepo) ReplaceSavedCities(ctx context.Context, user *db_models.User, cities []db_models.City) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[user.ID]
	if !ok {
		return utils.ErrUserNotFound
	}
	stored.SavedCities = append([]db_models.City(nil), cities...)
	return nil
}

func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[id]
	if !ok {
		return utils.ErrUserNotFound
	}
	stored.PasswordHash = hash
	return nil
}

func (f *fakeUserRepo) ListAll(ctx context.Context, page, pageSize int) ([]db_models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.User
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeStatsRepo struct {
	users, trips, publicTrips, cities, activities int64
}

func (f *fakeStatsRepo) CountUsers(ctx context.Context) (int64, error)      { return f.users, nil }
func (f *fakeStatsRepo) CountTrips(ctx context.Context) (int64, error)      { return f.trips, nil }
func (f *fakeStatsRepo) CountPublicTrips(ctx context.Context) (int64, error) { return f.publicTrips, nil }
func (f *fakeStatsRepo) CountCities(ctx context.Context) (int64, error)     { return f.cities, nil }
func (f *fakeStatsRepo) CountActivities(ctx context.Context) (int64, error) { return f.activities, nil }

type fakeMailService struct {
	mu   sync.Mutex
	sent []struct{ to, token string }
}

func (f *fakeMailService) SendPasswordReset(to, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, struct{ to, token string }{to, token})
	return nil
}
