package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"roamly/internal/models/db_models"
	"roamly/internal/models/request_models"
	"roamly/internal/models/response_models"
	"roamly/internal/repositories"
	"roamly/pkg/logger"
	"roamly/pkg/utils"
)

// maxMutationRetries bounds the re-read loop when an owned write
// loses the optimistic version check to a concurrent request.
const maxMutationRetries = 3

const shareTokenBytes = 16 // 32 hex chars on the wire

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, ownerID uuid.UUID, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, ownerID, tripID uuid.UUID) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, ownerID, tripID uuid.UUID, req request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, ownerID, tripID uuid.UUID) error

	AddCity(ctx context.Context, ownerID, tripID uuid.UUID, req request_models.AddCityToTripRequest) (*response_models.TripResponse, error)
	RemoveCity(ctx context.Context, ownerID, tripID, cityID uuid.UUID) (*response_models.TripResponse, error)
	AddActivity(ctx context.Context, ownerID, tripID uuid.UUID, req request_models.AddActivityToTripRequest) (*response_models.TripResponse, error)
	RemoveActivity(ctx context.Context, ownerID, tripID, activityID uuid.UUID) (*response_models.TripResponse, error)
	ReplaceBudget(ctx context.Context, ownerID, tripID uuid.UUID, req request_models.UpdateBudgetRequest) (*response_models.TripResponse, error)

	ShareTrip(ctx context.Context, ownerID, tripID uuid.UUID, baseURL string) (*response_models.ShareResponse, error)
	GetSharedTrip(ctx context.Context, token string) (*response_models.TripResponse, error)
}

type TripService struct {
	tripRepo     repositories.TripRepository
	cityRepo     repositories.CityRepository
	activityRepo repositories.ActivityRepository
}

func NewTripService(
	tripRepo repositories.TripRepository,
	cityRepo repositories.CityRepository,
	activityRepo repositories.ActivityRepository,
) TripServiceInterface {
	return &TripService{
		tripRepo:     tripRepo,
		cityRepo:     cityRepo,
		activityRepo: activityRepo,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, ownerID uuid.UUID, req request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	trip := &db_models.Trip{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Version:     1,
	}
	trip.Budget.Recompute()

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		logger.L().Error("create trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toTripResponse(trip), nil
}

func (s *TripService) ListTrips(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.ListByOwner(ctx, ownerID, page, pageSize)
	if err != nil {
		logger.L().Error("list trips", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *toTripResponse(&trips[i]))
	}
	return out, nil
}

func (s *TripService) GetTrip(ctx context.Context, ownerID, tripID uuid.UUID) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.FindByIDAndOwner(ctx, tripID, ownerID)
	if err != nil {
		logger.L().Error("get trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return toTripResponse(trip), nil
}

func (s *TripService) UpdateTrip(ctx context.Context, ownerID, tripID uuid.UUID, req request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	return s.mutateOwned(ctx, ownerID, tripID, func(trip *db_models.Trip) (bool, error) {
		if req.Title != nil {
			trip.Title = *req.Title
		}
		if req.Description != nil {
			trip.Description = *req.Description
		}
		if req.StartDate != nil {
			trip.StartDate = req.StartDate
		}
		if req.EndDate != nil {
			trip.EndDate = req.EndDate
		}
		return true, nil
	})
}

func (s *TripService) DeleteTrip(ctx context.Context, ownerID, tripID uuid.UUID) error {
	deleted, err := s.tripRepo.DeleteOwned(ctx, tripID, ownerID)
	if err != nil {
		logger.L().Error("delete trip", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrTripNotFound
	}
	return nil
}

func (s *TripService) AddCity(ctx context.Context, ownerID, tripID uuid.UUID, req request_models.AddCityToTripRequest) (*response_models.TripResponse, error) {
	cityID, err := uuid.Parse(req.CityID)
	if err != nil {
		return nil, utils.ErrCityNotFound
	}
	city, err := s.cityRepo.FindByID(ctx, cityID)
	if err != nil {
		logger.L().Error("find city", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	return s.mutateOwned(ctx, ownerID, tripID, func(trip *db_models.Trip) (bool, error) {
		next := 0
		for _, tc := range trip.Cities {
			if tc.OrderIndex >= next {
				next = tc.OrderIndex + 1
			}
		}
		trip.Cities = append(trip.Cities, db_models.TripCity{
			TripID:        trip.ID,
			CityID:        cityID,
			OrderIndex:    next,
			ArrivalDate:   req.ArrivalDate,
			DepartureDate: req.DepartureDate,
		})
		return true, nil
	})
}

// RemoveCity is a pure list mutation keyed by city reference
// equality; the budget is untouched. Removing an absent city is a
// successful no-op.
func (s *TripService) RemoveCity(ctx context.Context, ownerID, tripID, cityID uuid.UUID) (*response_models.TripResponse, error) {
	return s.mutateOwned(ctx, ownerID, tripID, func(trip *db_models.Trip) (bool, error) {
		kept := trip.Cities[:0]
		removed := false
		for _, tc := range trip.Cities {
			if tc.CityID == cityID {
				removed = true
				continue
			}
			kept = append(kept, tc)
		}
		trip.Cities = kept
		return removed, nil
	})
}

func (s *TripService) AddActivity(ctx context.Context, ownerID, tripID uuid.UUID, req request_models.AddActivityToTripRequest) (*response_models.TripResponse, error) {
	activityID, err := uuid.Parse(req.ActivityID)
	if err != nil {
		return nil, utils.ErrActivityNotFound
	}
	activity, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		logger.L().Error("find activity", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	cost := 0.0
	if req.Cost != nil {
		cost = *req.Cost
	}

	return s.mutateOwned(ctx, ownerID, tripID, func(trip *db_models.Trip) (bool, error) {
		trip.Activities = append(trip.Activities, db_models.TripActivity{
			TripID:     trip.ID,
			ActivityID: activityID,
			Date:       req.Date,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Cost:       cost,
			Notes:      req.Notes,
		})
		trip.Budget.Activities += cost
		trip.Budget.Recompute()
		return true, nil
	})
}

// RemoveActivity subtracts the stored booking cost from the budget
// and drops the entry. An absent activity reference is a successful
// no-op that leaves budget and list untouched.
func (s *TripService) RemoveActivity(ctx context.Context, ownerID, tripID, activityID uuid.UUID) (*response_models.TripResponse, error) {
	return s.mutateOwned(ctx, ownerID, tripID, func(trip *db_models.Trip) (bool, error) {
		idx := -1
		for i, ta := range trip.Activities {
			if ta.ActivityID == activityID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false, nil
		}
		trip.Budget.Activities -= trip.Activities[idx].Cost
		trip.Budget.Recompute()
		trip.Activities = append(trip.Activities[:idx], trip.Activities[idx+1:]...)
		return true, nil
	})
}

// ReplaceBudget overwrites all five categories and recomputes the
// total server-side; a caller-sent total is never trusted.
func (s *TripService) ReplaceBudget(ctx context.Context, ownerID, tripID uuid.UUID, req request_models.UpdateBudgetRequest) (*response_models.TripResponse, error) {
	return s.mutateOwned(ctx, ownerID, tripID, func(trip *db_models.Trip) (bool, error) {
		trip.Budget = db_models.Budget{
			Transport:     req.Transport,
			Accommodation: req.Accommodation,
			Activities:    req.Activities,
			Meals:         req.Meals,
			Others:        req.Others,
		}
		trip.Budget.Recompute()
		return true, nil
	})
}

// ShareTrip is idempotent on the token: an existing token is reused,
// otherwise a fresh random one is minted. isPublic flips to true on
// every call regardless.
func (s *TripService) ShareTrip(ctx context.Context, ownerID, tripID uuid.UUID, baseURL string) (*response_models.ShareResponse, error) {
	var token string
	resp, err := s.mutateOwned(ctx, ownerID, tripID, func(trip *db_models.Trip) (bool, error) {
		if trip.ShareToken == nil {
			minted, err := utils.GenerateSecureToken(shareTokenBytes)
			if err != nil {
				return false, utils.ErrDatabaseError
			}
			trip.ShareToken = &minted
		}
		trip.IsPublic = true
		token = *trip.ShareToken
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &response_models.ShareResponse{
		ShareToken: token,
		ShareURL:   baseURL + "/shared/" + token,
		IsPublic:   resp.IsPublic,
	}, nil
}

func (s *TripService) GetSharedTrip(ctx context.Context, token string) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.FindByShareToken(ctx, token)
	if err != nil {
		logger.L().Error("get shared trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return toTripResponse(trip), nil
}

// mutateOwned runs one ownership-scoped read-modify-write. When the
// version-checked save loses to a concurrent writer it re-reads and
// re-applies the mutation; fn returning false skips the write and
// reports success with the unmodified trip.
func (s *TripService) mutateOwned(ctx context.Context, ownerID, tripID uuid.UUID, fn func(*db_models.Trip) (bool, error)) (*response_models.TripResponse, error) {
	for attempt := 0; attempt < maxMutationRetries; attempt++ {
		trip, err := s.tripRepo.FindByIDAndOwner(ctx, tripID, ownerID)
		if err != nil {
			logger.L().Error("read trip", zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
		if trip == nil {
			return nil, utils.ErrTripNotFound
		}

		changed, err := fn(trip)
		if err != nil {
			return nil, err
		}
		if !changed {
			return toTripResponse(trip), nil
		}

		err = s.tripRepo.SaveOwned(ctx, trip)
		if err == nil {
			return toTripResponse(trip), nil
		}
		if errors.Is(err, utils.ErrVersionConflict) {
			logger.L().Warn("trip version conflict, retrying",
				zap.String("trip_id", tripID.String()),
				zap.Int("attempt", attempt+1))
			continue
		}
		logger.L().Error("save trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return nil, utils.ErrVersionConflict
}

func toTripResponse(trip *db_models.Trip) *response_models.TripResponse {
	cities := make([]response_models.TripCityResponse, 0, len(trip.Cities))
	for i := range trip.Cities {
		tc := &trip.Cities[i]
		entry := response_models.TripCityResponse{
			ID:            tc.ID.String(),
			CityID:        tc.CityID.String(),
			OrderIndex:    tc.OrderIndex,
			ArrivalDate:   tc.ArrivalDate,
			DepartureDate: tc.DepartureDate,
		}
		if tc.City.ID != uuid.Nil {
			city := toCityResponse(&tc.City)
			entry.City = &city
		}
		cities = append(cities, entry)
	}

	activities := make([]response_models.TripActivityResponse, 0, len(trip.Activities))
	for i := range trip.Activities {
		ta := &trip.Activities[i]
		entry := response_models.TripActivityResponse{
			ID:         ta.ID.String(),
			ActivityID: ta.ActivityID.String(),
			Date:       ta.Date,
			StartTime:  ta.StartTime,
			EndTime:    ta.EndTime,
			Cost:       ta.Cost,
			Notes:      ta.Notes,
		}
		if ta.Activity.ID != uuid.Nil {
			act := toActivityResponse(&ta.Activity)
			entry.Activity = &act
		}
		activities = append(activities, entry)
	}

	resp := &response_models.TripResponse{
		ID:          trip.ID.String(),
		Title:       trip.Title,
		Description: trip.Description,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Cities:      cities,
		Activities:  activities,
		Budget:      trip.Budget,
		IsPublic:    trip.IsPublic,
	}
	if trip.ShareToken != nil {
		resp.ShareToken = *trip.ShareToken
	}
	return resp
}
