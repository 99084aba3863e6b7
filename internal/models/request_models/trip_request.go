package request_models

import "time"

type CreateTripRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=120"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type UpdateTripRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=120"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type AddCityToTripRequest struct {
	CityID        string     `json:"city_id" binding:"required,uuid4"`
	ArrivalDate   *time.Time `json:"arrival_date"`
	DepartureDate *time.Time `json:"departure_date"`
}

type AddActivityToTripRequest struct {
	ActivityID string     `json:"activity_id" binding:"required,uuid4"`
	Date       *time.Time `json:"date"`
	StartTime  string     `json:"start_time"`
	EndTime    string     `json:"end_time"`
	Cost       *float64   `json:"cost" binding:"omitempty,gte=0"`
	Notes      string     `json:"notes"`
}

// UpdateBudgetRequest is a full overwrite: omitted categories become
// zero and any caller-sent total is discarded.
type UpdateBudgetRequest struct {
	Transport     float64 `json:"transport" binding:"gte=0"`
	Accommodation float64 `json:"accommodation" binding:"gte=0"`
	Activities    float64 `json:"activities" binding:"gte=0"`
	Meals         float64 `json:"meals" binding:"gte=0"`
	Others        float64 `json:"others" binding:"gte=0"`
}
