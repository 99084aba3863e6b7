package response_models

import (
	"time"

	"roamly/internal/models/db_models"
)

type TripCityResponse struct {
	ID            string        `json:"id"`
	CityID        string        `json:"city_id"`
	OrderIndex    int           `json:"order_index"`
	ArrivalDate   *time.Time    `json:"arrival_date,omitempty"`
	DepartureDate *time.Time    `json:"departure_date,omitempty"`
	City          *CityResponse `json:"city,omitempty"`
}

type TripActivityResponse struct {
	ID         string            `json:"id"`
	ActivityID string            `json:"activity_id"`
	Date       *time.Time        `json:"date,omitempty"`
	StartTime  string            `json:"start_time,omitempty"`
	EndTime    string            `json:"end_time,omitempty"`
	Cost       float64           `json:"cost"`
	Notes      string            `json:"notes,omitempty"`
	Activity   *ActivityResponse `json:"activity,omitempty"`
}

type TripResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	StartDate   *time.Time             `json:"start_date,omitempty"`
	EndDate     *time.Time             `json:"end_date,omitempty"`
	Cities      []TripCityResponse     `json:"cities"`
	Activities  []TripActivityResponse `json:"activities"`
	Budget      db_models.Budget       `json:"budget"`
	IsPublic    bool                   `json:"is_public"`
	ShareToken  string                 `json:"share_token,omitempty"`
}

type ShareResponse struct {
	ShareToken string `json:"share_token"`
	ShareURL   string `json:"share_url"`
	IsPublic   bool   `json:"is_public"`
}
