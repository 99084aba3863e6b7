package response_models

type ActivityResponse struct {
	ID              string   `json:"id"`
	CityID          string   `json:"city_id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	DurationMinutes int      `json:"duration_minutes"`
	EstimatedCost   float64  `json:"estimated_cost"`
	Rating          float64  `json:"rating,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Description     string   `json:"description,omitempty"`
}
