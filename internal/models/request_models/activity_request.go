package request_models

type CreateActivityRequest struct {
	CityID          string   `json:"city_id" binding:"required,uuid4"`
	Name            string   `json:"name" binding:"required"`
	Type            string   `json:"type" binding:"required,oneof=sightseeing food culture nature adventure nightlife shopping relaxation"`
	DurationMinutes int      `json:"duration_minutes" binding:"gte=0"`
	EstimatedCost   float64  `json:"estimated_cost" binding:"gte=0"`
	Rating          float64  `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Tags            []string `json:"tags"`
	Description     string   `json:"description"`
}

type UpdateActivityRequest struct {
	Name            *string   `json:"name"`
	Type            *string   `json:"type" binding:"omitempty,oneof=sightseeing food culture nature adventure nightlife shopping relaxation"`
	DurationMinutes *int      `json:"duration_minutes" binding:"omitempty,gte=0"`
	EstimatedCost   *float64  `json:"estimated_cost" binding:"omitempty,gte=0"`
	Rating          *float64  `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Tags            *[]string `json:"tags"`
	Description     *string   `json:"description"`
}

type ActivityFilter struct {
	CityID  string
	Type    string
	MinCost *float64
	MaxCost *float64
}
