package request_models

type CreateCityRequest struct {
	Name        string   `json:"name" binding:"required"`
	Country     string   `json:"country" binding:"required"`
	Latitude    float64  `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude   float64  `json:"longitude" binding:"gte=-180,lte=180"`
	CostIndex   int      `json:"cost_index" binding:"required,gte=1,lte=5"`
	Popularity  float64  `json:"popularity" binding:"gte=0"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
}

type UpdateCityRequest struct {
	Name        *string   `json:"name"`
	Country     *string   `json:"country"`
	Latitude    *float64  `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude   *float64  `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	CostIndex   *int      `json:"cost_index" binding:"omitempty,gte=1,lte=5"`
	Popularity  *float64  `json:"popularity" binding:"omitempty,gte=0"`
	Tags        *[]string `json:"tags"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"image_url"`
}

// CityFilter is the conjunction of optional listing predicates. A nil
// field omits that predicate entirely.
type CityFilter struct {
	Country string
	Search  string
	MinCost *int
	MaxCost *int
}
