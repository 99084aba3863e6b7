package response_models

type CityResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	CostIndex   int      `json:"cost_index"`
	Popularity  float64  `json:"popularity"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}
