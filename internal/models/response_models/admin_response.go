package response_models

type StatsResponse struct {
	Users       int64 `json:"users"`
	Trips       int64 `json:"trips"`
	PublicTrips int64 `json:"public_trips"`
	Cities      int64 `json:"cities"`
	Activities  int64 `json:"activities"`
}
