package response_models

import "gorm.io/datatypes"

type UserResponse struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Email             string         `json:"email"`
	Role              string         `json:"role"`
	Preferences       datatypes.JSON `json:"preferences,omitempty"`
	SavedDestinations []CityResponse `json:"saved_destinations,omitempty"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
