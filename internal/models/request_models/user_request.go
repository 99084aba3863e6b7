package request_models

import "encoding/json"

type UpdateProfileRequest struct {
	Name              *string         `json:"name" binding:"omitempty,min=2,max=80"`
	Preferences       json.RawMessage `json:"preferences"`
	SavedDestinations *[]string       `json:"saved_destinations" binding:"omitempty,dive,uuid4"`
}
