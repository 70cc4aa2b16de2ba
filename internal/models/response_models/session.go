package response_models

import "voyago/internal/models/request_models"

// SessionResponse returns the session handle plus the stored travel data so
// the client can rehydrate the wizard after a reload.
type SessionResponse struct {
	SessionID  string                       `json:"session_id"`
	Token      string                       `json:"token,omitempty"`
	TravelData request_models.TravelRequest `json:"travel_data"`
}

// PlanBundle pairs the validated itinerary with the forecast for its dates,
// mirroring what the final wizard step renders side by side.
type PlanBundle struct {
	Plan    *Itinerary   `json:"plan"`
	Weather []WeatherDay `json:"weather"`
}
