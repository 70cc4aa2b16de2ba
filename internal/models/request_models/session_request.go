package request_models

// CreateSessionRequest carries the basic-details step of the intake wizard.
type CreateSessionRequest struct {
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Budget      string `json:"budget" binding:"required"`
}

// PreferencesRequest carries the preferences step. At least one interest is
// required before a plan can be generated.
type PreferencesRequest struct {
	Interests          []string `json:"interests" binding:"required,min=1"`
	DietaryPreferences []string `json:"dietary_preferences"`
	AccommodationType  string   `json:"accommodation_type"`
	MobilityConcerns   string   `json:"mobility_concerns"`
	PreferredPace      int      `json:"preferred_pace" binding:"omitempty,min=1,max=5"`
	MaxWalkingHours    int      `json:"max_walking_hours" binding:"omitempty,min=1,max=8"`
}
