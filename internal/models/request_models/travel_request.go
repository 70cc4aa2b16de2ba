package request_models

// Budget tiers offered by the intake flow.
const (
	BudgetTierBudget   = "Budget"
	BudgetTierModerate = "Moderate"
	BudgetTierLuxury   = "Luxury"
)

func ValidBudgetTier(tier string) bool {
	switch tier {
	case BudgetTierBudget, BudgetTierModerate, BudgetTierLuxury:
		return true
	}
	return false
}

// TravelRequest is the read-only input to prompt construction. It is
// assembled once per session by the intake flow and never mutated by the
// planning pipeline.
type TravelRequest struct {
	Destination        string   `json:"destination"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date"`
	DurationDays       int      `json:"duration_days"`
	Budget             string   `json:"budget"`
	Interests          []string `json:"interests"`
	DietaryPreferences []string `json:"dietary_preferences"`
	AccommodationType  string   `json:"accommodation_type"`
	MobilityConcerns   string   `json:"mobility_concerns"`
	PreferredPace      int      `json:"preferred_pace"`
	MaxWalkingHours    int      `json:"max_walking_hours"`
}
