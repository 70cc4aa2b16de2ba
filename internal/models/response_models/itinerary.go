package response_models

// Activity types the model may emit. Matching is case-insensitive; the
// validator stores the lowercase form.
const (
	ActivityTypeActivity  = "activity"
	ActivityTypeMeal      = "meal"
	ActivityTypeTransport = "transport"
)

type Activity struct {
	Time        string `json:"time"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Cost        string `json:"cost"`
	Type        string `json:"type"`
}

// DayPlan's Day must equal its 1-based position in Itinerary.DailyPlans.
// A violation is a validation failure, never silently renumbered.
type DayPlan struct {
	Day         int        `json:"day"`
	Date        string     `json:"date"`
	Activities  []Activity `json:"activities"`
	DailyBudget string     `json:"daily_budget"`
	Notes       string     `json:"notes,omitempty"`
}

type Itinerary struct {
	DailyPlans        []DayPlan         `json:"daily_plans"`
	TotalBudget       string            `json:"total_budget"`
	GeneralTips       []string          `json:"general_tips"`
	EmergencyContacts map[string]string `json:"emergency_contacts"`
}
