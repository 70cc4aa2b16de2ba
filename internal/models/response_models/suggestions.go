package response_models

// SuggestionItem is one candidate attraction, restaurant or activity. The
// sanitizer's prompt contract keeps every string field a whitespace-free
// ASCII token; validation does not re-enforce that independently.
type SuggestionItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        string `json:"cost"`
	TimeNeeded  string `json:"time_needed,omitempty"`
	Cuisine     string `json:"cuisine,omitempty"`
}

type SuggestionSet struct {
	Attractions []SuggestionItem `json:"attractions"`
	Restaurants []SuggestionItem `json:"restaurants"`
	Activities  []SuggestionItem `json:"activities"`
}
