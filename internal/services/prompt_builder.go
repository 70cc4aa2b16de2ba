package services

import (
	"fmt"
	"strings"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
)

// defaultStartDate is used in itinerary prompts when the request does
// not carry a start date.
const defaultStartDate = "2024-03-30"

// BuildSuggestionPrompt renders the suggestion-generation prompt. The
// formatting rules in the prompt (no spaces, ASCII only, single line)
// keep model output inside what the jsonrepair sanitizer can recover.
func BuildSuggestionPrompt(request *request_models.TravelRequest) string {
	var sb strings.Builder

	sb.WriteString("Generate a simple JSON response with exactly 3 attractions, 3 restaurants, and 3 activities.\n")
	sb.WriteString("Important: DO NOT use special characters or spaces in keys or values.\n")
	sb.WriteString(`Example: {"attractions":[{"name":"TheLouvre","description":"Famousmuseum","cost":"20EUR","time_needed":"3hours"}]}` + "\n\n")

	sb.WriteString(fmt.Sprintf("Location: %s\n", request.Destination))
	sb.WriteString(fmt.Sprintf("Budget: %s\n", request.Budget))
	sb.WriteString(fmt.Sprintf("Interests: [%s]\n", strings.Join(request.Interests, ", ")))
	if len(request.DietaryPreferences) > 0 {
		sb.WriteString(fmt.Sprintf("Dietary preferences: [%s]\n", strings.Join(request.DietaryPreferences, ", ")))
	}

	sb.WriteString("\nRequired structure (on a single line):\n")
	sb.WriteString(`{"attractions":[{"name":"Place1","description":"Simpledescription","cost":"XEUR","time_needed":"Xhours"},...],"restaurants":[{"name":"Place1","description":"Simpledescription","cost":"XEUR","cuisine":"Type"},...],"activities":[{"name":"Activity1","description":"Simpledescription","cost":"XEUR","time_needed":"Xhours"},...]}` + "\n")

	return sb.String()
}

// BuildItineraryPrompt renders the itinerary-generation prompt from the
// travel request and previously generated suggestions. Only names and
// costs of the suggestions are passed through so the model reuses the
// exact place names.
func BuildItineraryPrompt(request *request_models.TravelRequest, suggestions *response_models.SuggestionSet) string {
	startDate := request.StartDate
	if startDate == "" {
		startDate = defaultStartDate
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Generate a simple %d-day itinerary JSON.\n", request.DurationDays))
	sb.WriteString("Important: Use ONLY ASCII characters. NO spaces in keys or values.\n\n")

	sb.WriteString("Available places (use these names exactly):\n")
	sb.WriteString("Attractions: " + namesAndCosts(suggestions.Attractions) + "\n")
	sb.WriteString("Restaurants: " + namesAndCosts(suggestions.Restaurants) + "\n")
	sb.WriteString("Activities: " + namesAndCosts(suggestions.Activities) + "\n\n")

	sb.WriteString("Rules:\n")
	sb.WriteString("1. Each day needs 2-3 activities\n")
	sb.WriteString("2. Include lunch between 12:00-14:00\n")
	sb.WriteString("3. Use 24-hour time format (e.g., \"09:00\") with quotes\n")
	sb.WriteString("4. Keep descriptions under 50 chars\n")
	sb.WriteString("5. Use simple costs (e.g., \"20EUR\")\n")
	sb.WriteString(fmt.Sprintf("6. Start dates from %s\n", startDate))
	sb.WriteString("7. Only use these activity types: \"activity\", \"meal\", or \"transport\"\n")
	sb.WriteString("   - Use \"activity\" for attractions and activities\n")
	sb.WriteString("   - Use \"meal\" for restaurants\n")
	sb.WriteString("   - Use \"transport\" for travel between locations\n\n")

	sb.WriteString("Required JSON structure (one line):\n")
	sb.WriteString(`{"daily_plans":[{"day":1,"date":"` + startDate + `","activities":[{"time":"09:00","duration":"2hours","description":"Visitmuseum","location":"TheLouvre","cost":"20EUR","type":"activity"},{"time":"12:00","duration":"1hour","description":"Lunchbreak","location":"RestaurantName","cost":"15EUR","type":"meal"}],"daily_budget":"35EUR","notes":"Morningactivities"}],"total_budget":"35EUR","general_tips":["Usemetro"],"emergency_contacts":{"police":"17","ambulance":"15","tourist_police":"117"}}` + "\n")

	return sb.String()
}

func namesAndCosts(items []response_models.SuggestionItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf(`{"name":"%s","cost":"%s"}`, item.Name, item.Cost))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
