package services

import (
	"fmt"
	"log"
	"strings"

	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

var (
	suggestionKeys = []string{"attractions", "restaurants", "activities"}
	itineraryKeys  = []string{"daily_plans", "total_budget", "general_tips", "emergency_contacts"}
	dayKeys        = []string{"day", "date", "activities", "daily_budget"}
	activityKeys   = []string{"time", "duration", "description", "location", "cost", "type"}
)

// ValidateKeys checks that every required key is present in the decoded
// document and reports all missing keys at once.
func ValidateKeys(scope string, doc map[string]any, required []string) error {
	var missing []string
	for _, key := range required {
		if _, ok := doc[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &utils.SchemaError{Scope: scope, Missing: missing}
	}
	return nil
}

// ValidateItineraryStructure walks the raw itinerary document and checks
// key presence on each day and each activity. Presence has to be checked
// on the raw document because a typed decode turns absent fields into
// zero values.
func ValidateItineraryStructure(doc map[string]any) error {
	plans, ok := doc["daily_plans"].([]any)
	if !ok || len(plans) == 0 {
		return fmt.Errorf("daily_plans must be a non-empty list: %w", utils.ErrInvalidInput)
	}

	for idx, rawDay := range plans {
		day, ok := rawDay.(map[string]any)
		if !ok {
			return fmt.Errorf("daily_plans[%d] is not an object: %w", idx, utils.ErrInvalidInput)
		}
		scope := fmt.Sprintf("daily_plans[%d]", idx)
		if err := ValidateKeys(scope, day, dayKeys); err != nil {
			return err
		}

		activities, ok := day["activities"].([]any)
		if !ok {
			return fmt.Errorf("%s.activities is not a list: %w", scope, utils.ErrInvalidInput)
		}
		for actIdx, rawActivity := range activities {
			activity, ok := rawActivity.(map[string]any)
			if !ok {
				return fmt.Errorf("%s.activities[%d] is not an object: %w", scope, actIdx, utils.ErrInvalidInput)
			}
			if err := ValidateKeys(fmt.Sprintf("%s.activities[%d]", scope, actIdx), activity, activityKeys); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateItinerary runs semantic validation over a decoded itinerary and
// normalizes it in place: activity times are rewritten to H:MM form and
// activity types are lowercased. A time token that cannot be normalized
// is kept as-is with a warning rather than failing the whole itinerary.
func ValidateItinerary(itinerary *response_models.Itinerary) error {
	if len(itinerary.DailyPlans) == 0 {
		return fmt.Errorf("daily_plans must be a non-empty list: %w", utils.ErrInvalidInput)
	}

	for idx := range itinerary.DailyPlans {
		day := &itinerary.DailyPlans[idx]
		expected := idx + 1

		if day.Day != expected {
			return &utils.SequenceError{Position: expected, Got: day.Day}
		}
		if len(day.Activities) == 0 {
			return &utils.EmptyListError{Day: day.Day}
		}

		for actIdx := range day.Activities {
			activity := &day.Activities[actIdx]

			normalized, err := utils.NormalizeClockTime(activity.Time)
			if err != nil {
				log.Printf("Invalid time format in day %d: %q", day.Day, activity.Time)
			}
			activity.Time = normalized

			activityType := strings.ToLower(activity.Type)
			switch activityType {
			case response_models.ActivityTypeActivity,
				response_models.ActivityTypeMeal,
				response_models.ActivityTypeTransport:
				activity.Type = activityType
			default:
				return &utils.InvalidEnumError{Day: day.Day, Index: actIdx, Type: activity.Type}
			}
		}
	}
	return nil
}
