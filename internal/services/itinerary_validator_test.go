package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

func validItinerary() *response_models.Itinerary {
	return &response_models.Itinerary{
		DailyPlans: []response_models.DayPlan{
			{
				Day:  1,
				Date: "2024-03-30",
				Activities: []response_models.Activity{
					{Time: "09:00", Duration: "2hours", Description: "Visitmuseum", Location: "TheLouvre", Cost: "20EUR", Type: "activity"},
					{Time: "12:30", Duration: "1hour", Description: "Lunch", Location: "LeBistro", Cost: "15EUR", Type: "meal"},
				},
				DailyBudget: "35EUR",
			},
			{
				Day:  2,
				Date: "2024-03-31",
				Activities: []response_models.Activity{
					{Time: "10:00", Duration: "1hour", Description: "RiverCruise", Location: "Seine", Cost: "15EUR", Type: "activity"},
				},
				DailyBudget: "15EUR",
			},
		},
		TotalBudget:       "50EUR",
		GeneralTips:       []string{"Usemetro"},
		EmergencyContacts: map[string]string{"police": "17"},
	}
}

func TestValidateItineraryAcceptsValidPlan(t *testing.T) {
	itinerary := validItinerary()
	require.NoError(t, ValidateItinerary(itinerary))
}

func TestValidateItineraryRejectsNonSequentialDays(t *testing.T) {
	itinerary := validItinerary()
	itinerary.DailyPlans[0].Day = 2

	err := ValidateItinerary(itinerary)
	var seqErr *utils.SequenceError
	require.ErrorAs(t, err, &seqErr)
	assert.Equal(t, 1, seqErr.Position)
	assert.Equal(t, 2, seqErr.Got)
}

func TestValidateItineraryRejectsEmptyActivities(t *testing.T) {
	itinerary := validItinerary()
	itinerary.DailyPlans[1].Activities = nil

	err := ValidateItinerary(itinerary)
	var emptyErr *utils.EmptyListError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, 2, emptyErr.Day)
}

func TestValidateItineraryRejectsUnknownActivityType(t *testing.T) {
	itinerary := validItinerary()
	itinerary.DailyPlans[0].Activities[1].Type = "snack"

	err := ValidateItinerary(itinerary)
	var enumErr *utils.InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, 1, enumErr.Day)
	assert.Equal(t, 1, enumErr.Index)
	assert.Equal(t, "snack", enumErr.Type)
}

func TestValidateItineraryLowercasesActivityType(t *testing.T) {
	itinerary := validItinerary()
	itinerary.DailyPlans[0].Activities[0].Type = "Activity"

	require.NoError(t, ValidateItinerary(itinerary))
	assert.Equal(t, "activity", itinerary.DailyPlans[0].Activities[0].Type)
}

func TestValidateItineraryNormalizesTimes(t *testing.T) {
	itinerary := validItinerary()
	itinerary.DailyPlans[0].Activities[0].Time = "930"

	require.NoError(t, ValidateItinerary(itinerary))
	assert.Equal(t, "9:30", itinerary.DailyPlans[0].Activities[0].Time)
}

func TestValidateItineraryKeepsUnparsableTime(t *testing.T) {
	itinerary := validItinerary()
	itinerary.DailyPlans[0].Activities[0].Time = "noon"

	require.NoError(t, ValidateItinerary(itinerary))
	assert.Equal(t, "noon", itinerary.DailyPlans[0].Activities[0].Time)
}

func TestValidateItineraryRejectsEmptyPlanList(t *testing.T) {
	err := ValidateItinerary(&response_models.Itinerary{})
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestValidateKeysReportsAllMissing(t *testing.T) {
	doc := map[string]any{"daily_plans": []any{}}

	err := ValidateKeys("itinerary", doc, itineraryKeys)
	var schemaErr *utils.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "itinerary", schemaErr.Scope)
	assert.Equal(t, []string{"total_budget", "general_tips", "emergency_contacts"}, schemaErr.Missing)
}

func TestValidateItineraryStructureChecksDayKeys(t *testing.T) {
	doc := map[string]any{
		"daily_plans": []any{
			map[string]any{"day": float64(1), "date": "2024-03-30", "activities": []any{}},
		},
	}

	err := ValidateItineraryStructure(doc)
	var schemaErr *utils.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"daily_budget"}, schemaErr.Missing)
}

func TestValidateItineraryStructureChecksActivityKeys(t *testing.T) {
	doc := map[string]any{
		"daily_plans": []any{
			map[string]any{
				"day":          float64(1),
				"date":         "2024-03-30",
				"daily_budget": "35EUR",
				"activities": []any{
					map[string]any{"time": "09:00", "duration": "2hours", "description": "Visit", "location": "Louvre", "cost": "20EUR"},
				},
			},
		},
	}

	err := ValidateItineraryStructure(doc)
	var schemaErr *utils.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"type"}, schemaErr.Missing)
}
