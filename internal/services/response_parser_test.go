package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/pkg/utils"
)

const rawSuggestions = "```json\n" +
	`{"attractions":[{"name":"TheLouvre","description":"Famousmuseum","cost":"20EUR","time_needed":"3hours"}],` +
	`"restaurants":[{"name":"LeBistro","description":"Frenchcuisine","cost":"30EUR","cuisine":"French"}],` +
	`"activities":[{"name":"RiverCruise","description":"Seinetour","cost":"15EUR","time_needed":"1hour"}]}` +
	"\n```"

func TestParseSuggestionsResponseFencedJSON(t *testing.T) {
	suggestions, err := ParseSuggestionsResponse(rawSuggestions)
	require.NoError(t, err)
	require.Len(t, suggestions.Attractions, 1)
	assert.Equal(t, "TheLouvre", suggestions.Attractions[0].Name)
	assert.Equal(t, "French", suggestions.Restaurants[0].Cuisine)
	assert.Equal(t, "1hour", suggestions.Activities[0].TimeNeeded)
}

func TestParseSuggestionsResponseMissingSection(t *testing.T) {
	raw := `{"attractions":[],"restaurants":[]}`

	_, err := ParseSuggestionsResponse(raw)
	var schemaErr *utils.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"activities"}, schemaErr.Missing)
}

func TestParseSuggestionsResponseNoJSON(t *testing.T) {
	_, err := ParseSuggestionsResponse("I cannot help with that.")
	require.ErrorIs(t, err, utils.ErrNoJSONFound)
}

func TestParseSuggestionsResponseRepairsTruncation(t *testing.T) {
	// Truncated after a complete activities item: the sanitizer trims to the
	// last '}' and the bracket repairer closes the open array and object.
	raw := `{"attractions":[{"name":"TheLouvre","description":"Museum","cost":"20EUR","time_needed":"3hours"}],` +
		`"restaurants":[],` +
		`"activities":[{"name":"RiverCruise","description":"Tour","cost":"15EUR","time_needed":"1hour"},{"name":"Wine`

	suggestions, err := ParseSuggestionsResponse(raw)
	require.NoError(t, err)
	require.Len(t, suggestions.Activities, 1)
	assert.Equal(t, "RiverCruise", suggestions.Activities[0].Name)
}

func TestParseItineraryResponseFull(t *testing.T) {
	raw := `{"daily_plans":[{"day":1,"date":"2024-03-30","activities":[` +
		`{"time":"9h","duration":"2hours","description":"Visitmuseum","location":"TheLouvre","cost":"20EUR","type":"Activity"},` +
		`{"time":"12:30","duration":"1hour","description":"Lunch","location":"LeBistro","cost":"15EUR","type":"meal"}],` +
		`"daily_budget":"35EUR","notes":"Morning"}],` +
		`"total_budget":"35EUR","general_tips":["Usemetro"],"emergency_contacts":{"police":"17","ambulance":"15","tourist_police":"17"}}`

	itinerary, err := ParseItineraryResponse(raw)
	require.NoError(t, err)
	require.Len(t, itinerary.DailyPlans, 1)

	first := itinerary.DailyPlans[0].Activities[0]
	assert.Equal(t, "9:00", first.Time)
	assert.Equal(t, "activity", first.Type)
	assert.Equal(t, "17", itinerary.EmergencyContacts["police"])
}

func TestParseItineraryResponseMissingTopLevelKey(t *testing.T) {
	raw := `{"daily_plans":[{"day":1,"date":"2024-03-30","activities":[` +
		`{"time":"09:00","duration":"1hour","description":"Walk","location":"Paris","cost":"0EUR","type":"activity"}],` +
		`"daily_budget":"0EUR"}],"total_budget":"0EUR","emergency_contacts":{"police":"17"}}`

	_, err := ParseItineraryResponse(raw)
	var schemaErr *utils.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"general_tips"}, schemaErr.Missing)
}

func TestParseItineraryResponseNonSequentialDays(t *testing.T) {
	raw := `{"daily_plans":[{"day":2,"date":"2024-03-30","activities":[` +
		`{"time":"09:00","duration":"1hour","description":"Walk","location":"Paris","cost":"0EUR","type":"activity"}],` +
		`"daily_budget":"0EUR"}],"total_budget":"0EUR","general_tips":[],"emergency_contacts":{}}`

	_, err := ParseItineraryResponse(raw)
	var seqErr *utils.SequenceError
	require.ErrorAs(t, err, &seqErr)
	assert.Equal(t, 2, seqErr.Got)
}

func TestParseItineraryResponseBareKeys(t *testing.T) {
	raw := `{daily_plans:[{day:1,date:"2024-03-30",activities:[` +
		`{time:"09:00",duration:"1hour",description:"Walk",location:"Paris",cost:"0EUR",type:"activity"}],` +
		`daily_budget:"0EUR"}],total_budget:"0EUR",general_tips:["Usemetro"],emergency_contacts:{police:"17"}}`

	itinerary, err := ParseItineraryResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Walk", itinerary.DailyPlans[0].Activities[0].Description)
}
