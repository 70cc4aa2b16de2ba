package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/response_models"
)

func TestPlanStoreRoundTrip(t *testing.T) {
	store := NewPlanStore(time.Hour)

	set := &response_models.SuggestionSet{
		Attractions: []response_models.SuggestionItem{{Name: "EiffelTower"}},
	}
	store.SetSuggestions("s1", set)

	got, ok := store.Suggestions("s1")
	require.True(t, ok)
	assert.Equal(t, "EiffelTower", got.Attractions[0].Name)

	_, ok = store.Suggestions("s2")
	assert.False(t, ok)
}

func TestPlanStoreExpiry(t *testing.T) {
	store := NewPlanStore(-time.Second)
	store.SetItinerary("s1", &response_models.PlanBundle{})

	_, ok := store.Itinerary("s1")
	assert.False(t, ok, "expired entries must not be served")
}

func TestPlanStoreReset(t *testing.T) {
	store := NewPlanStore(time.Hour)
	store.SetSuggestions("s1", &response_models.SuggestionSet{})
	store.SetItinerary("s1", &response_models.PlanBundle{})

	store.Reset("s1")

	_, ok := store.Suggestions("s1")
	assert.False(t, ok)
	_, ok = store.Itinerary("s1")
	assert.False(t, ok)
}
