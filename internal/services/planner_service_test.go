package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/pkg/memcache"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (g *stubGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	g.calls++
	return g.response, g.err
}

type stubPlanCache struct {
	saved []*db_models.PlanGeneration
	found *db_models.PlanGeneration
}

func (c *stubPlanCache) SaveGeneration(_ context.Context, g *db_models.PlanGeneration) error {
	c.saved = append(c.saved, g)
	return nil
}

func (c *stubPlanCache) FindSimilarGeneration(_ context.Context, _ string, _ pgvector.Vector) (*db_models.PlanGeneration, error) {
	return c.found, nil
}

func (c *stubPlanCache) DeleteBySessionID(_ context.Context, _ string) error {
	return nil
}

func testTravelRequest() *request_models.TravelRequest {
	return &request_models.TravelRequest{
		Destination:  "Paris",
		StartDate:    "2024-03-30",
		EndDate:      "2024-03-31",
		DurationDays: 2,
		Budget:       "Moderate",
		Interests:    []string{"museums", "food"},
	}
}

func TestGetSuggestionsMockModeWithoutGenerator(t *testing.T) {
	service := NewPlannerService(nil, &stubPlanCache{}, memcache.NewPlanStore(time.Minute), false)

	suggestions, err := service.GetSuggestions(context.Background(), uuid.New(), testTravelRequest())
	require.NoError(t, err)
	assert.Equal(t, MockSuggestions(), suggestions)
}

func TestGetSuggestionsFallsBackOnGeneratorError(t *testing.T) {
	generator := &stubGenerator{err: errors.New("quota exceeded")}
	service := NewPlannerService(generator, &stubPlanCache{}, memcache.NewPlanStore(time.Minute), false)

	suggestions, err := service.GetSuggestions(context.Background(), uuid.New(), testTravelRequest())
	require.NoError(t, err)
	assert.Equal(t, MockSuggestions(), suggestions)
}

func TestGetSuggestionsFallsBackOnGarbageOutput(t *testing.T) {
	generator := &stubGenerator{response: "Sorry, I cannot produce an itinerary today."}
	service := NewPlannerService(generator, &stubPlanCache{}, memcache.NewPlanStore(time.Minute), false)

	suggestions, err := service.GetSuggestions(context.Background(), uuid.New(), testTravelRequest())
	require.NoError(t, err)
	assert.Equal(t, MockSuggestions(), suggestions)
}

func TestGetSuggestionsFailClosedSurfacesError(t *testing.T) {
	generator := &stubGenerator{err: errors.New("quota exceeded")}
	service := NewPlannerService(generator, &stubPlanCache{}, memcache.NewPlanStore(time.Minute), true)

	_, err := service.GetSuggestions(context.Background(), uuid.New(), testTravelRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGetSuggestionsCachesAndPersists(t *testing.T) {
	generator := &stubGenerator{response: rawSuggestions}
	cache := &stubPlanCache{}
	store := memcache.NewPlanStore(time.Minute)
	service := NewPlannerService(generator, cache, store, false)
	sessionID := uuid.New()

	first, err := service.GetSuggestions(context.Background(), sessionID, testTravelRequest())
	require.NoError(t, err)
	assert.Equal(t, "TheLouvre", first.Attractions[0].Name)

	// Second call is served from the in-memory store without a model call.
	second, err := service.GetSuggestions(context.Background(), sessionID, testTravelRequest())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, generator.calls)

	require.Len(t, cache.saved, 1)
	assert.Equal(t, db_models.GenerationKindSuggestions, cache.saved[0].Kind)
	assert.Equal(t, "Paris", cache.saved[0].Destination)
}

func TestGetSuggestionsReusesSimilarGeneration(t *testing.T) {
	generator := &stubGenerator{err: errors.New("should not be called")}
	cache := &stubPlanCache{
		found: &db_models.PlanGeneration{
			ID:      uuid.New(),
			Kind:    db_models.GenerationKindSuggestions,
			Payload: `{"attractions":[{"name":"EiffelTower","description":"Landmark","cost":"25EUR","time_needed":"2hours"}],"restaurants":[],"activities":[]}`,
		},
	}
	service := NewPlannerService(generator, cache, memcache.NewPlanStore(time.Minute), true)

	suggestions, err := service.GetSuggestions(context.Background(), uuid.New(), testTravelRequest())
	require.NoError(t, err)
	assert.Equal(t, "EiffelTower", suggestions.Attractions[0].Name)
	assert.Equal(t, 0, generator.calls)
}

func TestGetItineraryMockModeWithoutGenerator(t *testing.T) {
	service := NewPlannerService(nil, &stubPlanCache{}, memcache.NewPlanStore(time.Minute), false)

	itinerary, err := service.GetItinerary(context.Background(), uuid.New(), testTravelRequest())
	require.NoError(t, err)
	assert.Equal(t, MockItinerary(), itinerary)
}

func TestGetItineraryFallsBackOnEmptyResponse(t *testing.T) {
	generator := &stubGenerator{response: ""}
	service := NewPlannerService(generator, &stubPlanCache{}, memcache.NewPlanStore(time.Minute), false)

	itinerary, err := service.GetItinerary(context.Background(), uuid.New(), testTravelRequest())
	require.NoError(t, err)
	assert.Equal(t, MockItinerary(), itinerary)
}
