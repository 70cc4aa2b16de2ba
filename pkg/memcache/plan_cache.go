package memcache

import (
	"sync"
	"time"

	"voyago/internal/models/response_models"
)

// PlanStore caches generated results per session so repeated reads (export,
// page reloads) do not re-run the pipeline. A session owns its entries; the
// lock only guards the map itself.
type PlanStore struct {
	mu          sync.RWMutex
	suggestions map[string]suggestionsEntry
	itineraries map[string]itineraryEntry
	ttl         time.Duration
}

type suggestionsEntry struct {
	set       *response_models.SuggestionSet
	expiresAt time.Time
}

type itineraryEntry struct {
	bundle    *response_models.PlanBundle
	expiresAt time.Time
}

func NewPlanStore(ttl time.Duration) *PlanStore {
	return &PlanStore{
		suggestions: make(map[string]suggestionsEntry),
		itineraries: make(map[string]itineraryEntry),
		ttl:         ttl,
	}
}

func (s *PlanStore) SetSuggestions(sessionID string, set *response_models.SuggestionSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestions[sessionID] = suggestionsEntry{set: set, expiresAt: time.Now().Add(s.ttl)}
}

func (s *PlanStore) Suggestions(sessionID string) (*response_models.SuggestionSet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.suggestions[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.set, true
}

func (s *PlanStore) SetItinerary(sessionID string, bundle *response_models.PlanBundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itineraries[sessionID] = itineraryEntry{bundle: bundle, expiresAt: time.Now().Add(s.ttl)}
}

func (s *PlanStore) Itinerary(sessionID string) (*response_models.PlanBundle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.itineraries[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.bundle, true
}

// Reset drops everything cached for a session. Called on regeneration and on
// session reset.
func (s *PlanStore) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.suggestions, sessionID)
	delete(s.itineraries, sessionID)
}
