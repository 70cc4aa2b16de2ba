package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

// generationTimeout bounds a single model call including retries.
const generationTimeout = 30 * time.Second

type PlannerServiceInterface interface {
	GetSuggestions(ctx context.Context, sessionID uuid.UUID, request *request_models.TravelRequest) (*response_models.SuggestionSet, error)
	GetItinerary(ctx context.Context, sessionID uuid.UUID, request *request_models.TravelRequest) (*response_models.Itinerary, error)
}

type PlannerService struct {
	generator  utils.TextGeneratorInterface
	planCache  repositories.PlanCacheRepositoryInterface
	planStore  *memcache.PlanStore
	failClosed bool
}

// NewPlannerService wires the planning pipeline. A nil generator puts the
// service in mock mode: every request is answered from canned data without
// touching a model. With failClosed set, generation errors surface to the
// caller instead of degrading to mock data.
func NewPlannerService(
	generator utils.TextGeneratorInterface,
	planCache repositories.PlanCacheRepositoryInterface,
	planStore *memcache.PlanStore,
	failClosed bool,
) PlannerServiceInterface {
	return &PlannerService{
		generator:  generator,
		planCache:  planCache,
		planStore:  planStore,
		failClosed: failClosed,
	}
}

func (s *PlannerService) GetSuggestions(ctx context.Context, sessionID uuid.UUID, request *request_models.TravelRequest) (*response_models.SuggestionSet, error) {
	if cached, ok := s.planStore.Suggestions(sessionID.String()); ok {
		return cached, nil
	}

	if s.generator == nil {
		log.Printf("No text generator configured, serving mock suggestions for session %s", sessionID)
		return MockSuggestions(), nil
	}

	prompt := BuildSuggestionPrompt(request)

	if reused := s.lookupReusable(ctx, db_models.GenerationKindSuggestions, prompt); reused != nil {
		var suggestions response_models.SuggestionSet
		if err := json.Unmarshal([]byte(reused.Payload), &suggestions); err == nil {
			log.Printf("Reusing cached suggestions from generation %s", reused.ID)
			s.planStore.SetSuggestions(sessionID.String(), &suggestions)
			return &suggestions, nil
		}
	}

	suggestions, err := s.generateSuggestions(ctx, prompt)
	if err != nil {
		if s.failClosed {
			return nil, fmt.Errorf("generating suggestions: %w", err)
		}
		log.Printf("Suggestion generation failed, falling back to mock data: %v", err)
		return MockSuggestions(), nil
	}

	s.planStore.SetSuggestions(sessionID.String(), suggestions)
	s.saveGeneration(ctx, sessionID, db_models.GenerationKindSuggestions, request, prompt, suggestions)
	return suggestions, nil
}

func (s *PlannerService) GetItinerary(ctx context.Context, sessionID uuid.UUID, request *request_models.TravelRequest) (*response_models.Itinerary, error) {
	if s.generator == nil {
		log.Printf("No text generator configured, serving mock itinerary for session %s", sessionID)
		return MockItinerary(), nil
	}

	// The itinerary prompt is built from suggestions so the model reuses
	// place names it has already committed to.
	suggestions, err := s.GetSuggestions(ctx, sessionID, request)
	if err != nil {
		return nil, err
	}

	prompt := BuildItineraryPrompt(request, suggestions)

	if reused := s.lookupReusable(ctx, db_models.GenerationKindItinerary, prompt); reused != nil {
		var itinerary response_models.Itinerary
		if err := json.Unmarshal([]byte(reused.Payload), &itinerary); err == nil {
			log.Printf("Reusing cached itinerary from generation %s", reused.ID)
			return &itinerary, nil
		}
	}

	itinerary, err := s.generateItinerary(ctx, prompt)
	if err != nil {
		if s.failClosed {
			return nil, fmt.Errorf("generating itinerary: %w", err)
		}
		log.Printf("Itinerary generation failed, falling back to mock data: %v", err)
		return MockItinerary(), nil
	}

	s.saveGeneration(ctx, sessionID, db_models.GenerationKindItinerary, request, prompt, itinerary)
	return itinerary, nil
}

func (s *PlannerService) generateSuggestions(ctx context.Context, prompt string) (*response_models.SuggestionSet, error) {
	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	raw, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ParseSuggestionsResponse(raw)
}

func (s *PlannerService) generateItinerary(ctx context.Context, prompt string) (*response_models.Itinerary, error) {
	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	raw, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ParseItineraryResponse(raw)
}

// lookupReusable checks the persistent cache for a prior generation whose
// prompt is near-identical to this one. Cache misses and lookup errors both
// come back nil; reuse is opportunistic.
func (s *PlannerService) lookupReusable(ctx context.Context, kind string, prompt string) *db_models.PlanGeneration {
	if s.planCache == nil {
		return nil
	}
	embedding := utils.PromptEmbedding(prompt)
	generation, err := s.planCache.FindSimilarGeneration(ctx, kind, embedding)
	if err != nil {
		log.Printf("Plan cache lookup failed: %v", err)
		return nil
	}
	return generation
}

func (s *PlannerService) saveGeneration(ctx context.Context, sessionID uuid.UUID, kind string, request *request_models.TravelRequest, prompt string, payload any) {
	if s.planCache == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s payload for cache: %v", kind, err)
		return
	}
	generation := &db_models.PlanGeneration{
		SessionID:       sessionID,
		Kind:            kind,
		Destination:     request.Destination,
		Interests:       request.Interests,
		PromptEmbedding: utils.PromptEmbedding(prompt),
		Payload:         string(body),
	}
	if err := s.planCache.SaveGeneration(ctx, generation); err != nil {
		log.Printf("Failed to persist %s generation: %v", kind, err)
	}
}
