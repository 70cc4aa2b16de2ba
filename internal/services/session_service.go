package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

type SessionServiceInterface interface {
	CreateSession(ctx context.Context, request *request_models.CreateSessionRequest) (*response_models.SessionResponse, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*response_models.SessionResponse, error)
	UpdatePreferences(ctx context.Context, sessionID uuid.UUID, request *request_models.PreferencesRequest) (*response_models.SessionResponse, error)
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
	TravelRequestFor(ctx context.Context, sessionID uuid.UUID) (*request_models.TravelRequest, error)
}

type SessionService struct {
	sessionRepo repositories.SessionRepositoryInterface
	planCache   repositories.PlanCacheRepositoryInterface
	planStore   *memcache.PlanStore
}

func NewSessionService(
	sessionRepo repositories.SessionRepositoryInterface,
	planCache repositories.PlanCacheRepositoryInterface,
	planStore *memcache.PlanStore,
) SessionServiceInterface {
	return &SessionService{
		sessionRepo: sessionRepo,
		planCache:   planCache,
		planStore:   planStore,
	}
}

func (s *SessionService) CreateSession(ctx context.Context, request *request_models.CreateSessionRequest) (*response_models.SessionResponse, error) {
	if !request_models.ValidBudgetTier(request.Budget) {
		return nil, fmt.Errorf("unknown budget tier %q: %w", request.Budget, utils.ErrInvalidInput)
	}

	start, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %w", utils.ErrInvalidInput)
	}
	end, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date: %w", utils.ErrInvalidInput)
	}
	duration := utils.DaysBetween(start, end)
	if duration <= 0 {
		return nil, fmt.Errorf("end_date must not be before start_date: %w", utils.ErrInvalidInput)
	}

	session := &db_models.TripSession{
		Destination:  request.Destination,
		StartDate:    start,
		EndDate:      end,
		DurationDays: duration,
		Budget:       request.Budget,
	}
	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	token, err := utils.CreateSessionToken(session.ID)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(session)
	response.Token = token
	return response, nil
}

func (s *SessionService) GetSession(ctx context.Context, sessionID uuid.UUID) (*response_models.SessionResponse, error) {
	session, err := s.fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(session), nil
}

func (s *SessionService) UpdatePreferences(ctx context.Context, sessionID uuid.UUID, request *request_models.PreferencesRequest) (*response_models.SessionResponse, error) {
	session, err := s.fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Interests = request.Interests
	session.DietaryPreferences = request.DietaryPreferences
	session.AccommodationType = request.AccommodationType
	session.MobilityConcerns = request.MobilityConcerns
	session.PreferredPace = request.PreferredPace
	session.MaxWalkingHours = request.MaxWalkingHours

	if err := s.sessionRepo.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	// Preference changes invalidate anything generated for the old ones.
	s.planStore.Reset(sessionID.String())

	return s.toResponse(session), nil
}

func (s *SessionService) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	session, err := s.fetch(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := s.sessionRepo.DeleteSession(ctx, session.ID); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if s.planCache != nil {
		if err := s.planCache.DeleteBySessionID(ctx, session.ID.String()); err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
	}
	s.planStore.Reset(sessionID.String())
	return nil
}

// TravelRequestFor assembles the prompt input from a stored session. The
// session must have completed the preferences step.
func (s *SessionService) TravelRequestFor(ctx context.Context, sessionID uuid.UUID) (*request_models.TravelRequest, error) {
	session, err := s.fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Interests) == 0 {
		return nil, fmt.Errorf("session has no preferences yet: %w", utils.ErrInvalidInput)
	}
	return travelRequestFromSession(session), nil
}

func (s *SessionService) fetch(ctx context.Context, sessionID uuid.UUID) (*db_models.TripSession, error) {
	session, err := s.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionService) toResponse(session *db_models.TripSession) *response_models.SessionResponse {
	return &response_models.SessionResponse{
		SessionID:  session.ID.String(),
		TravelData: *travelRequestFromSession(session),
	}
}

func travelRequestFromSession(session *db_models.TripSession) *request_models.TravelRequest {
	return &request_models.TravelRequest{
		Destination:        session.Destination,
		StartDate:          session.StartDate.Format(utils.DateLayout),
		EndDate:            session.EndDate.Format(utils.DateLayout),
		DurationDays:       session.DurationDays,
		Budget:             session.Budget,
		Interests:          session.Interests,
		DietaryPreferences: session.DietaryPreferences,
		AccommodationType:  session.AccommodationType,
		MobilityConcerns:   session.MobilityConcerns,
		PreferredPace:      session.PreferredPace,
		MaxWalkingHours:    session.MaxWalkingHours,
	}
}
