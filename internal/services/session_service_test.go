package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

type stubSessionRepo struct {
	sessions map[uuid.UUID]*db_models.TripSession
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: map[uuid.UUID]*db_models.TripSession{}}
}

func (r *stubSessionRepo) CreateSession(_ context.Context, session *db_models.TripSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *stubSessionRepo) GetSessionByID(_ context.Context, sessionID uuid.UUID) (*db_models.TripSession, error) {
	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return session, nil
}

func (r *stubSessionRepo) UpdateSession(_ context.Context, session *db_models.TripSession) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *stubSessionRepo) DeleteSession(_ context.Context, sessionID uuid.UUID) error {
	delete(r.sessions, sessionID)
	return nil
}

func newTestSessionService(repo *stubSessionRepo) SessionServiceInterface {
	return NewSessionService(repo, &stubPlanCache{}, memcache.NewPlanStore(time.Minute))
}

func createRequest() *request_models.CreateSessionRequest {
	return &request_models.CreateSessionRequest{
		Destination: "Paris",
		StartDate:   "2024-03-30",
		EndDate:     "2024-04-01",
		Budget:      request_models.BudgetTierModerate,
	}
}

func TestCreateSessionComputesDuration(t *testing.T) {
	service := newTestSessionService(newStubSessionRepo())

	response, err := service.CreateSession(context.Background(), createRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, response.SessionID)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, 3, response.TravelData.DurationDays)
	assert.Equal(t, "Paris", response.TravelData.Destination)
}

func TestCreateSessionRejectsUnknownBudgetTier(t *testing.T) {
	service := newTestSessionService(newStubSessionRepo())
	request := createRequest()
	request.Budget = "Lavish"

	_, err := service.CreateSession(context.Background(), request)
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCreateSessionRejectsReversedDates(t *testing.T) {
	service := newTestSessionService(newStubSessionRepo())
	request := createRequest()
	request.StartDate = "2024-04-01"
	request.EndDate = "2024-03-30"

	_, err := service.CreateSession(context.Background(), request)
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetSessionNotFound(t *testing.T) {
	service := newTestSessionService(newStubSessionRepo())

	_, err := service.GetSession(context.Background(), uuid.New())
	require.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestUpdatePreferencesRoundTrip(t *testing.T) {
	repo := newStubSessionRepo()
	service := newTestSessionService(repo)

	created, err := service.CreateSession(context.Background(), createRequest())
	require.NoError(t, err)
	sessionID := uuid.MustParse(created.SessionID)

	updated, err := service.UpdatePreferences(context.Background(), sessionID, &request_models.PreferencesRequest{
		Interests:       []string{"museums", "food"},
		PreferredPace:   3,
		MaxWalkingHours: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"museums", "food"}, updated.TravelData.Interests)
	assert.Equal(t, 3, updated.TravelData.PreferredPace)
}

func TestTravelRequestForRequiresPreferences(t *testing.T) {
	repo := newStubSessionRepo()
	service := newTestSessionService(repo)

	created, err := service.CreateSession(context.Background(), createRequest())
	require.NoError(t, err)
	sessionID := uuid.MustParse(created.SessionID)

	_, err = service.TravelRequestFor(context.Background(), sessionID)
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = service.UpdatePreferences(context.Background(), sessionID, &request_models.PreferencesRequest{
		Interests: []string{"museums"},
	})
	require.NoError(t, err)

	request, err := service.TravelRequestFor(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "Paris", request.Destination)
	assert.Equal(t, "2024-03-30", request.StartDate)
}

func TestDeleteSessionRemovesSession(t *testing.T) {
	repo := newStubSessionRepo()
	service := newTestSessionService(repo)

	created, err := service.CreateSession(context.Background(), createRequest())
	require.NoError(t, err)
	sessionID := uuid.MustParse(created.SessionID)

	require.NoError(t, service.DeleteSession(context.Background(), sessionID))

	_, err = service.GetSession(context.Background(), sessionID)
	require.ErrorIs(t, err, utils.ErrSessionNotFound)
}
