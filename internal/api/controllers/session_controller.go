package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// CreateSession godoc
// @Summary Start a planning session
// @Description Create an anonymous planning session from the basic trip details and return its bearer token
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request_models.CreateSessionRequest true "Trip details"
// @Success 200 {object} response_models.SessionResponse
// @Failure 400 {object} utils.APIResponse
// @Router /sessions [post]
func (s *SessionController) CreateSession(c *gin.Context) {
	var request request_models.CreateSessionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	session, err := s.sessionService.CreateSession(c.Request.Context(), &request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session created successfully")
}

// GetSession godoc
// @Summary Get the current session
// @Tags Session
// @Produce json
// @Success 200 {object} response_models.SessionResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions [get]
func (s *SessionController) GetSession(c *gin.Context) {
	sessionID, ok := sessionIDFromContext(c)
	if !ok {
		return
	}

	session, err := s.sessionService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session fetched successfully")
}

// UpdatePreferences godoc
// @Summary Save travel preferences
// @Description Store the preferences step for the current session; invalidates any previously generated plan
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request_models.PreferencesRequest true "Preferences"
// @Success 200 {object} response_models.SessionResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions/preferences [put]
func (s *SessionController) UpdatePreferences(c *gin.Context) {
	sessionID, ok := sessionIDFromContext(c)
	if !ok {
		return
	}

	var request request_models.PreferencesRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	session, err := s.sessionService.UpdatePreferences(c.Request.Context(), sessionID, &request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Preferences updated successfully")
}

// DeleteSession godoc
// @Summary Delete the current session
// @Tags Session
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions [delete]
func (s *SessionController) DeleteSession(c *gin.Context) {
	sessionID, ok := sessionIDFromContext(c)
	if !ok {
		return
	}

	if err := s.sessionService.DeleteSession(c.Request.Context(), sessionID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Session deleted successfully")
}

// sessionIDFromContext reads the session id placed by the auth middleware.
// Writes the error response itself so handlers can bail with a bare return.
func sessionIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("session_id")
	if raw == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing session token")
		return uuid.Nil, false
	}
	sessionID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session token")
		return uuid.Nil, false
	}
	return sessionID, true
}
