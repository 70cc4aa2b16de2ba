package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/services"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

type ExportController struct {
	exportService  services.ExportServiceInterface
	sessionService services.SessionServiceInterface
	planStore      *memcache.PlanStore
}

func NewExportController(
	exportService services.ExportServiceInterface,
	sessionService services.SessionServiceInterface,
	planStore *memcache.PlanStore,
) *ExportController {
	return &ExportController{
		exportService:  exportService,
		sessionService: sessionService,
		planStore:      planStore,
	}
}

// ExportJSON godoc
// @Summary Download the plan as JSON
// @Tags Export
// @Produce json
// @Success 200 {object} response_models.PlanBundle
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/export/json [get]
func (e *ExportController) ExportJSON(c *gin.Context) {
	sessionID, ok := sessionIDFromContext(c)
	if !ok {
		return
	}

	bundle, ok := e.planStore.Itinerary(sessionID.String())
	if !ok {
		utils.HandleServiceError(c, utils.ErrNoItineraryYet)
		return
	}

	body, err := e.exportService.ExportJSON(bundle)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=itinerary-%s.json", sessionID))
	c.Data(http.StatusOK, "application/json", body)
}

// ExportPDF godoc
// @Summary Download the plan as PDF
// @Tags Export
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/export/pdf [get]
func (e *ExportController) ExportPDF(c *gin.Context) {
	sessionID, ok := sessionIDFromContext(c)
	if !ok {
		return
	}

	bundle, ok := e.planStore.Itinerary(sessionID.String())
	if !ok {
		utils.HandleServiceError(c, utils.ErrNoItineraryYet)
		return
	}

	session, err := e.sessionService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	body, err := e.exportService.ExportPDF(session.TravelData.Destination, bundle)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=itinerary-%s.pdf", sessionID))
	c.Data(http.StatusOK, "application/pdf", body)
}
