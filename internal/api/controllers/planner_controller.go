package controllers

import (
	"github.com/gin-gonic/gin"

	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
	sessionService services.SessionServiceInterface
	weatherService services.WeatherServiceInterface
	planStore      *memcache.PlanStore
}

func NewPlannerController(
	plannerService services.PlannerServiceInterface,
	sessionService services.SessionServiceInterface,
	weatherService services.WeatherServiceInterface,
	planStore *memcache.PlanStore,
) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
		sessionService: sessionService,
		weatherService: weatherService,
		planStore:      planStore,
	}
}

// GenerateSuggestions godoc
// @Summary Generate activity suggestions
// @Description Produce attraction, restaurant and activity suggestions for the current session
// @Tags Planner
// @Produce json
// @Success 200 {object} response_models.SuggestionSet
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/suggestions [post]
func (p *PlannerController) GenerateSuggestions(c *gin.Context) {
	sessionID, ok := sessionIDFromContext(c)
	if !ok {
		return
	}

	request, err := p.sessionService.TravelRequestFor(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	suggestions, err := p.plannerService.GetSuggestions(c.Request.Context(), sessionID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "Suggestions generated successfully")
}

// GenerateItinerary godoc
// @Summary Generate the full itinerary
// @Description Produce the day-by-day itinerary together with the weather forecast for the trip dates
// @Tags Planner
// @Produce json
// @Success 200 {object} response_models.PlanBundle
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/itinerary [post]
func (p *PlannerController) GenerateItinerary(c *gin.Context) {
	sessionID, ok := sessionIDFromContext(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	request, err := p.sessionService.TravelRequestFor(ctx, sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// Itinerary generation and the weather lookup are independent; run them
	// side by side. Weather errors never fail the plan, the service already
	// degrades to sample data.
	type itineraryResult struct {
		itinerary *response_models.Itinerary
		err       error
	}
	itineraryCh := make(chan itineraryResult, 1)
	weatherCh := make(chan []response_models.WeatherDay, 1)

	go func() {
		itinerary, err := p.plannerService.GetItinerary(ctx, sessionID, request)
		itineraryCh <- itineraryResult{itinerary: itinerary, err: err}
	}()
	go func() {
		forecast, err := p.weatherService.GetForecast(ctx, request.Destination, request.StartDate, request.EndDate)
		if err != nil {
			forecast = nil
		}
		weatherCh <- forecast
	}()

	result := <-itineraryCh
	forecast := <-weatherCh
	if result.err != nil {
		utils.HandleServiceError(c, result.err)
		return
	}

	bundle := &response_models.PlanBundle{
		Plan:    result.itinerary,
		Weather: forecast,
	}
	p.planStore.SetItinerary(sessionID.String(), bundle)

	utils.RespondSuccess(c, bundle, "Itinerary generated successfully")
}
