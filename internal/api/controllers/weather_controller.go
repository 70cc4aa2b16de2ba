package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/services"
	"voyago/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

// GetForecast godoc
// @Summary Get a weather forecast
// @Description Fetch a per-day forecast for a city over an optional date range
// @Tags Weather
// @Produce json
// @Param city query string true "City name"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} response_models.WeatherDay
// @Failure 400 {object} utils.APIResponse
// @Router /weather/forecast [get]
func (w *WeatherController) GetForecast(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}

	forecast, err := w.weatherService.GetForecast(c.Request.Context(), city, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, forecast, "Forecast fetched successfully")
}
