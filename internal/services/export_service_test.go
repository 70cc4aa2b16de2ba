package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/response_models"
)

func testBundle() *response_models.PlanBundle {
	return &response_models.PlanBundle{
		Plan: MockItinerary(),
		Weather: []response_models.WeatherDay{
			{Date: "2024-03-30", AvgTemp: 22, MinTemp: 18, MaxTemp: 26, Humidity: 65, PrecipitationProb: 20, WindSpeed: 12, Conditions: "Partly Cloudy"},
		},
	}
}

func TestExportJSON(t *testing.T) {
	service := NewExportService()

	body, err := service.ExportJSON(testBundle())
	require.NoError(t, err)

	var decoded response_models.PlanBundle
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "2024-03-30", decoded.Plan.DailyPlans[0].Date)
	assert.Len(t, decoded.Weather, 1)
}

func TestExportPDF(t *testing.T) {
	service := NewExportService()

	body, err := service.ExportPDF("Paris", testBundle())
	require.NoError(t, err)
	require.NotEmpty(t, body)
	assert.Equal(t, "%PDF", string(body[:4]))
}
