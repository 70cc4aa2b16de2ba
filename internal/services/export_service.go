package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"voyago/internal/models/response_models"
)

type ExportServiceInterface interface {
	ExportJSON(bundle *response_models.PlanBundle) ([]byte, error)
	ExportPDF(destination string, bundle *response_models.PlanBundle) ([]byte, error)
}

type ExportService struct{}

func NewExportService() ExportServiceInterface {
	return &ExportService{}
}

func (s *ExportService) ExportJSON(bundle *response_models.PlanBundle) ([]byte, error) {
	return json.MarshalIndent(bundle, "", "  ")
}

func (s *ExportService) ExportPDF(destination string, bundle *response_models.PlanBundle) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, fmt.Sprintf("Travel Itinerary: %s", destination))
	pdf.Ln(14)

	plan := bundle.Plan
	for _, day := range plan.DailyPlans {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, fmt.Sprintf("Day %d - %s", day.Day, day.Date))
		pdf.Ln(9)

		pdf.SetFont("Arial", "", 11)
		for _, activity := range day.Activities {
			line := fmt.Sprintf("%s (%s) %s at %s, %s [%s]",
				activity.Time, activity.Duration, activity.Description,
				activity.Location, activity.Cost, activity.Type)
			pdf.MultiCell(0, 7, line, "", "L", false)
		}

		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, 7, fmt.Sprintf("Daily budget: %s", day.DailyBudget))
		pdf.Ln(7)
		if day.Notes != "" {
			pdf.Cell(0, 7, fmt.Sprintf("Notes: %s", day.Notes))
			pdf.Ln(7)
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 9, fmt.Sprintf("Total budget: %s", plan.TotalBudget))
	pdf.Ln(11)

	if len(plan.GeneralTips) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "General tips")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, tip := range plan.GeneralTips {
			pdf.Cell(0, 7, "- "+tip)
			pdf.Ln(7)
		}
		pdf.Ln(3)
	}

	if len(plan.EmergencyContacts) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Emergency contacts")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, key := range []string{"police", "ambulance", "tourist_police"} {
			if number, ok := plan.EmergencyContacts[key]; ok {
				pdf.Cell(0, 7, fmt.Sprintf("%s: %s", key, number))
				pdf.Ln(7)
			}
		}
		pdf.Ln(3)
	}

	if len(bundle.Weather) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Weather forecast")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, day := range bundle.Weather {
			pdf.Cell(0, 7, fmt.Sprintf("%s: %s, %.0f-%.0fC, %.0f%% rain",
				day.Date, day.Conditions, day.MinTemp, day.MaxTemp, day.PrecipitationProb))
			pdf.Ln(7)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering itinerary PDF: %w", err)
	}
	return buf.Bytes(), nil
}
