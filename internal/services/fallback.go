package services

import (
	"voyago/internal/models/response_models"
)

// MockSuggestions returns canned activity suggestions used when no
// language model is configured or the model could not produce a
// usable response.
func MockSuggestions() *response_models.SuggestionSet {
	return &response_models.SuggestionSet{
		Attractions: []response_models.SuggestionItem{
			{Name: "ParisianMuseum", Description: "Historicalartifacts", Cost: "20EUR", TimeNeeded: "3hours"},
			{Name: "EiffelTower", Description: "IconicParisianlandmark", Cost: "25EUR", TimeNeeded: "2hours"},
			{Name: "NotreDame", Description: "Historicalcathedral", Cost: "0EUR", TimeNeeded: "1hour"},
		},
		Restaurants: []response_models.SuggestionItem{
			{Name: "LeBistro", Description: "Traditionalfrenchcuisine", Cost: "30EUR", Cuisine: "French"},
			{Name: "CafeParis", Description: "Casualfrenchdining", Cost: "25EUR", Cuisine: "French"},
			{Name: "BrasserieRoyal", Description: "Elegantdining", Cost: "45EUR", Cuisine: "French"},
		},
		Activities: []response_models.SuggestionItem{
			{Name: "RiverCruise", Description: "SeineRivertour", Cost: "15EUR", TimeNeeded: "1hour"},
			{Name: "WineTours", Description: "Winetasting", Cost: "40EUR", TimeNeeded: "3hours"},
			{Name: "BikeRental", Description: "Citybiketour", Cost: "10EUR", TimeNeeded: "2hours"},
		},
	}
}

// MockItinerary returns a canned single-day itinerary used as the
// fail-open fallback for itinerary generation.
func MockItinerary() *response_models.Itinerary {
	return &response_models.Itinerary{
		DailyPlans: []response_models.DayPlan{
			{
				Day:  1,
				Date: "2024-03-30",
				Activities: []response_models.Activity{
					{
						Time:        "09:00",
						Duration:    "3hours",
						Description: "ExploreMuseum",
						Location:    "ParisianMuseum",
						Cost:        "20EUR",
						Type:        response_models.ActivityTypeActivity,
					},
					{
						Time:        "12:30",
						Duration:    "1hour",
						Description: "Lunch",
						Location:    "LeBistro",
						Cost:        "30EUR",
						Type:        response_models.ActivityTypeMeal,
					},
					{
						Time:        "14:00",
						Duration:    "2hours",
						Description: "CityTour",
						Location:    "BikeRental",
						Cost:        "10EUR",
						Type:        response_models.ActivityTypeActivity,
					},
				},
				DailyBudget: "60EUR",
				Notes:       "Startwithamuseumvisitandrelaxingbiketouraround",
			},
		},
		TotalBudget: "60EUR",
		GeneralTips: []string{
			"Bookmuseumticketsinadvance",
			"Uselocaltransport",
			"Carrywater",
		},
		EmergencyContacts: map[string]string{
			"police":         "17",
			"ambulance":      "15",
			"tourist_police": "17",
		},
	}
}
