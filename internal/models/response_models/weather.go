package response_models

// WeatherDay is pass-through display data from the weather collaborator.
// The planning core enforces no invariants on it.
type WeatherDay struct {
	Date              string  `json:"date"`
	AvgTemp           float64 `json:"avg_temp"`
	MinTemp           float64 `json:"min_temp"`
	MaxTemp           float64 `json:"max_temp"`
	Humidity          float64 `json:"humidity"`
	PrecipitationProb float64 `json:"precipitation_prob"`
	WindSpeed         float64 `json:"wind_speed"`
	Conditions        string  `json:"conditions"`
}
