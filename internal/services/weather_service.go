package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"time"

	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

type WeatherProviderInterface interface {
	GetForecast(ctx context.Context, city string, startDate string, endDate string) ([]response_models.WeatherDay, error)
}

// MockWeatherProvider returns a deterministic forecast sized to the date
// range, three days when the range is missing or unparsable.
type MockWeatherProvider struct{}

func NewMockWeatherProvider() WeatherProviderInterface {
	return &MockWeatherProvider{}
}

func (p *MockWeatherProvider) GetForecast(_ context.Context, _ string, startDate string, endDate string) ([]response_models.WeatherDay, error) {
	days := 3
	start, err := utils.ParseDate(startDate)
	if err != nil {
		start = time.Now()
	} else if endDate != "" {
		if end, err := utils.ParseDate(endDate); err == nil {
			days = utils.DaysBetween(start, end)
			if days <= 0 {
				days = 3
			}
		}
	}

	forecast := make([]response_models.WeatherDay, 0, days)
	for i := 0; i < days; i++ {
		forecast = append(forecast, response_models.WeatherDay{
			Date:              start.AddDate(0, 0, i).Format(utils.DateLayout),
			AvgTemp:           22.0,
			MinTemp:           18.0,
			MaxTemp:           26.0,
			Humidity:          65.0,
			PrecipitationProb: 20.0,
			WindSpeed:         12.0,
			Conditions:        "Partly Cloudy",
		})
	}
	return forecast, nil
}

// OpenWeatherProvider aggregates OpenWeather's 5-day/3-hour forecast into
// per-day summaries.
type OpenWeatherProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOpenWeatherProvider(apiKey string) WeatherProviderInterface {
	return &OpenWeatherProvider{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/forecast",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type openWeatherResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp     float64 `json:"temp"`
			TempMin  float64 `json:"temp_min"`
			TempMax  float64 `json:"temp_max"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Pop float64 `json:"pop"`
	} `json:"list"`
}

func (p *OpenWeatherProvider) GetForecast(ctx context.Context, city string, startDate string, endDate string) ([]response_models.WeatherDay, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", p.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", utils.ErrWeatherUnavailable, resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrWeatherUnavailable, err)
	}
	if len(payload.List) == 0 {
		return nil, fmt.Errorf("%w: empty forecast", utils.ErrWeatherUnavailable)
	}

	return aggregateForecast(payload), nil
}

type dayAccumulator struct {
	tempSum     float64
	minTemp     float64
	maxTemp     float64
	humiditySum float64
	popMax      float64
	windSum     float64
	conditions  map[string]int
	count       int
}

func aggregateForecast(payload openWeatherResponse) []response_models.WeatherDay {
	byDate := map[string]*dayAccumulator{}

	for _, entry := range payload.List {
		if len(entry.DtTxt) < len(utils.DateLayout) {
			continue
		}
		date := entry.DtTxt[:len(utils.DateLayout)]

		acc, ok := byDate[date]
		if !ok {
			acc = &dayAccumulator{
				minTemp:    entry.Main.TempMin,
				maxTemp:    entry.Main.TempMax,
				conditions: map[string]int{},
			}
			byDate[date] = acc
		}

		acc.tempSum += entry.Main.Temp
		acc.humiditySum += entry.Main.Humidity
		acc.windSum += entry.Wind.Speed
		if entry.Main.TempMin < acc.minTemp {
			acc.minTemp = entry.Main.TempMin
		}
		if entry.Main.TempMax > acc.maxTemp {
			acc.maxTemp = entry.Main.TempMax
		}
		if entry.Pop > acc.popMax {
			acc.popMax = entry.Pop
		}
		if len(entry.Weather) > 0 {
			acc.conditions[entry.Weather[0].Main]++
		}
		acc.count++
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	forecast := make([]response_models.WeatherDay, 0, len(dates))
	for _, date := range dates {
		acc := byDate[date]
		forecast = append(forecast, response_models.WeatherDay{
			Date:              date,
			AvgTemp:           acc.tempSum / float64(acc.count),
			MinTemp:           acc.minTemp,
			MaxTemp:           acc.maxTemp,
			Humidity:          acc.humiditySum / float64(acc.count),
			PrecipitationProb: acc.popMax * 100,
			WindSpeed:         acc.windSum / float64(acc.count),
			Conditions:        dominantCondition(acc.conditions),
		})
	}
	return forecast
}

func dominantCondition(counts map[string]int) string {
	best := ""
	bestCount := 0
	for condition, count := range counts {
		if count > bestCount || (count == bestCount && condition < best) {
			best = condition
			bestCount = count
		}
	}
	return best
}

type WeatherServiceInterface interface {
	GetForecast(ctx context.Context, city string, startDate string, endDate string) ([]response_models.WeatherDay, error)
}

// WeatherService fronts a real provider and degrades to mock data when the
// provider fails or none is configured.
type WeatherService struct {
	provider WeatherProviderInterface
	fallback WeatherProviderInterface
}

func NewWeatherService(provider WeatherProviderInterface) WeatherServiceInterface {
	return &WeatherService{
		provider: provider,
		fallback: NewMockWeatherProvider(),
	}
}

func (s *WeatherService) GetForecast(ctx context.Context, city string, startDate string, endDate string) ([]response_models.WeatherDay, error) {
	if s.provider == nil {
		return s.fallback.GetForecast(ctx, city, startDate, endDate)
	}

	forecast, err := s.provider.GetForecast(ctx, city, startDate, endDate)
	if err != nil {
		log.Printf("Weather data retrieval failed: %v. Using sample data.", err)
		return s.fallback.GetForecast(ctx, city, startDate, endDate)
	}
	return forecast, nil
}
