package weather_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"voyago/internal/api/controllers"
	"voyago/internal/services"
)

var Module = fx.Provide(
	ProvideWeatherProvider,
	ProvideWeatherService,
	ProvideWeatherController)

// ProvideWeatherProvider returns nil when no usable OpenWeather key is set;
// the weather service then serves sample data.
func ProvideWeatherProvider() services.WeatherProviderInterface {
	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	if apiKey == "" || apiKey == "demo" {
		log.Println("Using sample weather data. Set OPENWEATHER_API_KEY for real forecasts.")
		return nil
	}
	return services.NewOpenWeatherProvider(apiKey)
}

func ProvideWeatherService(provider services.WeatherProviderInterface) services.WeatherServiceInterface {
	return services.NewWeatherService(provider)
}

func ProvideWeatherController(weatherService services.WeatherServiceInterface) *controllers.WeatherController {
	return controllers.NewWeatherController(weatherService)
}
