package planner_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	ProvidePlanCacheRepository,
	ProvidePlannerService,
	ProvidePlannerController)

// GeneratorConfig holds configuration for the text generation client.
type GeneratorConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideTextGenerator creates a text generation client based on environment
// variables. The "mock" provider returns a nil client, which the planner
// treats as mock mode.
func ProvideTextGenerator() (utils.TextGeneratorInterface, error) {
	config := getGeneratorConfig()

	switch strings.ToLower(config.Provider) {
	case "mock":
		log.Println("LLM provider set to mock, serving canned plans")
		return nil, nil
	case "openai":
		log.Printf("Initializing OpenAI text client with model: %s", config.Model)
		return utils.NewOpenAITextClient(config.APIKey, config.Model), nil
	case "gemini":
		log.Printf("Initializing Gemini text client with model: %s", config.Model)
		client, err := utils.NewGeminiTextClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s. Use 'gemini', 'openai' or 'mock'", config.Provider)
	}
}

func ProvidePlanCacheRepository(db *gorm.DB) repositories.PlanCacheRepositoryInterface {
	return repositories.NewPlanCacheRepository(db)
}

func ProvidePlannerService(
	generator utils.TextGeneratorInterface,
	planCache repositories.PlanCacheRepositoryInterface,
	planStore *memcache.PlanStore,
) services.PlannerServiceInterface {
	failClosed := strings.EqualFold(os.Getenv("PLANNER_FAIL_CLOSED"), "true")
	return services.NewPlannerService(generator, planCache, planStore, failClosed)
}

func ProvidePlannerController(
	plannerService services.PlannerServiceInterface,
	sessionService services.SessionServiceInterface,
	weatherService services.WeatherServiceInterface,
	planStore *memcache.PlanStore,
) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService, sessionService, weatherService, planStore)
}

// getGeneratorConfig reads configuration from environment variables.
func getGeneratorConfig() GeneratorConfig {
	provider := getEnvWithDefault("LLM_PROVIDER", "mock")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GeneratorConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
