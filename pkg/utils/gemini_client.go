package utils

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Model names tried in order when generating. Later entries are fallbacks for
// quota or availability failures on the earlier ones.
var geminiModelNames = []string{
	"gemini-1.5-pro-002",
	"gemini-1.5-pro",
	"gemini-1.5-pro-latest",
	"gemini-1.5-flash",
}

const geminiRetryPause = 2 * time.Second

// GeminiTextClient implements TextGeneratorInterface using Google's Gemini
// models, walking a fallback list of model names.
type GeminiTextClient struct {
	client *genai.Client
	models []string
}

func NewGeminiTextClient(apiKey, model string) (*GeminiTextClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	models := geminiModelNames
	if model != "" {
		models = append([]string{model}, geminiModelNames...)
	}

	return &GeminiTextClient{client: client, models: models}, nil
}

func (c *GeminiTextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for i, name := range c.models {
		if i > 0 {
			log.Printf("Gemini model %s failed, waiting before trying %s", c.models[i-1], name)
			select {
			case <-time.After(geminiRetryPause):
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", ErrModelUnavailable, ctx.Err())
			}
		}

		model := c.client.GenerativeModel(name)
		model.SetTemperature(0.7)
		model.SetTopP(0.8)
		model.SetTopK(40)
		model.SetMaxOutputTokens(2048)

		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			lastErr = ErrEmptyModelResponse
			continue
		}

		content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
		if strings.TrimSpace(content) == "" {
			lastErr = ErrEmptyModelResponse
			continue
		}
		return content, nil
	}

	return "", fmt.Errorf("%w: all models failed: %v", ErrModelUnavailable, lastErr)
}

func (c *GeminiTextClient) Close() error {
	return c.client.Close()
}
