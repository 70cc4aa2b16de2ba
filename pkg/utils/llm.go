package utils

import "context"

// TextGeneratorInterface is the model collaborator: prompt text in, raw
// response text out. Implementations must treat an empty response as a
// failure. The planning pipeline never assumes the text is valid JSON.
type TextGeneratorInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
