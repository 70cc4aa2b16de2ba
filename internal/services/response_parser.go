package services

import (
	"encoding/json"
	"errors"

	"voyago/internal/models/response_models"
	"voyago/pkg/jsonrepair"
	"voyago/pkg/utils"
)

// decodeObject sanitizes raw model output and decodes it into a generic
// document. When the first decode fails with a syntax error the text is
// treated as truncated, run through the bracket repairer, and decoded
// once more.
func decodeObject(raw string) (map[string]any, string, error) {
	cleaned, err := jsonrepair.Sanitize(raw)
	if err != nil {
		return nil, "", err
	}

	doc := map[string]any{}
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		var syntaxErr *json.SyntaxError
		if !errors.As(err, &syntaxErr) {
			return nil, "", utils.NewJSONSyntaxError(cleaned, 0, err)
		}

		repaired := jsonrepair.RepairUnbalanced(cleaned)
		doc = map[string]any{}
		if err := json.Unmarshal([]byte(repaired), &doc); err != nil {
			offset := int64(0)
			if errors.As(err, &syntaxErr) {
				offset = syntaxErr.Offset
			}
			return nil, "", utils.NewJSONSyntaxError(repaired, offset, err)
		}
		return doc, repaired, nil
	}
	return doc, cleaned, nil
}

// ParseSuggestionsResponse turns raw model output into a validated
// suggestion set.
func ParseSuggestionsResponse(raw string) (*response_models.SuggestionSet, error) {
	doc, cleaned, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	if err := ValidateKeys("suggestions", doc, suggestionKeys); err != nil {
		return nil, err
	}

	var suggestions response_models.SuggestionSet
	if err := json.Unmarshal([]byte(cleaned), &suggestions); err != nil {
		return nil, utils.NewJSONSyntaxError(cleaned, 0, err)
	}
	return &suggestions, nil
}

// ParseItineraryResponse turns raw model output into a validated,
// normalized itinerary.
func ParseItineraryResponse(raw string) (*response_models.Itinerary, error) {
	doc, cleaned, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	if err := ValidateKeys("itinerary", doc, itineraryKeys); err != nil {
		return nil, err
	}
	if err := ValidateItineraryStructure(doc); err != nil {
		return nil, err
	}

	var itinerary response_models.Itinerary
	if err := json.Unmarshal([]byte(cleaned), &itinerary); err != nil {
		return nil, utils.NewJSONSyntaxError(cleaned, 0, err)
	}
	if err := ValidateItinerary(&itinerary); err != nil {
		return nil, err
	}
	return &itinerary, nil
}
