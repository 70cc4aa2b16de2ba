package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoJSONFound        = errors.New("no json object found in model response")
	ErrEmptyModelResponse = errors.New("empty response from language model")
	ErrModelUnavailable   = errors.New("language model unavailable")
	ErrWeatherUnavailable = errors.New("weather backend unavailable")
	ErrSessionNotFound    = errors.New("session not found")
	ErrNoItineraryYet     = errors.New("no itinerary generated for this session")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
)

// JSONSyntaxError reports a parse failure that survived truncation repair.
// Excerpt carries the text around the failing offset for log diagnosis.
type JSONSyntaxError struct {
	Offset  int64
	Excerpt string
	Err     error
}

func (e *JSONSyntaxError) Error() string {
	return fmt.Sprintf("json syntax error at offset %d: %v (near %q)", e.Offset, e.Err, e.Excerpt)
}

func (e *JSONSyntaxError) Unwrap() error { return e.Err }

// NewJSONSyntaxError captures up to 50 characters on each side of offset.
func NewJSONSyntaxError(text string, offset int64, err error) *JSONSyntaxError {
	start := offset - 50
	if start < 0 {
		start = 0
	}
	end := offset + 50
	if end > int64(len(text)) {
		end = int64(len(text))
	}
	return &JSONSyntaxError{Offset: offset, Excerpt: text[start:end], Err: err}
}

// SchemaError reports required keys absent from a parsed model response.
// Scope names the object being checked ("itinerary", "day 2", "day 1 activity 3").
type SchemaError struct {
	Scope   string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required keys: %s", e.Scope, strings.Join(e.Missing, ", "))
}

// SequenceError reports a day number that does not match its 1-based position.
type SequenceError struct {
	Position int
	Got      int
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("day numbers must be sequential: position %d has day %d", e.Position, e.Got)
}

// EmptyListError reports a day with no activities.
type EmptyListError struct {
	Day int
}

func (e *EmptyListError) Error() string {
	return fmt.Sprintf("day %d must have at least one activity", e.Day)
}

// InvalidEnumError reports an activity type outside the allowed set.
type InvalidEnumError struct {
	Day   int
	Index int
	Type  string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("day %d activity %d: invalid activity type %q", e.Day, e.Index, e.Type)
}

// TimeFormatError reports a time token that could not be normalized.
// Callers treat it as a warning and may keep the literal token.
type TimeFormatError struct {
	Token string
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("invalid time format: %q", e.Token)
}
