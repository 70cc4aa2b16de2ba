package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service errors to HTTP responses. Validation errors
// only surface here when the planner runs fail-closed; fail-open resolves them
// to fallback data before the controller sees them.
func HandleServiceError(c *gin.Context, err error) {
	var schemaErr *SchemaError
	var seqErr *SequenceError
	var emptyErr *EmptyListError
	var enumErr *InvalidEnumError
	var syntaxErr *JSONSyntaxError

	switch {
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Session not found")
	case errors.Is(err, ErrNoItineraryYet):
		RespondError(c, http.StatusNotFound, "No itinerary has been generated for this session yet")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrModelUnavailable), errors.Is(err, ErrEmptyModelResponse):
		log.Printf("Model error: %v", err)
		RespondError(c, http.StatusServiceUnavailable, "Language model is unavailable")
	case errors.Is(err, ErrWeatherUnavailable):
		log.Printf("Weather error: %v", err)
		RespondError(c, http.StatusServiceUnavailable, "Weather backend is unavailable")
	case errors.Is(err, ErrNoJSONFound),
		errors.As(err, &syntaxErr),
		errors.As(err, &schemaErr),
		errors.As(err, &seqErr),
		errors.As(err, &emptyErr),
		errors.As(err, &enumErr):
		log.Printf("Model response rejected: %v", err)
		RespondError(c, http.StatusBadGateway, "Model returned an invalid response")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
