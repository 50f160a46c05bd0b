package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/gcbaptista/feedrank/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"

	// Server Error Codes (5xx)
	ErrorCodeInternalError        ErrorCode = "INTERNAL_ERROR"
	ErrorCodeClassificationFailed ErrorCode = "CLASSIFICATION_FAILED"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id,omitempty"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	errorResponse := APIErrorResponse(code, message, details...)

	// Add request ID if available
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.JSON(statusCode, errorResponse)
}

// SendStructuredValidationError sends a validation error with structured details
func SendStructuredValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendNotFoundError sends a standardized error for unknown routes
func SendNotFoundError(c *gin.Context) {
	SendError(c, http.StatusNotFound, ErrorCodeNotFound,
		"No route for "+c.Request.Method+" "+c.Request.URL.Path)
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}

// SendPipelineError maps a feed pipeline error to a response
func SendPipelineError(c *gin.Context, err error) {
	var countErr *apperrors.PostCountError
	switch {
	case errors.As(err, &countErr):
		result := &ValidationResult{Valid: true}
		result.AddError("texts", countErr.Error())
		SendStructuredValidationError(c, result)
	case errors.Is(err, apperrors.ErrInvalidInput):
		result := &ValidationResult{Valid: true}
		result.AddError("feed", err.Error())
		SendStructuredValidationError(c, result)
	case errors.Is(err, apperrors.ErrClassification):
		SendError(c, http.StatusInternalServerError, ErrorCodeClassificationFailed,
			"Classification failed: "+err.Error())
	default:
		SendInternalError(c, "feed processing", err)
	}
}
