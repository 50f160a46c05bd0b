// Package api provides the HTTP surface of the feed reranker.
package api

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/feedrank/model"
)

// MaxTextLength bounds a single snippet, in runes.
const MaxTextLength = 2000

// requestBodyField marks errors raised while binding the request body.
const requestBodyField = "request_body"

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateTexts validates the snippets of a feed request. Empty strings are allowed.
func ValidateTexts(texts []string, expected int) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(texts) != expected {
		result.AddError("texts", fmt.Sprintf("Exactly %d texts are required, got %d", expected, len(texts)))
		return result
	}

	for i, text := range texts {
		if !utf8.ValidString(text) {
			result.AddError(fmt.Sprintf("texts[%d]", i), "Text must be valid UTF-8")
			continue
		}
		if utf8.RuneCountInString(text) > MaxTextLength {
			result.AddError(fmt.Sprintf("texts[%d]", i), fmt.Sprintf("Text cannot exceed %d characters", MaxTextLength))
		}
	}

	return result
}

// ValidatePosts validates posts supplied with their categories. Unknown
// categories are legal; blank ones are not.
func ValidatePosts(posts []model.Post) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for i, post := range posts {
		if strings.TrimSpace(string(post.Category)) == "" {
			result.AddError(fmt.Sprintf("posts[%d].category", i), "Category cannot be empty or whitespace-only")
		}
		if utf8.RuneCountInString(post.Text) > MaxTextLength {
			result.AddError(fmt.Sprintf("posts[%d].text", i), fmt.Sprintf("Text cannot exceed %d characters", MaxTextLength))
		}
	}

	return result
}

// SendValidationError sends a standardized validation error response.
// Body binding failures are reported as INVALID_JSON.
func SendValidationError(c *gin.Context, result *ValidationResult) {
	if len(result.Errors) > 0 && result.Errors[0].Field == requestBodyField {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, result.Errors[0].Message)
		return
	}
	SendStructuredValidationError(c, result)
}

// ValidateJSONBinding validates JSON binding and returns a standardized error
func ValidateJSONBinding(c *gin.Context, target interface{}) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if err := c.ShouldBindJSON(target); err != nil {
		result.AddError(requestBodyField, "Invalid request body: "+err.Error())
	}

	return result
}
