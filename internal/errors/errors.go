package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrPostCount is returned when a feed does not carry the expected number of texts
	ErrPostCount = errors.New("unexpected number of posts")

	// ErrDuplicateCategory is returned when a priority order lists a category twice
	ErrDuplicateCategory = errors.New("duplicate category")

	// ErrClassification is returned when a category source fails to label a text
	ErrClassification = errors.New("classification failed")
)

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PostCountError reports a feed with the wrong number of texts
type PostCountError struct {
	Expected int
	Actual   int
}

func (e *PostCountError) Error() string {
	return fmt.Sprintf("expected %d posts, got %d", e.Expected, e.Actual)
}

// Is matches both ErrPostCount and ErrInvalidInput, since a wrong count is a caller mistake.
func (e *PostCountError) Is(target error) bool {
	return target == ErrPostCount || target == ErrInvalidInput
}

// NewPostCountError creates a new PostCountError
func NewPostCountError(expected, actual int) *PostCountError {
	return &PostCountError{Expected: expected, Actual: actual}
}

// DuplicateCategoryError represents a priority order that lists a category more than once
type DuplicateCategoryError struct {
	Category string
	First    int
	Second   int
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("category '%s' listed at positions %d and %d", e.Category, e.First, e.Second)
}

func (e *DuplicateCategoryError) Is(target error) bool {
	return target == ErrDuplicateCategory
}

// NewDuplicateCategoryError creates a new DuplicateCategoryError
func NewDuplicateCategoryError(category string, first, second int) *DuplicateCategoryError {
	return &DuplicateCategoryError{Category: category, First: first, Second: second}
}

// ClassificationError wraps a category source failure for a single post
type ClassificationError struct {
	Position int
	Err      error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classifying post %d: %v", e.Position, e.Err)
}

func (e *ClassificationError) Is(target error) bool {
	return target == ErrClassification
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// NewClassificationError creates a new ClassificationError
func NewClassificationError(position int, err error) *ClassificationError {
	return &ClassificationError{Position: position, Err: err}
}
