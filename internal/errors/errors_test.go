package errors

import (
	"context"
	"errors"
	"testing"
)

func TestValidationError(t *testing.T) {
	// Test with field
	err := NewValidationError("texts", "must not be null")

	expectedMsg := "validation error for field 'texts': must not be null"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test without field
	err2 := NewValidationError("", "general validation error")

	expectedMsg2 := "validation error: general validation error"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}
}

func TestPostCountError(t *testing.T) {
	err := NewPostCountError(5, 3)

	expectedMsg := "expected 5 posts, got 3"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrPostCount) {
		t.Error("Expected error to match ErrPostCount sentinel")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}
	if errors.Is(err, ErrClassification) {
		t.Error("Error should not match ErrClassification")
	}
}

func TestDuplicateCategoryError(t *testing.T) {
	err := NewDuplicateCategoryError("sexist", 1, 3)

	expectedMsg := "category 'sexist' listed at positions 1 and 3"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrDuplicateCategory) {
		t.Error("Expected error to match ErrDuplicateCategory sentinel")
	}
}

func TestClassificationError(t *testing.T) {
	err := NewClassificationError(2, context.Canceled)

	expectedMsg := "classifying post 2: context canceled"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrClassification) {
		t.Error("Expected error to match ErrClassification sentinel")
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("Expected wrapped error to be reachable through Unwrap")
	}
}

func TestErrorWrapping(t *testing.T) {
	originalErr := NewPostCountError(5, 0)
	wrappedErr := errors.Join(errors.New("feed request rejected"), originalErr)

	if !errors.Is(wrappedErr, ErrPostCount) {
		t.Error("Expected wrapped error to still match ErrPostCount")
	}

	var countErr *PostCountError
	if !errors.As(wrappedErr, &countErr) {
		t.Error("Expected to be able to extract PostCountError from wrapped error")
	}

	if countErr.Expected != 5 {
		t.Errorf("Expected extracted error to have Expected 5, got %d", countErr.Expected)
	}
}
