package errors

import (
	"errors"
	"testing"
)

func TestNewError(t *testing.T) {
	err := NewError(12001, "test error")

	if err.Code != 12001 {
		t.Errorf("Expected code 12001, got %d", err.Code)
	}
	if err.Message != "test error" {
		t.Errorf("Expected message 'test error', got '%s'", err.Message)
	}
	if err.Err != nil {
		t.Error("Expected Err to be nil")
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			err:      NewError(12001, "test error"),
			expected: "[12001] test error",
		},
		{
			name:     "with wrapped error",
			err:      NewError(12001, "test error").Wrap(errors.New("original error")),
			expected: "[12001] test error: original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestAppError_Wrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := ErrMessageNotFound.Wrap(originalErr)

	if appErr.Code != ErrMessageNotFound.Code {
		t.Errorf("Expected code %d, got %d", ErrMessageNotFound.Code, appErr.Code)
	}
	if appErr.Message != ErrMessageNotFound.Message {
		t.Errorf("Expected message '%s', got '%s'", ErrMessageNotFound.Message, appErr.Message)
	}
	if appErr.Err != originalErr {
		t.Error("Expected wrapped error to be the original error")
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := ErrCourseNotFound.Wrap(originalErr)

	unwrapped := errors.Unwrap(appErr)
	if unwrapped != originalErr {
		t.Error("Expected unwrapped error to be the original error")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   *AppError
		expected bool
	}{
		{
			name:     "same error",
			err:      ErrUserNotFound,
			target:   ErrUserNotFound,
			expected: true,
		},
		{
			name:     "wrapped same error",
			err:      ErrInvalidRating.Wrap(errors.New("wrapped")),
			target:   ErrInvalidRating,
			expected: true,
		},
		{
			name:     "different error",
			err:      ErrNotMessageSender,
			target:   ErrUserNotFound,
			expected: false,
		},
		{
			name:     "non-app error",
			err:      errors.New("standard error"),
			target:   ErrUserNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.target); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "app error",
			err:      ErrEmptyContent,
			expected: CodeEmptyContent,
		},
		{
			name:     "wrapped app error",
			err:      ErrInvalidCredentials.Wrap(errors.New("wrapped")),
			expected: CodeInvalidCredentials,
		},
		{
			name:     "standard error",
			err:      errors.New("standard error"),
			expected: CodeServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestGetMessage(t *testing.T) {
	if got := GetMessage(ErrInvalidRating); got != ErrInvalidRating.Message {
		t.Errorf("Expected '%s', got '%s'", ErrInvalidRating.Message, got)
	}
	if got := GetMessage(errors.New("standard error")); got != "服务器内部错误" {
		t.Errorf("Expected default message, got '%s'", got)
	}
}
