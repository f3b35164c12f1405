package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "Nil error",
			err:      nil,
			expected: http.StatusOK,
		},
		{
			name:     "Invalid input",
			err:      ErrInvalidInput,
			expected: http.StatusBadRequest,
		},
		{
			name:     "Duplicate email",
			err:      ErrEmailExists,
			expected: http.StatusBadRequest,
		},
		{
			name:     "Default record guard",
			err:      ErrDefaultProtected,
			expected: http.StatusBadRequest,
		},
		{
			name:     "Invalid credentials",
			err:      ErrInvalidCredentials,
			expected: http.StatusUnauthorized,
		},
		{
			name:     "Token expired",
			err:      ErrTokenExpired,
			expected: http.StatusUnauthorized,
		},
		{
			name:     "Invalid refresh token",
			err:      ErrInvalidRefreshToken,
			expected: http.StatusUnauthorized,
		},
		{
			name:     "Admin required",
			err:      ErrAdminRequired,
			expected: http.StatusForbidden,
		},
		{
			name:     "Record not found",
			err:      ErrRecordNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "Internal error",
			err:      ErrInternal,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Unknown error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Wrapped domain error",
			err:      fmt.Errorf("loading user: %w", ErrUserNotFound),
			expected: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := ToHTTPStatus(tt.err)
			if status != tt.expected {
				t.Errorf("Expected status %d, got %d", tt.expected, status)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := WrapError(ErrInternal, cause)

	if !errors.Is(wrapped, cause) {
		t.Error("Wrapped error lost its cause")
	}
	if wrapped.Code != ErrInternal.Code {
		t.Errorf("Expected code %s, got %s", ErrInternal.Code, wrapped.Code)
	}
	if wrapped.Error() != "Internal server error: connection refused" {
		t.Errorf("Unexpected error string: %s", wrapped.Error())
	}
}

func TestGetErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "Domain error message without cause",
			err:      WrapError(ErrInvalidCredentials, errors.New("bcrypt mismatch")),
			expected: "Invalid email or password",
		},
		{
			name:     "Plain error",
			err:      errors.New("boom"),
			expected: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := GetErrorMessage(tt.err)
			if message != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, message)
			}
		})
	}
}
