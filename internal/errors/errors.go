package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// Predefined domain errors
var (
	// User errors
	ErrUserNotFound = NewDomainError("USER_NOT_FOUND", "User not found")
	ErrEmailExists  = NewDomainError("EMAIL_EXISTS", "User with this email already exists")

	// The login failure message is identical for an unknown email and a wrong
	// password so the endpoint does not leak account existence.
	ErrInvalidCredentials = NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")

	// Authentication errors
	ErrUnauthorized        = NewDomainError("UNAUTHENTICATED", "Access token required")
	ErrTokenExpired        = NewDomainError("TOKEN_EXPIRED", "Token expired")
	ErrInvalidToken        = NewDomainError("INVALID_TOKEN", "Invalid token")
	ErrInvalidRefreshToken = NewDomainError("INVALID_REFRESH_TOKEN", "Invalid refresh token")

	// Authorization errors
	ErrAdminRequired = NewDomainError("ADMIN_REQUIRED", "Admin access required")

	// Validation errors
	ErrInvalidInput = NewDomainError("INVALID_INPUT", "Invalid input")

	// Resource errors
	ErrRecordNotFound   = NewDomainError("RECORD_NOT_FOUND", "Resource not found")
	ErrDuplicateRecord  = NewDomainError("DUPLICATE_RECORD", "Resource already exists")
	ErrDefaultProtected = NewDomainError("DEFAULT_PROTECTED", "Cannot delete default record")

	// System errors
	ErrInternal = NewDomainError("INTERNAL_ERROR", "Internal server error")
)

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes.
// This should only be used in the handler/presentation layer.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	// Default to internal server error for unknown errors
	return http.StatusInternalServerError
}

func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	// 400 Bad Request: validation, duplicates, and default-record guards
	// are all client errors the caller can correct.
	case "INVALID_INPUT", "EMAIL_EXISTS", "DUPLICATE_RECORD", "DEFAULT_PROTECTED":
		return http.StatusBadRequest

	// 401 Unauthorized
	case "UNAUTHENTICATED", "INVALID_CREDENTIALS", "TOKEN_EXPIRED",
		"INVALID_TOKEN", "INVALID_REFRESH_TOKEN":
		return http.StatusUnauthorized

	// 403 Forbidden: authenticated but insufficient role
	case "ADMIN_REQUIRED":
		return http.StatusForbidden

	// 404 Not Found
	case "USER_NOT_FOUND", "RECORD_NOT_FOUND":
		return http.StatusNotFound

	// 500 Internal Server Error (default)
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts error message
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}
