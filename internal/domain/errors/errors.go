// Package errors defines the application error taxonomy and its mapping to
// HTTP status codes.
package errors

import (
	"net/http"

	"truefind/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors by business error code, so detailed copies produced by
// WithDetails still compare equal to their predefined base.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if !errors.As(target, &base) {
		return false
	}

	return e.errorCode == base.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrMissingIDToken is returned when the auth request carries no ID token.
	ErrMissingIDToken = NewBaseError(
		http.StatusBadRequest,
		"MISSING_ID_TOKEN",
		"No ID token provided",
		"",
	)

	// ErrUpstreamAuthFailed is returned when the identity provider rejects a
	// token or cannot be reached. The underlying message is surfaced as-is.
	ErrUpstreamAuthFailed = NewBaseError(
		http.StatusBadRequest,
		"UPSTREAM_AUTH_FAILED",
		"Identity provider rejected the token",
		"",
	)

	// ErrValidationFailed is returned when a payload misses required fields.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request payload is missing required fields",
		"",
	)

	// ErrUnauthorized is returned when a protected route is called without a
	// valid principal.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	// ErrUserCreationFailed wraps store failures while persisting a profile.
	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user profile",
		"",
	)

	// ErrUserUpdateFailed wraps store failures while refreshing a profile.
	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Failed to update user profile",
		"",
	)
)

// DatabaseError wraps low-level store errors while keeping the cause available
// for errors.Is/As.
type DatabaseError struct {
	*BaseError
	cause error
}

// NewDatabaseExecuteError creates a database error with the underlying cause.
func NewDatabaseExecuteError(cause error, message string) *DatabaseError {
	return &DatabaseError{
		BaseError: NewBaseError(
			http.StatusInternalServerError,
			"DATABASE_EXECUTE_FAILED",
			message,
			cause.Error(),
		),
		cause: cause,
	}
}

// Unwrap exposes the underlying database error.
func (e *DatabaseError) Unwrap() error {
	return e.cause
}
