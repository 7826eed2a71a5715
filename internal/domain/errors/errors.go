// Package errors defines the application error taxonomy. Every error that
// can reach the request boundary maps to an HTTP status, a business error
// code, and the exact client-facing detail message.
package errors

import (
	"net/http"

	"cinelog/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Client-facing detail message
	Details() string   // Internal diagnostic detail (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// Is matches errors by business code, so copies carrying diagnostic details
// still compare equal to their predefined taxonomy entry.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the client-facing detail message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns internal diagnostic detail.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying internal diagnostic detail.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. The messages are part of the wire contract and
// must not be reworded.
var (
	// User-related errors
	ErrUsernameTaken = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_TAKEN",
		"Username already registered",
		"",
	)

	// Authentication-related errors. ErrInvalidCredentials is deliberately
	// uniform for unknown-user and wrong-password so usernames cannot be
	// enumerated through the login endpoint.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect username or password",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Could not validate credentials",
		"",
	)

	// Authorization-related errors, distinct from authentication failures.
	ErrMovieUpdateForbidden = NewBaseError(
		http.StatusForbidden,
		"MOVIE_UPDATE_FORBIDDEN",
		"Not authorized to update this movie",
		"",
	)

	ErrMovieDeleteForbidden = NewBaseError(
		http.StatusForbidden,
		"MOVIE_DELETE_FORBIDDEN",
		"Not authorized to delete this movie",
		"",
	)

	// Resource errors
	ErrMovieNotFound = NewBaseError(
		http.StatusNotFound,
		"MOVIE_NOT_FOUND",
		"Movie not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"Invalid request payload",
		"",
	)
)

// NewDatabaseExecuteError wraps a store failure as a 5xx-class fault. Store
// unavailability is an infrastructure failure and must never surface as an
// authentication or authorization failure.
func NewDatabaseExecuteError(err error, message string) error {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_ERROR",
		"Internal server error",
		err.Error(),
	)

	return errors.Wrap(base, message)
}
