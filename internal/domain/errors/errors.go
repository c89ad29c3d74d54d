// Package errors defines the application-level error taxonomy.
// Every failure crossing the usecase boundary is one of these kinds; the
// delivery layer maps them to HTTP responses without inspecting causes.
package errors

import (
	"net/http"

	"dashmonkey/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
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

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error kinds.
//
// InvalidCredentials and InvalidRefreshToken are deliberately opaque: the
// message never reveals which part of the check failed (existence, mismatch,
// expiry or revocation), so callers cannot enumerate accounts or session
// state.
var (
	// ErrDuplicateUsername is returned when registering a username that already exists.
	ErrDuplicateUsername = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_USERNAME",
		"username already exists",
		"",
	)

	// ErrInvalidCredentials covers both unknown username and wrong password.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid username or password",
		"",
	)

	// ErrInvalidRefreshToken covers absent, revoked, expired and replayed refresh tokens.
	ErrInvalidRefreshToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_REFRESH_TOKEN",
		"invalid refresh token",
		"",
	)

	// ErrUserNotFound is returned when a session points at a user record
	// that no longer exists. Terminal for that session.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	// ErrMalformedRequest is returned when a required field is missing or unparseable.
	ErrMalformedRequest = NewBaseError(
		http.StatusBadRequest,
		"MALFORMED_REQUEST",
		"missing or invalid request field",
		"",
	)

	// ErrInvalidAccessToken is returned by the auth middleware for any
	// unverifiable bearer token.
	ErrInvalidAccessToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_ACCESS_TOKEN",
		"invalid or expired access token",
		"",
	)

	// ErrPasswordHashFailed is returned when the at-rest credential hash cannot be computed.
	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process credential",
		"",
	)

	// ErrInternalError is the fallback for unclassified failures.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// StorageError represents a storage-layer failure (timeout, connectivity,
// unclassified database error). It is the only retryable kind in the
// taxonomy, which is why it gets 503 rather than 500.
type StorageError struct {
	err     error
	details string
}

// NewStorageError wraps a storage-layer failure as a retryable AppError.
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage unavailable").Error()
}

// Unwrap exposes the underlying storage failure.
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *StorageError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code.
func (e *StorageError) ErrorCode() string {
	return "STORAGE_UNAVAILABLE"
}

// Message returns the user-facing error message.
func (e *StorageError) Message() string {
	return "storage temporarily unavailable"
}

// Details returns detailed error information.
func (e *StorageError) Details() string {
	return e.details
}
