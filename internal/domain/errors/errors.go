// Package errors defines the application error taxonomy. Every failure a
// caller can act on is a predeclared AppError value; the HTTP layer maps them
// to the response envelope without inspecting error strings.
package errors

import (
	"net/http"

	"depot/internal/errors"
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

// WithDetails returns a copy of the error carrying detailed information.
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
	// Identifier errors — malformed input, never retried.
	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"the supplied identifier is malformed",
		"",
	)

	ErrInvalidReference = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REFERENCE",
		"the supplied reference identifier is malformed",
		"",
	)

	// Not-found errors — referenced entity absent, terminal for the call.
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"pickup location not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	// ErrUserVanished reports the post-condition failure of the admin
	// workflow: the user existed at the initial check but disappeared before
	// the final write. Distinct code so callers can tell the two apart.
	ErrUserVanished = NewBaseError(
		http.StatusNotFound,
		"USER_VANISHED",
		"user no longer exists",
		"",
	)

	ErrNoNearbyLocation = NewBaseError(
		http.StatusNotFound,
		"NO_NEARBY_LOCATION",
		"no active pickup location within the search radius",
		"",
	)

	// Conflict errors — a uniqueness/exclusivity invariant would be violated.
	ErrAdminEmailInUse = NewBaseError(
		http.StatusConflict,
		"ADMIN_EMAIL_IN_USE",
		"a user with this email already exists",
		"",
	)

	ErrLocationAlreadyAssigned = NewBaseError(
		http.StatusConflict,
		"LOCATION_ALREADY_ASSIGNED",
		"this pickup location is already assigned to another user",
		"",
	)

	ErrAdminHasLocation = NewBaseError(
		http.StatusConflict,
		"ADMIN_HAS_LOCATION",
		"this user already manages a pickup location",
		"",
	)

	// Role / validation errors.
	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"the user does not hold the role required for this operation",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Login-code errors.
	ErrLoginCodeInvalid = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_CODE_INVALID",
		"invalid login code",
		"",
	)

	ErrLoginCodeExpired = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_CODE_EXPIRED",
		"login code has expired",
		"",
	)

	// Write failures.
	ErrUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPDATE_FAILED",
		"the write reported no effect",
		"",
	)

	// General errors.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
