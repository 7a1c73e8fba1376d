// Package errors defines the application's error taxonomy. Services raise
// these typed errors; the delivery layer maps them onto HTTP status codes.
package errors

import (
	"net/http"

	"petclinic/internal/errors"
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
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"The user could not be found in the database.",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"A user with this email or username already exists.",
		"",
	)

	ErrUserUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"USER_UNAUTHORIZED",
		"The user credentials are invalid.",
		"",
	)

	// Owner-related errors
	ErrOwnerNotFound = NewBaseError(
		http.StatusNotFound,
		"OWNER_NOT_FOUND",
		"The owner could not be found in the database.",
		"",
	)

	ErrOwnerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"OWNER_ALREADY_EXISTS",
		"An owner with this email or username already exists.",
		"",
	)

	// Vet-related errors
	ErrVetNotFound = NewBaseError(
		http.StatusNotFound,
		"VET_NOT_FOUND",
		"The vet could not be found in the database.",
		"",
	)

	ErrVetAlreadyExists = NewBaseError(
		http.StatusConflict,
		"VET_ALREADY_EXISTS",
		"A vet with this email or username already exists.",
		"",
	)

	// Pet-related errors
	ErrPetNotFound = NewBaseError(
		http.StatusNotFound,
		"PET_NOT_FOUND",
		"The pet could not be found in the database.",
		"",
	)

	ErrPetAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PET_ALREADY_EXISTS",
		"A pet with this name and breed is already registered for this owner.",
		"",
	)

	// General errors
	ErrUnknown = NewBaseError(
		http.StatusInternalServerError,
		"UNKNOWN_ERROR",
		"Internal server error.",
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
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
