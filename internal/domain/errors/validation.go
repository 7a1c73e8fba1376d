package errors

import (
	"net/http"
	"strings"
)

// FieldViolation describes a single field-level validation failure.
type FieldViolation struct {
	Field   string `json:"field"`   // The payload field that failed, e.g. "username".
	Rule    string `json:"rule"`    // The rule that rejected it, e.g. "min".
	Message string `json:"message"` // Human-readable description of the failure.
}

// ValidationError carries the full list of field violations for one entity
// payload. It implements AppError so the delivery layer maps it to 422.
type ValidationError struct {
	entity     string
	violations []FieldViolation
}

// NewValidationError creates a validation error for the given entity kind.
func NewValidationError(entity string, violations []FieldViolation) *ValidationError {
	return &ValidationError{
		entity:     entity,
		violations: violations,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return strings.ToUpper(e.entity) + "_VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "The " + e.entity + " payload failed validation."
}

// Details returns the violations joined into a single description
func (e *ValidationError) Details() string {
	parts := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		parts = append(parts, v.Field+": "+v.Message)
	}

	return strings.Join(parts, "; ")
}

// Entity returns the entity kind the payload belonged to.
func (e *ValidationError) Entity() string {
	return e.entity
}

// Violations returns the field-level violation list.
func (e *ValidationError) Violations() []FieldViolation {
	return e.violations
}
