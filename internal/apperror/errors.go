// Package apperror provides domain-specific error types for teamcal.
// These errors carry an HTTP status code, a user-safe message and, for form
// validation, the names of the inputs the browser should flag as invalid.
// The Echo error handler maps them to HTTP responses automatically.
//
// NEVER return raw database or infrastructure errors to the client. Always
// wrap them in an apperror type or return a generic internal error.
package apperror

import (
	"fmt"
	"net/http"
)

// AppError is the base error type for all domain errors. It carries an
// HTTP status code, a machine-readable error type, and a human-readable
// message safe to show to the client.
type AppError struct {
	// Code is the HTTP status code (e.g., 404, 400, 500).
	Code int `json:"-"`

	// Type is a machine-readable error classifier (e.g., "not_found").
	Type string `json:"type"`

	// Message is a human-readable description safe for the client.
	Message string `json:"message"`

	// Fields names the form inputs that caused the error. The browser marks
	// each of them with aria-invalid.
	Fields []string `json:"fields,omitempty"`

	// Internal holds the underlying error for logging. Never exposed to client.
	Internal error `json:"-"`
}

// WithFields returns a copy of the error carrying the given invalid field names.
func (e *AppError) WithFields(fields ...string) *AppError {
	cp := *e
	cp.Fields = append([]string(nil), fields...)
	return &cp
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Internal
}

// --- Constructors for common error types ---

// NewNotFound creates a 404 Not Found error.
func NewNotFound(message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Type:    "not_found",
		Message: message,
	}
}

// NewBadRequest creates a 400 Bad Request error.
func NewBadRequest(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Type:    "bad_request",
		Message: message,
	}
}

// NewUnauthorized creates a 401 Unauthorized error.
func NewUnauthorized(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnauthorized,
		Type:    "unauthorized",
		Message: message,
	}
}

// NewStatus creates an error for an arbitrary HTTP status, used when relaying
// a failure from the backend whose body is already user-facing text.
func NewStatus(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Type:    statusType(code),
		Message: message,
	}
}

// NewBadGateway creates a 502 error for an unreachable or misbehaving backend.
func NewBadGateway(err error) *AppError {
	return &AppError{
		Code:     http.StatusBadGateway,
		Type:     "bad_gateway",
		Message:  "The backend could not be reached. Please try again.",
		Internal: err,
	}
}

// statusType maps a status code to the machine-readable Type used by the
// other constructors.
func statusType(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusUnprocessableEntity:
		return "validation_error"
	case http.StatusBadGateway:
		return "bad_gateway"
	}
	if code >= 500 {
		return "internal_error"
	}
	return "error"
}

// NewInternal creates a 500 Internal Server Error. The real error is stored
// in Internal for logging but the client only sees a generic message.
func NewInternal(err error) *AppError {
	return &AppError{
		Code:     http.StatusInternalServerError,
		Type:     "internal_error",
		Message:  "An unexpected error occurred. Please try again.",
		Internal: err,
	}
}

// NewValidation creates a 422 Unprocessable Entity error for validation failures.
func NewValidation(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Type:    "validation_error",
		Message: message,
	}
}
