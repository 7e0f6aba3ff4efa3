// Package errors defines the typed application error used across the
// trigger console's service layers.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Type classifies an application error.
type Type string

const (
	// TypeValidation marks errors caused by invalid client input.
	TypeValidation Type = "validation"
	// TypeNotFound marks lookups for resources that do not exist.
	TypeNotFound Type = "not_found"
	// TypeConflict marks writes that collide with existing state.
	TypeConflict Type = "conflict"
	// TypeConfig marks configuration problems detected at startup.
	TypeConfig Type = "config"
	// TypeConnection marks failures reaching a backing store.
	TypeConnection Type = "connection"
	// TypeInternal marks unexpected internal failures.
	TypeInternal Type = "internal"
)

// AppError is a structured application error carrying a classification and
// an optional wrapped cause.
type AppError struct {
	Type    Type   `json:"type"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error type to a response status code.
func (e *AppError) HTTPStatus() int {
	switch e.Type {
	case TypeValidation:
		return http.StatusUnprocessableEntity
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeConnection:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Validation creates a validation error.
func Validation(msg string) *AppError {
	return &AppError{Type: TypeValidation, Message: msg}
}

// NotFound creates a not-found error for the named resource.
func NotFound(resource string) *AppError {
	return &AppError{Type: TypeNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// Conflict creates a conflict error.
func Conflict(msg string) *AppError {
	return &AppError{Type: TypeConflict, Message: msg}
}

// Config creates a configuration error.
func Config(msg string) *AppError {
	return &AppError{Type: TypeConfig, Message: msg}
}

// Connection creates a connection error wrapping its cause.
func Connection(msg string, cause error) *AppError {
	return &AppError{Type: TypeConnection, Message: msg, Cause: cause}
}

// Internal creates an internal error wrapping its cause.
func Internal(msg string, cause error) *AppError {
	return &AppError{Type: TypeInternal, Message: msg, Cause: cause}
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, t Type) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Type == t
}
