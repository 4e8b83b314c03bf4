// Copyright (c) 2026 Melodee. All rights reserved.

/*
Package apperr defines the centralized error handling framework for the
catalog data model.

It provides a rich error type that bridges the gap between low-level storage
errors and the behavior callers (scanner, server, admin tooling) must take.

Architecture:

  - AppError: A struct containing machine-readable ErrorCode and user-friendly messages.
  - Taxonomy: DuplicateKey, DanglingReference, InvalidRange, NotFound plus the
    generic validation/internal buckets.
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes for
    the (out-of-process) admin surface.

Every error that leaves a service must be wrapped as an [AppError] so callers
can branch on Code rather than on raw driver errors.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable error codes carried by [AppError].
const (
	CodeNotFound          = "NOT_FOUND"
	CodeDuplicateKey      = "DUPLICATE_KEY"
	CodeDanglingReference = "DANGLING_REFERENCE"
	CodeInvalidRange      = "INVALID_RANGE"
	CodeValidation        = "VALIDATION_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
)

// AppError is the canonical error type for the catalog.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "DUPLICATE_KEY").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// Scope names the violated constraint or key space, when known
	// (e.g. "ix_albums_artist_id_name", "settings.key").
	Scope string `json:"scope,omitempty"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Lookup Errors

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Song") // Returns "Song not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// # Constraint Errors

// DuplicateKey creates a 409 [AppError] for a unique-constraint violation.
// The scope names the violated uniqueness scope so callers can decide between
// "candidate match, ask for merge/rename" and hard failure.
func DuplicateKey(scope string) *AppError {
	return &AppError{
		Code:       CodeDuplicateKey,
		Message:    fmt.Sprintf("Duplicate value for unique scope %q", scope),
		Scope:      scope,
		HTTPStatus: http.StatusConflict,
	}
}

// DanglingReference creates a 409 [AppError] for a foreign-key violation:
// the referenced parent row does not exist.
func DanglingReference(scope string) *AppError {
	return &AppError{
		Code:       CodeDanglingReference,
		Message:    fmt.Sprintf("Referenced row missing for %q", scope),
		Scope:      scope,
		HTTPStatus: http.StatusConflict,
	}
}

// InvalidRange creates a 422 [AppError] for a value outside a settings-declared
// bound (e.g. an album year outside validation.minimumAlbumYear/maximumAlbumYear).
// Range enforcement is a caller responsibility, never a storage one.
func InvalidRange(field string, msg string) *AppError {
	return &AppError{
		Code:       CodeInvalidRange,
		Message:    msg,
		Scope:      field,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// # Server Errors

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsCode reports whether err carries the given machine-readable code.
func IsCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
