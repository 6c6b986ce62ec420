// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error type for the royalty registry.

Architecture:

  - AppError: A struct containing a machine-readable Code and a caller-safe message.
  - Details: Optional per-field failures collected by the validate package.
  - Matching: [errors.Is] matches any two AppErrors sharing the same Code.

The registry has a single failure mode, INVALID_ARGUMENT, raised synchronously
when construction or query input breaks an invariant.
*/
package apperr

import (
	"errors"
	"strings"
)

// # Error Codes

const (
	// CodeInvalidArgument marks input that violates an entity invariant.
	CodeInvalidArgument = "INVALID_ARGUMENT"
)

// ErrInvalidArgument is the sentinel used with [errors.Is].
var ErrInvalidArgument = &AppError{Code: CodeInvalidArgument, Message: "invalid argument"}

// AppError is the canonical error type of the registry.
//
// The Cause field is for server-side logging only.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "INVALID_ARGUMENT").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the caller.
	Message string `json:"error"`
	// Cause is the underlying error, if any.
	Cause error `json:"-"`
	// Details holds per-field validation errors.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the argument name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface.
//
// Field details are appended so a logged error is self-explanatory:
//
//	Validation failed: title: This field is required
func (e *AppError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}

	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.Field+": "+d.Message)
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an [*AppError] with the same Code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// # Constructors

// InvalidArgument creates an INVALID_ARGUMENT [AppError] with optional per-field details.
//
// Example:
//
//	apperr.InvalidArgument("Validation failed", apperr.FieldError{Field: "date", Message: "This field is required"})
func InvalidArgument(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeInvalidArgument,
		Message: msg,
		Details: details,
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
