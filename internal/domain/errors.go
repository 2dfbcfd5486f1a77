package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrGuardrail     = errors.New("publish guardrail violation")
	ErrSlugExhausted = errors.New("slug candidates exhausted")
	ErrUpstream      = errors.New("upstream failure")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ReferenceError reports a slug in a request that does not resolve to a row.
// It is a client error (the request references something unknown), not a
// missing resource addressed by the URL.
type ReferenceError struct {
	Kind string // "topic", "subcategory", "question"
	Slug string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Slug)
}

func (e *ReferenceError) Unwrap() error { return ErrNotFound }

// GuardrailError reports a rejected publish-state transition.
type GuardrailError struct {
	Reason string
}

func (e *GuardrailError) Error() string { return e.Reason }

func (e *GuardrailError) Unwrap() error { return ErrGuardrail }

// NewGuardrailError creates a GuardrailError with the given reason.
func NewGuardrailError(reason string) *GuardrailError {
	return &GuardrailError{Reason: reason}
}

// ConflictError explains why a write was refused because of existing state.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflictError creates a ConflictError with the given message.
func NewConflictError(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
