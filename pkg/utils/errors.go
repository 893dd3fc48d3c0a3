package utils

import (
	"errors"
	"fmt"
)

// Kategori error yang dipetakan ke HTTP status di adaptor
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)

// ValidationError membawa pesan per field untuk ditampilkan di form
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, FormatValidationErrors(e.Fields))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a field-level validation error
func NewValidationError(fields map[string]string) error {
	return &ValidationError{Message: "validation failed", Fields: fields}
}

// NewFieldError builds a validation error for a single field
func NewFieldError(field, message string) error {
	return &ValidationError{Message: message, Fields: map[string]string{field: message}}
}

// Wrap tags a user-facing message with one of the sentinel errors above.
// errors.Is(err, kind) holds and err.Error() == message.
func Wrap(kind error, message string) error {
	return &kindError{kind: kind, message: message}
}

type kindError struct {
	kind    error
	message string
}

func (e *kindError) Error() string { return e.message }

func (e *kindError) Unwrap() error { return e.kind }
