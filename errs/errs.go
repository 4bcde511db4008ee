package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced quiz, user or result is absent.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when a user acts on a resource they don't own.
	ErrForbidden = errors.New("forbidden")
	// ErrDuplicateEmail is returned when a signup reuses an existing address.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ValidationError reports a malformed request field. It is raised before any
// side effect happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for a field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// GenerationError reports a failed question-generation call. The provider's
// own message is preserved so callers can surface it.
type GenerationError struct {
	Provider string
	Message  string
	Err      error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("question generation failed (%s): %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("question generation failed (%s): %s", e.Provider, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
