package calculation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a rejected input record. Callers match it with errors.Is.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInputTooLarge marks an input whose work would exceed the iteration guard.
	ErrInputTooLarge = errors.New("input too large")
	// ErrUnknownCountry is returned by LookupCountryTax for codes not in the table.
	ErrUnknownCountry = errors.New("unknown country")
)

// ValidationError names the offending field of a rejected input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match.
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
