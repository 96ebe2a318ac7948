package descent

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a physical input is out of its domain (e.g. a non-positive airspeed).
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDegenerateInput is returned when an intermediate quantity becomes zero or non-finite.
	ErrDegenerateInput = errors.New("degenerate input")
	// ErrInvalidInput is returned when textual input cannot be parsed as a number.
	ErrInvalidInput = errors.New("invalid input")
)

// ParameterError describes which field violated which constraint.
// It unwraps to one of ErrInvalidParameter, ErrDegenerateInput or ErrInvalidInput.
type ParameterError struct {
	Field  string
	Value  float64
	Input  string // raw text, only set for ErrInvalidInput
	Reason string
	kind   error
}

func (e *ParameterError) Error() string {
	if e.kind == ErrInvalidInput {
		return fmt.Sprintf("%s: %s=%q %s", e.kind, e.Field, e.Input, e.Reason)
	}
	return fmt.Sprintf("%s: %s=%g %s", e.kind, e.Field, e.Value, e.Reason)
}

// Unwrap returns the error kind.
func (e *ParameterError) Unwrap() error {
	return e.kind
}

func invalidParameter(field string, value float64, reason string) error {
	return &ParameterError{Field: field, Value: value, Reason: reason, kind: ErrInvalidParameter}
}

func degenerateInput(field string, value float64, reason string) error {
	return &ParameterError{Field: field, Value: value, Reason: reason, kind: ErrDegenerateInput}
}

func invalidInput(field, input, reason string) error {
	return &ParameterError{Field: field, Input: input, Reason: reason, kind: ErrInvalidInput}
}
