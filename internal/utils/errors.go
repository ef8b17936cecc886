package utils

import (
	"errors"
	"strings"
)

/*
   Sentinel errors for the onboarding domain logic.
   The controller can do: if errors.Is(err, ErrXYZ) { ... }
*/
var (
	ErrPropertyNotFound  = errors.New("property_not_found")
	ErrInvalidStepNumber = errors.New("Invalid step number")
)

/*
   ValidationError is returned by the strict create/finalize paths when the
   field validator or a cross-field check rejects the submission. It carries
   the full list of human-readable messages so the controller can return them
   as response details.
*/
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func NewValidationError(messages []string) error {
	return &ValidationError{Messages: messages}
}
