// Package errors defines the error values shared across the autocomplete engine.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrNilSettings is returned when a component is constructed without settings
	ErrNilSettings = errors.New("settings cannot be nil")

	// ErrNilProjector is returned when a session is constructed without an item projector
	ErrNilProjector = errors.New("projector cannot be nil")

	// ErrUnknownField is returned when a configured secondary field has no accessor
	ErrUnknownField = errors.New("unknown secondary field")

	// ErrInvalidSettings is returned when settings validation fails
	ErrInvalidSettings = errors.New("invalid settings")
)

// UnknownFieldError represents a secondary field configured in the settings
// for which the projector supplies no accessor.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("secondary field '%s' has no accessor in the projector", e.Field)
}

func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}

// NewUnknownFieldError creates a new UnknownFieldError
func NewUnknownFieldError(field string) *UnknownFieldError {
	return &UnknownFieldError{Field: field}
}

// InvalidSettingsError represents a settings validation failure with the
// individual conflict messages attached.
type InvalidSettingsError struct {
	Conflicts []string
}

func (e *InvalidSettingsError) Error() string {
	return fmt.Sprintf("invalid settings: %v", e.Conflicts)
}

func (e *InvalidSettingsError) Is(target error) bool {
	return target == ErrInvalidSettings
}

// NewInvalidSettingsError creates a new InvalidSettingsError
func NewInvalidSettingsError(conflicts []string) *InvalidSettingsError {
	return &InvalidSettingsError{Conflicts: conflicts}
}
