package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration marks a roster or cycle setting that cannot produce a schedule.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvariant marks arithmetic that broke a schedule invariant (e.g. a fractional day difference).
	ErrInvariant = errors.New("schedule invariant violated")

	ErrUnitNotFound      = errors.New("unit not found in rotation")
	ErrUnitExists        = errors.New("unit is already in the rotation")
	ErrLastUnit          = errors.New("cannot remove the last unit of the rotation")
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidPlannedDay = errors.New("invalid planned day")
	ErrInvalidSetting    = errors.New("invalid setting")
	ErrInvalidWeekKey    = errors.New("invalid week key")
)

// ConfigError describes which configuration field is invalid.
// It matches ErrInvalidConfiguration with errors.Is.
type ConfigError struct {
	Field  string
	Reason string
}

func NewConfigError(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfiguration, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}
