// Package domain contains the core entities of the pomodoro timer: session
// kinds, the cycle state machine and the countdown arithmetic. Nothing in
// here touches the terminal, the clock or the operating system.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors.
var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidDuration  = errors.New("duration must be a positive number of minutes")
	ErrInvalidPomodoros = errors.New("pomodoros per cycle must be positive")
)

// ConfigError reports a configuration value rejected at startup.
type ConfigError struct {
	Field string
	Value int
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %d: %v", e.Field, e.Value, e.Err)
}

// Unwrap lets errors.Is match both the specific reason and ErrInvalidConfig.
func (e *ConfigError) Unwrap() []error {
	return []error{e.Err, ErrInvalidConfig}
}
