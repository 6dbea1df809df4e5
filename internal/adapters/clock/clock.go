// Package clock provides the wall-clock implementation of ports.Clock.
package clock

import (
	"time"

	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// System reads the real time and sleeps on real timers.
type System struct{}

// New creates a wall clock.
func New() *System {
	return &System{}
}

// Ensure System implements ports.Clock.
var _ ports.Clock = (*System)(nil)

// Now returns time.Now().
func (System) Now() time.Time {
	return time.Now()
}

// After wraps time.After.
func (System) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
