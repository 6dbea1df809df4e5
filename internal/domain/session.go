package domain

import (
	"math"
	"time"
)

// SessionType represents the kind of timed interval.
type SessionType string

const (
	SessionTypeWork       SessionType = "work"
	SessionTypeShortBreak SessionType = "short_break"
	SessionTypeLongBreak  SessionType = "long_break"
)

// SessionTypes lists every kind in cycle order.
var SessionTypes = []SessionType{
	SessionTypeWork,
	SessionTypeShortBreak,
	SessionTypeLongBreak,
}

// Label returns a human-readable label for the session type.
func (t SessionType) Label() string {
	switch t {
	case SessionTypeWork:
		return "Work"
	case SessionTypeShortBreak:
		return "Short Break"
	case SessionTypeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// IsBreak returns true for both break kinds.
func (t SessionType) IsBreak() bool {
	return t == SessionTypeShortBreak || t == SessionTypeLongBreak
}

// SessionOutcome is how a session ended.
type SessionOutcome string

const (
	SessionCompleted SessionOutcome = "completed"
	SessionCancelled SessionOutcome = "cancelled"
)

// RunningSession describes the session currently being timed.
type RunningSession struct {
	ID           string
	Type         SessionType
	TotalSeconds int
	StartedAt    time.Time
}

// NewRunningSession starts a session of the given length at now.
func NewRunningSession(t SessionType, minutes int, now time.Time) (*RunningSession, error) {
	if minutes <= 0 {
		return nil, &ConfigError{Field: string(t) + " duration", Value: minutes, Err: ErrInvalidDuration}
	}
	return &RunningSession{
		ID:           generateID(),
		Type:         t,
		TotalSeconds: minutes * 60,
		StartedAt:    now,
	}, nil
}

// EndsAt returns the wall-clock time at which the session expires.
func (s *RunningSession) EndsAt() time.Time {
	return s.StartedAt.Add(time.Duration(s.TotalSeconds) * time.Second)
}

// RemainingSeconds is recomputed from the end time on every call so that
// tick overhead never accumulates. The result is clamped to [0, TotalSeconds].
func (s *RunningSession) RemainingSeconds(now time.Time) int {
	left := s.EndsAt().Sub(now).Seconds()
	remaining := int(math.Ceil(left))
	if remaining < 0 {
		return 0
	}
	if remaining > s.TotalSeconds {
		return s.TotalSeconds
	}
	return remaining
}

// ElapsedSeconds returns TotalSeconds minus RemainingSeconds.
func (s *RunningSession) ElapsedSeconds(now time.Time) int {
	return s.TotalSeconds - s.RemainingSeconds(now)
}
