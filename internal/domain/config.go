package domain

// PomodoroConfig holds the session lengths, in whole minutes, and the number
// of work sessions that earn a long break.
type PomodoroConfig struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
	PomodorosPerCycle int
}

// DefaultPomodoroConfig returns the standard 25/5/15 configuration.
func DefaultPomodoroConfig() PomodoroConfig {
	return PomodoroConfig{
		WorkMinutes:       25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		PomodorosPerCycle: 4,
	}
}

// Validate rejects non-positive durations and cycle lengths.
func (c PomodoroConfig) Validate() error {
	durations := []struct {
		field string
		value int
	}{
		{"work duration", c.WorkMinutes},
		{"short break duration", c.ShortBreakMinutes},
		{"long break duration", c.LongBreakMinutes},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return &ConfigError{Field: d.field, Value: d.value, Err: ErrInvalidDuration}
		}
	}
	if c.PomodorosPerCycle <= 0 {
		return &ConfigError{Field: "pomodoros per cycle", Value: c.PomodorosPerCycle, Err: ErrInvalidPomodoros}
	}
	return nil
}

// Minutes returns the configured length of a session type.
func (c PomodoroConfig) Minutes(t SessionType) int {
	switch t {
	case SessionTypeShortBreak:
		return c.ShortBreakMinutes
	case SessionTypeLongBreak:
		return c.LongBreakMinutes
	default:
		return c.WorkMinutes
	}
}
