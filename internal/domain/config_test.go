package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPomodoroConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PomodoroConfig)
		wantErr error
		field   string
	}{
		{"defaults", func(*PomodoroConfig) {}, nil, ""},
		{"zero work", func(c *PomodoroConfig) { c.WorkMinutes = 0 }, ErrInvalidDuration, "work duration"},
		{"negative short break", func(c *PomodoroConfig) { c.ShortBreakMinutes = -5 }, ErrInvalidDuration, "short break duration"},
		{"zero long break", func(c *PomodoroConfig) { c.LongBreakMinutes = 0 }, ErrInvalidDuration, "long break duration"},
		{"zero pomodoros", func(c *PomodoroConfig) { c.PomodorosPerCycle = 0 }, ErrInvalidPomodoros, "pomodoros per cycle"},
		{"negative pomodoros", func(c *PomodoroConfig) { c.PomodorosPerCycle = -1 }, ErrInvalidPomodoros, "pomodoros per cycle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPomodoroConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidConfig)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestPomodoroConfig_Minutes(t *testing.T) {
	cfg := DefaultPomodoroConfig()

	assert.Equal(t, 25, cfg.Minutes(SessionTypeWork))
	assert.Equal(t, 5, cfg.Minutes(SessionTypeShortBreak))
	assert.Equal(t, 15, cfg.Minutes(SessionTypeLongBreak))
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{Field: "work duration", Value: 0, Err: ErrInvalidDuration}

	assert.Equal(t, "invalid work duration 0: duration must be a positive number of minutes", err.Error())
}
