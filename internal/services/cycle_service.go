package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// sessionRunner is the part of SessionRunner the cycle depends on.
type sessionRunner interface {
	Run(ctx context.Context, kind domain.SessionType, minutes int) (domain.SessionOutcome, error)
}

// CycleService alternates work sessions and breaks until cancelled.
type CycleService struct {
	config    domain.PomodoroConfig
	runner    sessionRunner
	presenter ports.Presenter
	logger    *slog.Logger
	state     domain.CycleState
}

// NewCycleService validates config and creates the controller.
func NewCycleService(config domain.PomodoroConfig, runner sessionRunner, presenter ports.Presenter, logger *slog.Logger) (*CycleService, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CycleService{
		config:    config,
		runner:    runner,
		presenter: presenter,
		logger:    logger,
	}, nil
}

// State returns the current cycle counters.
func (s *CycleService) State() domain.CycleState {
	return s.state
}

// Run loops Work, break, Work, ... and only returns once ctx is cancelled
// (nil error) or a session fails to start. A cancelled session is not
// counted and no further session is started.
func (s *CycleService) Run(ctx context.Context) error {
	for {
		kind, minutes := s.config.NextSession(s.state)
		s.logger.Debug("next session",
			"type", string(kind),
			"minutes", minutes,
			"break", kind.IsBreak(),
			"completed_work_sessions", s.state.CompletedWorkSessions,
			"until_long_break", s.config.SessionsUntilLongBreak(s.state),
		)

		outcome, err := s.runner.Run(ctx, kind, minutes)
		if err != nil {
			return fmt.Errorf("session failed: %w", err)
		}

		if outcome == domain.SessionCancelled {
			s.logger.Debug("cycle stopped", "completed_work_sessions", s.state.CompletedWorkSessions)
			s.presenter.Stopped(s.state.CompletedWorkSessions)
			return nil
		}

		s.state = s.state.Complete(kind)
	}
}
