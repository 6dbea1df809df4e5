// Package services implements the timer use cases: running one session and
// driving the work/break cycle.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// DefaultTick is the interval between countdown frames.
const DefaultTick = time.Second

// SessionRunner drives a single session from start to expiry or cancellation.
type SessionRunner struct {
	clock     ports.Clock
	presenter ports.Presenter
	notifier  ports.Notifier
	logger    *slog.Logger
	tick      time.Duration
}

// RunnerOption configures a SessionRunner.
type RunnerOption func(*SessionRunner)

// WithTick overrides the interval between frames. Non-positive values are
// ignored.
func WithTick(d time.Duration) RunnerOption {
	return func(r *SessionRunner) {
		if d > 0 {
			r.tick = d
		}
	}
}

// NewSessionRunner creates a runner ticking once per DefaultTick.
func NewSessionRunner(clock ports.Clock, presenter ports.Presenter, notifier ports.Notifier, logger *slog.Logger, opts ...RunnerOption) *SessionRunner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &SessionRunner{
		clock:     clock,
		presenter: presenter,
		notifier:  notifier,
		logger:    logger,
		tick:      DefaultTick,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run times one session. It returns SessionCompleted when the countdown
// reaches zero and SessionCancelled as soon as ctx is done. A session whose
// ctx is already done is neither announced nor notified. The only error is
// a non-positive duration, reported before anything is rendered.
func (r *SessionRunner) Run(ctx context.Context, kind domain.SessionType, minutes int) (domain.SessionOutcome, error) {
	session, err := domain.NewRunningSession(kind, minutes, r.clock.Now())
	if err != nil {
		return "", fmt.Errorf("failed to start %s session: %w", kind.Label(), err)
	}

	log := r.logger.With("session_id", session.ID, "type", string(kind))
	if ctx.Err() != nil {
		return r.cancel(log, session)
	}
	log.Debug("session started", "total_seconds", session.TotalSeconds, "ends_at", session.EndsAt())

	r.notifier.Notify(ports.Event{Kind: ports.EventSessionStarted, Session: kind})
	r.presenter.SessionStarting(kind, minutes)

	for {
		if ctx.Err() != nil {
			return r.cancel(log, session)
		}

		remaining := session.RemainingSeconds(r.clock.Now())
		r.presenter.Render(ports.Frame{
			SessionID:        session.ID,
			Type:             kind,
			RemainingSeconds: remaining,
			TotalSeconds:     session.TotalSeconds,
		})
		log.Debug("tick", "remaining", remaining, "elapsed", session.TotalSeconds-remaining)

		if remaining == 0 {
			break
		}

		select {
		case <-ctx.Done():
			return r.cancel(log, session)
		case <-r.clock.After(r.tick):
		}
	}

	r.presenter.SessionCompleted(kind)
	r.notifier.Notify(ports.Event{Kind: ports.EventSessionCompleted, Session: kind})
	log.Debug("session completed")

	return domain.SessionCompleted, nil
}

func (r *SessionRunner) cancel(log *slog.Logger, session *domain.RunningSession) (domain.SessionOutcome, error) {
	now := r.clock.Now()
	log.Debug("session cancelled",
		"remaining", session.RemainingSeconds(now),
		"elapsed", session.ElapsedSeconds(now),
	)
	return domain.SessionCancelled, nil
}
