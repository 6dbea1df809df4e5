package ports

import "github.com/xvierd/pomodoro-cli/internal/domain"

// Frame is one countdown render.
type Frame struct {
	SessionID        string
	Type             domain.SessionType
	RemainingSeconds int
	TotalSeconds     int
}

// ElapsedSeconds returns TotalSeconds minus RemainingSeconds.
func (f Frame) ElapsedSeconds() int {
	return f.TotalSeconds - f.RemainingSeconds
}

// Progress applies the progress-bar law to the frame.
func (f Frame) Progress() domain.Progress {
	return domain.ComputeProgress(f.ElapsedSeconds(), f.TotalSeconds)
}

// Presenter renders the timer to the user.
// This is a driven port (implemented by adapters). Callers never consult
// its outcome, so implementations swallow their own write errors.
type Presenter interface {
	// SessionStarting announces a new session before its first frame.
	SessionStarting(t domain.SessionType, minutes int)

	// Render redraws the countdown.
	Render(frame Frame)

	// SessionCompleted replaces the countdown once a session expires.
	SessionCompleted(t domain.SessionType)

	// Stopped clears the display and prints the stopped message.
	Stopped(completedWorkSessions uint)
}
