package ports

import "github.com/xvierd/pomodoro-cli/internal/domain"

// EventKind identifies a session boundary.
type EventKind string

const (
	EventSessionStarted   EventKind = "start"
	EventSessionCompleted EventKind = "end"
)

// Event is fired by the session runner at a session boundary.
type Event struct {
	Kind    EventKind
	Session domain.SessionType
}

// Notifier fires best-effort side effects at session boundaries.
// Implementations must never block the tick loop or report failure.
type Notifier interface {
	Notify(event Event)
}

// DesktopNotifier shows a system notification.
type DesktopNotifier interface {
	Notify(title, message string) error
}

// SoundPlayer plays an audio file.
type SoundPlayer interface {
	// Play starts playback of the file at path without waiting for it to end.
	Play(path string) error

	// Name identifies the backend in diagnostics.
	Name() string
}

// Alerter emits the universal fallback tone.
type Alerter interface {
	Alert() error
}
