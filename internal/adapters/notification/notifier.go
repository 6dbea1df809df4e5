// Package notification dispatches desktop notifications and audible cues at
// session boundaries. Every failure is absorbed here and degrades to the
// terminal alert tone.
package notification

import (
	"fmt"
	"log/slog"

	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// Title is the desktop notification title for every event.
const Title = "Pomodoro Timer"

// Options configures a Notifier. Nil Desktop disables desktop notifications;
// nil Player means no external audio player was found.
type Options struct {
	Desktop ports.DesktopNotifier
	Player  ports.SoundPlayer
	Alerter ports.Alerter
	Sounds  Sounds
	Mute    bool
	Logger  *slog.Logger
}

// Notifier implements ports.Notifier.
type Notifier struct {
	desktop ports.DesktopNotifier
	player  ports.SoundPlayer
	alerter ports.Alerter
	sounds  Sounds
	mute    bool
	logger  *slog.Logger
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a notifier from the probed backends.
func New(opts Options) *Notifier {
	n := &Notifier{
		desktop: opts.Desktop,
		player:  opts.Player,
		alerter: opts.Alerter,
		sounds:  opts.Sounds,
		mute:    opts.Mute,
		logger:  opts.Logger,
	}
	if n.logger == nil {
		n.logger = slog.Default()
	}
	if n.sounds == nil {
		n.sounds = Sounds{}
	}
	return n
}

// Notify fires the desktop notification and, unless muted, the audible cue
// for the event's slot.
func (n *Notifier) Notify(event ports.Event) {
	if n.desktop != nil {
		if err := n.desktop.Notify(Title, Message(event)); err != nil {
			n.logger.Debug("desktop notification failed", "event", string(event.Kind), "error", err)
		}
	}

	if n.mute {
		return
	}
	n.playCue(SlotFor(event))
}

func (n *Notifier) playCue(slot Slot) {
	if path, ok := n.sounds[slot]; ok && n.player != nil {
		err := n.player.Play(path)
		if err == nil {
			n.logger.Debug("sound played", "slot", slot.String(), "player", n.player.Name())
			return
		}
		n.logger.Debug("sound playback failed", "slot", slot.String(), "player", n.player.Name(), "error", err)
	}

	if n.alerter == nil {
		return
	}
	if err := n.alerter.Alert(); err != nil {
		n.logger.Debug("alert tone failed", "error", err)
	}
}

// Message returns the desktop notification text for an event.
func Message(event ports.Event) string {
	switch event.Kind {
	case ports.EventSessionStarted:
		return fmt.Sprintf("%s session started", event.Session.Label())
	case ports.EventSessionCompleted:
		return fmt.Sprintf("%s session completed!", event.Session.Label())
	default:
		return event.Session.Label()
	}
}
