package notification

import (
	"fmt"
	"io"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// BeeepDesktop shows notifications through the platform's native mechanism.
type BeeepDesktop struct{}

// Ensure BeeepDesktop implements ports.DesktopNotifier.
var _ ports.DesktopNotifier = BeeepDesktop{}

// Notify displays a desktop notification.
func (BeeepDesktop) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// NewDesktop returns the desktop backend, or nil when disabled.
func NewDesktop(enabled bool) ports.DesktopNotifier {
	if !enabled {
		return nil
	}
	return BeeepDesktop{}
}

// BellAlerter writes the terminal bell character.
type BellAlerter struct {
	w io.Writer
}

// NewBellAlerter rings the bell on w.
func NewBellAlerter(w io.Writer) *BellAlerter {
	return &BellAlerter{w: w}
}

// Alert rings the terminal bell.
func (a *BellAlerter) Alert() error {
	_, err := fmt.Fprint(a.w, "\a")
	return err
}

// BeepAlerter sounds the system beep and falls back to the terminal bell.
type BeepAlerter struct {
	bell *BellAlerter
	beep func(freq float64, duration int) error
}

// NewBeepAlerter creates the default alert tone backend.
func NewBeepAlerter(w io.Writer) *BeepAlerter {
	return &BeepAlerter{bell: NewBellAlerter(w), beep: beeep.Beep}
}

// Alert plays the tone.
func (a *BeepAlerter) Alert() error {
	if err := a.beep(beeep.DefaultFreq, beeep.DefaultDuration); err == nil {
		return nil
	}
	return a.bell.Alert()
}
