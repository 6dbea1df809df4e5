package notification

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// Slot is one of the six event/session-kind cue positions.
type Slot struct {
	Event   ports.EventKind
	Session domain.SessionType
}

// SlotFor returns the slot an event plays.
func SlotFor(event ports.Event) Slot {
	return Slot{Event: event.Kind, Session: event.Session}
}

// AllSlots lists the six slots.
func AllSlots() []Slot {
	var slots []Slot
	for _, t := range domain.SessionTypes {
		slots = append(slots,
			Slot{Event: ports.EventSessionStarted, Session: t},
			Slot{Event: ports.EventSessionCompleted, Session: t},
		)
	}
	return slots
}

// Filename is the asset looked up for the slot, e.g. "short_break_end.wav".
func (s Slot) Filename() string {
	return fmt.Sprintf("%s_%s.wav", s.Session, s.Event)
}

func (s Slot) String() string {
	return fmt.Sprintf("%s/%s", s.Session, s.Event)
}

// Sounds maps each slot with an asset present on disk to its path.
type Sounds map[Slot]string

// ProbeSounds checks dir once for every slot's asset. A missing directory
// yields an empty map.
func ProbeSounds(dir string) Sounds {
	sounds := Sounds{}
	if dir == "" {
		return sounds
	}
	for _, slot := range AllSlots() {
		path := filepath.Join(dir, slot.Filename())
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			sounds[slot] = path
		}
	}
	return sounds
}
