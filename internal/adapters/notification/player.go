package notification

import (
	"os/exec"
	"strings"

	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// ExecPlayer plays sounds through an external command.
type ExecPlayer struct {
	name string
	argv func(path string) []string
}

// Ensure ExecPlayer implements ports.SoundPlayer.
var _ ports.SoundPlayer = (*ExecPlayer)(nil)

// Name returns the player binary.
func (p *ExecPlayer) Name() string {
	return p.name
}

// Args returns the argument list used to play path.
func (p *ExecPlayer) Args(path string) []string {
	return p.argv(path)
}

// Play starts the player and reaps it in the background.
func (p *ExecPlayer) Play(path string) error {
	cmd := exec.Command(p.name, p.argv(path)...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

func appendPath(args ...string) func(string) []string {
	return func(path string) []string {
		return append(append([]string{}, args...), path)
	}
}

func powershellArgs(path string) []string {
	quoted := strings.ReplaceAll(path, "'", "''")
	return []string{
		"-NoProfile", "-NonInteractive", "-Command",
		"(New-Object Media.SoundPlayer '" + quoted + "').PlaySync()",
	}
}

// playerCandidates lists players in preference order per platform.
func playerCandidates(goos string) []*ExecPlayer {
	switch goos {
	case "darwin":
		return []*ExecPlayer{{name: "afplay", argv: appendPath()}}
	case "windows":
		return []*ExecPlayer{{name: "powershell", argv: powershellArgs}}
	default:
		return []*ExecPlayer{
			{name: "paplay", argv: appendPath()},
			{name: "aplay", argv: appendPath("-q")},
			{name: "ffplay", argv: appendPath("-nodisp", "-autoexit", "-loglevel", "quiet")},
			{name: "mpv", argv: appendPath("--no-video", "--really-quiet")},
		}
	}
}

// ProbePlayer returns the first available player for goos, or nil.
// lookPath is exec.LookPath outside tests.
func ProbePlayer(goos string, lookPath func(string) (string, error)) *ExecPlayer {
	for _, p := range playerCandidates(goos) {
		if _, err := lookPath(p.name); err == nil {
			return p
		}
	}
	return nil
}
