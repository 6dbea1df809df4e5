// Package terminal renders the countdown as a full-screen redraw on a
// terminal, styled with lipgloss.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/muesli/termenv"
	"github.com/xvierd/pomodoro-cli/internal/config"
	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// announceSeconds is how long the start announcement stays above the title.
const announceSeconds = 3

// Options configures a Presenter.
type Options struct {
	Out io.Writer

	// Debug keeps every frame on screen instead of clearing between them.
	Debug bool

	Theme    config.ThemeConfig
	BigClock bool

	// Git is shown under the title when non-nil.
	Git *ports.GitInfo

	// Width overrides terminal size detection; 0 means detect.
	Width int
}

// Presenter implements ports.Presenter.
type Presenter struct {
	out      io.Writer
	screen   *termenv.Output
	renderer *lipgloss.Renderer
	debug    bool
	theme    config.ThemeConfig
	bigClock bool
	git      *ports.GitInfo
	width    int
	bars     map[domain.SessionType]progress.Model
	hidden   bool

	// announcement is shown on the first frames of the current session.
	announcement string
}

// Ensure Presenter implements ports.Presenter.
var _ ports.Presenter = (*Presenter)(nil)

// New creates a presenter writing to opts.Out (stdout when nil).
func New(opts Options) *Presenter {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	renderer := lipgloss.NewRenderer(out)
	p := &Presenter{
		out:      out,
		screen:   termenv.NewOutput(out),
		renderer: renderer,
		debug:    opts.Debug,
		theme:    resolveTheme(opts.Theme),
		bigClock: opts.BigClock,
		git:      opts.Git,
		width:    opts.Width,
	}
	if p.width == 0 {
		p.width = detectWidth(out)
	}

	p.bars = make(map[domain.SessionType]progress.Model, len(domain.SessionTypes))
	for _, t := range domain.SessionTypes {
		bar := progress.New(
			progress.WithSolidFill(p.color(t)),
			progress.WithoutPercentage(),
			progress.WithFillCharacters('█', '░'),
			progress.WithColorProfile(renderer.ColorProfile()),
		)
		bar.Width = domain.ProgressBarWidth
		p.bars[t] = bar
	}
	return p
}

// detectWidth returns the terminal width of out, or 0 when out is not a terminal.
func detectWidth(out io.Writer) int {
	f, ok := out.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(f.Fd()) {
		return 0
	}
	w, _, err := term.GetSize(f.Fd())
	if err != nil {
		return 0
	}
	return w
}

// resolveTheme fills empty colours with defaults.
func resolveTheme(theme config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return config.ThemeConfig{
		ColorWork:       pick(theme.ColorWork, defaults.ColorWork),
		ColorShortBreak: pick(theme.ColorShortBreak, defaults.ColorShortBreak),
		ColorLongBreak:  pick(theme.ColorLongBreak, defaults.ColorLongBreak),
		ColorTitle:      pick(theme.ColorTitle, defaults.ColorTitle),
		ColorHelp:       pick(theme.ColorHelp, defaults.ColorHelp),
		ColorMessage:    pick(theme.ColorMessage, defaults.ColorMessage),
	}
}

// color returns the theme colour for a session type.
func (p *Presenter) color(t domain.SessionType) string {
	switch t {
	case domain.SessionTypeShortBreak:
		return p.theme.ColorShortBreak
	case domain.SessionTypeLongBreak:
		return p.theme.ColorLongBreak
	default:
		return p.theme.ColorWork
	}
}

func (p *Presenter) style(color string) lipgloss.Style {
	return p.renderer.NewStyle().Foreground(lipgloss.Color(color))
}

// clear wipes the previous frame unless debug output must stay visible.
func (p *Presenter) clear() {
	if p.debug {
		return
	}
	p.screen.ClearScreen()
}

func (p *Presenter) write(s string) {
	if p.width > 0 {
		s = p.renderer.PlaceHorizontal(p.width, lipgloss.Center, s)
	}
	_, _ = fmt.Fprintln(p.out, s)
}

// SessionStarting announces the session. Without debug the next Render
// clears the screen, so the announcement is carried into the opening frames.
func (p *Presenter) SessionStarting(t domain.SessionType, minutes int) {
	msg := p.style(p.theme.ColorMessage).Render(
		fmt.Sprintf("Starting %s session (%d minutes)", t.Label(), minutes))
	if p.debug {
		p.write("\n" + msg)
		return
	}
	if !p.hidden {
		p.screen.HideCursor()
		p.hidden = true
	}
	p.announcement = msg
}

// Render redraws the whole countdown.
func (p *Presenter) Render(frame ports.Frame) {
	p.clear()
	p.write(p.View(frame))
}

// View builds the countdown screen for a frame.
func (p *Presenter) View(frame ports.Frame) string {
	kind := p.style(p.color(frame.Type))
	help := p.style(p.theme.ColorHelp)

	sections := []string{""}
	if p.announcement != "" && frame.ElapsedSeconds() < announceSeconds {
		sections = append(sections, p.announcement, "")
	}
	sections = append(sections, kind.Bold(true).Render("=== POMODORO TIMER ==="))

	if p.git != nil && p.git.Branch != "" {
		line := "branch " + p.git.Branch
		if p.git.Commit != "" {
			line += " @ " + shortCommit(p.git.Commit)
		}
		if p.git.Modified > 0 {
			line += fmt.Sprintf(" (%d modified)", p.git.Modified)
		}
		sections = append(sections, p.style(p.theme.ColorTitle).Render(line))
	}

	sections = append(sections, "", kind.Render("Session: "+frame.Type.Label()), "")

	remaining := domain.FormatTime(frame.RemainingSeconds)
	if p.bigClock && (p.width == 0 || p.width >= bigClockWidth(remaining)) {
		sections = append(sections, renderBigTime(remaining, kind.Bold(true)))
	} else {
		sections = append(sections, "Time Remaining: "+kind.Render(remaining))
	}

	prog := frame.Progress()
	bar := p.bars[frame.Type]
	sections = append(sections, "",
		fmt.Sprintf("[%s] %d%%", bar.ViewAs(prog.Ratio()), prog.Percent),
		"",
		help.Render("Press Ctrl+C to exit"),
	)

	return strings.Join(sections, "\n")
}

// SessionCompleted replaces the countdown with the completion message.
func (p *Presenter) SessionCompleted(t domain.SessionType) {
	p.clear()
	p.write("\n" + p.style(p.theme.ColorMessage).Render(t.Label()+" session completed!"))
}

// Stopped clears the screen, prints the stopped message and restores the cursor.
func (p *Presenter) Stopped(completedWorkSessions uint) {
	p.clear()
	msg := p.style(p.theme.ColorMessage)
	p.write("\n" + msg.Render("Timer stopped."))

	noun := "pomodoros"
	if completedWorkSessions == 1 {
		noun = "pomodoro"
	}
	p.write(p.style(p.theme.ColorHelp).Render(
		fmt.Sprintf("Completed %d %s this run.", completedWorkSessions, noun)))
	p.Close()
}

// Close restores the cursor if it was hidden.
func (p *Presenter) Close() {
	if p.hidden {
		p.screen.ShowCursor()
		p.hidden = false
	}
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
