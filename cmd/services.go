package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro-cli/internal/adapters/clock"
	"github.com/xvierd/pomodoro-cli/internal/adapters/git"
	"github.com/xvierd/pomodoro-cli/internal/adapters/notification"
	"github.com/xvierd/pomodoro-cli/internal/adapters/terminal"
	"github.com/xvierd/pomodoro-cli/internal/config"
	"github.com/xvierd/pomodoro-cli/internal/logging"
	"github.com/xvierd/pomodoro-cli/internal/ports"
	"github.com/xvierd/pomodoro-cli/internal/services"
)

// gitDetectTimeout bounds the startup git lookup.
const gitDetectTimeout = 2 * time.Second

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config    *config.Config
	logger    *slog.Logger
	presenter *terminal.Presenter
	notifier  *notification.Notifier
	runner    *services.SessionRunner
	cycle     *services.CycleService
}

// initializeServices probes the notification backends and wires the
// presenter, runner and cycle for a validated config.
func initializeServices(cfg *config.Config, out, errOut io.Writer) (*appDeps, error) {
	logger := logging.New(errOut, cfg.Debug)
	beeep.AppName = notification.Title

	soundsDir := cfg.ResolveSoundsDir()
	sounds := notification.ProbeSounds(soundsDir)
	var player ports.SoundPlayer
	if p := notification.ProbePlayer(runtime.GOOS, exec.LookPath); p != nil {
		player = p
		logger.Debug("sound player found", "player", p.Name())
	}
	logger.Debug("sounds probed", "dir", soundsDir, "found", len(sounds))

	notifier := notification.New(notification.Options{
		Desktop: notification.NewDesktop(cfg.Notifications.Enabled),
		Player:  player,
		Alerter: notification.NewBeepAlerter(out),
		Sounds:  sounds,
		Mute:    cfg.Mute,
		Logger:  logger,
	})

	var gitInfo *ports.GitInfo
	if cfg.Display.GitContext {
		gitInfo = detectGit(git.NewDetector(), logger)
	}

	presenter := terminal.New(terminal.Options{
		Out:      out,
		Debug:    cfg.Debug,
		Theme:    cfg.Theme,
		BigClock: cfg.Display.BigClock,
		Git:      gitInfo,
	})

	runner := services.NewSessionRunner(clock.New(), presenter, notifier, logger)
	cycle, err := services.NewCycleService(cfg.ToPomodoroDomainConfig(), runner, presenter, logger)
	if err != nil {
		return nil, err
	}

	return &appDeps{
		config:    cfg,
		logger:    logger,
		presenter: presenter,
		notifier:  notifier,
		runner:    runner,
		cycle:     cycle,
	}, nil
}

// detectGit returns the git context for the working directory, or nil.
func detectGit(detector ports.GitDetector, logger *slog.Logger) *ports.GitInfo {
	ctx, cancel := context.WithTimeout(context.Background(), gitDetectTimeout)
	defer cancel()

	info, err := detector.Detect(ctx, "")
	if err != nil {
		logger.Debug("no git context", "error", err)
		return nil
	}
	return info
}

// runTimer runs the cycle until the process is interrupted.
func runTimer(cmd *cobra.Command, cfg *config.Config) error {
	app, err := initializeServices(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, stop := setupSignalHandler()
	defer stop()

	return app.run(ctx)
}

// run drives the cycle and restores the terminal afterwards. An interrupt
// is a normal exit.
func (a *appDeps) run(ctx context.Context) error {
	defer a.presenter.Close()

	if err := a.cycle.Run(ctx); err != nil {
		return err
	}
	a.logger.Debug("timer stopped", "completed_work_sessions", a.cycle.State().CompletedWorkSessions)
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
// Only the first signal is captured; a second one gets the default
// behaviour and kills the process. The returned stop func releases the
// handler.
func setupSignalHandler() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	release := func() { signal.Stop(sigChan) }

	go watchSignals(ctx, sigChan, cancel, release)

	return ctx, func() {
		release()
		cancel()
	}
}

// watchSignals cancels on the first signal and then releases the handler.
func watchSignals(ctx context.Context, sigChan <-chan os.Signal, cancel, release func()) {
	select {
	case <-sigChan:
		cancel()
		release()
	case <-ctx.Done():
	}
}
