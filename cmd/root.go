// Package cmd provides the CLI for the pomodoro timer.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xvierd/pomodoro-cli/internal/config"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

// flagKeys maps command-line flags to their configuration keys.
var flagKeys = map[string]string{
	"work":        "work",
	"short-break": "short_break",
	"long-break":  "long_break",
	"pomodoros":   "pomodoros",
	"mute":        "mute",
	"debug":       "debug",
	"sounds":      "sounds_dir",
}

// newRootCmd builds the root command with its own configuration instance.
func newRootCmd() *cobra.Command {
	v := config.New()
	var configPath string
	var noNotify bool

	cmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Pomodoro - a terminal countdown timer for focused work",
		Long: `Pomodoro cycles through work sessions and breaks: a short break after
each work session and a long break after every N of them.

It runs until interrupted with Ctrl+C.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noNotify {
				v.Set("notifications.enabled", false)
			}
			cfg, err := loadConfig(v, configPath)
			if err != nil {
				return err
			}
			return runTimer(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	defaults := config.DefaultConfig()
	flags.Int("work", defaults.Work, "Work session length in minutes")
	flags.Int("short-break", defaults.ShortBreak, "Short break length in minutes")
	flags.Int("long-break", defaults.LongBreak, "Long break length in minutes")
	flags.Int("pomodoros", defaults.Pomodoros, "Work sessions before a long break")
	flags.Bool("mute", false, "Suppress sounds")
	flags.Bool("debug", false, "Trace every tick and keep the screen history")
	flags.String("sounds", "", "Directory with sound files (default: sounds/ next to the executable)")
	flags.StringVar(&configPath, "config", "", "Path to the config file (default: ~/.pomodoro/config.toml)")
	flags.BoolVar(&noNotify, "no-notify", false, "Disable desktop notifications")

	for name, key := range flagKeys {
		// Lookup cannot fail: every name was registered above.
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	// Set version - cobra handles --version automatically
	cmd.Version = Version
	cmd.SetVersionTemplate("Pomodoro Timer\nVersion: {{.Version}}\n")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// loadConfig merges file, environment and flags, then rejects invalid
// timer settings before anything starts.
func loadConfig(v *viper.Viper, configPath string) (*config.Config, error) {
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
