// Package config provides configuration management for the pomodoro timer.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/xvierd/pomodoro-cli/internal/domain"
)

// EnvPrefix is prepended to every environment override, e.g. POMODORO_WORK.
const EnvPrefix = "POMODORO"

// Config holds all configuration for the pomodoro timer.
type Config struct {
	Work          int                `mapstructure:"work"`
	ShortBreak    int                `mapstructure:"short_break"`
	LongBreak     int                `mapstructure:"long_break"`
	Pomodoros     int                `mapstructure:"pomodoros"`
	Mute          bool               `mapstructure:"mute"`
	Debug         bool               `mapstructure:"debug"`
	SoundsDir     string             `mapstructure:"sounds_dir"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Display       DisplayConfig      `mapstructure:"display"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// NotificationConfig holds desktop notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DisplayConfig holds optional presenter features.
type DisplayConfig struct {
	GitContext bool `mapstructure:"git_context"`
	BigClock   bool `mapstructure:"big_clock"`
}

// ThemeConfig holds the presenter colours.
type ThemeConfig struct {
	ColorWork       string `mapstructure:"color_work"`
	ColorShortBreak string `mapstructure:"color_short_break"`
	ColorLongBreak  string `mapstructure:"color_long_break"`
	ColorTitle      string `mapstructure:"color_title"`
	ColorHelp       string `mapstructure:"color_help"`
	ColorMessage    string `mapstructure:"color_message"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorWork:       "#E06C75",
		ColorShortBreak: "#98C379",
		ColorLongBreak:  "#61AFEF",
		ColorTitle:      "#6B7280",
		ColorHelp:       "#95A5A6",
		ColorMessage:    "#E5C07B",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	pomodoro := domain.DefaultPomodoroConfig()
	return &Config{
		Work:          pomodoro.WorkMinutes,
		ShortBreak:    pomodoro.ShortBreakMinutes,
		LongBreak:     pomodoro.LongBreakMinutes,
		Pomodoros:     pomodoro.PomodorosPerCycle,
		Notifications: NotificationConfig{Enabled: true},
		Display:       DisplayConfig{GitContext: true},
		Theme:         DefaultThemeConfig(),
	}
}

// New returns a viper instance with defaults and environment overrides
// registered. Flags are bound to it by the caller.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, and unmarshals the merged settings.
// An empty configPath means the default location, which is optional; an
// explicit path must exist.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	explicit := configPath != ""
	if !explicit {
		var err error
		configPath, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	dir, err := expandHome(cfg.SoundsDir)
	if err != nil {
		return nil, err
	}
	cfg.SoundsDir = dir

	return &cfg, nil
}

// Validate reports the first invalid timer setting as a *domain.ConfigError.
func (c *Config) Validate() error {
	return c.ToPomodoroDomainConfig().Validate()
}

// ToPomodoroDomainConfig converts the config to the domain PomodoroConfig.
func (c *Config) ToPomodoroDomainConfig() domain.PomodoroConfig {
	return domain.PomodoroConfig{
		WorkMinutes:       c.Work,
		ShortBreakMinutes: c.ShortBreak,
		LongBreakMinutes:  c.LongBreak,
		PomodorosPerCycle: c.Pomodoros,
	}
}

// ResolveSoundsDir returns the configured sounds directory, or the "sounds"
// directory next to the running executable.
func (c *Config) ResolveSoundsDir() string {
	if c.SoundsDir != "" {
		return c.SoundsDir
	}
	exe, err := os.Executable()
	if err != nil {
		return "sounds"
	}
	return filepath.Join(filepath.Dir(exe), "sounds")
}

// GetConfigPath returns the path to the default config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pomodoro", "config.toml"), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("work", defaults.Work)
	v.SetDefault("short_break", defaults.ShortBreak)
	v.SetDefault("long_break", defaults.LongBreak)
	v.SetDefault("pomodoros", defaults.Pomodoros)
	v.SetDefault("mute", false)
	v.SetDefault("debug", false)
	v.SetDefault("sounds_dir", "")
	v.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	v.SetDefault("display.git_context", defaults.Display.GitContext)
	v.SetDefault("display.big_clock", defaults.Display.BigClock)

	v.SetDefault("theme.color_work", defaults.Theme.ColorWork)
	v.SetDefault("theme.color_short_break", defaults.Theme.ColorShortBreak)
	v.SetDefault("theme.color_long_break", defaults.Theme.ColorLongBreak)
	v.SetDefault("theme.color_title", defaults.Theme.ColorTitle)
	v.SetDefault("theme.color_help", defaults.Theme.ColorHelp)
	v.SetDefault("theme.color_message", defaults.Theme.ColorMessage)
}
