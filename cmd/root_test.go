package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro-cli/internal/domain"
)

// executeCmd is a helper to execute a cobra command in tests
func executeCmd(cmd *cobra.Command, args ...string) (stdout string, stderr string, err error) {
	bufOut := new(bytes.Buffer)
	bufErr := new(bytes.Buffer)

	cmd.SetOut(bufOut)
	cmd.SetErr(bufErr)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return bufOut.String(), bufErr.String(), err
}

// isolateHome points the default config location at an empty directory.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func TestRootCmd_Use(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}

	if rootCmd.Use != "pomodoro" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "pomodoro")
	}
}

func TestRootCmd_Help(t *testing.T) {
	stdout, _, err := executeCmd(newRootCmd(), "--help")
	if err != nil {
		t.Fatalf("help command failed: %v", err)
	}

	for _, want := range []string{"pomodoro", "--work", "--short-break", "--long-break", "--pomodoros", "--mute", "--debug"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output should contain %q", want)
		}
	}
}

func TestRootCmd_FlagDefaults(t *testing.T) {
	cmd := newRootCmd()

	tests := []struct {
		flag string
		want string
	}{
		{"work", "25"},
		{"short-break", "5"},
		{"long-break", "15"},
		{"pomodoros", "4"},
		{"mute", "false"},
		{"debug", "false"},
		{"no-notify", "false"},
		{"sounds", ""},
		{"config", ""},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := cmd.Flags().Lookup(tt.flag)
			if f == nil {
				t.Fatalf("--%s flag should be registered", tt.flag)
			}
			if f.DefValue != tt.want {
				t.Errorf("--%s default = %q, want %q", tt.flag, f.DefValue, tt.want)
			}
		})
	}
}

func TestRootCmd_RejectsInvalidConfig(t *testing.T) {
	isolateHome(t)

	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{"zero pomodoros", []string{"--pomodoros", "0"}, "pomodoros per cycle"},
		{"zero work", []string{"--work", "0"}, "work duration"},
		{"negative short break", []string{"--short-break", "-1"}, "short break duration"},
		{"zero long break", []string{"--long-break", "0"}, "long break duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCmd(newRootCmd(), tt.args...)
			if err == nil {
				t.Fatal("expected a configuration error")
			}
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("error %v should wrap ErrInvalidConfig", err)
			}
			var cfgErr *domain.ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Field != tt.field {
				t.Errorf("error %v should name field %q", err, tt.field)
			}
			if stdout != "" {
				t.Errorf("nothing should be rendered before validation, got %q", stdout)
			}
		})
	}
}

func TestRootCmd_FlagOverridesConfigFile(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("work = 0\nshort_break = 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// The file's invalid work length is fixed by the flag, so validation
	// reaches the invalid pomodoros flag instead.
	_, _, err := executeCmd(newRootCmd(), "--config", path, "--work", "30", "--pomodoros", "0")

	var cfgErr *domain.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cfgErr.Field != "pomodoros per cycle" {
		t.Errorf("field = %q, want %q", cfgErr.Field, "pomodoros per cycle")
	}
}

func TestRootCmd_EnvOverride(t *testing.T) {
	isolateHome(t)
	t.Setenv("POMODORO_LONG_BREAK", "0")

	_, _, err := executeCmd(newRootCmd())

	var cfgErr *domain.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "long break duration" {
		t.Fatalf("expected long break ConfigError, got %v", err)
	}
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	isolateHome(t)

	_, _, err := executeCmd(newRootCmd(), "--config", filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("an explicit config path that does not exist should fail")
	}
	if errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("a missing file is not a validation error: %v", err)
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, _, err := executeCmd(newRootCmd(), "work")
	if err == nil {
		t.Error("positional arguments should be rejected")
	}
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := executeCmd(newRootCmd(), "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	if !strings.HasPrefix(stdout, "pomodoro "+Version) {
		t.Errorf("version output = %q", stdout)
	}
}

func TestRootCmd_VersionFlag(t *testing.T) {
	stdout, _, err := executeCmd(newRootCmd(), "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}

	if !strings.Contains(stdout, "Version: "+Version) {
		t.Errorf("--version output = %q", stdout)
	}
}
