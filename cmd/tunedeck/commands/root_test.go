package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/tunedeck/internal/errors"
	"github.com/thoreinstein/tunedeck/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()
	t.Setenv("TUNEDECK_DEBUG", "")

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > logging.LevelTrace {
				shouldBeDisabled := tt.wantLevel - 4
				if logger.Enabled(t.Context(), shouldBeDisabled) {
					t.Errorf("expected level %v to be disabled", shouldBeDisabled)
				}
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"TUNEDECK_DEBUG=1", "1", slog.LevelDebug},
		{"TUNEDECK_DEBUG=true", "true", slog.LevelDebug},
		{"TUNEDECK_DEBUG=2", "2", logging.LevelTrace},
		{"TUNEDECK_DEBUG=0", "0", slog.LevelWarn},
		{"TUNEDECK_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv("TUNEDECK_DEBUG", tt.envVal)

			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel == slog.LevelDebug && logger.Enabled(t.Context(), logging.LevelTrace) {
				t.Error("expected Trace level to be disabled")
			}
		})
	}
}

func TestSetupLogging_QuietAndVerbose(t *testing.T) {
	testEnv(t)

	_, err := runCLI(t, "-q", "-v", "config", "path")
	if err == nil {
		t.Fatal("expected error for --quiet with --verbose")
	}
	if !errors.Is(err, errors.ErrInvalidArgument) {
		t.Errorf("error = %v, want ErrInvalidArgument", err)
	}
}

func TestSetupLogging_LogFile(t *testing.T) {
	testEnv(t)
	logPath := filepath.Join(t.TempDir(), "tunedeck.log")

	if _, err := runCLI(t, "-vv", "--log-file", logPath, "config", "list"); err != nil {
		t.Fatalf("config list failed: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"seeding default settings"`) {
		t.Errorf("log file missing seeding record:\n%s", data)
	}
}

func TestRoot_ConfigFile(t *testing.T) {
	settingsPath := testEnv(t)
	dir := t.TempDir()
	alt := filepath.Join(dir, "alt.json")
	cfgPath := filepath.Join(dir, "cli.yaml")
	content := "settings_file: " + alt + "\nlog_format: json\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	// The environment would otherwise override the file.
	t.Setenv("TUNEDECK_SETTINGS_FILE", "")

	out, err := runCLI(t, "--config", cfgPath, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if got := strings.TrimSpace(out); got != alt {
		t.Errorf("settings path = %q, want %q", got, alt)
	}
	if got := strings.TrimSpace(out); got == settingsPath {
		t.Error("--config was ignored")
	}
}

func TestRoot_MissingConfigFile(t *testing.T) {
	testEnv(t)

	_, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "config", "list")
	if err == nil {
		t.Fatal("expected error for missing --config file")
	}
	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %T, want *ExitError", err)
	}
	if exitErr.Suggestion != "Run: tunedeck config validate" {
		t.Errorf("suggestion = %q", exitErr.Suggestion)
	}
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestRoot_InvalidCLIConfig(t *testing.T) {
	testEnv(t)
	t.Setenv("TUNEDECK_LOG_FORMAT", "xml")

	_, err := runCLI(t, "config", "list")
	if err == nil {
		t.Fatal("expected error for invalid log_format")
	}
	if got := errors.ExitCode(err); got != errors.ExitUser {
		t.Errorf("exit code = %d, want %d", got, errors.ExitUser)
	}
}

func TestRoot_RepeatedExecution(t *testing.T) {
	for i := range 3 {
		t.Run(fmt.Sprintf("run %d", i), func(t *testing.T) {
			testEnv(t)

			out, err := runCLI(t, "config", "get", "theme")
			if err != nil {
				t.Fatalf("run %d: %v", i, err)
			}
			if out != "__system\n" {
				t.Errorf("run %d: output = %q, want %q", i, out, "__system\n")
			}
		})
		if ctx := configGetCmd.Context(); ctx != nil {
			t.Errorf("after run %d: command kept context %v", i, ctx)
		}
	}
}
