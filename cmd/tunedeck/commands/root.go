// Package commands implements the CLI commands for tunedeck.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	buildinfo "github.com/thoreinstein/tunedeck/cmd"
	"github.com/thoreinstein/tunedeck/internal/config"
	"github.com/thoreinstein/tunedeck/internal/errors"
	"github.com/thoreinstein/tunedeck/internal/logging"
	"github.com/thoreinstein/tunedeck/internal/settings"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// options holds the CLI options loaded by initConfig.
var options *config.Options

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json (default from cli.yaml, else text)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"path to the CLI config file (default <app data dir>/cli.yaml)")

	rootCmd.Version = buildinfo.Version
	rootCmd.SetVersionTemplate("tunedeck version {{.Version}}\n")

	// Errors are printed by main so exit codes and suggestions stay consistent.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	options, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "tunedeck",
	Short: "Inspect and edit the music player's settings",
	Long: `tunedeck manages the settings document of the desktop music player.

The document lives in the per-user application data directory as
config.json. Every command first loads it, adding a default for any
setting that is missing, so the file is always complete afterwards.`,
	Example: `  # Show all settings
  tunedeck config

  # Change the volume
  tunedeck config set audioVolume 0.4

  # Which modifier is "primary" on macOS?
  tunedeck keys --meta --platform darwin

  See Also: tunedeck config, tunedeck keys`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.Wrap(errors.ErrInvalidArgument, "--quiet and --verbose"),
			"cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv("TUNEDECK_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logging.Format(logFormat)
	if format == "" && options != nil {
		format = logging.Format(options.LogFormat)
	}

	cfg := logging.Config{Level: level, Format: format, Output: cmd.ErrOrStderr()}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		cfg.Mirror = f
	}

	logger := logging.New(cfg)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports CLI config load errors for commands that need it.
func checkConfig(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// logger returns the logger configured for cmd.
func logger(cmd *cobra.Command) *slog.Logger {
	return logging.FromContext(cmd.Context())
}

// openStore loads the settings document configured for this invocation.
func openStore(cmd *cobra.Command) (*settings.Store, error) {
	if options == nil {
		return nil, errors.NewSystemError(errors.New("CLI configuration not loaded"), "")
	}
	store, err := settings.Open(cmd.Context(), options.SettingsFile, options.DisplayProvider())
	if err != nil {
		return nil, errors.NewSystemError(err, "Check that "+options.SettingsFile+" is a JSON object, or move it aside")
	}
	return store, nil
}

// saveStore persists store, mapping failures to a system error.
func saveStore(store *settings.Store) error {
	if err := store.Save(); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+store.Path())
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
