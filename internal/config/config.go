package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/tunedeck/internal/backup"
	"github.com/thoreinstein/tunedeck/internal/display"
	"github.com/thoreinstein/tunedeck/internal/errors"
	"github.com/thoreinstein/tunedeck/internal/logging"
	"github.com/thoreinstein/tunedeck/internal/paths"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "TUNEDECK"

// Options holds the CLI's own configuration.
type Options struct {
	SettingsFile    string         `mapstructure:"settings_file" yaml:"settings_file"`
	LogFormat       string         `mapstructure:"log_format" yaml:"log_format"`
	BackupRetention int            `mapstructure:"backup_retention" yaml:"backup_retention"`
	Display         DisplayOptions `mapstructure:"display" yaml:"display"`
}

// DisplayOptions describes the primary display's work area.
type DisplayOptions struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// DisplayProvider returns a provider for the configured work area.
func (o *Options) DisplayProvider() display.Provider {
	return display.Static{Width: o.Display.Width, Height: o.Display.Height}
}

// ConfigDir returns the directory searched for cli.yaml.
func ConfigDir() string {
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}
	return paths.AppDataDir()
}

// Init resets Viper and registers search paths, environment overrides and
// defaults. Call it once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName(paths.CLIConfigName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("settings_file", paths.SettingsFile())
	viper.SetDefault("log_format", string(logging.FormatText))
	viper.SetDefault("backup_retention", backup.DefaultRetentionCount)
	viper.SetDefault("display.width", display.DefaultWidth)
	viper.SetDefault("display.height", display.DefaultHeight)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file
// is an error. If path is empty, the default location is searched and a
// missing file falls back to defaults.
func Load(path string) (*Options, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// No file in the default location; use defaults.
		case os.IsNotExist(err):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var opts Options
	if err := viper.Unmarshal(&opts); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	cleaned, err := paths.Clean(opts.SettingsFile)
	if err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	opts.SettingsFile = cleaned

	if errs := Validate(&opts); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &opts, nil
}
