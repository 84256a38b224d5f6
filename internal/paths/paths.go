// Package paths resolves the per-user locations tunedeck reads and writes.
//
// The package wraps github.com/adrg/xdg so the same code yields the native
// per-user application data directory on every platform.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/tunedeck/internal/errors"
)

// AppName is the directory name used under the per-user config home.
const AppName = "tunedeck"

// File names inside AppDataDir.
const (
	// SettingsFileName holds the persisted player settings document.
	SettingsFileName = "config.json"
	// CLIConfigName is the viper config name for the CLI's own options.
	CLIConfigName = "cli"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used. It is a no-op for existing directories.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	if err := os.MkdirAll(path, perm); err != nil {
		return errors.Wrapf(err, "creating directory %s", path)
	}
	return nil
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppDataDir returns the per-user application data directory.
// Returns: <ConfigHome>/tunedeck/
func AppDataDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// SettingsFile returns the default location of the settings document.
// Returns: <AppDataDir>/config.json
func SettingsFile() string {
	return filepath.Join(AppDataDir(), SettingsFileName)
}

// Clean validates and cleans a user-supplied file path.
// A leading "~/" is expanded to the home directory.
func Clean(path string) (string, error) {
	if path == "" {
		return "", errors.Wrap(ErrInvalidPath, "empty path")
	}
	for _, r := range path {
		if r == 0 {
			return "", errors.Wrap(ErrInvalidPath, "path contains a null byte")
		}
	}
	if path == "~" || len(path) > 1 && path[0] == '~' && os.IsPathSeparator(path[1]) {
		home, err := ResolveHome()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Clean(path), nil
}
