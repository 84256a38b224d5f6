// Package keymod normalizes keyboard-shortcut modifiers across platforms.
//
// Shortcuts are written in terms of a primary modifier (Cmd on macOS, Ctrl
// elsewhere) and a secondary modifier (Ctrl on macOS, the Meta/Super key
// elsewhere). The functions here are pure: they only look at the event
// flags and the platform identifier they are given.
package keymod

import (
	"runtime"
	"strings"
)

// Platform identifiers as reported by runtime.GOOS and by desktop shells.
const (
	Darwin  = "darwin"
	Mac     = "mac"
	Windows = "windows"
	Win32   = "win32"
	Linux   = "linux"
)

// Event carries the modifier flags of a keyboard or mouse event.
type Event struct {
	Meta  bool `json:"metaKey"`
	Ctrl  bool `json:"ctrlKey"`
	Alt   bool `json:"altKey"`
	Shift bool `json:"shiftKey"`
}

// Current returns the platform identifier of the running process.
func Current() string {
	return runtime.GOOS
}

// IsMac reports whether platform names macOS. Both "darwin" and "mac" are
// accepted, case-insensitively.
func IsMac(platform string) bool {
	switch strings.ToLower(platform) {
	case Darwin, Mac, "macos":
		return true
	}
	return false
}

// IsPrimary reports whether the primary shortcut modifier is held:
// Meta (Cmd) on macOS, Ctrl everywhere else.
func IsPrimary(e Event, platform string) bool {
	if IsMac(platform) {
		return e.Meta
	}
	return e.Ctrl
}

// IsSecondary reports whether the secondary shortcut modifier is held:
// Ctrl on macOS, Meta everywhere else.
func IsSecondary(e Event, platform string) bool {
	if IsMac(platform) {
		return e.Ctrl
	}
	return e.Meta
}

// PrimaryLabel returns the key name shown in shortcut hints for the primary modifier.
func PrimaryLabel(platform string) string {
	if IsMac(platform) {
		return "Cmd"
	}
	return "Ctrl"
}

// SecondaryLabel returns the key name shown in shortcut hints for the secondary modifier.
func SecondaryLabel(platform string) string {
	switch {
	case IsMac(platform):
		return "Ctrl"
	case strings.EqualFold(platform, Windows), strings.EqualFold(platform, Win32):
		return "Win"
	default:
		return "Super"
	}
}
