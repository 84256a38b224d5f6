package settings

import (
	"encoding/json"
	"slices"
)

// Key is the name of a top-level entry in the settings document.
type Key string

// Field is a known settings key together with the Go type of its value.
type Field[T any] struct {
	key Key
}

// Key returns the document key of f.
func (f Field[T]) Key() Key {
	return f.key
}

// String implements fmt.Stringer.
func (f Field[T]) String() string {
	return string(f.key)
}

// fieldSpec holds the untyped view of a Field used by dynamic access.
type fieldSpec struct {
	// check reports whether raw decodes into the field's type.
	check func(raw []byte) error
}

var (
	registry = map[Key]fieldSpec{}
	ordered  []Key
)

func newField[T any](name string) Field[T] {
	k := Key(name)
	registry[k] = fieldSpec{
		check: func(raw []byte) error {
			var v T
			return json.Unmarshal(raw, &v)
		},
	}
	ordered = append(ordered, k)
	return Field[T]{key: k}
}

// Known settings. The order here is the order of [Keys].
var (
	Theme                = newField[string]("theme")
	AudioVolume          = newField[float64]("audioVolume")
	AudioPlaybackRate    = newField[float64]("audioPlaybackRate")
	AudioOutputDevice    = newField[string]("audioOutputDevice")
	AudioMuted           = newField[bool]("audioMuted")
	AudioShuffle         = newField[bool]("audioShuffle")
	AudioRepeat          = newField[Repeat]("audioRepeat")
	DefaultView          = newField[string]("defaultView")
	LibrarySortField     = newField[LibrarySort]("librarySort")
	PlaylistAdding       = newField[bool]("playlistAdding")
	SleepBlocker         = newField[bool]("sleepBlocker")
	AutoUpdateChecker    = newField[bool]("autoUpdateChecker")
	MinimizeToTray       = newField[bool]("minimizeToTray")
	DisplayNotifications = newField[bool]("displayNotifications")
	BoundsField          = newField[Bounds]("bounds")
)

// Keys returns every known key in declaration order.
func Keys() []Key {
	return slices.Clone(ordered)
}

// Known reports whether k is part of the default key set.
func Known(k Key) bool {
	_, ok := registry[k]
	return ok
}
