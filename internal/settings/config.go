package settings

import (
	"math"

	"github.com/thoreinstein/tunedeck/internal/display"
)

// Repeat is the playback repeat mode.
type Repeat string

// Repeat modes.
const (
	RepeatNone Repeat = "none"
	RepeatOne  Repeat = "one"
	RepeatAll  Repeat = "all"
)

// Valid reports whether r is a known repeat mode.
func (r Repeat) Valid() bool {
	switch r {
	case RepeatNone, RepeatOne, RepeatAll:
		return true
	}
	return false
}

// SortBy names the library column used for sorting.
type SortBy string

// Library sort columns.
const (
	SortByArtist   SortBy = "artist"
	SortByAlbum    SortBy = "album"
	SortByTitle    SortBy = "title"
	SortByDuration SortBy = "duration"
	SortByGenre    SortBy = "genre"
)

// Valid reports whether s is a known sort column.
func (s SortBy) Valid() bool {
	switch s {
	case SortByArtist, SortByAlbum, SortByTitle, SortByDuration, SortByGenre:
		return true
	}
	return false
}

// SortOrder is ascending or descending.
type SortOrder string

// Sort orders.
const (
	SortAsc SortOrder = "asc"
	SortDsc SortOrder = "dsc"
)

// Valid reports whether o is a known sort order.
func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDsc
}

// LibrarySort is the library view's sort specification.
type LibrarySort struct {
	By    SortBy    `json:"by" yaml:"by" toml:"by"`
	Order SortOrder `json:"order" yaml:"order" toml:"order"`
}

// Bounds is the main window rectangle.
type Bounds struct {
	Width  int `json:"width" yaml:"width" toml:"width"`
	Height int `json:"height" yaml:"height" toml:"height"`
	X      int `json:"x" yaml:"x" toml:"x"`
	Y      int `json:"y" yaml:"y" toml:"y"`
}

// Config is the full settings record. JSON names match the persisted keys.
type Config struct {
	Theme                string      `json:"theme" yaml:"theme" toml:"theme"`
	AudioVolume          float64     `json:"audioVolume" yaml:"audioVolume" toml:"audioVolume"`
	AudioPlaybackRate    float64     `json:"audioPlaybackRate" yaml:"audioPlaybackRate" toml:"audioPlaybackRate"`
	AudioOutputDevice    string      `json:"audioOutputDevice" yaml:"audioOutputDevice" toml:"audioOutputDevice"`
	AudioMuted           bool        `json:"audioMuted" yaml:"audioMuted" toml:"audioMuted"`
	AudioShuffle         bool        `json:"audioShuffle" yaml:"audioShuffle" toml:"audioShuffle"`
	AudioRepeat          Repeat      `json:"audioRepeat" yaml:"audioRepeat" toml:"audioRepeat"`
	DefaultView          string      `json:"defaultView" yaml:"defaultView" toml:"defaultView"`
	LibrarySort          LibrarySort `json:"librarySort" yaml:"librarySort" toml:"librarySort"`
	PlaylistAdding       bool        `json:"playlistAdding" yaml:"playlistAdding" toml:"playlistAdding"`
	SleepBlocker         bool        `json:"sleepBlocker" yaml:"sleepBlocker" toml:"sleepBlocker"`
	AutoUpdateChecker    bool        `json:"autoUpdateChecker" yaml:"autoUpdateChecker" toml:"autoUpdateChecker"`
	MinimizeToTray       bool        `json:"minimizeToTray" yaml:"minimizeToTray" toml:"minimizeToTray"`
	DisplayNotifications bool        `json:"displayNotifications" yaml:"displayNotifications" toml:"displayNotifications"`
	Bounds               Bounds      `json:"bounds" yaml:"bounds" toml:"bounds"`
}

// Default window size.
const (
	DefaultWindowWidth  = 1000
	DefaultWindowHeight = 600
)

// Defaults returns the default settings for a primary display with the
// given work area. The window position is seeded at half the work area's
// width and height.
func Defaults(workArea display.Rectangle) Config {
	return Config{
		Theme:             "__system",
		AudioVolume:       1,
		AudioPlaybackRate: 1,
		AudioOutputDevice: "default",
		AudioMuted:        false,
		AudioShuffle:      false,
		AudioRepeat:       RepeatNone,
		DefaultView:       "library",
		LibrarySort: LibrarySort{
			By:    SortByArtist,
			Order: SortAsc,
		},
		PlaylistAdding:       false,
		SleepBlocker:         false,
		AutoUpdateChecker:    true,
		MinimizeToTray:       false,
		DisplayNotifications: true,
		Bounds: Bounds{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			X:      half(workArea.Width),
			Y:      half(workArea.Height),
		},
	}
}

// half rounds n/2 to the nearest integer, halves away from zero.
func half(n int) int {
	return int(math.Round(float64(n) / 2))
}
