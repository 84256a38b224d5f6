package settings

import (
	"fmt"
	"maps"
	"strings"

	"github.com/thoreinstein/tunedeck/internal/errors"
)

// Validation errors for settings values.
var (
	// ErrOutOfRange indicates a numeric value outside its allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidChoice indicates a value outside an enumerated set.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrEmpty indicates a required string is empty.
	ErrEmpty = errors.New("value is empty")
)

// Playback rate limits accepted by the audio engine.
const (
	MinPlaybackRate = 0.0625
	MaxPlaybackRate = 16
)

// FieldError reports an invalid value for one settings key.
type FieldError struct {
	Key   Key
	Value any
	Err   error
}

// Error implements error.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v (got %v)", e.Key, e.Err, e.Value)
}

// Unwrap returns the underlying validation error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Validate checks cfg for values the player cannot use. Load never calls
// it; stored values are returned as-is. Returns nil when cfg is valid.
func Validate(cfg Config) []error {
	var errs []error
	add := func(k Key, v any, err error) {
		errs = append(errs, &FieldError{Key: k, Value: v, Err: err})
	}

	if strings.TrimSpace(cfg.Theme) == "" {
		add(Theme.Key(), cfg.Theme, ErrEmpty)
	}
	if cfg.AudioVolume < 0 || cfg.AudioVolume > 1 {
		add(AudioVolume.Key(), cfg.AudioVolume, ErrOutOfRange)
	}
	if cfg.AudioPlaybackRate < MinPlaybackRate || cfg.AudioPlaybackRate > MaxPlaybackRate {
		add(AudioPlaybackRate.Key(), cfg.AudioPlaybackRate, ErrOutOfRange)
	}
	if cfg.AudioOutputDevice == "" {
		add(AudioOutputDevice.Key(), cfg.AudioOutputDevice, ErrEmpty)
	}
	if !cfg.AudioRepeat.Valid() {
		add(AudioRepeat.Key(), cfg.AudioRepeat, ErrInvalidChoice)
	}
	if cfg.DefaultView == "" {
		add(DefaultView.Key(), cfg.DefaultView, ErrEmpty)
	}
	if !cfg.LibrarySort.By.Valid() {
		add(LibrarySortField.Key(), cfg.LibrarySort.By, ErrInvalidChoice)
	}
	if !cfg.LibrarySort.Order.Valid() {
		add(LibrarySortField.Key(), cfg.LibrarySort.Order, ErrInvalidChoice)
	}
	if cfg.Bounds.Width <= 0 || cfg.Bounds.Height <= 0 {
		add(BoundsField.Key(), fmt.Sprintf("%dx%d", cfg.Bounds.Width, cfg.Bounds.Height), ErrOutOfRange)
	}

	return errs
}

// ValidateKey checks only the stored value of k. The value is laid over the
// defaults from the last Load, so a bad value under another key does not
// affect the result.
func (s *Store) ValidateKey(k Key) error {
	if err := CheckType(s, k); err != nil {
		return err
	}
	doc := maps.Clone(s.defaults)
	doc[k] = s.doc[k]
	cfg, err := decodeConfig(doc)
	if err != nil {
		return err
	}
	for _, verr := range Validate(cfg) {
		var fe *FieldError
		if errors.As(verr, &fe) && fe.Key == k {
			return verr
		}
	}
	return nil
}
