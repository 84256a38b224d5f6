// Package display describes screen geometry used to place the main window.
package display

import (
	"github.com/thoreinstein/tunedeck/internal/errors"
)

// Default work area used when no display information is available.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// ErrInvalidWorkArea indicates a work area with non-positive dimensions.
var ErrInvalidWorkArea = errors.New("invalid work area")

// Rectangle is a screen-space rectangle in device-independent pixels.
type Rectangle struct {
	X      int `json:"x" yaml:"x" toml:"x"`
	Y      int `json:"y" yaml:"y" toml:"y"`
	Width  int `json:"width" yaml:"width" toml:"width"`
	Height int `json:"height" yaml:"height" toml:"height"`
}

// Validate reports ErrInvalidWorkArea when either dimension is not positive.
func (r Rectangle) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return errors.Wrapf(ErrInvalidWorkArea, "%dx%d", r.Width, r.Height)
	}
	return nil
}

// Provider reports the usable area of the primary display, excluding
// taskbars and docks.
type Provider interface {
	PrimaryWorkArea() (Rectangle, error)
}

// Static is a Provider that always returns the same work area.
type Static Rectangle

// PrimaryWorkArea implements Provider.
func (s Static) PrimaryWorkArea() (Rectangle, error) {
	r := Rectangle(s)
	if err := r.Validate(); err != nil {
		return Rectangle{}, err
	}
	return r, nil
}

// Default returns a Static provider for a DefaultWidth x DefaultHeight screen.
func Default() Static {
	return Static{Width: DefaultWidth, Height: DefaultHeight}
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() (Rectangle, error)

// PrimaryWorkArea implements Provider.
func (f ProviderFunc) PrimaryWorkArea() (Rectangle, error) {
	return f()
}
