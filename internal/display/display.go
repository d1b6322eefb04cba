// Package display enumerates attached displays with their bounds, scale
// factor and refresh rate. Queries are live: every call re-reads the
// current configuration, so hotplug and resolution changes are reflected
// without any cache invalidation.
package display

import "errors"

var (
	// ErrNotFound is returned by AtPoint when the point lies outside every
	// display's bounds.
	ErrNotFound = errors.New("no display at point")

	// ErrNotAvailable means display enumeration is not implemented for
	// this platform or build configuration.
	ErrNotAvailable = errors.New("display enumeration not available on this platform")
)

// Rect is a screen-global rectangle in the platform's logical coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside the rectangle. The right
// and bottom edges are exclusive so adjacent displays do not both claim
// their shared edge.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Display describes one attached display.
type Display struct {
	// ID is the platform display identifier. Stable for the lifetime of
	// the attachment, not across reconnects.
	ID uint32

	Bounds Rect

	// ScaleFactor is the pixel-to-logical-coordinate ratio (2 on a Retina
	// display). 1 when the platform does not report one.
	ScaleFactor float64

	// RefreshRate in Hz, 0 when unknown.
	RefreshRate float64

	IsPrimary bool
}

// Displays returns all attached displays.
func Displays() ([]Display, error) {
	return platformDisplays()
}

// Primary returns the primary display.
func Primary() (Display, error) {
	ds, err := platformDisplays()
	if err != nil {
		return Display{}, err
	}
	return primary(ds)
}

// AtPoint returns the display containing the given screen-global point.
func AtPoint(x, y float64) (Display, error) {
	ds, err := platformDisplays()
	if err != nil {
		return Display{}, err
	}
	return atPoint(ds, x, y)
}

func primary(ds []Display) (Display, error) {
	for _, d := range ds {
		if d.IsPrimary {
			return d, nil
		}
	}
	if len(ds) > 0 {
		return ds[0], nil
	}
	return Display{}, ErrNotFound
}

func atPoint(ds []Display, x, y float64) (Display, error) {
	for _, d := range ds {
		if d.Bounds.Contains(x, y) {
			return d, nil
		}
	}
	return Display{}, ErrNotFound
}
