//go:build (darwin && !cgo) || (!darwin && !linux && !windows)

package simulate

import "inputtap/internal/event"

func platformMouseMove(x, y float64) error {
	return ErrNotAvailable
}

func platformMouseButton(b event.Button, press bool) error {
	return ErrNotAvailable
}

func platformKey(k event.Key, press bool) error {
	return ErrNotAvailable
}

func platformMousePosition() (float64, float64, error) {
	return 0, 0, ErrNotAvailable
}
