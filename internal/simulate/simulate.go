// Package simulate injects synthetic keyboard and mouse input at the OS
// level. Injected events go through the system event stream, so they are
// observed by the capture hook (flagged as injected) and by every other
// application.
package simulate

import (
	"errors"

	"inputtap/internal/event"
)

var (
	// ErrSimulationFailed means the OS rejected the injection call.
	ErrSimulationFailed = errors.New("input simulation failed")

	// ErrNotAvailable means simulation is not implemented for this
	// platform or build configuration.
	ErrNotAvailable = errors.New("input simulation not available on this platform")
)

// MouseMove warps the pointer to a screen-global position.
func MouseMove(x, y float64) error {
	return platformMouseMove(x, y)
}

// MousePress presses a mouse button at the current pointer position.
func MousePress(b event.Button) error {
	return platformMouseButton(b, true)
}

// MouseRelease releases a mouse button at the current pointer position.
func MouseRelease(b event.Button) error {
	return platformMouseButton(b, false)
}

// MouseClick presses and releases a button.
func MouseClick(b event.Button) error {
	if err := MousePress(b); err != nil {
		return err
	}
	return MouseRelease(b)
}

// KeyPress presses a key.
func KeyPress(k event.Key) error {
	return platformKey(k, true)
}

// KeyRelease releases a key.
func KeyRelease(k event.Key) error {
	return platformKey(k, false)
}

// KeyTap presses and releases a key.
func KeyTap(k event.Key) error {
	if err := KeyPress(k); err != nil {
		return err
	}
	return KeyRelease(k)
}

// MousePosition returns the current screen-global pointer position.
func MousePosition() (x, y float64, err error) {
	return platformMousePosition()
}
