// Package inputtap monitors and simulates OS-level keyboard and mouse
// input. A running hook observes input globally, across all applications,
// and classifies it into a unified event model with synthesized click and
// drag detection. The package also enumerates displays, reads system input
// settings, and injects synthetic input.
//
// Capture requires OS-level authorization on some platforms (Accessibility
// on macOS) and a display session on Linux (X11 or XWayland).
package inputtap

import (
	"inputtap/internal/display"
	"inputtap/internal/event"
	"inputtap/internal/hook"
	"inputtap/internal/settings"
	"inputtap/internal/simulate"
)

// Hook is one capture session controller. See StartListen.
type Hook = hook.Hook

// Callback receives classified events on the capture goroutine. It must
// return promptly; a stalled callback delays delivery and can make the OS
// tear the hook down.
type Callback = hook.Callback

// NewHook creates a hook controller without starting it, for callers that
// want to configure the event mask before capture begins.
func NewHook() *Hook {
	return hook.New()
}

// StartListen starts global input capture and delivers every event type to
// cb. The returned hook is already running; stop it with Stop.
func StartListen(cb Callback) (*Hook, error) {
	return StartListenMasked(cb, event.MaskAll)
}

// StartListenMasked starts capture delivering only the event types in mask.
func StartListenMasked(cb Callback, mask Mask) (*Hook, error) {
	h := hook.New()
	h.SetEventMask(mask)
	if err := h.Run(cb); err != nil {
		return nil, err
	}
	return h, nil
}

// Displays returns all attached displays.
func Displays() ([]Display, error) {
	return display.Displays()
}

// PrimaryDisplay returns the primary display.
func PrimaryDisplay() (Display, error) {
	return display.Primary()
}

// DisplayAtPoint returns the display containing a screen-global point, or
// ErrDisplayNotFound when the point lies outside every display.
func DisplayAtPoint(x, y float64) (Display, error) {
	return display.AtPoint(x, y)
}

// Settings is a snapshot of OS input preferences. Fields the platform
// cannot report are nil.
type Settings = settings.Settings

// SystemSettings reads the current OS input preferences.
func SystemSettings() (Settings, error) {
	return settings.Query()
}

// MouseMove warps the pointer to a screen-global position.
func MouseMove(x, y float64) error { return simulate.MouseMove(x, y) }

// MousePress presses a mouse button at the current pointer position.
func MousePress(b Button) error { return simulate.MousePress(b) }

// MouseRelease releases a mouse button.
func MouseRelease(b Button) error { return simulate.MouseRelease(b) }

// MouseClick presses and releases a button.
func MouseClick(b Button) error { return simulate.MouseClick(b) }

// KeyPress presses a key.
func KeyPress(k Key) error { return simulate.KeyPress(k) }

// KeyRelease releases a key.
func KeyRelease(k Key) error { return simulate.KeyRelease(k) }

// KeyTap presses and releases a key.
func KeyTap(k Key) error { return simulate.KeyTap(k) }

// MousePosition returns the current screen-global pointer position.
func MousePosition() (x, y float64, err error) {
	return simulate.MousePosition()
}
