// Package hook implements the global input capture pipeline: a per-platform
// raw event source, the normalization layer that converts OS notifications
// into the unified event model, and the drag/click detector that classifies
// mouse gestures before events reach the caller.
package hook

import (
	"errors"
	"time"

	"inputtap/internal/event"
)

// Capture failure classes. Open errors wrap one of these so callers can
// errors.Is against the condition without parsing platform detail.
var (
	// ErrPermissionDenied means the OS refused capture authorization
	// (macOS Accessibility permission not granted).
	ErrPermissionDenied = errors.New("input capture not authorized")

	// ErrHookInstallFailed means the OS refused to install the hook
	// (Windows hook table exhaustion or similar).
	ErrHookInstallFailed = errors.New("hook installation failed")

	// ErrDisplayConnectionFailed means no display server was reachable
	// (Linux with no X server, or missing record extension).
	ErrDisplayConnectionFailed = errors.New("display server connection failed")

	// ErrAlreadyRunning is returned by Run while a capture session is active.
	ErrAlreadyRunning = errors.New("hook already running")

	// ErrNotAvailable means capture is not implemented for this platform
	// or build configuration.
	ErrNotAvailable = errors.New("input capture not available on this platform")

	// ErrBackendClosed is returned by ReadEvent after Close. It marks a
	// clean shutdown, not a failure.
	ErrBackendClosed = errors.New("backend closed")
)

// RawKind identifies the kind of a raw OS notification.
type RawKind int

const (
	RawKeyDown RawKind = iota
	RawKeyUp
	RawButtonDown
	RawButtonUp
	RawMotion
	RawWheel
)

// RawEvent is one OS input notification in platform-neutral form, before
// key and button codes are normalized. Coordinates are screen-global.
type RawEvent struct {
	Kind RawKind
	Time time.Time

	// KeyCode is the platform key code for RawKeyDown/RawKeyUp.
	KeyCode uint32
	// Char is the resolved character for RawKeyDown, 0 when the platform
	// did not resolve one.
	Char rune

	// Button is the platform button code for RawButtonDown/RawButtonUp.
	Button uint32

	X, Y float64

	// WheelDX/WheelDY are normalized wheel deltas: positive Y scrolls away
	// from the user, positive X scrolls right.
	WheelDX, WheelDY float64

	// Injected is set when the OS flagged the notification as synthetic.
	Injected bool
}

// Keymap translates platform codes into logical identifiers. Each backend
// supplies the tables for its own dialect.
type Keymap struct {
	Key    func(uint32) event.Key
	Button func(uint32) event.Button
}

// Backend is one platform capture source. Open attaches to the OS event
// stream; ReadEvent blocks until the next notification and returns
// ErrBackendClosed after Close. Close must be safe to call from any
// goroutine and idempotent.
type Backend interface {
	Open() error
	ReadEvent() (RawEvent, error)
	Close() error
	Keymap() Keymap
}

// normalize converts one raw notification into exactly one event.
// It is total: unmapped key and button codes become the Unknown logical
// identifiers with the raw code preserved.
func normalize(raw RawEvent, km Keymap) event.Event {
	ev := event.Event{Time: raw.Time, Injected: raw.Injected}
	switch raw.Kind {
	case RawKeyDown, RawKeyUp:
		ev.Type = event.KeyPressed
		if raw.Kind == RawKeyUp {
			ev.Type = event.KeyReleased
		}
		ev.Keyboard = &event.KeyboardData{
			Key:     km.Key(raw.KeyCode),
			RawCode: raw.KeyCode,
			Char:    raw.Char,
		}
	case RawButtonDown, RawButtonUp:
		ev.Type = event.MousePressed
		if raw.Kind == RawButtonUp {
			ev.Type = event.MouseReleased
		}
		ev.Mouse = &event.MouseData{
			X:         raw.X,
			Y:         raw.Y,
			Button:    km.Button(raw.Button),
			RawButton: raw.Button,
		}
	case RawMotion:
		ev.Type = event.MouseMoved
		ev.Mouse = &event.MouseData{X: raw.X, Y: raw.Y}
	case RawWheel:
		ev.Type = event.MouseWheel
		dir, delta := wheelDirection(raw.WheelDX, raw.WheelDY)
		ev.Wheel = &event.WheelData{
			X:         raw.X,
			Y:         raw.Y,
			Direction: dir,
			Delta:     delta,
		}
	}
	return ev
}

// wheelDirection picks the dominant axis and returns direction plus
// magnitude. Vertical wins ties, matching how the OSes report diagonal
// trackpad scrolls.
func wheelDirection(dx, dy float64) (event.ScrollDirection, float64) {
	abs := func(v float64) float64 {
		if v < 0 {
			return -v
		}
		return v
	}
	if abs(dy) >= abs(dx) {
		if dy >= 0 {
			return event.ScrollUp, abs(dy)
		}
		return event.ScrollDown, abs(dy)
	}
	if dx >= 0 {
		return event.ScrollRight, abs(dx)
	}
	return event.ScrollLeft, abs(dx)
}
