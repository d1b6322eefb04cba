// Package event defines the unified input event model shared by the capture
// pipeline, the simulation layer, and the public API.
//
// Every platform backend produces raw OS notifications in its own dialect;
// the hook package normalizes them into Event values defined here. The model
// mirrors what the OS reports plus two synthesized types: MouseClicked
// (press/release pair with no intervening drag) and KeyTyped (key press that
// resolved to a character).
package event

import (
	"fmt"
	"time"
)

// Type identifies the kind of input event.
type Type int

const (
	HookEnabled Type = iota
	HookDisabled
	KeyPressed
	KeyReleased
	KeyTyped
	MousePressed
	MouseReleased
	MouseClicked
	MouseMoved
	MouseDragged
	MouseWheel
)

// typeNames is indexed by Type.
var typeNames = [...]string{
	"HookEnabled",
	"HookDisabled",
	"KeyPressed",
	"KeyReleased",
	"KeyTyped",
	"MousePressed",
	"MouseReleased",
	"MouseClicked",
	"MouseMoved",
	"MouseDragged",
	"MouseWheel",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Button identifies a logical mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	Button4
	Button5
	ButtonUnknown
)

var buttonNames = [...]string{
	"Left",
	"Right",
	"Middle",
	"Button4",
	"Button5",
	"Unknown",
}

func (b Button) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return fmt.Sprintf("Button(%d)", int(b))
	}
	return buttonNames[b]
}

// ScrollDirection identifies the direction of a wheel event.
// Positive deltas scroll away from the user (up) or to the right.
type ScrollDirection int

const (
	ScrollUp ScrollDirection = iota
	ScrollDown
	ScrollLeft
	ScrollRight
)

var scrollNames = [...]string{"Up", "Down", "Left", "Right"}

func (d ScrollDirection) String() string {
	if d < 0 || int(d) >= len(scrollNames) {
		return fmt.Sprintf("ScrollDirection(%d)", int(d))
	}
	return scrollNames[d]
}

// KeyboardData is the payload of KeyPressed, KeyReleased and KeyTyped events.
type KeyboardData struct {
	// Key is the logical key identifier, stable across platforms.
	Key Key
	// RawCode is the platform key code the OS reported. Preserved even when
	// Key is KeyUnknown so callers can recover unmapped keys.
	RawCode uint32
	// Char is the resolved character, if the backend supplied one.
	// Zero when no character was resolved.
	Char rune
}

// MouseData is the payload of mouse button and movement events.
// Button is only meaningful for MousePressed, MouseReleased and MouseClicked.
type MouseData struct {
	X, Y      float64
	Button    Button
	RawButton uint32
}

// WheelData is the payload of MouseWheel events.
type WheelData struct {
	X, Y      float64
	Direction ScrollDirection
	// Delta is the scroll magnitude, always >= 0; Direction carries the sign.
	Delta float64
}

// Event is one classified input event. Exactly one payload pointer is
// non-nil for keyboard, mouse and wheel types; lifecycle markers carry none.
type Event struct {
	Type     Type
	Time     time.Time
	Keyboard *KeyboardData
	Mouse    *MouseData
	Wheel    *WheelData
	// Injected reports that the OS flagged the underlying notification as
	// synthetic (e.g. LLKHF_INJECTED on Windows). Best effort; not all
	// platforms expose this.
	Injected bool
}

func (e Event) String() string {
	switch {
	case e.Keyboard != nil:
		return fmt.Sprintf("%s key=%s raw=%d", e.Type, e.Keyboard.Key, e.Keyboard.RawCode)
	case e.Mouse != nil:
		switch e.Type {
		case MouseMoved, MouseDragged:
			return fmt.Sprintf("%s (%.0f,%.0f)", e.Type, e.Mouse.X, e.Mouse.Y)
		default:
			return fmt.Sprintf("%s button=%s (%.0f,%.0f)", e.Type, e.Mouse.Button, e.Mouse.X, e.Mouse.Y)
		}
	case e.Wheel != nil:
		return fmt.Sprintf("%s dir=%s delta=%.1f", e.Type, e.Wheel.Direction, e.Wheel.Delta)
	default:
		return e.Type.String()
	}
}
