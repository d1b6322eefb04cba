package event

import "strings"

// Mask is a bitmask over event Types. Bit n corresponds to Type(n).
// A hook drops events whose bit is not set before invoking the callback,
// which keeps high-frequency types like MouseMoved off the callback path
// when nobody asked for them.
type Mask uint32

// Bit returns the mask bit for a single event type.
func (t Type) Bit() Mask {
	return 1 << uint(t)
}

// Has reports whether the mask includes the given type.
func (m Mask) Has(t Type) bool {
	return m&t.Bit() != 0
}

// Predefined masks for common subscription patterns.
const (
	MaskAll           Mask = 1<<uint(MouseWheel+1) - 1
	MaskKeyboard      Mask = 1<<uint(KeyPressed) | 1<<uint(KeyReleased) | 1<<uint(KeyTyped)
	MaskMouseButtons  Mask = 1<<uint(MousePressed) | 1<<uint(MouseReleased) | 1<<uint(MouseClicked)
	MaskMouseMovement Mask = 1<<uint(MouseMoved) | 1<<uint(MouseDragged)
	MaskMouseWheel    Mask = 1 << uint(MouseWheel)
	MaskMouseAll      Mask = MaskMouseButtons | MaskMouseMovement | MaskMouseWheel
)

// IsInputPattern reports whether a subscription pattern refers to keyboard
// or mouse input.
func IsInputPattern(pattern string) bool {
	return strings.HasPrefix(pattern, "keyboard:") || strings.HasPrefix(pattern, "mouse:")
}

// ComputeMask converts subscription pattern strings into an event mask.
//
// Recognized patterns:
//
//	"keyboard:..."              keyboard events
//	"mouse:down", "mouse:up",
//	"mouse:click"               mouse button events
//	"mouse:move"                mouse movement events
//	"mouse:scroll"              wheel events
//	"mouse:..." (anything else) all mouse events
//
// Returns MaskAll when no pattern matches, so an empty or unrecognized
// subscription never silences the hook.
func ComputeMask(patterns []string) Mask {
	var mask Mask
	for _, p := range patterns {
		switch {
		case strings.HasPrefix(p, "keyboard:"):
			mask |= MaskKeyboard
		case p == "mouse:down" || p == "mouse:up" || p == "mouse:click":
			mask |= MaskMouseButtons
		case p == "mouse:move":
			mask |= MaskMouseMovement
		case p == "mouse:scroll":
			mask |= MaskMouseWheel
		case strings.HasPrefix(p, "mouse:"):
			mask |= MaskMouseAll
		}
	}
	if mask == 0 {
		return MaskAll
	}
	return mask
}
