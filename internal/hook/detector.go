package hook

import "inputtap/internal/event"

// pressState tracks one held button from press to release.
type pressState struct {
	x, y float64
	// moved is set once any pointer motion is observed while the button is
	// held. A set flag disqualifies the button from click synthesis.
	moved bool
}

// detector is the stateful classifier between the normalizer and the
// callback. It reclassifies MouseMoved as MouseDragged while buttons are
// held, synthesizes MouseClicked for press/release pairs with no
// intervening drag, and derives KeyTyped from presses that resolved to a
// character.
//
// State is owned by the capture goroutine for one start/stop cycle; it is
// never shared, so no locking happens here.
type detector struct {
	pressed map[event.Button]*pressState
}

func newDetector() *detector {
	return &detector{pressed: make(map[event.Button]*pressState)}
}

// reset discards all gesture state. Called on hook start and stop so a
// button held across sessions never produces a stale click.
func (d *detector) reset() {
	d.pressed = make(map[event.Button]*pressState)
}

// process classifies one normalized event, returning it (possibly
// reclassified) plus at most one synthesized event. The underlying event
// always precedes its synthesized companion.
func (d *detector) process(ev event.Event) []event.Event {
	switch ev.Type {
	case event.KeyPressed:
		if ev.Keyboard != nil && ev.Keyboard.Char != 0 {
			typed := ev
			typed.Type = event.KeyTyped
			kb := *ev.Keyboard
			typed.Keyboard = &kb
			return []event.Event{ev, typed}
		}
		return []event.Event{ev}

	case event.MousePressed:
		if ev.Mouse != nil {
			d.pressed[ev.Mouse.Button] = &pressState{x: ev.Mouse.X, y: ev.Mouse.Y}
		}
		return []event.Event{ev}

	case event.MouseMoved:
		if len(d.pressed) == 0 {
			return []event.Event{ev}
		}
		// Drag applies to the aggregate gesture: every held button loses
		// click eligibility, not just the one that started the motion.
		for _, st := range d.pressed {
			st.moved = true
		}
		ev.Type = event.MouseDragged
		return []event.Event{ev}

	case event.MouseReleased:
		if ev.Mouse == nil {
			return []event.Event{ev}
		}
		st, held := d.pressed[ev.Mouse.Button]
		delete(d.pressed, ev.Mouse.Button)
		if !held || st.moved {
			return []event.Event{ev}
		}
		click := ev
		click.Type = event.MouseClicked
		m := *ev.Mouse
		click.Mouse = &m
		return []event.Event{ev, click}

	default:
		return []event.Event{ev}
	}
}
