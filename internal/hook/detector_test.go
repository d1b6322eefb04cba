package hook

import (
	"testing"

	"inputtap/internal/event"
)

func keyDown(k event.Key, ch rune) event.Event {
	return event.Event{
		Type:     event.KeyPressed,
		Keyboard: &event.KeyboardData{Key: k, RawCode: uint32(k), Char: ch},
	}
}

func buttonEvent(t event.Type, b event.Button, x, y float64) event.Event {
	return event.Event{
		Type:  t,
		Mouse: &event.MouseData{X: x, Y: y, Button: b, RawButton: uint32(b)},
	}
}

func motion(x, y float64) event.Event {
	return event.Event{
		Type:  event.MouseMoved,
		Mouse: &event.MouseData{X: x, Y: y},
	}
}

func types(evs []event.Event) []event.Type {
	out := make([]event.Type, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}

func expectTypes(t *testing.T, got []event.Event, want ...event.Type) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", types(got), want)
	}
	for i, w := range want {
		if got[i].Type != w {
			t.Fatalf("event %d: got %v, want %v (full: %v)", i, got[i].Type, w, types(got))
		}
	}
}

func TestDetectorKeyTyped(t *testing.T) {
	d := newDetector()

	out := d.process(keyDown(event.KeyA, 'a'))
	expectTypes(t, out, event.KeyPressed, event.KeyTyped)
	if out[1].Keyboard.Char != 'a' {
		t.Errorf("typed char = %q", out[1].Keyboard.Char)
	}
	if out[0].Keyboard == out[1].Keyboard {
		t.Error("synthesized event shares payload pointer with underlying event")
	}

	out = d.process(keyDown(event.KeyShiftLeft, 0))
	expectTypes(t, out, event.KeyPressed)
}

func TestDetectorClick(t *testing.T) {
	d := newDetector()

	expectTypes(t, d.process(buttonEvent(event.MousePressed, event.ButtonLeft, 10, 20)), event.MousePressed)

	out := d.process(buttonEvent(event.MouseReleased, event.ButtonLeft, 10, 20))
	expectTypes(t, out, event.MouseReleased, event.MouseClicked)
	if out[1].Mouse.Button != event.ButtonLeft || out[1].Mouse.X != 10 {
		t.Errorf("click payload = %+v", out[1].Mouse)
	}
}

func TestDetectorDragSuppressesClick(t *testing.T) {
	d := newDetector()

	d.process(buttonEvent(event.MousePressed, event.ButtonLeft, 0, 0))

	out := d.process(motion(5, 5))
	expectTypes(t, out, event.MouseDragged)
	out = d.process(motion(10, 10))
	expectTypes(t, out, event.MouseDragged)

	out = d.process(buttonEvent(event.MouseReleased, event.ButtonLeft, 10, 10))
	expectTypes(t, out, event.MouseReleased)
}

func TestDetectorMotionWithoutButtons(t *testing.T) {
	d := newDetector()
	expectTypes(t, d.process(motion(1, 2)), event.MouseMoved)
}

func TestDetectorAggregateDrag(t *testing.T) {
	d := newDetector()

	d.process(buttonEvent(event.MousePressed, event.ButtonLeft, 0, 0))
	d.process(buttonEvent(event.MousePressed, event.ButtonRight, 0, 0))
	d.process(motion(3, 3))

	// Motion while both buttons were held disqualifies both.
	expectTypes(t, d.process(buttonEvent(event.MouseReleased, event.ButtonRight, 3, 3)), event.MouseReleased)
	expectTypes(t, d.process(buttonEvent(event.MouseReleased, event.ButtonLeft, 3, 3)), event.MouseReleased)
}

func TestDetectorInterleavedButtons(t *testing.T) {
	d := newDetector()

	d.process(buttonEvent(event.MousePressed, event.ButtonLeft, 0, 0))
	d.process(buttonEvent(event.MousePressed, event.ButtonRight, 0, 0))

	// Right released before any motion: still a click.
	out := d.process(buttonEvent(event.MouseReleased, event.ButtonRight, 0, 0))
	expectTypes(t, out, event.MouseReleased, event.MouseClicked)

	// Left drags afterward: no click for left.
	expectTypes(t, d.process(motion(7, 7)), event.MouseDragged)
	expectTypes(t, d.process(buttonEvent(event.MouseReleased, event.ButtonLeft, 7, 7)), event.MouseReleased)
}

func TestDetectorReleaseWithoutPress(t *testing.T) {
	d := newDetector()
	expectTypes(t, d.process(buttonEvent(event.MouseReleased, event.ButtonLeft, 0, 0)), event.MouseReleased)
}

func TestDetectorResetDiscardsGesture(t *testing.T) {
	d := newDetector()

	d.process(buttonEvent(event.MousePressed, event.ButtonLeft, 0, 0))
	d.reset()

	// The press was discarded; the release synthesizes nothing.
	expectTypes(t, d.process(buttonEvent(event.MouseReleased, event.ButtonLeft, 0, 0)), event.MouseReleased)
	// And motion is plain movement again.
	expectTypes(t, d.process(motion(1, 1)), event.MouseMoved)
}

func TestDetectorPassthrough(t *testing.T) {
	d := newDetector()

	wheel := event.Event{
		Type:  event.MouseWheel,
		Wheel: &event.WheelData{Direction: event.ScrollUp, Delta: 1},
	}
	expectTypes(t, d.process(wheel), event.MouseWheel)

	keyUp := event.Event{
		Type:     event.KeyReleased,
		Keyboard: &event.KeyboardData{Key: event.KeyA},
	}
	expectTypes(t, d.process(keyUp), event.KeyReleased)
}
