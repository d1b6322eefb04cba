package event

import "testing"

func TestMaskConstants(t *testing.T) {
	if MaskAll != 0x7FF {
		t.Errorf("MaskAll = %#x, want 0x7FF", uint32(MaskAll))
	}
	if MaskKeyboard != 0x1C {
		t.Errorf("MaskKeyboard = %#x, want 0x1C", uint32(MaskKeyboard))
	}
	if MaskMouseButtons != 0xE0 {
		t.Errorf("MaskMouseButtons = %#x, want 0xE0", uint32(MaskMouseButtons))
	}
	if MaskMouseMovement != 0x300 {
		t.Errorf("MaskMouseMovement = %#x, want 0x300", uint32(MaskMouseMovement))
	}
	if MaskMouseAll != 0x7E0 {
		t.Errorf("MaskMouseAll = %#x, want 0x7E0", uint32(MaskMouseAll))
	}
}

func TestMaskHas(t *testing.T) {
	m := MaskKeyboard
	if !m.Has(KeyPressed) || !m.Has(KeyReleased) || !m.Has(KeyTyped) {
		t.Error("keyboard mask should include all key event types")
	}
	if m.Has(MouseMoved) || m.Has(HookEnabled) {
		t.Error("keyboard mask should not include mouse or lifecycle types")
	}
}

func TestComputeMask(t *testing.T) {
	cases := []struct {
		patterns []string
		want     Mask
	}{
		{nil, MaskAll},
		{[]string{"session:start"}, MaskAll},
		{[]string{"keyboard:*"}, MaskKeyboard},
		{[]string{"keyboard:down"}, MaskKeyboard},
		{[]string{"mouse:down"}, MaskMouseButtons},
		{[]string{"mouse:up", "mouse:click"}, MaskMouseButtons},
		{[]string{"mouse:move"}, MaskMouseMovement},
		{[]string{"mouse:scroll"}, MaskMouseWheel},
		{[]string{"mouse:*"}, MaskMouseAll},
		{[]string{"keyboard:*", "mouse:move"}, MaskKeyboard | MaskMouseMovement},
	}
	for _, c := range cases {
		if got := ComputeMask(c.patterns); got != c.want {
			t.Errorf("ComputeMask(%v) = %#x, want %#x", c.patterns, uint32(got), uint32(c.want))
		}
	}
}

func TestIsInputPattern(t *testing.T) {
	if !IsInputPattern("keyboard:down") || !IsInputPattern("mouse:*") {
		t.Error("keyboard/mouse patterns should be input patterns")
	}
	if IsInputPattern("session:start") || IsInputPattern("keyboard") {
		t.Error("non-input patterns should not match")
	}
}

func TestEventString(t *testing.T) {
	ev := Event{Type: MousePressed, Mouse: &MouseData{X: 10, Y: 20, Button: ButtonLeft}}
	if got := ev.String(); got != "MousePressed button=Left (10,20)" {
		t.Errorf("unexpected String: %q", got)
	}
	ev = Event{Type: HookEnabled}
	if got := ev.String(); got != "HookEnabled" {
		t.Errorf("unexpected String: %q", got)
	}
}
