package keycode

import (
	"testing"

	"inputtap/internal/event"
)

func TestFromDarwin(t *testing.T) {
	cases := []struct {
		code uint32
		want event.Key
	}{
		{0, event.KeyA},
		{12, event.KeyQ},
		{36, event.KeyEnter},
		{49, event.KeySpace},
		{51, event.KeyBackspace},
		{56, event.KeyShiftLeft},
		{76, event.KeyNumpadEnter},
		{122, event.KeyF1},
		{126, event.KeyArrowUp},
		{999, event.KeyUnknown},
	}
	for _, c := range cases {
		if got := FromDarwin(c.code); got != c.want {
			t.Errorf("FromDarwin(%d) = %s, want %s", c.code, got, c.want)
		}
	}
}

func TestFromWindows(t *testing.T) {
	cases := []struct {
		code uint32
		want event.Key
	}{
		{0x41, event.KeyA},
		{0x0D, event.KeyEnter},
		{0x20, event.KeySpace},
		{0xA1, event.KeyShiftRight},
		{0x70, event.KeyF1},
		{0x87, event.KeyF24},
		{0xAF, event.KeyVolumeUp},
		{0x5D, event.KeyContextMenu},
		{0xFF, event.KeyUnknown},
	}
	for _, c := range cases {
		if got := FromWindows(c.code); got != c.want {
			t.Errorf("FromWindows(%#x) = %s, want %s", c.code, got, c.want)
		}
	}
}

func TestFromX11(t *testing.T) {
	cases := []struct {
		code uint32
		want event.Key
	}{
		{38, event.KeyA},
		{36, event.KeyEnter},
		{65, event.KeySpace},
		{50, event.KeyShiftLeft},
		{67, event.KeyF1},
		{133, event.KeyMetaLeft},
		{111, event.KeyArrowUp},
		{7, event.KeyUnknown},
	}
	for _, c := range cases {
		if got := FromX11(c.code); got != c.want {
			t.Errorf("FromX11(%d) = %s, want %s", c.code, got, c.want)
		}
	}
}

// Round-trip: every key with a reverse mapping must come back to itself
// through the forward table.
func TestReverseRoundTrip(t *testing.T) {
	platforms := []struct {
		name    string
		to      func(event.Key) (uint32, bool)
		from    func(uint32) event.Key
	}{
		{"darwin", ToDarwin, FromDarwin},
		{"windows", ToWindows, FromWindows},
		{"x11", ToX11, FromX11},
	}
	for _, p := range platforms {
		for k := event.Key(0); int(k) < event.KeyCount; k++ {
			code, ok := p.to(k)
			if !ok {
				continue
			}
			if got := p.from(code); got != k {
				t.Errorf("%s: key %s -> code %d -> key %s", p.name, k, code, got)
			}
		}
	}
}

func TestToUnknownKeyFails(t *testing.T) {
	if _, ok := ToDarwin(event.KeyUnknown); ok {
		t.Error("ToDarwin(KeyUnknown) should fail")
	}
	if _, ok := ToWindows(event.KeyUnknown); ok {
		t.Error("ToWindows(KeyUnknown) should fail")
	}
	if _, ok := ToX11(event.KeyUnknown); ok {
		t.Error("ToX11(KeyUnknown) should fail")
	}
}

func TestButtonMappings(t *testing.T) {
	for b := event.ButtonLeft; b <= event.Button5; b++ {
		code, ok := ButtonToX11(b)
		if !ok {
			t.Errorf("ButtonToX11(%s) failed", b)
			continue
		}
		if got := ButtonFromX11(code); got != b {
			t.Errorf("x11 button round trip: %s -> %d -> %s", b, code, got)
		}

		code, ok = ButtonToDarwin(b)
		if !ok {
			t.Errorf("ButtonToDarwin(%s) failed", b)
			continue
		}
		if got := ButtonFromDarwin(code); got != b {
			t.Errorf("darwin button round trip: %s -> %d -> %s", b, code, got)
		}
	}
	if ButtonFromX11(42) != event.ButtonUnknown {
		t.Error("unmapped X11 button should be ButtonUnknown")
	}
	if _, ok := ButtonToX11(event.ButtonUnknown); ok {
		t.Error("ButtonToX11(ButtonUnknown) should fail")
	}
}
