package display

import (
	"errors"
	"testing"
)

// Dual-head layout: primary at origin, secondary to the right with a
// vertical offset, the way mixed-size monitors usually end up arranged.
var testLayout = []Display{
	{ID: 1, Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, ScaleFactor: 1, IsPrimary: true},
	{ID: 2, Bounds: Rect{X: 1920, Y: -200, Width: 2560, Height: 1440}, ScaleFactor: 2},
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},   // top-left corner inclusive
		{109, 69, true},  // inside bottom-right
		{110, 20, false}, // right edge exclusive
		{10, 70, false},  // bottom edge exclusive
		{9, 20, false},
		{50, 19, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAtPointSelection(t *testing.T) {
	d, err := atPoint(testLayout, 100, 100)
	if err != nil {
		t.Fatalf("atPoint: %v", err)
	}
	if d.ID != 1 {
		t.Errorf("point on primary resolved to display %d", d.ID)
	}

	d, err = atPoint(testLayout, 2000, 0)
	if err != nil {
		t.Fatalf("atPoint: %v", err)
	}
	if d.ID != 2 {
		t.Errorf("point on secondary resolved to display %d", d.ID)
	}

	// The offset leaves a dead zone above the primary.
	if _, err := atPoint(testLayout, 100, -100); !errors.Is(err, ErrNotFound) {
		t.Errorf("dead zone: err = %v, want ErrNotFound", err)
	}

	if _, err := atPoint(testLayout, 99999, 99999); !errors.Is(err, ErrNotFound) {
		t.Errorf("far outside: err = %v, want ErrNotFound", err)
	}

	if _, err := atPoint(nil, 0, 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty layout: err = %v, want ErrNotFound", err)
	}
}

func TestPrimarySelection(t *testing.T) {
	d, err := primary(testLayout)
	if err != nil {
		t.Fatalf("primary: %v", err)
	}
	if d.ID != 1 {
		t.Errorf("primary = display %d", d.ID)
	}

	// No flagged primary: fall back to the first display.
	unflagged := []Display{
		{ID: 7, Bounds: Rect{Width: 800, Height: 600}},
		{ID: 8, Bounds: Rect{X: 800, Width: 800, Height: 600}},
	}
	d, err = primary(unflagged)
	if err != nil {
		t.Fatalf("primary fallback: %v", err)
	}
	if d.ID != 7 {
		t.Errorf("fallback primary = display %d", d.ID)
	}

	if _, err := primary(nil); err == nil {
		t.Error("primary of empty layout should fail")
	}
}
