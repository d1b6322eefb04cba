package metrics

import (
	"strings"
	"testing"
)

func TestCounterAndGauge(t *testing.T) {
	c := NewCounter("c_total", "help")
	c.Inc()
	c.Add(4)
	if c.Value() != 5 {
		t.Errorf("counter = %d, want 5", c.Value())
	}

	g := NewGauge("g", "help")
	g.Set(3)
	g.Inc()
	g.Dec()
	g.Dec()
	if g.Value() != 2 {
		t.Errorf("gauge = %d, want 2", g.Value())
	}
}

func TestRegistryReusesByName(t *testing.T) {
	r := NewRegistry()
	a := r.Counter("x_total", "first")
	b := r.Counter("x_total", "second")
	if a != b {
		t.Error("same name should return the same counter")
	}
}

func TestWriteText(t *testing.T) {
	r := NewRegistry()
	r.Counter("events_total", "events seen").Add(7)
	r.Gauge("active", "active sessions").Set(2)

	var sb strings.Builder
	if err := r.WriteText(&sb); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"# TYPE events_total counter",
		"events_total 7",
		"# TYPE active gauge",
		"active 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("exposition missing %q:\n%s", want, out)
		}
	}
}

func TestCaptureMetricsRegistered(t *testing.T) {
	Capture.RawEvents.Inc()

	var sb strings.Builder
	if err := Capture.Registry().WriteText(&sb); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if !strings.Contains(sb.String(), "inputtap_raw_events_total") {
		t.Error("capture metrics not registered for exposition")
	}
}
