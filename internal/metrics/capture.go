package metrics

// Capture holds the process-wide capture pipeline metrics. Counters are
// cheap atomic adds, so the hot path increments them unconditionally.
var Capture = newCaptureMetrics(NewRegistry())

// CaptureMetrics aggregates the capture pipeline counters and gauges.
type CaptureMetrics struct {
	registry *Registry

	RawEvents       *Counter
	Delivered       *Counter
	Masked          *Counter
	Dropped         *Counter
	HooksStarted    *Counter
	CaptureFailures *Counter

	ActiveHooks *Gauge
}

func newCaptureMetrics(r *Registry) *CaptureMetrics {
	return &CaptureMetrics{
		registry: r,

		RawEvents: r.Counter("inputtap_raw_events_total",
			"Raw OS input notifications read from capture backends"),
		Delivered: r.Counter("inputtap_events_delivered_total",
			"Classified events delivered to callbacks"),
		Masked: r.Counter("inputtap_events_masked_total",
			"Classified events suppressed by the event mask"),
		Dropped: r.Counter("inputtap_events_dropped_total",
			"Raw events dropped because a backend queue was full"),
		HooksStarted: r.Counter("inputtap_hooks_started_total",
			"Capture sessions started"),
		CaptureFailures: r.Counter("inputtap_capture_failures_total",
			"Capture sessions that ended with a backend failure"),

		ActiveHooks: r.Gauge("inputtap_active_hooks",
			"Capture sessions currently running"),
	}
}

// Registry exposes the underlying registry for text exposition.
func (m *CaptureMetrics) Registry() *Registry {
	return m.registry
}
