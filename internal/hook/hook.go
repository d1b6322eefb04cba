package hook

import (
	"fmt"
	"sync"
	"sync/atomic"

	"inputtap/internal/event"
	"inputtap/internal/logging"
	"inputtap/internal/metrics"
)

// Callback receives classified events. It is invoked synchronously and
// sequentially from the capture goroutine; blocking in it delays delivery
// of subsequent OS events, and on Windows an overlong stall can make the
// OS silently uninstall the hook.
type Callback func(event.Event)

// Hook is one capture session controller. A Hook owns its backend and
// detector state for the duration of one Run/Stop cycle and delivers
// events to a single callback. Multiple Hook instances are fully
// independent.
type Hook struct {
	mu      sync.Mutex
	running bool
	backend Backend
	done    chan struct{}

	mask atomic.Uint32

	// newBackend builds the capture source for each Run. Swappable so
	// tests can feed scripted events through the real pipeline.
	newBackend func() Backend

	log *logging.Logger
}

// New creates a hook controller using the platform capture backend.
func New() *Hook {
	return NewWithBackend(nil)
}

// NewWithBackend creates a hook controller around a specific backend.
// A nil backend selects the platform default at Run time.
func NewWithBackend(b Backend) *Hook {
	h := &Hook{
		newBackend: newPlatformBackend,
		log:        logging.Default().WithComponent("hook"),
	}
	if b != nil {
		h.newBackend = func() Backend { return b }
	}
	h.mask.Store(uint32(event.MaskAll))
	return h
}

// SetEventMask changes which event types reach the callback. Takes effect
// for the next delivered event; safe to call while the hook is running.
func (h *Hook) SetEventMask(m event.Mask) {
	h.mask.Store(uint32(m))
}

// EventMask returns the current event filter.
func (h *Hook) EventMask() event.Mask {
	return event.Mask(h.mask.Load())
}

// IsRunning reports whether a capture session is active. Safe to call
// concurrently with Run and Stop.
func (h *Hook) IsRunning() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.running
}

// Run opens the platform backend and starts delivering classified events
// to cb on a dedicated capture goroutine. It returns once capture has
// begun; open failures are reported synchronously. A second Run while
// active returns ErrAlreadyRunning.
func (h *Hook) Run(cb Callback) error {
	if cb == nil {
		return fmt.Errorf("hook: nil callback")
	}

	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		return ErrAlreadyRunning
	}

	b := h.newBackend()
	if err := b.Open(); err != nil {
		h.mu.Unlock()
		return fmt.Errorf("open capture backend: %w", err)
	}

	h.backend = b
	h.running = true
	h.done = make(chan struct{})
	done := h.done
	h.mu.Unlock()

	metrics.Capture.HooksStarted.Inc()
	metrics.Capture.ActiveHooks.Inc()
	go h.captureLoop(b, cb, done)
	return nil
}

// captureLoop runs on the dedicated capture goroutine. Detector state
// lives here and only here.
func (h *Hook) captureLoop(b Backend, cb Callback, done chan struct{}) {
	defer close(done)

	det := newDetector()
	km := b.Keymap()

	h.deliver(cb, event.Event{Type: event.HookEnabled})

	for {
		raw, err := b.ReadEvent()
		if err != nil {
			if err != ErrBackendClosed {
				// Backend died mid-capture (permission revoked, display
				// connection lost). Not retried; the caller decides.
				h.log.Error("capture backend failed", "error", err)
				metrics.Capture.CaptureFailures.Inc()
			}
			det.reset()
			h.deliver(cb, event.Event{Type: event.HookDisabled})
			h.markStopped(b)
			return
		}

		metrics.Capture.RawEvents.Inc()
		for _, ev := range det.process(normalize(raw, km)) {
			h.deliver(cb, ev)
		}
	}
}

func (h *Hook) deliver(cb Callback, ev event.Event) {
	if !h.EventMask().Has(ev.Type) {
		metrics.Capture.Masked.Inc()
		return
	}
	metrics.Capture.Delivered.Inc()
	cb(ev)
}

// markStopped transitions to the stopped state from the capture goroutine.
// Close is invoked again here for the failure path; backends make it
// idempotent.
func (h *Hook) markStopped(b Backend) {
	_ = b.Close()
	h.mu.Lock()
	h.running = false
	h.backend = nil
	h.mu.Unlock()
	metrics.Capture.ActiveHooks.Dec()
}

// Stop ends the capture session. It is idempotent, safe to call from any
// goroutine, and blocks until the capture goroutine has fully exited: no
// callback invocation happens after Stop returns.
func (h *Hook) Stop() {
	h.mu.Lock()
	if !h.running {
		h.mu.Unlock()
		return
	}
	b := h.backend
	done := h.done
	h.mu.Unlock()

	_ = b.Close()
	<-done
}
