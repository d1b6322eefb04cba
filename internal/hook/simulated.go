package hook

import (
	"sync"
	"time"

	"inputtap/internal/event"
)

// SimulatedBackend feeds scripted raw events through the real capture
// pipeline. It stands in for a platform backend in tests: the normalizer,
// detector and controller run exactly as they would against the OS.
//
// Its keymap is the identity over logical values, so pushed key and button
// codes are interpreted directly as event.Key and event.Button.
type SimulatedBackend struct {
	mu     sync.Mutex
	closed bool
	events chan RawEvent

	openErr error
	failErr error
}

// NewSimulated creates a simulated backend with room for buffered pushes.
func NewSimulated() *SimulatedBackend {
	return &SimulatedBackend{events: make(chan RawEvent, 256)}
}

// FailOpen makes the next Open return err, for exercising start failures.
func (s *SimulatedBackend) FailOpen(err error) {
	s.mu.Lock()
	s.openErr = err
	s.mu.Unlock()
}

// Fail injects a mid-capture backend failure: the next ReadEvent after the
// queue drains returns err instead of blocking.
func (s *SimulatedBackend) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
	if s.closed {
		return
	}
	// Wake a blocked reader.
	select {
	case s.events <- RawEvent{Kind: rawWake}:
	default:
	}
}

// rawWake is an internal marker used to unblock ReadEvent; it never
// reaches the normalizer.
const rawWake RawKind = -1

func (s *SimulatedBackend) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.openErr != nil {
		err := s.openErr
		s.openErr = nil
		return err
	}
	if s.closed {
		// Reopened after a Close; the old channel is spent.
		s.events = make(chan RawEvent, 256)
	}
	s.closed = false
	s.failErr = nil
	return nil
}

func (s *SimulatedBackend) ReadEvent() (RawEvent, error) {
	for {
		raw, ok := <-s.events
		if !ok {
			return RawEvent{}, ErrBackendClosed
		}
		if raw.Kind == rawWake {
			s.mu.Lock()
			err := s.failErr
			s.mu.Unlock()
			if err != nil {
				return RawEvent{}, err
			}
			continue
		}
		s.mu.Lock()
		err := s.failErr
		s.mu.Unlock()
		if err != nil {
			return RawEvent{}, err
		}
		return raw, nil
	}
}

func (s *SimulatedBackend) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.events)
	}
	return nil
}

func (s *SimulatedBackend) Keymap() Keymap {
	return Keymap{
		Key:    func(c uint32) event.Key { return event.Key(c) },
		Button: func(c uint32) event.Button { return event.Button(c) },
	}
}

// push enqueues one raw event; drops it once the backend is closed, the
// way a real OS source stops delivering after detach.
func (s *SimulatedBackend) push(raw RawEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	raw.Time = time.Now()
	select {
	case s.events <- raw:
	default:
		// Queue full; drop rather than deadlock against Close.
	}
}

// PushKeyDown scripts a key press. char is the resolved character, 0 for
// none.
func (s *SimulatedBackend) PushKeyDown(key event.Key, char rune) {
	s.push(RawEvent{Kind: RawKeyDown, KeyCode: uint32(key), Char: char})
}

// PushKeyUp scripts a key release.
func (s *SimulatedBackend) PushKeyUp(key event.Key) {
	s.push(RawEvent{Kind: RawKeyUp, KeyCode: uint32(key)})
}

// PushButtonDown scripts a mouse button press at a position.
func (s *SimulatedBackend) PushButtonDown(b event.Button, x, y float64) {
	s.push(RawEvent{Kind: RawButtonDown, Button: uint32(b), X: x, Y: y})
}

// PushButtonUp scripts a mouse button release at a position.
func (s *SimulatedBackend) PushButtonUp(b event.Button, x, y float64) {
	s.push(RawEvent{Kind: RawButtonUp, Button: uint32(b), X: x, Y: y})
}

// PushMotion scripts pointer movement.
func (s *SimulatedBackend) PushMotion(x, y float64) {
	s.push(RawEvent{Kind: RawMotion, X: x, Y: y})
}

// PushWheel scripts a wheel event with normalized deltas.
func (s *SimulatedBackend) PushWheel(dx, dy float64) {
	s.push(RawEvent{Kind: RawWheel, WheelDX: dx, WheelDY: dy})
}
