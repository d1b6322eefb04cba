package hook

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inputtap/internal/event"
)

// collector records delivered events for assertions.
type collector struct {
	mu  sync.Mutex
	evs []event.Event
}

func (c *collector) callback(ev event.Event) {
	c.mu.Lock()
	c.evs = append(c.evs, ev)
	c.mu.Unlock()
}

func (c *collector) snapshot() []event.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]event.Event, len(c.evs))
	copy(out, c.evs)
	return out
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.evs)
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestHookRunAndStop(t *testing.T) {
	sim := NewSimulated()
	h := NewWithBackend(sim)
	c := &collector{}

	require.NoError(t, h.Run(c.callback))
	require.True(t, h.IsRunning())

	sim.PushKeyDown(event.KeyA, 'a')
	sim.PushKeyUp(event.KeyA)
	waitFor(t, func() bool { return c.count() >= 4 })

	h.Stop()
	assert.False(t, h.IsRunning())

	evs := c.snapshot()
	require.GreaterOrEqual(t, len(evs), 5)
	assert.Equal(t, event.HookEnabled, evs[0].Type)
	assert.Equal(t, event.KeyPressed, evs[1].Type)
	assert.Equal(t, event.KeyTyped, evs[2].Type)
	assert.Equal(t, event.KeyReleased, evs[3].Type)
	assert.Equal(t, event.HookDisabled, evs[len(evs)-1].Type)
	assert.Equal(t, event.KeyA, evs[1].Keyboard.Key)
}

func TestHookAlreadyRunning(t *testing.T) {
	sim := NewSimulated()
	h := NewWithBackend(sim)
	defer h.Stop()

	require.NoError(t, h.Run(func(event.Event) {}))
	err := h.Run(func(event.Event) {})
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestHookNilCallback(t *testing.T) {
	h := NewWithBackend(NewSimulated())
	assert.Error(t, h.Run(nil))
	assert.False(t, h.IsRunning())
}

func TestHookStopIdempotent(t *testing.T) {
	sim := NewSimulated()
	h := NewWithBackend(sim)

	// Stop before any Run is a no-op.
	h.Stop()

	require.NoError(t, h.Run(func(event.Event) {}))
	h.Stop()
	h.Stop()
	assert.False(t, h.IsRunning())
}

func TestHookNoDeliveryAfterStop(t *testing.T) {
	sim := NewSimulated()
	h := NewWithBackend(sim)
	c := &collector{}

	require.NoError(t, h.Run(c.callback))
	sim.PushMotion(1, 1)
	waitFor(t, func() bool { return c.count() >= 2 })

	h.Stop()
	n := c.count()

	sim.PushMotion(2, 2)
	sim.PushKeyDown(event.KeyB, 'b')
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, c.count())
}

func TestHookRestartResetsGestureState(t *testing.T) {
	sim := NewSimulated()
	h := NewWithBackend(sim)
	c := &collector{}

	require.NoError(t, h.Run(c.callback))
	sim.PushButtonDown(event.ButtonLeft, 5, 5)
	waitFor(t, func() bool { return c.count() >= 2 })
	h.Stop()

	// The press from the previous session is gone: releasing now must not
	// synthesize a click.
	c2 := &collector{}
	require.NoError(t, h.Run(c2.callback))
	sim.PushButtonUp(event.ButtonLeft, 5, 5)
	waitFor(t, func() bool { return c2.count() >= 2 })
	h.Stop()

	for _, ev := range c2.snapshot() {
		assert.NotEqual(t, event.MouseClicked, ev.Type)
	}
}

func TestHookClickPipeline(t *testing.T) {
	sim := NewSimulated()
	h := NewWithBackend(sim)
	c := &collector{}

	require.NoError(t, h.Run(c.callback))
	sim.PushButtonDown(event.ButtonLeft, 10, 20)
	sim.PushButtonUp(event.ButtonLeft, 10, 20)
	waitFor(t, func() bool { return c.count() >= 4 })
	h.Stop()

	evs := c.snapshot()
	assert.Equal(t, event.MousePressed, evs[1].Type)
	assert.Equal(t, event.MouseReleased, evs[2].Type)
	assert.Equal(t, event.MouseClicked, evs[3].Type)
	assert.Equal(t, event.ButtonLeft, evs[3].Mouse.Button)
}

func TestHookDragPipeline(t *testing.T) {
	sim := NewSimulated()
	h := NewWithBackend(sim)
	c := &collector{}

	require.NoError(t, h.Run(c.callback))
	sim.PushButtonDown(event.ButtonLeft, 0, 0)
	sim.PushMotion(5, 5)
	sim.PushButtonUp(event.ButtonLeft, 5, 5)
	waitFor(t, func() bool { return c.count() >= 4 })
	h.Stop()

	evs := c.snapshot()
	assert.Equal(t, event.MouseDragged, evs[2].Type)
	for _, ev := range evs {
		assert.NotEqual(t, event.MouseClicked, ev.Type)
	}
}

func TestHookMaskFiltering(t *testing.T) {
	sim := NewSimulated()
	h := NewWithBackend(sim)
	h.SetEventMask(event.MaskKeyboard)
	c := &collector{}

	require.NoError(t, h.Run(c.callback))
	sim.PushMotion(1, 1)
	sim.PushButtonDown(event.ButtonLeft, 1, 1)
	sim.PushKeyDown(event.KeyC, 'c')
	waitFor(t, func() bool { return c.count() >= 2 })
	h.Stop()

	for _, ev := range c.snapshot() {
		switch ev.Type {
		case event.KeyPressed, event.KeyTyped, event.KeyReleased:
		default:
			t.Errorf("masked event delivered: %v", ev.Type)
		}
	}
}

func TestHookMaskAdjustableWhileRunning(t *testing.T) {
	sim := NewSimulated()
	h := NewWithBackend(sim)
	c := &collector{}

	require.NoError(t, h.Run(c.callback))
	sim.PushMotion(1, 1)
	waitFor(t, func() bool { return c.count() >= 2 })

	h.SetEventMask(event.MaskKeyboard)
	assert.Equal(t, event.MaskKeyboard, h.EventMask())
	n := c.count()

	sim.PushMotion(2, 2)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, c.count())

	h.Stop()
}

func TestHookOpenFailure(t *testing.T) {
	sim := NewSimulated()
	sim.FailOpen(ErrPermissionDenied)
	h := NewWithBackend(sim)

	err := h.Run(func(event.Event) {})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.False(t, h.IsRunning())
}

func TestHookBackendFailureMidCapture(t *testing.T) {
	sim := NewSimulated()
	h := NewWithBackend(sim)
	c := &collector{}

	require.NoError(t, h.Run(c.callback))
	sim.PushKeyDown(event.KeyA, 0)
	waitFor(t, func() bool { return c.count() >= 2 })

	boom := errors.New("tap torn down")
	sim.Fail(boom)

	waitFor(t, func() bool { return !h.IsRunning() })
	evs := c.snapshot()
	assert.Equal(t, event.HookDisabled, evs[len(evs)-1].Type)

	// Stop after a failure is still safe.
	h.Stop()
}

func TestHookConcurrentStops(t *testing.T) {
	sim := NewSimulated()
	h := NewWithBackend(sim)

	require.NoError(t, h.Run(func(event.Event) {}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Stop()
		}()
	}
	wg.Wait()
	assert.False(t, h.IsRunning())
}

func TestNormalizeUnknownCodes(t *testing.T) {
	km := Keymap{
		Key:    func(uint32) event.Key { return event.KeyUnknown },
		Button: func(uint32) event.Button { return event.ButtonUnknown },
	}

	ev := normalize(RawEvent{Kind: RawKeyDown, KeyCode: 9999}, km)
	require.NotNil(t, ev.Keyboard)
	assert.Equal(t, event.KeyUnknown, ev.Keyboard.Key)
	assert.Equal(t, uint32(9999), ev.Keyboard.RawCode)

	ev = normalize(RawEvent{Kind: RawButtonDown, Button: 42, X: 1, Y: 2}, km)
	require.NotNil(t, ev.Mouse)
	assert.Equal(t, event.ButtonUnknown, ev.Mouse.Button)
	assert.Equal(t, uint32(42), ev.Mouse.RawButton)
}

func TestWheelDirection(t *testing.T) {
	tests := []struct {
		dx, dy    float64
		wantDir   event.ScrollDirection
		wantDelta float64
	}{
		{0, 1, event.ScrollUp, 1},
		{0, -2, event.ScrollDown, 2},
		{3, 0, event.ScrollRight, 3},
		{-1, 0, event.ScrollLeft, 1},
		// Vertical wins ties.
		{1, 1, event.ScrollUp, 1},
		{2, -2, event.ScrollDown, 2},
	}
	for _, tt := range tests {
		dir, delta := wheelDirection(tt.dx, tt.dy)
		if dir != tt.wantDir || delta != tt.wantDelta {
			t.Errorf("wheelDirection(%v, %v) = %v, %v; want %v, %v",
				tt.dx, tt.dy, dir, delta, tt.wantDir, tt.wantDelta)
		}
	}
}
