package inputtap

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inputtap/internal/event"
	"inputtap/internal/hook"
)

type recorded struct {
	mu  sync.Mutex
	evs []Event
}

func (r *recorded) cb(ev Event) {
	r.mu.Lock()
	r.evs = append(r.evs, ev)
	r.mu.Unlock()
}

func (r *recorded) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.evs)
}

func (r *recorded) snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.evs))
	copy(out, r.evs)
	return out
}

func waitCount(t *testing.T, r *recorded, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r.count() >= n {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("only %d events before deadline, want %d", r.count(), n)
}

func TestInputHookNewHasEmptyMask(t *testing.T) {
	// The wrapped hook starts at MaskAll; constructing the emitter must
	// drop that to the (empty) listener set so nothing is delivered until
	// a listener registers.
	e := newInputHook(hook.NewWithBackend(hook.NewSimulated()))
	assert.Equal(t, Mask(0), e.h.EventMask())

	pub := NewInputHook()
	assert.Equal(t, Mask(0), pub.h.EventMask())
}

func TestInputHookMaskTracksListeners(t *testing.T) {
	e := newInputHook(hook.NewWithBackend(hook.NewSimulated()))

	assert.Equal(t, Mask(0), e.h.EventMask())

	id := e.OnKeyDown(func(Event) {})
	assert.Equal(t, event.KeyPressed.Bit(), e.h.EventMask())

	moveID := e.OnMouseMove(func(Event) {})
	want := event.KeyPressed.Bit() | event.MouseMoved.Bit() | event.MouseDragged.Bit()
	assert.Equal(t, want, e.h.EventMask())

	e.OffKeyDown(id)
	assert.Equal(t, event.MouseMoved.Bit()|event.MouseDragged.Bit(), e.h.EventMask())

	e.OffMouseMove(moveID)
	assert.Equal(t, Mask(0), e.h.EventMask())
}

func TestInputHookDispatch(t *testing.T) {
	sim := hook.NewSimulated()
	e := newInputHook(hook.NewWithBackend(sim))

	keys := &recorded{}
	clicks := &recorded{}
	e.OnKeyDown(keys.cb)
	e.OnClick(clicks.cb)

	require.NoError(t, e.Start())
	require.True(t, e.IsRunning())

	sim.PushKeyDown(KeyA, 'a')
	sim.PushButtonDown(ButtonLeft, 3, 4)
	sim.PushButtonUp(ButtonLeft, 3, 4)

	waitCount(t, keys, 1)
	waitCount(t, clicks, 1)
	e.Stop()
	assert.False(t, e.IsRunning())

	kev := keys.snapshot()[0]
	assert.Equal(t, KeyPressed, kev.Type)
	assert.Equal(t, KeyA, kev.Keyboard.Key)

	cev := clicks.snapshot()[0]
	assert.Equal(t, MouseClicked, cev.Type)
	assert.Equal(t, ButtonLeft, cev.Mouse.Button)
	assert.Equal(t, 3.0, cev.Mouse.X)
}

func TestInputHookUnsubscribedTypesDropped(t *testing.T) {
	sim := hook.NewSimulated()
	e := newInputHook(hook.NewWithBackend(sim))

	keys := &recorded{}
	e.OnKeyDown(keys.cb)

	require.NoError(t, e.Start())
	sim.PushMotion(1, 1)
	sim.PushWheel(0, 1)
	sim.PushKeyDown(KeyB, 'b')
	waitCount(t, keys, 1)
	e.Stop()

	for _, ev := range keys.snapshot() {
		assert.Equal(t, KeyPressed, ev.Type)
	}
}

func TestInputHookMouseMoveCoversDrag(t *testing.T) {
	sim := hook.NewSimulated()
	e := newInputHook(hook.NewWithBackend(sim))

	moves := &recorded{}
	e.OnMouseMove(moves.cb)

	require.NoError(t, e.Start())
	sim.PushMotion(1, 1)
	sim.PushButtonDown(ButtonLeft, 1, 1)
	sim.PushMotion(2, 2)
	waitCount(t, moves, 2)
	e.Stop()

	evs := moves.snapshot()
	assert.Equal(t, MouseMoved, evs[0].Type)
	assert.Equal(t, MouseDragged, evs[1].Type)
}

func TestInputHookRemoveAllListeners(t *testing.T) {
	sim := hook.NewSimulated()
	e := newInputHook(hook.NewWithBackend(sim))

	keys := &recorded{}
	e.OnKeyDown(keys.cb)
	e.OnWheel(func(Event) {})
	e.RemoveAllListeners()
	assert.Equal(t, Mask(0), e.h.EventMask())

	require.NoError(t, e.Start())
	sim.PushKeyDown(KeyA, 'a')
	time.Sleep(20 * time.Millisecond)
	e.Stop()

	assert.Zero(t, keys.count())
}

func TestInputHookListenerOrder(t *testing.T) {
	sim := hook.NewSimulated()
	e := newInputHook(hook.NewWithBackend(sim))

	var mu sync.Mutex
	var calls []int
	e.OnKeyDown(func(Event) {
		mu.Lock()
		calls = append(calls, 1)
		mu.Unlock()
	})
	e.OnKeyDown(func(Event) {
		mu.Lock()
		calls = append(calls, 2)
		mu.Unlock()
	})

	require.NoError(t, e.Start())
	sim.PushKeyDown(KeyA, 0)

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(calls)
		mu.Unlock()
		if n >= 2 || time.Now().After(deadline) {
			break
		}
		time.Sleep(time.Millisecond)
	}
	e.Stop()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []int{1, 2}, calls)
}
