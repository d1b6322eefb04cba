package inputtap

import (
	"sync"

	"inputtap/internal/event"
	"inputtap/internal/hook"
)

// ListenerID identifies a registered listener for removal.
type ListenerID int

// InputHook is an emitter-style wrapper over a capture hook: callers
// register per-event-type listeners instead of switching on event type in
// one callback. The underlying event mask tracks the registered listener
// set, so unsubscribed high-frequency types (mouse movement in particular)
// never cross the dispatch path.
//
// Listeners run sequentially on the capture goroutine, in registration
// order within a type.
type InputHook struct {
	mu        sync.Mutex
	h         *hook.Hook
	listeners map[event.Type]map[ListenerID]Callback
	order     map[event.Type][]ListenerID
	nextID    ListenerID
}

// NewInputHook creates an emitter over the platform capture backend.
func NewInputHook() *InputHook {
	return newInputHook(hook.New())
}

func newInputHook(h *hook.Hook) *InputHook {
	e := &InputHook{
		h:         h,
		listeners: make(map[event.Type]map[ListenerID]Callback),
		order:     make(map[event.Type][]ListenerID),
		nextID:    1,
	}
	// The hook defaults to MaskAll; with no listeners yet the mask must
	// start empty.
	e.mu.Lock()
	e.recomputeMaskLocked()
	e.mu.Unlock()
	return e
}

// Start begins capture. Listeners can be added and removed before or
// during capture.
func (e *InputHook) Start() error {
	return e.h.Run(e.dispatch)
}

// Stop ends capture. Idempotent; no listener runs after Stop returns.
func (e *InputHook) Stop() {
	e.h.Stop()
}

// IsRunning reports whether capture is active.
func (e *InputHook) IsRunning() bool {
	return e.h.IsRunning()
}

func (e *InputHook) dispatch(ev Event) {
	e.mu.Lock()
	ids := e.order[ev.Type]
	cbs := make([]Callback, 0, len(ids))
	for _, id := range ids {
		if cb, ok := e.listeners[ev.Type][id]; ok {
			cbs = append(cbs, cb)
		}
	}
	e.mu.Unlock()

	for _, cb := range cbs {
		cb(ev)
	}
}

// add registers cb for the given event types under one id.
func (e *InputHook) add(cb Callback, types ...event.Type) ListenerID {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	for _, t := range types {
		if e.listeners[t] == nil {
			e.listeners[t] = make(map[ListenerID]Callback)
		}
		e.listeners[t][id] = cb
		e.order[t] = append(e.order[t], id)
	}
	e.recomputeMaskLocked()
	return id
}

// remove drops the listener id from the given event types.
func (e *InputHook) remove(id ListenerID, types ...event.Type) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, t := range types {
		delete(e.listeners[t], id)
		ids := e.order[t]
		for i, v := range ids {
			if v == id {
				e.order[t] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
	}
	e.recomputeMaskLocked()
}

// recomputeMaskLocked rebuilds the hook's event mask from the registered
// listener set.
func (e *InputHook) recomputeMaskLocked() {
	var mask event.Mask
	for t, m := range e.listeners {
		if len(m) > 0 {
			mask |= t.Bit()
		}
	}
	e.h.SetEventMask(mask)
}

// OnKeyDown registers a listener for key presses.
func (e *InputHook) OnKeyDown(cb Callback) ListenerID {
	return e.add(cb, event.KeyPressed)
}

// OffKeyDown removes a key press listener.
func (e *InputHook) OffKeyDown(id ListenerID) {
	e.remove(id, event.KeyPressed)
}

// OnKeyUp registers a listener for key releases.
func (e *InputHook) OnKeyUp(cb Callback) ListenerID {
	return e.add(cb, event.KeyReleased)
}

// OffKeyUp removes a key release listener.
func (e *InputHook) OffKeyUp(id ListenerID) {
	e.remove(id, event.KeyReleased)
}

// OnKeyType registers a listener for key presses that resolved to a
// character.
func (e *InputHook) OnKeyType(cb Callback) ListenerID {
	return e.add(cb, event.KeyTyped)
}

// OffKeyType removes a key type listener.
func (e *InputHook) OffKeyType(id ListenerID) {
	e.remove(id, event.KeyTyped)
}

// OnMouseDown registers a listener for mouse button presses.
func (e *InputHook) OnMouseDown(cb Callback) ListenerID {
	return e.add(cb, event.MousePressed)
}

// OffMouseDown removes a mouse button press listener.
func (e *InputHook) OffMouseDown(id ListenerID) {
	e.remove(id, event.MousePressed)
}

// OnMouseUp registers a listener for mouse button releases.
func (e *InputHook) OnMouseUp(cb Callback) ListenerID {
	return e.add(cb, event.MouseReleased)
}

// OffMouseUp removes a mouse button release listener.
func (e *InputHook) OffMouseUp(id ListenerID) {
	e.remove(id, event.MouseReleased)
}

// OnClick registers a listener for synthesized clicks.
func (e *InputHook) OnClick(cb Callback) ListenerID {
	return e.add(cb, event.MouseClicked)
}

// OffClick removes a click listener.
func (e *InputHook) OffClick(id ListenerID) {
	e.remove(id, event.MouseClicked)
}

// OnMouseMove registers a listener for pointer movement, dragged or not.
func (e *InputHook) OnMouseMove(cb Callback) ListenerID {
	return e.add(cb, event.MouseMoved, event.MouseDragged)
}

// OffMouseMove removes a movement listener.
func (e *InputHook) OffMouseMove(id ListenerID) {
	e.remove(id, event.MouseMoved, event.MouseDragged)
}

// OnWheel registers a listener for scroll wheel events.
func (e *InputHook) OnWheel(cb Callback) ListenerID {
	return e.add(cb, event.MouseWheel)
}

// OffWheel removes a wheel listener.
func (e *InputHook) OffWheel(id ListenerID) {
	e.remove(id, event.MouseWheel)
}

// RemoveAllListeners drops every registered listener and clears the mask.
func (e *InputHook) RemoveAllListeners() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = make(map[event.Type]map[ListenerID]Callback)
	e.order = make(map[event.Type][]ListenerID)
	e.recomputeMaskLocked()
}
