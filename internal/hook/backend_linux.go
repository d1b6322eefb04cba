//go:build linux

package hook

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/record"
	"github.com/jezek/xgb/xproto"

	"inputtap/internal/keycode"
	"inputtap/internal/metrics"
)

// x11Backend captures through the X11 RECORD extension. Two connections:
// the control connection creates and tears down the record context, and
// the data connection streams intercepted core events. Wayland sessions
// without XWayland have no X server to connect to; Open reports that as a
// display connection failure.
type x11Backend struct {
	events chan RawEvent

	mu      sync.Mutex
	closed  bool
	failErr error

	ctrl *xgb.Conn
	data *xgb.Conn
	ctx  record.Context
}

func newPlatformBackend() Backend {
	return &x11Backend{events: make(chan RawEvent, 1024)}
}

func (x *x11Backend) Open() error {
	ctrl, err := xgb.NewConn()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDisplayConnectionFailed, err)
	}
	data, err := xgb.NewConn()
	if err != nil {
		ctrl.Close()
		return fmt.Errorf("%w: %v", ErrDisplayConnectionFailed, err)
	}

	if err := record.Init(ctrl); err != nil {
		ctrl.Close()
		data.Close()
		return fmt.Errorf("%w: RECORD extension: %v", ErrDisplayConnectionFailed, err)
	}
	if err := record.Init(data); err != nil {
		ctrl.Close()
		data.Close()
		return fmt.Errorf("%w: RECORD extension: %v", ErrDisplayConnectionFailed, err)
	}

	ctx, err := record.NewContextId(ctrl)
	if err != nil {
		ctrl.Close()
		data.Close()
		return fmt.Errorf("%w: allocate record context: %v", ErrDisplayConnectionFailed, err)
	}

	ranges := []record.Range{{
		DeviceEvents: record.Range8{
			First: xproto.KeyPress,
			Last:  xproto.MotionNotify,
		},
	}}
	specs := []record.ClientSpec{record.CsAllClients}
	if err := record.CreateContextChecked(ctrl, ctx, 0, uint32(len(specs)), uint32(len(ranges)), specs, ranges).Check(); err != nil {
		ctrl.Close()
		data.Close()
		return fmt.Errorf("%w: create record context: %v", ErrDisplayConnectionFailed, err)
	}

	x.ctrl = ctrl
	x.data = data
	x.ctx = ctx

	go x.readLoop()
	return nil
}

// readLoop streams record replies on the data connection. Each reply
// carries a batch of raw core events, 32 bytes apiece.
func (x *x11Backend) readLoop() {
	cookie := record.EnableContext(x.data, x.ctx)
	for {
		reply, err := cookie.Reply()
		if err != nil {
			x.mu.Lock()
			closed := x.closed
			if !closed {
				x.failErr = fmt.Errorf("%w: record stream: %v", ErrDisplayConnectionFailed, err)
			}
			x.mu.Unlock()
			close(x.events)
			return
		}
		if reply == nil || reply.Category != 0 {
			// Only FromServer replies carry intercepted events.
			continue
		}
		x.decodeBatch(reply.Data)
	}
}

func (x *x11Backend) decodeBatch(data []byte) {
	now := time.Now()
	for len(data) >= 32 {
		ev := data[:32]
		data = data[32:]

		code := ev[0] & 0x7f
		detail := uint32(ev[1])
		rootX := float64(int16(binary.LittleEndian.Uint16(ev[20:22])))
		rootY := float64(int16(binary.LittleEndian.Uint16(ev[22:24])))
		// The send-event bit marks client-synthesized events.
		injected := ev[0]&0x80 != 0

		raw := RawEvent{Time: now, X: rootX, Y: rootY, Injected: injected}
		switch code {
		case xproto.KeyPress:
			raw.Kind = RawKeyDown
			raw.KeyCode = detail
		case xproto.KeyRelease:
			raw.Kind = RawKeyUp
			raw.KeyCode = detail
		case xproto.ButtonPress:
			if detail >= 4 && detail <= 7 {
				// Core protocol encodes the wheel as buttons 4-7.
				raw.Kind = RawWheel
				switch detail {
				case 4:
					raw.WheelDY = 1
				case 5:
					raw.WheelDY = -1
				case 6:
					raw.WheelDX = -1
				case 7:
					raw.WheelDX = 1
				}
			} else {
				raw.Kind = RawButtonDown
				raw.Button = detail
			}
		case xproto.ButtonRelease:
			if detail >= 4 && detail <= 7 {
				// Wheel releases duplicate the press; drop them.
				continue
			}
			raw.Kind = RawButtonUp
			raw.Button = detail
		case xproto.MotionNotify:
			raw.Kind = RawMotion
		default:
			continue
		}

		select {
		case x.events <- raw:
		default:
			// Consumer stalled; drop rather than block the stream reader.
			metrics.Capture.Dropped.Inc()
		}
	}
}

func (x *x11Backend) ReadEvent() (RawEvent, error) {
	raw, ok := <-x.events
	if !ok {
		x.mu.Lock()
		err := x.failErr
		x.mu.Unlock()
		if err != nil {
			return RawEvent{}, err
		}
		return RawEvent{}, ErrBackendClosed
	}
	return raw, nil
}

func (x *x11Backend) Close() error {
	x.mu.Lock()
	if x.closed {
		x.mu.Unlock()
		return nil
	}
	x.closed = true
	x.mu.Unlock()

	// Disabling the context ends the EnableContext reply stream; closing
	// the connections unblocks the reader if the server never answers.
	record.DisableContext(x.ctrl, x.ctx)
	record.FreeContext(x.ctrl, x.ctx)
	x.ctrl.Close()
	x.data.Close()
	return nil
}

func (x *x11Backend) Keymap() Keymap {
	return Keymap{
		Key:    keycode.FromX11,
		Button: keycode.ButtonFromX11,
	}
}
