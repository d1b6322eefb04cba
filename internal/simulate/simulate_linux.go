//go:build linux

package simulate

import (
	"fmt"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgb/xtest"

	"inputtap/internal/event"
	"inputtap/internal/keycode"
)

// One XTEST connection for the process, opened lazily. Injection calls
// are cheap and frequent; reconnecting per call would dominate them.
var (
	connMu   sync.Mutex
	conn     *xgb.Conn
	connRoot xproto.Window
)

func testConn() (*xgb.Conn, xproto.Window, error) {
	connMu.Lock()
	defer connMu.Unlock()

	if conn != nil {
		return conn, connRoot, nil
	}
	c, err := xgb.NewConn()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrNotAvailable, err)
	}
	if err := xtest.Init(c); err != nil {
		c.Close()
		return nil, 0, fmt.Errorf("%w: XTEST extension: %v", ErrNotAvailable, err)
	}
	conn = c
	connRoot = xproto.Setup(c).DefaultScreen(c).Root
	return conn, connRoot, nil
}

func fakeInput(typ byte, detail byte, x, y int16) error {
	c, root, err := testConn()
	if err != nil {
		return err
	}
	if err := xtest.FakeInputChecked(c, typ, detail, 0, root, x, y, 0).Check(); err != nil {
		return fmt.Errorf("%w: %v", ErrSimulationFailed, err)
	}
	return nil
}

func platformMouseMove(x, y float64) error {
	// Detail 0 makes MotionNotify absolute.
	return fakeInput(xproto.MotionNotify, 0, int16(x), int16(y))
}

func platformMouseButton(b event.Button, press bool) error {
	detail, ok := keycode.ButtonToX11(b)
	if !ok {
		return fmt.Errorf("%w: unsupported button %v", ErrSimulationFailed, b)
	}
	typ := byte(xproto.ButtonPress)
	if !press {
		typ = xproto.ButtonRelease
	}
	return fakeInput(typ, byte(detail), 0, 0)
}

func platformKey(k event.Key, press bool) error {
	code, ok := keycode.ToX11(k)
	if !ok {
		return fmt.Errorf("%w: no keycode for %v", ErrSimulationFailed, k)
	}
	typ := byte(xproto.KeyPress)
	if !press {
		typ = xproto.KeyRelease
	}
	return fakeInput(typ, byte(code), 0, 0)
}

func platformMousePosition() (float64, float64, error) {
	c, root, err := testConn()
	if err != nil {
		return 0, 0, err
	}
	reply, err := xproto.QueryPointer(c, root).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrSimulationFailed, err)
	}
	return float64(reply.RootX), float64(reply.RootY), nil
}
