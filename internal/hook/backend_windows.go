//go:build windows

package hook

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"inputtap/internal/event"
	"inputtap/internal/keycode"
	"inputtap/internal/metrics"
)

// Windows capture uses low-level keyboard and mouse hooks
// (WH_KEYBOARD_LL / WH_MOUSE_LL) with a message pump on a dedicated
// OS thread. The hook procedures run on that thread; they convert each
// notification to a RawEvent and hand it off on a buffered channel so the
// pump never waits on the consumer — Windows silently uninstalls LL hooks
// whose procedures stall.

const (
	whKeyboardLL = 13
	whMouseLL    = 14

	wmKeyDown     = 0x0100
	wmKeyUp       = 0x0101
	wmSysKeyDown  = 0x0104
	wmSysKeyUp    = 0x0105
	wmMouseMove   = 0x0200
	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202
	wmRButtonDown = 0x0204
	wmRButtonUp   = 0x0205
	wmMButtonDown = 0x0207
	wmMButtonUp   = 0x0208
	wmMouseWheel  = 0x020A
	wmXButtonDown = 0x020B
	wmXButtonUp   = 0x020C
	wmMouseHWheel = 0x020E
	wmQuit        = 0x0012

	llkhfInjected = 0x10
	llmhfInjected = 0x01

	wheelDelta = 120

	mapvkVkToChar = 2
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procGetMessageW         = user32.NewProc("GetMessageW")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")
	procMapVirtualKeyW      = user32.NewProc("MapVirtualKeyW")
	procGetCurrentThreadId  = kernel32.NewProc("GetCurrentThreadId")
)

type point struct {
	x, y int32
}

type msg struct {
	hwnd    windows.Handle
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      point
}

type kbdllHookStruct struct {
	vkCode      uint32
	scanCode    uint32
	flags       uint32
	time        uint32
	dwExtraInfo uintptr
}

type msllHookStruct struct {
	pt          point
	mouseData   uint32
	flags       uint32
	time        uint32
	dwExtraInfo uintptr
}

// Low-level hook procedures receive no context pointer, so the active
// backend is process-global. One capture session per process on Windows;
// a second Open fails until the first closes.
var activeWindows atomic.Pointer[windowsBackend]

var (
	callbackOnce sync.Once
	kbCallback   uintptr
	mouseCallback uintptr
)

type windowsBackend struct {
	events   chan RawEvent
	threadID uint32

	mu        sync.Mutex
	closed    bool
	readerErr error

	keyHook   uintptr
	mouseHook uintptr
}

func newPlatformBackend() Backend {
	return &windowsBackend{events: make(chan RawEvent, 1024)}
}

func (w *windowsBackend) Open() error {
	if !activeWindows.CompareAndSwap(nil, w) {
		return fmt.Errorf("%w: another capture session is active in this process", ErrHookInstallFailed)
	}

	callbackOnce.Do(func() {
		kbCallback = windows.NewCallback(lowLevelKeyboardProc)
		mouseCallback = windows.NewCallback(lowLevelMouseProc)
	})

	ready := make(chan error, 1)
	go w.pump(ready)

	if err := <-ready; err != nil {
		activeWindows.Store(nil)
		return err
	}
	return nil
}

// pump installs the hooks and runs the message loop on a locked OS thread.
func (w *windowsBackend) pump(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	tid, _, _ := procGetCurrentThreadId.Call()
	w.threadID = uint32(tid)

	keyHook, _, err := procSetWindowsHookExW.Call(whKeyboardLL, kbCallback, 0, 0)
	if keyHook == 0 {
		ready <- fmt.Errorf("%w: keyboard: %v", ErrHookInstallFailed, err)
		return
	}
	mouseHook, _, err := procSetWindowsHookExW.Call(whMouseLL, mouseCallback, 0, 0)
	if mouseHook == 0 {
		procUnhookWindowsHookEx.Call(keyHook)
		ready <- fmt.Errorf("%w: mouse: %v", ErrHookInstallFailed, err)
		return
	}
	w.keyHook = keyHook
	w.mouseHook = mouseHook
	ready <- nil

	var m msg
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		// 0 on WM_QUIT, -1 on failure; either way the pump is done.
		if int32(ret) <= 0 {
			break
		}
	}

	procUnhookWindowsHookEx.Call(w.keyHook)
	procUnhookWindowsHookEx.Call(w.mouseHook)
	activeWindows.Store(nil)
	close(w.events)
}

func (w *windowsBackend) ReadEvent() (RawEvent, error) {
	raw, ok := <-w.events
	if !ok {
		w.mu.Lock()
		err := w.readerErr
		w.mu.Unlock()
		if err != nil {
			return RawEvent{}, err
		}
		return RawEvent{}, ErrBackendClosed
	}
	return raw, nil
}

func (w *windowsBackend) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	tid := w.threadID
	w.mu.Unlock()

	if tid != 0 {
		procPostThreadMessageW.Call(uintptr(tid), wmQuit, 0, 0)
	}
	return nil
}

func (w *windowsBackend) Keymap() Keymap {
	return Keymap{
		Key:    keycode.FromWindows,
		Button: buttonFromWindows,
	}
}

// buttonFromWindows maps the raw button numbering used by the mouse hook
// procedure (1=left 2=right 3=middle 4=x1 5=x2).
func buttonFromWindows(code uint32) event.Button {
	switch code {
	case 1:
		return event.ButtonLeft
	case 2:
		return event.ButtonRight
	case 3:
		return event.ButtonMiddle
	case 4:
		return event.Button4
	case 5:
		return event.Button5
	default:
		return event.ButtonUnknown
	}
}

// offer hands an event to the consumer without ever blocking the hook
// thread. Drops are the lesser evil: a stalled LL hook gets uninstalled
// by the OS.
func (w *windowsBackend) offer(raw RawEvent) {
	raw.Time = time.Now()
	select {
	case w.events <- raw:
	default:
		metrics.Capture.Dropped.Inc()
	}
}

func lowLevelKeyboardProc(nCode int32, wParam uintptr, lParam uintptr) uintptr {
	if nCode == 0 {
		if w := activeWindows.Load(); w != nil {
			kb := (*kbdllHookStruct)(unsafe.Pointer(lParam))
			raw := RawEvent{
				KeyCode:  kb.vkCode,
				Injected: kb.flags&llkhfInjected != 0,
			}
			switch wParam {
			case wmKeyDown, wmSysKeyDown:
				raw.Kind = RawKeyDown
				raw.Char = vkToChar(kb.vkCode)
			case wmKeyUp, wmSysKeyUp:
				raw.Kind = RawKeyUp
			default:
				goto next
			}
			w.offer(raw)
		}
	}
next:
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}

func lowLevelMouseProc(nCode int32, wParam uintptr, lParam uintptr) uintptr {
	if nCode == 0 {
		if w := activeWindows.Load(); w != nil {
			ms := (*msllHookStruct)(unsafe.Pointer(lParam))
			raw := RawEvent{
				X:        float64(ms.pt.x),
				Y:        float64(ms.pt.y),
				Injected: ms.flags&llmhfInjected != 0,
			}
			switch wParam {
			case wmMouseMove:
				raw.Kind = RawMotion
			case wmLButtonDown:
				raw.Kind, raw.Button = RawButtonDown, 1
			case wmLButtonUp:
				raw.Kind, raw.Button = RawButtonUp, 1
			case wmRButtonDown:
				raw.Kind, raw.Button = RawButtonDown, 2
			case wmRButtonUp:
				raw.Kind, raw.Button = RawButtonUp, 2
			case wmMButtonDown:
				raw.Kind, raw.Button = RawButtonDown, 3
			case wmMButtonUp:
				raw.Kind, raw.Button = RawButtonUp, 3
			case wmXButtonDown, wmXButtonUp:
				raw.Kind = RawButtonDown
				if wParam == wmXButtonUp {
					raw.Kind = RawButtonUp
				}
				// High word selects XBUTTON1 or XBUTTON2.
				raw.Button = 3 + ms.mouseData>>16
			case wmMouseWheel:
				raw.Kind = RawWheel
				raw.WheelDY = float64(int16(ms.mouseData>>16)) / wheelDelta
			case wmMouseHWheel:
				raw.Kind = RawWheel
				raw.WheelDX = float64(int16(ms.mouseData>>16)) / wheelDelta
			default:
				goto next
			}
			w.offer(raw)
		}
	}
next:
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}

// vkToChar resolves the base character for a virtual-key code. Layout
// dependent but modifier-blind: good enough for KeyTyped on unshifted
// input, and zero for keys with no character at all.
func vkToChar(vk uint32) rune {
	ret, _, _ := procMapVirtualKeyW.Call(uintptr(vk), mapvkVkToChar)
	// High bit set means dead key; ignore those.
	if ret == 0 || ret&0x80000000 != 0 {
		return 0
	}
	return rune(ret & 0xFFFF)
}
