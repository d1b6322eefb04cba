//go:build windows

package simulate

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"inputtap/internal/event"
	"inputtap/internal/keycode"
)

const (
	inputMouse    = 0
	inputKeyboard = 1

	mouseeventfMove        = 0x0001
	mouseeventfLeftDown    = 0x0002
	mouseeventfLeftUp      = 0x0004
	mouseeventfRightDown   = 0x0008
	mouseeventfRightUp     = 0x0010
	mouseeventfMiddleDown  = 0x0020
	mouseeventfMiddleUp    = 0x0040
	mouseeventfXDown       = 0x0080
	mouseeventfXUp         = 0x0100
	mouseeventfAbsolute    = 0x8000
	mouseeventfVirtualDesk = 0x4000

	keyeventfKeyUp = 0x0002

	xbutton1 = 1
	xbutton2 = 2

	smXVirtualScreen  = 76
	smYVirtualScreen  = 77
	smCXVirtualScreen = 78
	smCYVirtualScreen = 79
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSendInput        = user32.NewProc("SendInput")
	procGetCursorPos     = user32.NewProc("GetCursorPos")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

type mouseInput struct {
	dx, dy    int32
	mouseData uint32
	flags     uint32
	time      uint32
	extraInfo uintptr
}

type keybdInput struct {
	vk        uint16
	scan      uint16
	flags     uint32
	time      uint32
	extraInfo uintptr
}

// input matches the C INPUT layout: the union starts at pointer alignment,
// so the pad after the 32-bit type tag is 4 bytes on 64-bit and absent on
// 32-bit.
type input struct {
	typ uint32
	_   [unsafe.Sizeof(uintptr(0)) - 4]byte
	mi  mouseInput
}

func sendOne(inp input) error {
	ret, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&inp)), unsafe.Sizeof(inp))
	if ret != 1 {
		return fmt.Errorf("%w: %v", ErrSimulationFailed, err)
	}
	return nil
}

func platformMouseMove(x, y float64) error {
	left, _, _ := procGetSystemMetrics.Call(smXVirtualScreen)
	top, _, _ := procGetSystemMetrics.Call(smYVirtualScreen)
	width, _, _ := procGetSystemMetrics.Call(smCXVirtualScreen)
	height, _, _ := procGetSystemMetrics.Call(smCYVirtualScreen)
	if int32(width) <= 0 || int32(height) <= 0 {
		return fmt.Errorf("%w: no virtual screen metrics", ErrSimulationFailed)
	}

	// Absolute coordinates are normalized to a 0-65535 grid over the
	// virtual desktop.
	nx := (x - float64(int32(left))) * 65535 / float64(int32(width))
	ny := (y - float64(int32(top))) * 65535 / float64(int32(height))

	return sendOne(input{
		typ: inputMouse,
		mi: mouseInput{
			dx:    int32(nx),
			dy:    int32(ny),
			flags: mouseeventfMove | mouseeventfAbsolute | mouseeventfVirtualDesk,
		},
	})
}

func platformMouseButton(b event.Button, press bool) error {
	var flags, data uint32
	switch b {
	case event.ButtonLeft:
		flags = mouseeventfLeftDown
		if !press {
			flags = mouseeventfLeftUp
		}
	case event.ButtonRight:
		flags = mouseeventfRightDown
		if !press {
			flags = mouseeventfRightUp
		}
	case event.ButtonMiddle:
		flags = mouseeventfMiddleDown
		if !press {
			flags = mouseeventfMiddleUp
		}
	case event.Button4, event.Button5:
		flags = mouseeventfXDown
		if !press {
			flags = mouseeventfXUp
		}
		data = xbutton1
		if b == event.Button5 {
			data = xbutton2
		}
	default:
		return fmt.Errorf("%w: unsupported button %v", ErrSimulationFailed, b)
	}

	return sendOne(input{
		typ: inputMouse,
		mi:  mouseInput{mouseData: data, flags: flags},
	})
}

func platformKey(k event.Key, press bool) error {
	vk, ok := keycode.ToWindows(k)
	if !ok {
		return fmt.Errorf("%w: no virtual-key code for %v", ErrSimulationFailed, k)
	}

	var flags uint32
	if !press {
		flags = keyeventfKeyUp
	}

	inp := input{typ: inputKeyboard}
	*(*keybdInput)(unsafe.Pointer(&inp.mi)) = keybdInput{vk: uint16(vk), flags: flags}
	return sendOne(inp)
}

func platformMousePosition() (float64, float64, error) {
	var pt struct{ x, y int32 }
	ret, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return 0, 0, fmt.Errorf("%w: %v", ErrSimulationFailed, err)
	}
	return float64(pt.x), float64(pt.y), nil
}
