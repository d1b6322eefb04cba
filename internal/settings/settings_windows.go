//go:build windows

package settings

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	spiGetKeyboardSpeed = 0x000A
	spiGetKeyboardDelay = 0x0016
	spiGetMouse         = 0x0003
	spiGetMouseSpeed    = 0x0070
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetDoubleClickTime     = user32.NewProc("GetDoubleClickTime")
	procSystemParametersInfoW  = user32.NewProc("SystemParametersInfoW")
	procGetKeyboardLayoutNameW = user32.NewProc("GetKeyboardLayoutNameW")
)

func platformSettings() (Settings, error) {
	var s Settings

	if ms, _, _ := procGetDoubleClickTime.Call(); ms != 0 {
		s.DoubleClickTime = millis(uint32(ms))
	}

	var speed uint32
	if ok, _, _ := procSystemParametersInfoW.Call(spiGetKeyboardSpeed, 0, uintptr(unsafe.Pointer(&speed)), 0); ok != 0 {
		s.KeyboardRepeatRate = float64Ptr(repeatRateFromSpeed(speed))
	}

	var delay uint32
	if ok, _, _ := procSystemParametersInfoW.Call(spiGetKeyboardDelay, 0, uintptr(unsafe.Pointer(&delay)), 0); ok != 0 {
		s.KeyboardRepeatDelay = millis(repeatDelayMillis(delay))
	}

	var mouseSpeed uint32
	if ok, _, _ := procSystemParametersInfoW.Call(spiGetMouseSpeed, 0, uintptr(unsafe.Pointer(&mouseSpeed)), 0); ok != 0 {
		s.MouseSensitivity = float64Ptr(float64(mouseSpeed))
	}

	// SPI_GETMOUSE: [threshold1, threshold2, acceleration].
	var mouse [3]int32
	if ok, _, _ := procSystemParametersInfoW.Call(spiGetMouse, 0, uintptr(unsafe.Pointer(&mouse[0])), 0); ok != 0 {
		s.MouseAcceleration = float64Ptr(float64(mouse[2]))
		s.MouseAccelerationThreshold = float64Ptr(float64(mouse[0]))
	}

	var klid [9]uint16
	if ok, _, _ := procGetKeyboardLayoutNameW.Call(uintptr(unsafe.Pointer(&klid[0]))); ok != 0 {
		s.KeyboardLayout = stringPtr(windows.UTF16ToString(klid[:]))
	}

	return s, nil
}

// repeatRateFromSpeed maps the 0-31 keyboard speed setting onto the
// 2.5-30 repeats/second range it represents.
func repeatRateFromSpeed(speed uint32) float64 {
	if speed > 31 {
		speed = 31
	}
	return 2.5 + 27.5*float64(speed)/31
}

// repeatDelayMillis maps the 0-3 keyboard delay setting onto the
// 250ms-1s range it represents.
func repeatDelayMillis(delay uint32) uint32 {
	if delay > 3 {
		delay = 3
	}
	return 250 * (delay + 1)
}
