//go:build windows

package display

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	monitorinfofPrimary = 0x1
	enumCurrentSettings = 0xFFFFFFFF
	mdtEffectiveDPI     = 0
	baseDPI             = 96
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	shcore = windows.NewLazySystemDLL("shcore.dll")

	procEnumDisplayMonitors  = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW      = user32.NewProc("GetMonitorInfoW")
	procEnumDisplaySettingsW = user32.NewProc("EnumDisplaySettingsW")
	procGetDpiForMonitor     = shcore.NewProc("GetDpiForMonitor")
)

type rect struct {
	left, top, right, bottom int32
}

type monitorInfoEx struct {
	cbSize    uint32
	rcMonitor rect
	rcWork    rect
	dwFlags   uint32
	szDevice  [32]uint16
}

type devMode struct {
	dmDeviceName       [32]uint16
	dmSpecVersion      uint16
	dmDriverVersion    uint16
	dmSize             uint16
	dmDriverExtra      uint16
	dmFields           uint32
	dmPositionX        int32
	dmPositionY        int32
	dmDisplayOrient    uint32
	dmDisplayFixedOut  uint32
	dmColor            int16
	dmDuplex           int16
	dmYResolution      int16
	dmTTOption         int16
	dmCollate          int16
	dmFormName         [32]uint16
	dmLogPixels        uint16
	dmBitsPerPel       uint32
	dmPelsWidth        uint32
	dmPelsHeight       uint32
	dmDisplayFlags     uint32
	dmDisplayFrequency uint32
	dmICMMethod        uint32
	dmICMIntent        uint32
	dmMediaType        uint32
	dmDitherType       uint32
	dmReserved1        uint32
	dmReserved2        uint32
	dmPanningWidth     uint32
	dmPanningHeight    uint32
}

// EnumDisplayMonitors wants a C callback; NewCallback slots are never
// released, so one callback is created for the process and the result
// slice it appends to is guarded for the duration of each enumeration.
var (
	enumMu       sync.Mutex
	enumHandles  []uintptr
	enumCallback uintptr
	enumOnce     sync.Once
)

func monitorEnumProc(hMonitor, hdc, lprc, lparam uintptr) uintptr {
	enumHandles = append(enumHandles, hMonitor)
	return 1
}

func platformDisplays() ([]Display, error) {
	enumOnce.Do(func() {
		enumCallback = windows.NewCallback(monitorEnumProc)
	})

	enumMu.Lock()
	defer enumMu.Unlock()

	enumHandles = enumHandles[:0]
	ret, _, err := procEnumDisplayMonitors.Call(0, 0, enumCallback, 0)
	if ret == 0 {
		return nil, fmt.Errorf("enumerate monitors: %v", err)
	}

	displays := make([]Display, 0, len(enumHandles))
	for _, h := range enumHandles {
		var mi monitorInfoEx
		mi.cbSize = uint32(unsafe.Sizeof(mi))
		ret, _, _ := procGetMonitorInfoW.Call(h, uintptr(unsafe.Pointer(&mi)))
		if ret == 0 {
			continue
		}

		d := Display{
			ID: uint32(h),
			Bounds: Rect{
				X:      float64(mi.rcMonitor.left),
				Y:      float64(mi.rcMonitor.top),
				Width:  float64(mi.rcMonitor.right - mi.rcMonitor.left),
				Height: float64(mi.rcMonitor.bottom - mi.rcMonitor.top),
			},
			ScaleFactor: monitorScale(h),
			IsPrimary:   mi.dwFlags&monitorinfofPrimary != 0,
		}

		var dm devMode
		dm.dmSize = uint16(unsafe.Sizeof(dm))
		ret, _, _ = procEnumDisplaySettingsW.Call(
			uintptr(unsafe.Pointer(&mi.szDevice[0])),
			enumCurrentSettings,
			uintptr(unsafe.Pointer(&dm)),
		)
		if ret != 0 {
			d.RefreshRate = float64(dm.dmDisplayFrequency)
		}

		displays = append(displays, d)
	}
	return displays, nil
}

// monitorScale derives the scale factor from the effective DPI. Falls back
// to 1 before Windows 8.1 where shcore is missing.
func monitorScale(hMonitor uintptr) float64 {
	if err := procGetDpiForMonitor.Find(); err != nil {
		return 1
	}
	var dpiX, dpiY uint32
	ret, _, _ := procGetDpiForMonitor.Call(
		hMonitor,
		mdtEffectiveDPI,
		uintptr(unsafe.Pointer(&dpiX)),
		uintptr(unsafe.Pointer(&dpiY)),
	)
	if ret != 0 || dpiX == 0 {
		return 1
	}
	return float64(dpiX) / baseDPI
}
