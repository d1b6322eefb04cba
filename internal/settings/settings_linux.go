//go:build linux

package settings

import (
	"github.com/godbus/dbus/v5"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Linux has no single settings registry; each field comes from wherever
// it actually lives. Pointer acceleration is in the X server's core
// pointer controls, the keyboard layout in systemd-localed. Fields with
// no reachable source stay nil.
func platformSettings() (Settings, error) {
	var s Settings

	if conn, err := xgb.NewConn(); err == nil {
		if pc, err := xproto.GetPointerControl(conn).Reply(); err == nil {
			if pc.AccelerationDenominator > 0 {
				s.MouseAcceleration = float64Ptr(
					float64(pc.AccelerationNumerator) / float64(pc.AccelerationDenominator))
			}
			s.MouseAccelerationThreshold = float64Ptr(float64(pc.Threshold))
		}
		conn.Close()
	}

	if layout, ok := localedLayout(); ok {
		s.KeyboardLayout = stringPtr(layout)
	}

	return s, nil
}

// localedLayout asks systemd-localed for the configured X11 keyboard
// layout over the system bus.
func localedLayout() (string, bool) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return "", false
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.locale1", "/org/freedesktop/locale1")
	variant, err := obj.GetProperty("org.freedesktop.locale1.X11Layout")
	if err != nil {
		return "", false
	}
	layout, ok := variant.Value().(string)
	if !ok || layout == "" {
		return "", false
	}
	return layout, true
}
