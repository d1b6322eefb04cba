//go:build linux

package display

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

// X11 enumeration walks the RandR screen resources: every connected
// output with an active CRTC is one display. Scale factor is always 1;
// core X11 has no per-monitor scale, compositors fake it client-side.
func platformDisplays() ([]Display, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAvailable, err)
	}
	defer conn.Close()

	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("%w: RandR extension: %v", ErrNotAvailable, err)
	}

	root := xproto.Setup(conn).DefaultScreen(conn).Root

	res, err := randr.GetScreenResourcesCurrent(conn, root).Reply()
	if err != nil {
		return nil, fmt.Errorf("query screen resources: %w", err)
	}
	primary, err := randr.GetOutputPrimary(conn, root).Reply()
	if err != nil {
		return nil, fmt.Errorf("query primary output: %w", err)
	}

	modeRefresh := make(map[randr.Mode]float64, len(res.Modes))
	for _, m := range res.Modes {
		if m.Htotal > 0 && m.Vtotal > 0 {
			modeRefresh[randr.Mode(m.Id)] = float64(m.DotClock) / (float64(m.Htotal) * float64(m.Vtotal))
		}
	}

	var displays []Display
	for _, output := range res.Outputs {
		oi, err := randr.GetOutputInfo(conn, output, 0).Reply()
		if err != nil || oi.Connection != randr.ConnectionConnected || oi.Crtc == 0 {
			continue
		}
		ci, err := randr.GetCrtcInfo(conn, oi.Crtc, 0).Reply()
		if err != nil || ci.Mode == 0 {
			continue
		}

		displays = append(displays, Display{
			ID: uint32(output),
			Bounds: Rect{
				X:      float64(ci.X),
				Y:      float64(ci.Y),
				Width:  float64(ci.Width),
				Height: float64(ci.Height),
			},
			ScaleFactor: 1,
			RefreshRate: modeRefresh[ci.Mode],
			IsPrimary:   output == primary.Output,
		})
	}
	return displays, nil
}
