//go:build darwin && cgo

package display

/*
#cgo LDFLAGS: -framework CoreGraphics

#include <CoreGraphics/CoreGraphics.h>

typedef struct {
    unsigned int id;
    double x, y, w, h;
    double scale;
    double refresh;
    int primary;
} displayInfo;

// listDisplays fills out with up to max active displays, returning the
// count or -1 on failure.
static int listDisplays(displayInfo *out, int max) {
    CGDirectDisplayID ids[16];
    uint32_t count = 0;
    if (CGGetActiveDisplayList(16, ids, &count) != kCGErrorSuccess) {
        return -1;
    }
    if ((int)count > max) {
        count = max;
    }
    CGDirectDisplayID main = CGMainDisplayID();
    for (uint32_t i = 0; i < count; i++) {
        CGRect bounds = CGDisplayBounds(ids[i]);
        out[i].id = ids[i];
        out[i].x = bounds.origin.x;
        out[i].y = bounds.origin.y;
        out[i].w = bounds.size.width;
        out[i].h = bounds.size.height;
        out[i].primary = ids[i] == main ? 1 : 0;
        out[i].scale = 1;
        out[i].refresh = 0;

        CGDisplayModeRef mode = CGDisplayCopyDisplayMode(ids[i]);
        if (mode != NULL) {
            if (bounds.size.width > 0) {
                out[i].scale = (double)CGDisplayModeGetPixelWidth(mode) / bounds.size.width;
            }
            out[i].refresh = CGDisplayModeGetRefreshRate(mode);
            CGDisplayModeRelease(mode);
        }
    }
    return (int)count;
}
*/
import "C"

import "fmt"

func platformDisplays() ([]Display, error) {
	var buf [16]C.displayInfo
	n := int(C.listDisplays(&buf[0], C.int(len(buf))))
	if n < 0 {
		return nil, fmt.Errorf("query active display list failed")
	}

	displays := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		di := buf[i]
		displays = append(displays, Display{
			ID: uint32(di.id),
			Bounds: Rect{
				X:      float64(di.x),
				Y:      float64(di.y),
				Width:  float64(di.w),
				Height: float64(di.h),
			},
			ScaleFactor: float64(di.scale),
			RefreshRate: float64(di.refresh),
			IsPrimary:   di.primary != 0,
		})
	}
	return displays, nil
}
