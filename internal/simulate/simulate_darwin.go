//go:build darwin && cgo

package simulate

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation

#include <CoreGraphics/CoreGraphics.h>

static void currentPosition(double *x, double *y) {
    CGEventRef event = CGEventCreate(NULL);
    CGPoint cursor = CGEventGetLocation(event);
    CFRelease(event);
    *x = cursor.x;
    *y = cursor.y;
}

static int postMouseMove(double x, double y) {
    CGEventRef event = CGEventCreateMouseEvent(NULL, kCGEventMouseMoved,
        CGPointMake(x, y), kCGMouseButtonLeft);
    if (event == NULL) {
        return 0;
    }
    CGEventPost(kCGSessionEventTap, event);
    CFRelease(event);
    return 1;
}

static int postMouseButton(int button, int press) {
    CGEventType type;
    CGMouseButton cgButton = (CGMouseButton)button;
    switch (button) {
    case 0: type = press ? kCGEventLeftMouseDown : kCGEventLeftMouseUp; break;
    case 1: type = press ? kCGEventRightMouseDown : kCGEventRightMouseUp; break;
    default: type = press ? kCGEventOtherMouseDown : kCGEventOtherMouseUp; break;
    }

    CGEventRef posEvent = CGEventCreate(NULL);
    CGPoint cursor = CGEventGetLocation(posEvent);
    CFRelease(posEvent);

    CGEventRef event = CGEventCreateMouseEvent(NULL, type, cursor, cgButton);
    if (event == NULL) {
        return 0;
    }
    CGEventPost(kCGSessionEventTap, event);
    CFRelease(event);
    return 1;
}

static int postKey(unsigned short keyCode, int press) {
    CGEventRef event = CGEventCreateKeyboardEvent(NULL, (CGKeyCode)keyCode, press != 0);
    if (event == NULL) {
        return 0;
    }
    CGEventPost(kCGSessionEventTap, event);
    CFRelease(event);
    return 1;
}
*/
import "C"

import (
	"fmt"

	"inputtap/internal/event"
	"inputtap/internal/keycode"
)

func platformMouseMove(x, y float64) error {
	if C.postMouseMove(C.double(x), C.double(y)) != 1 {
		return fmt.Errorf("%w: mouse move rejected", ErrSimulationFailed)
	}
	return nil
}

func platformMouseButton(b event.Button, press bool) error {
	code, ok := keycode.ButtonToDarwin(b)
	if !ok {
		return fmt.Errorf("%w: unsupported button %v", ErrSimulationFailed, b)
	}
	p := C.int(0)
	if press {
		p = 1
	}
	if C.postMouseButton(C.int(code), p) != 1 {
		return fmt.Errorf("%w: button event rejected", ErrSimulationFailed)
	}
	return nil
}

func platformKey(k event.Key, press bool) error {
	code, ok := keycode.ToDarwin(k)
	if !ok {
		return fmt.Errorf("%w: no key code for %v", ErrSimulationFailed, k)
	}
	p := C.int(0)
	if press {
		p = 1
	}
	if C.postKey(C.ushort(code), p) != 1 {
		return fmt.Errorf("%w: key event rejected", ErrSimulationFailed)
	}
	return nil
}

func platformMousePosition() (float64, float64, error) {
	var x, y C.double
	C.currentPosition(&x, &y)
	return float64(x), float64(y), nil
}
