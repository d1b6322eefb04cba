//go:build darwin && cgo

package settings

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Carbon

#include <AppKit/AppKit.h>
#include <Carbon/Carbon.h>
#include <string.h>

static double doubleClickSeconds(void) {
    return [NSEvent doubleClickInterval];
}

static double keyRepeatSeconds(void) {
    return [NSEvent keyRepeatInterval];
}

static double keyRepeatDelaySeconds(void) {
    return [NSEvent keyRepeatDelay];
}

// currentLayoutID copies the active keyboard input source identifier into
// buf, returning 1 on success.
static int currentLayoutID(char *buf, int max) {
    TISInputSourceRef source = TISCopyCurrentKeyboardInputSource();
    if (source == NULL) {
        return 0;
    }
    CFStringRef id = (CFStringRef)TISGetInputSourceProperty(source, kTISPropertyInputSourceID);
    int ok = 0;
    if (id != NULL && CFStringGetCString(id, buf, max, kCFStringEncodingUTF8)) {
        ok = 1;
    }
    CFRelease(source);
    return ok;
}
*/
import "C"

import (
	"time"
	"unsafe"
)

func platformSettings() (Settings, error) {
	var s Settings

	if secs := float64(C.doubleClickSeconds()); secs > 0 {
		s.DoubleClickTime = durationPtr(time.Duration(secs * float64(time.Second)))
	}
	if interval := float64(C.keyRepeatSeconds()); interval > 0 {
		s.KeyboardRepeatRate = float64Ptr(1 / interval)
	}
	if delay := float64(C.keyRepeatDelaySeconds()); delay > 0 {
		s.KeyboardRepeatDelay = durationPtr(time.Duration(delay * float64(time.Second)))
	}

	var buf [256]C.char
	if C.currentLayoutID(&buf[0], C.int(len(buf))) == 1 {
		s.KeyboardLayout = stringPtr(C.GoString((*C.char)(unsafe.Pointer(&buf[0]))))
	}

	return s, nil
}
