//go:build darwin && cgo

package hook

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework Foundation

#include <ApplicationServices/ApplicationServices.h>
#include <pthread.h>
#include <unistd.h>

// One captured notification, already flattened to plain C types so the Go
// side can drain them without touching CoreGraphics objects.
typedef struct {
    int kind; // 0 keydown, 1 keyup, 2 buttondown, 3 buttonup, 4 motion, 5 wheel
    unsigned int code;
    unsigned short ch;
    double x, y;
    double wheelDX, wheelDY;
    int injected;
} tapEvent;

// Single-producer (tap callback) / single-consumer (Go poll loop) ring.
// The callback must never block, so a full ring drops the oldest-unread
// policy in favor of dropping the new event.
#define TAP_RING_SIZE 1024
static tapEvent tapRing[TAP_RING_SIZE];
static volatile unsigned int ringHead = 0;
static volatile unsigned int ringTail = 0;

static void ringPush(tapEvent ev) {
    unsigned int head = ringHead;
    unsigned int next = (head + 1) % TAP_RING_SIZE;
    if (next == ringTail) {
        return; // full
    }
    tapRing[head] = ev;
    ringHead = next;
}

// drainTapEvents copies up to max pending events into out, returning the
// number copied.
static int drainTapEvents(tapEvent *out, int max) {
    int n = 0;
    while (n < max && ringTail != ringHead) {
        out[n++] = tapRing[ringTail];
        ringTail = (ringTail + 1) % TAP_RING_SIZE;
    }
    return n;
}

// Run loop state
static CFRunLoopRef tapRunLoop = NULL;
static volatile int tapEnabled = 0;

static void stopInputTap(void);

static CFMachPortRef eventTap = NULL;
static CFRunLoopSourceRef runLoopSource = NULL;

CGEventRef inputTapCallback(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *refcon) {
    (void)proxy;
    (void)refcon;

    // The system disables taps whose callbacks stall; re-enable and move on.
    if (type == kCGEventTapDisabledByUserInput || type == kCGEventTapDisabledByTimeout) {
        if (eventTap != NULL) {
            CGEventTapEnable(eventTap, true);
        }
        return event;
    }

    tapEvent ev;
    ev.kind = -1;
    ev.code = 0;
    ev.ch = 0;
    ev.wheelDX = 0;
    ev.wheelDY = 0;

    CGPoint loc = CGEventGetLocation(event);
    ev.x = loc.x;
    ev.y = loc.y;
    ev.injected = CGEventGetIntegerValueField(event, kCGEventSourceUnixProcessID) != 0 ? 1 : 0;

    switch (type) {
    case kCGEventKeyDown:
    case kCGEventKeyUp: {
        ev.kind = type == kCGEventKeyDown ? 0 : 1;
        ev.code = (unsigned int)CGEventGetIntegerValueField(event, kCGKeyboardEventKeycode);
        if (type == kCGEventKeyDown) {
            UniChar chars[4];
            UniCharCount len = 0;
            CGEventKeyboardGetUnicodeString(event, 4, &len, chars);
            if (len > 0) {
                ev.ch = chars[0];
            }
        }
        break;
    }
    case kCGEventLeftMouseDown:
    case kCGEventRightMouseDown:
    case kCGEventOtherMouseDown:
        ev.kind = 2;
        ev.code = (unsigned int)CGEventGetIntegerValueField(event, kCGMouseEventButtonNumber);
        break;
    case kCGEventLeftMouseUp:
    case kCGEventRightMouseUp:
    case kCGEventOtherMouseUp:
        ev.kind = 3;
        ev.code = (unsigned int)CGEventGetIntegerValueField(event, kCGMouseEventButtonNumber);
        break;
    case kCGEventMouseMoved:
    case kCGEventLeftMouseDragged:
    case kCGEventRightMouseDragged:
    case kCGEventOtherMouseDragged:
        // Dragged variants still arrive as plain motion; drag classification
        // happens upstream against held-button state.
        ev.kind = 4;
        break;
    case kCGEventScrollWheel:
        ev.kind = 5;
        ev.wheelDY = (double)CGEventGetIntegerValueField(event, kCGScrollWheelEventDeltaAxis1);
        ev.wheelDX = (double)CGEventGetIntegerValueField(event, kCGScrollWheelEventDeltaAxis2);
        break;
    default:
        break;
    }

    if (ev.kind >= 0) {
        ringPush(ev);
    }
    return event;
}

static void* tapRunLoopThread(void* arg) {
    (void)arg;

    tapRunLoop = CFRunLoopGetCurrent();
    CFRunLoopAddSource(tapRunLoop, runLoopSource, kCFRunLoopCommonModes);
    CGEventTapEnable(eventTap, true);
    tapEnabled = 1;

    CFRunLoopRun();

    tapEnabled = 0;
    tapRunLoop = NULL;
    return NULL;
}

static pthread_t tapThreadHandle;
static volatile int tapThreadRunning = 0;

static int startInputTap(void) {
    if (eventTap != NULL) {
        return 1; // already running
    }

    ringHead = 0;
    ringTail = 0;

    CGEventMask eventMask =
        CGEventMaskBit(kCGEventKeyDown) |
        CGEventMaskBit(kCGEventKeyUp) |
        CGEventMaskBit(kCGEventLeftMouseDown) |
        CGEventMaskBit(kCGEventLeftMouseUp) |
        CGEventMaskBit(kCGEventRightMouseDown) |
        CGEventMaskBit(kCGEventRightMouseUp) |
        CGEventMaskBit(kCGEventOtherMouseDown) |
        CGEventMaskBit(kCGEventOtherMouseUp) |
        CGEventMaskBit(kCGEventMouseMoved) |
        CGEventMaskBit(kCGEventLeftMouseDragged) |
        CGEventMaskBit(kCGEventRightMouseDragged) |
        CGEventMaskBit(kCGEventOtherMouseDragged) |
        CGEventMaskBit(kCGEventScrollWheel);

    eventTap = CGEventTapCreate(
        kCGSessionEventTap,
        kCGHeadInsertEventTap,
        kCGEventTapOptionListenOnly,
        eventMask,
        inputTapCallback,
        NULL
    );

    if (eventTap == NULL) {
        return -1; // permission denied or not available
    }

    runLoopSource = CFMachPortCreateRunLoopSource(kCFAllocatorDefault, eventTap, 0);
    if (runLoopSource == NULL) {
        CFRelease(eventTap);
        eventTap = NULL;
        return -2;
    }

    tapThreadRunning = 1;
    if (pthread_create(&tapThreadHandle, NULL, tapRunLoopThread, NULL) != 0) {
        CFRelease(runLoopSource);
        CFRelease(eventTap);
        runLoopSource = NULL;
        eventTap = NULL;
        tapThreadRunning = 0;
        return -3;
    }

    for (int i = 0; i < 100 && !tapEnabled; i++) {
        usleep(10000); // 10ms
    }
    if (!tapEnabled) {
        stopInputTap();
        return -4; // timeout waiting for tap to enable
    }

    return 0;
}

static void stopInputTap(void) {
    if (eventTap == NULL) {
        return;
    }

    CGEventTapEnable(eventTap, false);
    tapEnabled = 0;

    if (tapRunLoop != NULL) {
        CFRunLoopStop(tapRunLoop);
    }
    if (tapThreadRunning) {
        pthread_join(tapThreadHandle, NULL);
        tapThreadRunning = 0;
    }
    if (runLoopSource != NULL) {
        CFRelease(runLoopSource);
        runLoopSource = NULL;
    }
    if (eventTap != NULL) {
        CFRelease(eventTap);
        eventTap = NULL;
    }
    tapRunLoop = NULL;
}

static int tapIsEnabled(void) {
    return tapEnabled;
}

int checkAccessibility() {
    NSDictionary *options = @{(__bridge id)kAXTrustedCheckOptionPrompt: @NO};
    return AXIsProcessTrustedWithOptions((__bridge CFDictionaryRef)options) ? 1 : 0;
}

int promptAccessibility() {
    NSDictionary *options = @{(__bridge id)kAXTrustedCheckOptionPrompt: @YES};
    return AXIsProcessTrustedWithOptions((__bridge CFDictionaryRef)options) ? 1 : 0;
}
*/
import "C"

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"inputtap/internal/keycode"
	"inputtap/internal/metrics"
)

// darwinBackend captures via a session-level CGEventTap. The tap callback
// runs on a dedicated pthread's run loop and stashes events in a C ring
// buffer; a Go poll loop drains the ring into the events channel. The tap
// state in the C layer is process-global, so at most one darwin backend
// can be open at a time.
type darwinBackend struct {
	events chan RawEvent

	mu       sync.Mutex
	closed   bool
	failErr  error
	pollStop chan struct{}
	pollDone chan struct{}
}

func newPlatformBackend() Backend {
	return &darwinBackend{events: make(chan RawEvent, 1024)}
}

// CheckAccessibility reports whether capture authorization is granted.
func CheckAccessibility() bool {
	return C.checkAccessibility() == 1
}

// PromptAccessibility checks authorization and asks the system to show the
// grant dialog when missing.
func PromptAccessibility() bool {
	return C.promptAccessibility() == 1
}

func (d *darwinBackend) Open() error {
	if C.checkAccessibility() != 1 {
		return fmt.Errorf("%w: grant access under System Settings > Privacy & Security > Accessibility", ErrPermissionDenied)
	}

	switch C.startInputTap() {
	case 0:
	case 1:
		return fmt.Errorf("%w: event tap already installed in this process", ErrHookInstallFailed)
	case -1:
		return fmt.Errorf("%w: event tap creation refused", ErrPermissionDenied)
	case -2:
		return fmt.Errorf("%w: run loop source creation failed", ErrHookInstallFailed)
	case -3:
		return fmt.Errorf("%w: run loop thread creation failed", ErrHookInstallFailed)
	default:
		return fmt.Errorf("%w: timeout waiting for event tap to enable", ErrHookInstallFailed)
	}

	d.pollStop = make(chan struct{})
	d.pollDone = make(chan struct{})
	go d.pollLoop()
	return nil
}

// pollLoop drains the C ring into the events channel and watches tap
// health the way the system reports it.
func (d *darwinBackend) pollLoop() {
	defer close(d.pollDone)

	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()

	healthTicker := time.NewTicker(time.Second)
	defer healthTicker.Stop()

	var buf [64]C.tapEvent

	for {
		select {
		case <-d.pollStop:
			d.drain(buf[:])
			close(d.events)
			return

		case <-healthTicker.C:
			if C.tapIsEnabled() != 1 {
				// Tap stopped underneath us; most often a revoked
				// Accessibility grant.
				d.failWith(errors.Join(ErrPermissionDenied, errors.New("event tap disabled by the system")))
				return
			}

		case <-ticker.C:
			d.drain(buf[:])
		}
	}
}

// failWith records a mid-capture failure and closes the event stream;
// ReadEvent surfaces the error once the channel drains.
func (d *darwinBackend) failWith(err error) {
	d.mu.Lock()
	d.failErr = err
	d.mu.Unlock()
	close(d.events)
}

func (d *darwinBackend) drain(buf []C.tapEvent) {
	for {
		n := int(C.drainTapEvents(&buf[0], C.int(len(buf))))
		if n == 0 {
			return
		}
		now := time.Now()
		for i := 0; i < n; i++ {
			raw, ok := fromTapEvent(buf[i])
			if !ok {
				continue
			}
			raw.Time = now
			select {
			case d.events <- raw:
			default:
				// Consumer stalled; drop rather than block the poll loop.
				metrics.Capture.Dropped.Inc()
			}
		}
	}
}

func fromTapEvent(te C.tapEvent) (RawEvent, bool) {
	raw := RawEvent{
		X:        float64(te.x),
		Y:        float64(te.y),
		Injected: te.injected != 0,
	}
	switch te.kind {
	case 0:
		raw.Kind = RawKeyDown
		raw.KeyCode = uint32(te.code)
		raw.Char = rune(te.ch)
	case 1:
		raw.Kind = RawKeyUp
		raw.KeyCode = uint32(te.code)
	case 2:
		raw.Kind = RawButtonDown
		raw.Button = uint32(te.code)
	case 3:
		raw.Kind = RawButtonUp
		raw.Button = uint32(te.code)
	case 4:
		raw.Kind = RawMotion
	case 5:
		raw.Kind = RawWheel
		raw.WheelDX = float64(te.wheelDX)
		raw.WheelDY = float64(te.wheelDY)
	default:
		return RawEvent{}, false
	}
	return raw, true
}

func (d *darwinBackend) ReadEvent() (RawEvent, error) {
	raw, ok := <-d.events
	if !ok {
		d.mu.Lock()
		err := d.failErr
		d.mu.Unlock()
		if err != nil {
			return RawEvent{}, err
		}
		return RawEvent{}, ErrBackendClosed
	}
	return raw, nil
}

func (d *darwinBackend) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.mu.Unlock()

	if d.pollStop != nil {
		close(d.pollStop)
		<-d.pollDone
	}
	C.stopInputTap()
	return nil
}

func (d *darwinBackend) Keymap() Keymap {
	return Keymap{
		Key:    keycode.FromDarwin,
		Button: keycode.ButtonFromDarwin,
	}
}
