//go:build darwin && !cgo

package hook

import "fmt"

// Without cgo there is no CGEventTap access. The stub keeps darwin builds
// working (cross-compilation, CGO_ENABLED=0) and fails at Open.
type darwinStubBackend struct{}

func newPlatformBackend() Backend {
	return darwinStubBackend{}
}

func (darwinStubBackend) Open() error {
	return fmt.Errorf("%w: darwin capture requires cgo", ErrNotAvailable)
}

func (darwinStubBackend) ReadEvent() (RawEvent, error) {
	return RawEvent{}, ErrBackendClosed
}

func (darwinStubBackend) Close() error { return nil }

func (darwinStubBackend) Keymap() Keymap { return Keymap{} }

// CheckAccessibility reports whether capture authorization is granted.
// Always false without cgo.
func CheckAccessibility() bool { return false }

// PromptAccessibility checks authorization and asks the system to show the
// grant dialog when missing. No-op without cgo.
func PromptAccessibility() bool { return false }
