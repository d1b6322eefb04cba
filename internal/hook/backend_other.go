//go:build !darwin && !linux && !windows

package hook

import "fmt"

type stubBackend struct{}

func newPlatformBackend() Backend {
	return stubBackend{}
}

func (stubBackend) Open() error {
	return fmt.Errorf("%w", ErrNotAvailable)
}

func (stubBackend) ReadEvent() (RawEvent, error) {
	return RawEvent{}, ErrBackendClosed
}

func (stubBackend) Close() error { return nil }

func (stubBackend) Keymap() Keymap { return Keymap{} }
