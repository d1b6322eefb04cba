//go:build (darwin && !cgo) || (!darwin && !linux && !windows)

package display

func platformDisplays() ([]Display, error) {
	return nil, ErrNotAvailable
}
