//go:build (darwin && !cgo) || (!darwin && !linux && !windows)

package settings

// Nothing to report here; every field stays unset.
func platformSettings() (Settings, error) {
	return Settings{}, nil
}
