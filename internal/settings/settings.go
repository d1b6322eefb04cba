// Package settings reads OS-level input preferences. Every query returns a
// fresh immutable snapshot; fields the platform cannot report are nil
// rather than zero, so callers can tell "unset" from "set to zero".
package settings

import "time"

// Settings is a snapshot of the system's input preferences.
type Settings struct {
	// KeyboardRepeatRate is the key autorepeat rate in repeats per second.
	KeyboardRepeatRate *float64

	// KeyboardRepeatDelay is the hold time before autorepeat begins.
	KeyboardRepeatDelay *time.Duration

	// MouseSensitivity is the pointer speed on the platform's own scale
	// (1-20 on Windows).
	MouseSensitivity *float64

	// MouseAcceleration is the pointer acceleration multiplier.
	MouseAcceleration *float64

	// MouseAccelerationThreshold is the movement threshold, in device
	// units, past which acceleration applies.
	MouseAccelerationThreshold *float64

	// DoubleClickTime is the maximum press-to-press interval for a double
	// click.
	DoubleClickTime *time.Duration

	// KeyboardLayout is the platform's identifier for the active layout
	// ("00000409", "com.apple.keylayout.US", "us").
	KeyboardLayout *string
}

// Query reads the current system input settings.
func Query() (Settings, error) {
	return platformSettings()
}

func float64Ptr(v float64) *float64          { return &v }
func durationPtr(v time.Duration) *time.Duration { return &v }
func stringPtr(v string) *string             { return &v }

// millis converts a millisecond count into an optional duration.
func millis(ms uint32) *time.Duration {
	return durationPtr(time.Duration(ms) * time.Millisecond)
}
