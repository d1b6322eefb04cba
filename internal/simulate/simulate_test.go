package simulate

import (
	"errors"
	"testing"
)

func TestSentinelsDistinct(t *testing.T) {
	if errors.Is(ErrSimulationFailed, ErrNotAvailable) {
		t.Error("failure classes must be distinguishable")
	}
}

func TestInjectionErrorsAreClassified(t *testing.T) {
	// Without a display session the platform layer must fail with one of
	// the package's failure classes, never a bare error.
	err := MouseMove(10, 10)
	if err == nil {
		t.Skip("display session available; injection succeeded")
	}
	if !errors.Is(err, ErrSimulationFailed) && !errors.Is(err, ErrNotAvailable) {
		t.Errorf("unclassified injection error: %v", err)
	}
}
