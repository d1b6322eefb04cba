package inputtap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"inputtap/internal/config"
	"inputtap/internal/event"
	"inputtap/internal/hook"
)

func TestComputeMaskReexport(t *testing.T) {
	if ComputeMask([]string{"keyboard:*"}) != MaskKeyboard {
		t.Error("keyboard pattern mask mismatch")
	}
	if ComputeMask(nil) != MaskAll {
		t.Error("empty patterns should select everything")
	}
}

func TestKeyReexports(t *testing.T) {
	if KeyA != event.KeyA || KeyContextMenu != event.KeyContextMenu {
		t.Error("key constants diverge from the event model")
	}
	if KeyCount != event.KeyCount {
		t.Errorf("KeyCount = %d, want %d", KeyCount, event.KeyCount)
	}
	if got := KeySpace.DisplayName(); got != "Space" {
		t.Errorf("KeySpace.DisplayName() = %q", got)
	}
}

func TestAllKeyInfoCoversEveryKey(t *testing.T) {
	infos := AllKeyInfo()
	if len(infos) != KeyCount {
		t.Errorf("AllKeyInfo returned %d entries, want %d", len(infos), KeyCount)
	}
}

func TestConfigReloadRetargetsRunningHook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeCfg := func(body string) {
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
	writeCfg("[listen]\npatterns = [\"keyboard:*\"]\n")

	loader := config.NewLoader(path)
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	h := hook.NewWithBackend(hook.NewSimulated())
	h.SetEventMask(cfg.Mask())
	if err := h.Run(func(Event) {}); err != nil {
		t.Fatalf("run hook: %v", err)
	}
	defer h.Stop()

	loader.OnChange(func(next *config.Config) {
		h.SetEventMask(next.Mask())
	})
	if err := loader.Watch(); err != nil {
		t.Fatalf("watch config: %v", err)
	}
	defer loader.Close()

	if got := h.EventMask(); got != MaskKeyboard {
		t.Fatalf("initial mask = %#x, want %#x", got, MaskKeyboard)
	}

	writeCfg("[listen]\npatterns = [\"mouse:scroll\"]\n")

	deadline := time.Now().Add(5 * time.Second)
	for h.EventMask() != MaskMouseWheel {
		if time.Now().After(deadline) {
			t.Fatalf("mask = %#x after reload, want %#x", h.EventMask(), MaskMouseWheel)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestStartListenOnPlatform(t *testing.T) {
	// Capture needs OS-level access; environments without it must fail
	// with a classified error, never panic or hang.
	h, err := StartListen(func(Event) {})
	if err != nil {
		if !errors.Is(err, ErrPermissionDenied) &&
			!errors.Is(err, ErrHookInstallFailed) &&
			!errors.Is(err, ErrDisplayConnectionFailed) &&
			!errors.Is(err, ErrNotAvailable) {
			t.Errorf("unclassified capture error: %v", err)
		}
		return
	}
	if !h.IsRunning() {
		t.Error("StartListen returned a stopped hook")
	}
	h.Stop()
	if h.IsRunning() {
		t.Error("hook still running after Stop")
	}
}
