// inputtap is the command-line interface for global input monitoring,
// display enumeration, system settings, and input simulation.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"inputtap"
	"inputtap/internal/config"
	"inputtap/internal/logging"
)

var (
	configPath = flag.String("config", "", "path to config file")
	jsonOut    = flag.Bool("json", false, "emit JSON lines instead of text")
	patterns   = flag.String("patterns", "", "comma-separated event patterns, overriding the config (e.g. \"keyboard:*,mouse:click\")")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)

	switch cmd {
	case "listen":
		cmdListen()
	case "displays":
		cmdDisplays()
	case "settings":
		cmdSettings()
	case "position":
		cmdPosition()
	case "simulate":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: inputtap simulate <move x y | click <button> | tap <key>>")
			os.Exit(1)
		}
		cmdSimulate(flag.Args()[1:])
	case "keys":
		cmdKeys()
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `inputtap - Global input monitoring and simulation

Usage: inputtap [options] <command> [args]

Commands:
  listen               Stream global input events until interrupted
  displays             List attached displays
  settings             Show system input settings
  position             Print the current mouse position
  simulate move x y    Move the mouse to a screen position
  simulate click <b>   Click a mouse button (left, right, middle, x1, x2)
  simulate tap <key>   Tap a key by name (A, Enter, F5, ...)
  keys                 List all named keys
  help                 Show this help message

Options:
  -config <path>       Path to config file
  -json                Emit JSON lines (listen, displays, settings, position)
  -patterns <list>     Override listen patterns from the config`)
}

// listenConfig loads the listen configuration. When the config file exists
// it returns a Loader as well, so edits to the file hot-reload the capture
// mask and logging while listening.
func listenConfig() (*config.Config, *config.Loader) {
	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}

	if _, err := os.Stat(path); err != nil {
		cfg, err := config.LoadOrDefault(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		applyPatternsFlag(cfg)
		return cfg, nil
	}

	loader := config.NewLoader(path)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	applyPatternsFlag(cfg)
	return cfg, loader
}

// applyPatternsFlag replaces the configured listen patterns with the
// -patterns flag when given. The flag also wins over later config reloads.
func applyPatternsFlag(cfg *config.Config) {
	if *patterns == "" {
		return
	}
	cfg.Listen.Patterns = nil
	for _, p := range strings.Split(*patterns, ",") {
		if p = strings.TrimSpace(p); p != "" {
			cfg.Listen.Patterns = append(cfg.Listen.Patterns, p)
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) error {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logging.LevelWarn
	}
	format := logging.FormatText
	if strings.EqualFold(cfg.Logging.Format, "json") {
		format = logging.FormatJSON
	}
	log, err := logging.New(&logging.Config{
		Level:     level,
		Format:    format,
		Output:    cfg.Logging.Output,
		FilePath:  cfg.Logging.FilePath,
		Component: "inputtap",
	})
	if err != nil {
		return err
	}
	logging.SetDefault(log)
	return nil
}

// eventRecord is the JSON line emitted per event in listen mode.
type eventRecord struct {
	Type      string    `json:"type"`
	Time      time.Time `json:"time"`
	Key       string    `json:"key,omitempty"`
	RawCode   uint32    `json:"raw_code,omitempty"`
	Char      string    `json:"char,omitempty"`
	Button    string    `json:"button,omitempty"`
	X         *float64  `json:"x,omitempty"`
	Y         *float64  `json:"y,omitempty"`
	Direction string    `json:"direction,omitempty"`
	Delta     float64   `json:"delta,omitempty"`
	Injected  bool      `json:"injected,omitempty"`
}

func toRecord(ev inputtap.Event) eventRecord {
	rec := eventRecord{
		Type:     ev.Type.String(),
		Time:     ev.Time,
		Injected: ev.Injected,
	}
	switch {
	case ev.Keyboard != nil:
		rec.Key = ev.Keyboard.Key.DisplayName()
		rec.RawCode = ev.Keyboard.RawCode
		if ev.Keyboard.Char != 0 {
			rec.Char = string(ev.Keyboard.Char)
		}
	case ev.Mouse != nil:
		rec.X, rec.Y = &ev.Mouse.X, &ev.Mouse.Y
		switch ev.Type {
		case inputtap.MouseMoved, inputtap.MouseDragged:
		default:
			rec.Button = ev.Mouse.Button.String()
		}
	case ev.Wheel != nil:
		rec.X, rec.Y = &ev.Wheel.X, &ev.Wheel.Y
		rec.Direction = ev.Wheel.Direction.String()
		rec.Delta = ev.Wheel.Delta
	}
	return rec
}

func cmdListen() {
	cfg, loader := listenConfig()
	if err := setupLogging(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logging: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	var includeInjected atomic.Bool
	includeInjected.Store(cfg.Listen.IncludeInjected)

	h, err := inputtap.StartListenMasked(func(ev inputtap.Event) {
		if ev.Injected && !includeInjected.Load() {
			return
		}
		if *jsonOut {
			_ = enc.Encode(toRecord(ev))
			return
		}
		fmt.Println(ev)
	}, cfg.Mask())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting capture: %v\n", err)
		os.Exit(1)
	}

	if loader != nil {
		loader.OnChange(func(next *config.Config) {
			includeInjected.Store(next.Listen.IncludeInjected)
			if err := setupLogging(next); err != nil {
				logging.Warn("keeping previous logging setup", "error", err)
			}
			if *patterns == "" {
				h.SetEventMask(next.Mask())
			}
		})
		if err := loader.Watch(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: config hot reload disabled: %v\n", err)
		}
		defer loader.Close()
	}

	fmt.Fprintln(os.Stderr, "Listening for input events (Ctrl-C to stop)")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	h.Stop()
}

func cmdDisplays() {
	displays, err := inputtap.Displays()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(displays)
		return
	}

	for _, d := range displays {
		primary := ""
		if d.IsPrimary {
			primary = " (primary)"
		}
		fmt.Printf("Display %d%s\n", d.ID, primary)
		fmt.Printf("  Bounds:  %.0fx%.0f at (%.0f,%.0f)\n",
			d.Bounds.Width, d.Bounds.Height, d.Bounds.X, d.Bounds.Y)
		fmt.Printf("  Scale:   %.2g\n", d.ScaleFactor)
		if d.RefreshRate > 0 {
			fmt.Printf("  Refresh: %.4g Hz\n", d.RefreshRate)
		}
	}
}

func cmdSettings() {
	s, err := inputtap.SystemSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(s)
		return
	}

	show := func(name, value string) {
		fmt.Printf("  %-28s %s\n", name+":", value)
	}
	fmt.Println("System input settings:")
	if s.KeyboardRepeatRate != nil {
		show("Keyboard repeat rate", fmt.Sprintf("%.3g/s", *s.KeyboardRepeatRate))
	}
	if s.KeyboardRepeatDelay != nil {
		show("Keyboard repeat delay", s.KeyboardRepeatDelay.String())
	}
	if s.MouseSensitivity != nil {
		show("Mouse sensitivity", fmt.Sprintf("%.3g", *s.MouseSensitivity))
	}
	if s.MouseAcceleration != nil {
		show("Mouse acceleration", fmt.Sprintf("%.3g", *s.MouseAcceleration))
	}
	if s.MouseAccelerationThreshold != nil {
		show("Mouse accel threshold", fmt.Sprintf("%.3g", *s.MouseAccelerationThreshold))
	}
	if s.DoubleClickTime != nil {
		show("Double-click time", s.DoubleClickTime.String())
	}
	if s.KeyboardLayout != nil {
		show("Keyboard layout", *s.KeyboardLayout)
	}
}

func cmdPosition() {
	x, y, err := inputtap.MousePosition()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *jsonOut {
		fmt.Printf("{\"x\":%g,\"y\":%g}\n", x, y)
		return
	}
	fmt.Printf("%g,%g\n", x, y)
}

func cmdSimulate(args []string) {
	var err error
	switch args[0] {
	case "move":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "Usage: inputtap simulate move <x> <y>")
			os.Exit(1)
		}
		var x, y float64
		if x, err = strconv.ParseFloat(args[1], 64); err == nil {
			y, err = strconv.ParseFloat(args[2], 64)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad coordinate: %v\n", err)
			os.Exit(1)
		}
		err = inputtap.MouseMove(x, y)
	case "click":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: inputtap simulate click <button>")
			os.Exit(1)
		}
		b, ok := parseButton(args[1])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown button %q\n", args[1])
			os.Exit(1)
		}
		err = inputtap.MouseClick(b)
	case "tap":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: inputtap simulate tap <key>")
			os.Exit(1)
		}
		k, ok := parseKey(args[1])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown key %q (try \"inputtap keys\")\n", args[1])
			os.Exit(1)
		}
		err = inputtap.KeyTap(k)
	default:
		fmt.Fprintf(os.Stderr, "Unknown simulate action: %s\n", args[0])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func cmdKeys() {
	for _, info := range inputtap.AllKeyInfo() {
		fmt.Printf("%-20s %s\n", info.DisplayName, info.Category)
	}
}

func parseButton(s string) (inputtap.Button, bool) {
	switch strings.ToLower(s) {
	case "left":
		return inputtap.ButtonLeft, true
	case "right":
		return inputtap.ButtonRight, true
	case "middle":
		return inputtap.ButtonMiddle, true
	case "x1", "button4":
		return inputtap.Button4, true
	case "x2", "button5":
		return inputtap.Button5, true
	default:
		return inputtap.ButtonUnknown, false
	}
}

func parseKey(s string) (inputtap.Key, bool) {
	for _, info := range inputtap.AllKeyInfo() {
		if strings.EqualFold(info.DisplayName, s) {
			return info.Key, true
		}
	}
	return inputtap.KeyUnknown, false
}
