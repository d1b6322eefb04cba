// Package config handles configuration loading, validation, and hot reload
// for inputtap.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"inputtap/internal/event"
)

// Config holds the complete inputtap configuration.
type Config struct {
	// Listen configures event capture.
	Listen ListenConfig `toml:"listen" json:"listen" yaml:"listen"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
}

// ListenConfig configures which events the capture stream delivers.
type ListenConfig struct {
	// Patterns select event classes: "*", "keyboard:*", "mouse:*",
	// "keyboard:down", "mouse:click", "mouse:move", "mouse:scroll", and the
	// other type-level names. Empty means everything.
	Patterns []string `toml:"patterns" json:"patterns" yaml:"patterns"`

	// IncludeInjected delivers events flagged as synthetic by the OS.
	// Off by default so a listener does not observe its own simulation.
	IncludeInjected bool `toml:"include_injected" json:"include_injected" yaml:"include_injected"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `toml:"level" json:"level" yaml:"level"`

	// Format is "text" or "json".
	Format string `toml:"format" json:"format" yaml:"format"`

	// Output is "stdout", "stderr", "file", or "both".
	Output string `toml:"output" json:"output" yaml:"output"`

	// FilePath is the log file path when Output includes "file".
	FilePath string `toml:"file_path" json:"file_path" yaml:"file_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Listen: ListenConfig{
			Patterns: []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// DefaultPath returns the platform-specific default configuration path.
func DefaultPath() string {
	switch runtime.GOOS {
	case "darwin":
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "Library", "Application Support", "inputtap", "config.toml")
	case "windows":
		appData := os.Getenv("APPDATA")
		return filepath.Join(appData, "inputtap", "config.toml")
	default:
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			homeDir, _ := os.UserHomeDir()
			configHome = filepath.Join(homeDir, ".config")
		}
		return filepath.Join(configHome, "inputtap", "config.toml")
	}
}

// Mask computes the event mask selected by the listen patterns.
func (c *Config) Mask() event.Mask {
	return event.ComputeMask(c.Listen.Patterns)
}

// ApplyEnvOverrides applies INPUTTAP_* environment variables on top of the
// loaded values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("INPUTTAP_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("INPUTTAP_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("INPUTTAP_LOG_OUTPUT"); v != "" {
		c.Logging.Output = v
	}
	if v := os.Getenv("INPUTTAP_LISTEN_PATTERNS"); v != "" {
		parts := strings.Split(v, ",")
		patterns := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		if len(patterns) > 0 {
			c.Listen.Patterns = patterns
		}
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	for _, p := range c.Listen.Patterns {
		if p == "*" || event.IsInputPattern(p) {
			continue
		}
		return fmt.Errorf("listen: unknown pattern %q", p)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging: unknown level %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging: unknown format %q", c.Logging.Format)
	}

	switch strings.ToLower(c.Logging.Output) {
	case "", "stdout", "stderr", "file", "both":
	default:
		return fmt.Errorf("logging: unknown output %q", c.Logging.Output)
	}
	if strings.ToLower(c.Logging.Output) == "file" || strings.ToLower(c.Logging.Output) == "both" {
		if c.Logging.FilePath == "" {
			return fmt.Errorf("logging: output %q requires file_path", c.Logging.Output)
		}
	}
	return nil
}
