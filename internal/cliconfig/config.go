package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Kartik213/rustlings/internal/domain"
)

// Config holds CLI configuration for the streak tracker.
type Config struct {
	// HomeDir holds the streak file. Resolved from the user's home when empty.
	HomeDir string

	ExercisesDir string
	Extension    string

	LogLevel string

	// Debounce is how long watch mode waits after a change before rescanning.
	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ExercisesDir: "exercises",
		Extension:    ".rs",
		LogLevel:     "warn",
		Debounce:     200 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.ExercisesDir == "" {
		return fmt.Errorf("exercises dir is required")
	}
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return fmt.Errorf("extension %q must start with a dot", c.Extension)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level returns the zerolog level for LogLevel, defaulting to warn.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}

// ResolveHome fills HomeDir from the user's home directory when unset and
// expands a leading ~. It fails with domain.ErrHomeNotFound when no home
// directory can be found.
func (c *Config) ResolveHome() error {
	if c.HomeDir == "" {
		h, err := os.UserHomeDir()
		if err != nil || h == "" {
			return fmt.Errorf("%w: %v", domain.ErrHomeNotFound, err)
		}
		c.HomeDir = h
		return nil
	}
	p, err := ExpandPath(c.HomeDir)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrHomeNotFound, err)
	}
	c.HomeDir = abs
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrHomeNotFound, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}
