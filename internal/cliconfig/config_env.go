package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (RUSTLINGS_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("home", os.Getenv("RUSTLINGS_HOME_DIR"), &cfg.HomeDir)
	s.setString("exercises", os.Getenv("RUSTLINGS_EXERCISES_DIR"), &cfg.ExercisesDir)
	s.setString("extension", os.Getenv("RUSTLINGS_EXTENSION"), &cfg.Extension)
	s.setString("log-level", os.Getenv("RUSTLINGS_LOG_LEVEL"), &cfg.LogLevel)

	return s.setDuration("debounce", os.Getenv("RUSTLINGS_DEBOUNCE"), &cfg.Debounce)
}
