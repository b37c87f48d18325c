package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Pi is the value of π used by every circle formula.
// Truncated to four decimals; printed results depend on this exact value.
const Pi = 3.1416

// Environment variables read at startup
const (
	// EnvLogLevel sets the log level ("debug", "info", "warn", "error")
	EnvLogLevel = "GEOCALC_LOG_LEVEL"
)

// Config represents the calculator configuration
type Config struct {
	// Pi is the constant used for circle formulas. Set once at startup.
	Pi float64

	// LogLevel controls the verbosity of diagnostics written to stderr.
	// Any name accepted by slog.Level, case-insensitive (e.g. "debug", "WARN", "warn+2").
	LogLevel string
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Pi:       Pi,
		LogLevel: "warn", // Keep stderr quiet for interactive use
	}
}

// ApplyEnv overrides configuration values from the environment.
// Unset or empty variables leave the current value untouched.
func (c *Config) ApplyEnv(getenv func(key string) string) {
	if getenv == nil {
		return
	}
	if level := getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}

// Level parses LogLevel into a slog.Level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
