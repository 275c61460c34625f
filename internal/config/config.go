// Package config loads game settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"svw.info/numguess/internal/domain"
)

// Config holds settings shared by the CLI commands. Flags override these.
type Config struct {
	Seed     int64  `env:"NUMGUESS_SEED"`
	Length   int    `env:"NUMGUESS_LENGTH"    envDefault:"5"`
	Mode     string `env:"NUMGUESS_MODE"      envDefault:"number"`
	LogLevel string `env:"NUMGUESS_LOG_LEVEL" envDefault:"warn"`
	Debug    bool   `env:"NUMGUESS_DEBUG"`
	NoColor  bool   `env:"NUMGUESS_NO_COLOR"`
}

// Load parses the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings that cannot start a session.
func (c Config) Validate() error {
	if c.Length < 1 || c.Length > domain.MaxProblemLen {
		return fmt.Errorf("length %d outside [1,%d]", c.Length, domain.MaxProblemLen)
	}
	if _, err := c.WinMode(); err != nil {
		return err
	}
	return nil
}

// WinMode parses Mode.
func (c Config) WinMode() (domain.WinMode, error) {
	switch strings.ToLower(strings.TrimSpace(c.Mode)) {
	case "", "number":
		return domain.WinNumber, nil
	case "hint":
		return domain.WinHint, nil
	}
	return 0, fmt.Errorf("unknown mode %q: want number|hint", c.Mode)
}

// Level maps LogLevel onto slog, defaulting to warn.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}
