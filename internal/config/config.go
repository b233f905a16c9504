// Package config resolves runtime configuration from defaults, an optional
// JSON file, environment variables and command-line flags, in that order.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abhisek/clock25/internal/alarm"
	"github.com/abhisek/clock25/internal/timer"
)

// Config captures runtime configuration for the application.
type Config struct {
	Timer   Timer   `json:"timer"`
	Alarm   Alarm   `json:"alarm"`
	Logging Logging `json:"logging"`
}

// Timer holds the lengths in minutes the clock starts with. Reset still
// restores the factory 5 and 25.
type Timer struct {
	BreakLength   int `json:"break_length"`
	SessionLength int `json:"session_length"`
}

// Alarm selects the sound played when a phase runs out.
type Alarm struct {
	Mode string `json:"mode"`
	File string `json:"file,omitempty"`
}

// Logging configures the log file and JSON tracing.
type Logging struct {
	FilePath string `json:"file,omitempty"`
	Trace    bool   `json:"trace"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timer: Timer{
			BreakLength:   timer.DefaultBreakLength,
			SessionLength: timer.DefaultSessionLength,
		},
		Alarm: Alarm{
			Mode: string(alarm.ModeSpeaker),
		},
	}
}

// DefaultPath resolves the config file path in priority order:
// 1. CLOCK25_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/clock25/config.json
// 3. ~/.config/clock25/config.json
func DefaultPath() (string, error) {
	if p := os.Getenv(envConfig); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "clock25", "config.json"), nil
}

// LoadFile reads the JSON config at path over the defaults. A missing file
// is not an error.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse validates data against the config schema and decodes it over the
// defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := validateDocument(data); err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges that flags and environment variables can violate.
func Validate(cfg Config) error {
	if err := checkLength("break length", cfg.Timer.BreakLength); err != nil {
		return err
	}
	if err := checkLength("session length", cfg.Timer.SessionLength); err != nil {
		return err
	}
	if _, err := alarm.ParseMode(cfg.Alarm.Mode); err != nil {
		return err
	}
	return nil
}

func checkLength(name string, v int) error {
	if v < timer.MinLength || v > timer.MaxLength {
		return fmt.Errorf("%s must be between %d and %d (got %d)", name, timer.MinLength, timer.MaxLength, v)
	}
	return nil
}

// Encode renders cfg as indented JSON.
func Encode(cfg Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return append(data, '\n'), nil
}

// Write stores cfg at path, creating parent directories.
func Write(path string, cfg Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
