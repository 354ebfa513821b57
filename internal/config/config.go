// Package config loads StudyAI preferences from a YAML file and the
// environment.
//
// The file lives at $STUDYAI_CONFIG, or $XDG_CONFIG_HOME/studyai/config.yaml
// (falling back to ~/.config/studyai/config.yaml).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/csheth/studyai/internal/study"
)

const (
	envConfigPath = "STUDYAI_CONFIG"
	envMode       = "STUDYAI_MODE"
	envDelayMS    = "STUDYAI_DELAY_MS"
	envLogFile    = "STUDYAI_LOG"
	appDirName    = "studyai"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds user preferences.
type Config struct {
	DefaultMode string `yaml:"default_mode,omitempty" validate:"omitempty,oneof=summary keypoints flashcards"`
	DelayMS     int    `yaml:"delay_ms" validate:"gte=0,lte=60000"`
	AltScreen   *bool  `yaml:"alt_screen,omitempty"`
	LogFile     string `yaml:"log_file,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultMode: study.ModeSummary.String(),
		DelayMS:     int(study.DefaultDelay / time.Millisecond),
	}
}

// Mode returns the parsed default mode.
func (c Config) Mode() study.Mode {
	mode, err := study.ParseMode(c.DefaultMode)
	if err != nil {
		return study.ModeSummary
	}
	return mode
}

// Delay returns the simulated processing delay.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// UseAltScreen reports whether the TUI should take over the alternate screen.
func (c Config) UseAltScreen() bool {
	return c.AltScreen == nil || *c.AltScreen
}

var validate = validator.New()

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Dir returns the directory that holds config.yaml.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appDirName)
}

// Path returns the config file location, honoring STUDYAI_CONFIG.
func Path() string {
	if path := os.Getenv(envConfigPath); path != "" {
		return path
	}
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file (if any) and applies environment overrides.
func Load() (Config, error) {
	cfg, err := LoadFrom(Path())
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFrom reads a specific file. A missing file yields Default().
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overlays STUDYAI_* environment variables.
func (c *Config) ApplyEnv() error {
	if mode := os.Getenv(envMode); mode != "" {
		parsed, err := study.ParseMode(mode)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, envMode, err)
		}
		c.DefaultMode = parsed.String()
	}
	if raw := os.Getenv(envDelayMS); raw != "" {
		ms, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, envDelayMS, err)
		}
		c.DelayMS = ms
	}
	if path := os.Getenv(envLogFile); path != "" {
		c.LogFile = path
	}
	return nil
}
