// Package config loads yank's YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/yank/internal/clipboard"
	"github.com/renato0307/yank/internal/copystatus"
	"github.com/renato0307/yank/internal/logging"
	"github.com/renato0307/yank/internal/messages"
	"github.com/renato0307/yank/internal/types"
	"github.com/renato0307/yank/internal/ui"
)

// Config is the on-disk configuration
type Config struct {
	// DefaultContent is copied when nothing is selected
	DefaultContent string `json:"defaultContent,omitempty"`
	// ResetAfter is a Go duration ("2s", "1500ms"); empty keeps the
	// copied status until the next copy
	ResetAfter string `json:"resetAfter,omitempty"`
	MimeType   string `json:"mimeType,omitempty"`
	Debug      bool   `json:"debug,omitempty"`
	// Backend is auto, system or osc52
	Backend  string          `json:"backend,omitempty"`
	Theme    string          `json:"theme,omitempty"`
	Snippets []types.Snippet `json:"snippets,omitempty"`
	Log      LogConfig       `json:"log,omitempty"`
}

// LogConfig mirrors logging.Config in file form
type LogConfig struct {
	File       string `json:"file,omitempty"`
	Level      string `json:"level,omitempty"`
	Format     string `json:"format,omitempty"`
	MaxSizeMB  int    `json:"maxSizeMB,omitempty"`
	MaxBackups int    `json:"maxBackups,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		ResetAfter: "2s",
		MimeType:   clipboard.MimeTypePlain,
		Backend:    string(clipboard.BackendAuto),
		Theme:      ui.DefaultTheme,
		Log: LogConfig{
			Level:      "info",
			Format:     string(logging.FormatText),
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/yank/config.yaml, falling back to
// ~/.config/yank/config.yaml
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "yank", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "yank", "config.yaml")
}

// Load reads path on top of the defaults. A missing file at the default
// path is not an error; a missing file that was asked for explicitly is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, messages.WrapError(err, "failed to read config %s", path)
	}

	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, messages.WrapError(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, messages.WrapError(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later
func (c *Config) Validate() error {
	if _, err := c.ResetDuration(); err != nil {
		return err
	}
	if _, err := clipboard.ParseBackend(c.Backend); err != nil {
		return err
	}
	for i, s := range c.Snippets {
		if s.Content == "" {
			return fmt.Errorf("snippet %d (%q) has no content", i, s.Name)
		}
	}
	return nil
}

// ResetDuration parses ResetAfter. Empty or "0" means never reset.
func (c *Config) ResetDuration() (time.Duration, error) {
	if c.ResetAfter == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.ResetAfter)
	if err != nil {
		return 0, fmt.Errorf("invalid resetAfter %q: %w", c.ResetAfter, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid resetAfter %q: must not be negative", c.ResetAfter)
	}
	return d, nil
}

// ControllerOptions maps the config to copystatus.Options
func (c *Config) ControllerOptions() (copystatus.Options, error) {
	d, err := c.ResetDuration()
	if err != nil {
		return copystatus.Options{}, err
	}
	return copystatus.Options{
		ResetAfter: d,
		MimeType:   c.MimeType,
		Debug:      c.Debug,
	}, nil
}

// LoggingConfig maps the config to logging.Config
func (c *Config) LoggingConfig() logging.Config {
	return logging.Config{
		FilePath:   c.Log.File,
		Level:      logging.ParseLevel(c.Log.Level),
		Format:     logging.ParseFormat(c.Log.Format),
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	}
}
