// Package config loads marknote settings from a TOML file.
//
// A missing file is not an error: every field has a default and a file only
// needs to name the fields it changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultAutosave is the fixed interval at which the document is flushed to
// the store regardless of input.
const DefaultAutosave = 10 * time.Second

// Config is the on-disk configuration.
type Config struct {
	StorePath       string   `toml:"store_path"`
	AutosaveSeconds int      `toml:"autosave_seconds"`
	LineNumbers     bool     `toml:"line_numbers"`
	Folders         []string `toml:"folders"`
	LogFile         string   `toml:"log_file"`
	LogLevel        string   `toml:"log_level"`
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StorePath:       filepath.Join(dataDir(), "marknote", "store.yaml"),
		AutosaveSeconds: int(DefaultAutosave / time.Second),
		LineNumbers:     true,
		Folders:         []string{"all", "personal", "work", "unread"},
		LogLevel:        "info",
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "marknote", "config.toml")
}

// Load reads path over the defaults. An empty path means DefaultPath.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Err: err}
	}
	return cfg.normalize(), nil
}

// Autosave returns the flush interval as a duration.
func (c Config) Autosave() time.Duration {
	if c.AutosaveSeconds <= 0 {
		return DefaultAutosave
	}
	return time.Duration(c.AutosaveSeconds) * time.Second
}

func (c Config) normalize() Config {
	def := Default()
	if c.StorePath == "" {
		c.StorePath = def.StorePath
	}
	if c.AutosaveSeconds <= 0 {
		c.AutosaveSeconds = def.AutosaveSeconds
	}
	if len(c.Folders) == 0 {
		c.Folders = def.Folders
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	return c
}

func dataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}
