// Package config loads winston's TOML configuration.
//
// Configuration is read once at startup. A missing file is not an
// error; absent keys keep their defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the root configuration.
type Config struct {
	Input  Input  `toml:"input"`
	Router Router `toml:"router"`
	Editor Editor `toml:"editor"`
	Log    Log    `toml:"log"`
}

// Input configures event queue behavior.
type Input struct {
	// PollIntervalMS is the bounded wait, in milliseconds, workers use
	// on their queues before re-checking their running flag.
	PollIntervalMS int `toml:"poll_interval_ms"`
}

// Router configures shutdown behavior.
type Router struct {
	// JoinTimeoutMS bounds, in milliseconds, how long shutdown waits
	// for the listener and for each applet worker.
	JoinTimeoutMS int `toml:"join_timeout_ms"`
}

// Editor configures the editor applet.
type Editor struct {
	// DefaultFileName is used for save-as and first-time saves.
	DefaultFileName string `toml:"default_filename"`

	// KeymapPath points to a YAML keybinding override file.
	KeymapPath string `toml:"keymap_path"`
}

// Log configures logging.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:  Input{PollIntervalMS: 50},
		Router: Router{JoinTimeoutMS: 1000},
		Editor: Editor{DefaultFileName: "untitled.txt"},
		Log:    Log{Level: "info"},
	}
}

// Load reads configuration from a TOML file, layered over the defaults.
// An empty path or a missing file returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// PollInterval returns the configured worker poll interval.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.Input.PollIntervalMS) * time.Millisecond
}

// JoinTimeout returns the configured shutdown join timeout.
func (c Config) JoinTimeout() time.Duration {
	return time.Duration(c.Router.JoinTimeoutMS) * time.Millisecond
}
