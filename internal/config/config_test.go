package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Input.PollIntervalMS != 50 {
		t.Errorf("PollIntervalMS = %d, want 50", cfg.Input.PollIntervalMS)
	}
	if cfg.Router.JoinTimeoutMS != 1000 {
		t.Errorf("JoinTimeoutMS = %d, want 1000", cfg.Router.JoinTimeoutMS)
	}
	if cfg.Editor.DefaultFileName != "untitled.txt" {
		t.Errorf("DefaultFileName = %q, want untitled.txt", cfg.Editor.DefaultFileName)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v for missing file", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	content := `
[input]
poll_interval_ms = 10

[editor]
default_filename = "scratch.txt"
keymap_path = "/etc/winston/keymap.yaml"

[log]
level = "debug"
`
	path := filepath.Join(t.TempDir(), "winston.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Input.PollIntervalMS != 10 {
		t.Errorf("PollIntervalMS = %d, want 10", cfg.Input.PollIntervalMS)
	}
	if cfg.Editor.DefaultFileName != "scratch.txt" {
		t.Errorf("DefaultFileName = %q, want scratch.txt", cfg.Editor.DefaultFileName)
	}
	if cfg.Editor.KeymapPath != "/etc/winston/keymap.yaml" {
		t.Errorf("KeymapPath = %q", cfg.Editor.KeymapPath)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Log.Level)
	}

	// Absent sections keep their defaults.
	if cfg.Router.JoinTimeoutMS != 1000 {
		t.Errorf("JoinTimeoutMS = %d, want 1000", cfg.Router.JoinTimeoutMS)
	}
}

func TestLoad_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
	if cfg != Default() {
		t.Errorf("Load() with parse error = %+v, want defaults", cfg)
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := Default()
	cfg.Input.PollIntervalMS = 25
	cfg.Router.JoinTimeoutMS = 500

	if got := cfg.PollInterval(); got != 25*time.Millisecond {
		t.Errorf("PollInterval() = %v, want 25ms", got)
	}
	if got := cfg.JoinTimeout(); got != 500*time.Millisecond {
		t.Errorf("JoinTimeout() = %v, want 500ms", got)
	}
}
