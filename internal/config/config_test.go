package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Tasks.DateFormat != DefaultDateFormat {
		t.Errorf("expected default date format, got %q", cfg.Tasks.DateFormat)
	}
	want := filepath.Join(home, ".local", "share", "tend", "tasks.json")
	if cfg.Tasks.File != want {
		t.Errorf("expected default tasks file %q, got %q", want, cfg.Tasks.File)
	}
}

func TestLoad_GlobalConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeConfig(t, filepath.Join(home, ".config", "tend", "config.toml"), `
[tasks]
file = "/srv/tend/tasks.json"
date-format = "2006-01-02"
`)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Tasks.File != "/srv/tend/tasks.json" {
		t.Errorf("expected global tasks file, got %q", cfg.Tasks.File)
	}
	if cfg.Tasks.DateFormat != "2006-01-02" {
		t.Errorf("expected global date format, got %q", cfg.Tasks.DateFormat)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeConfig(t, filepath.Join(home, ".config", "tend", "config.toml"), `
[tasks]
file = "/srv/tend/tasks.json"
date-format = "2006-01-02"
`)

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, "tend.toml"), `
[tasks]
file = "project-tasks.json"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Project file wins and resolves relative to the project dir.
	want := filepath.Join(dir, "project-tasks.json")
	if cfg.Tasks.File != want {
		t.Errorf("expected %q, got %q", want, cfg.Tasks.File)
	}
	// Date format falls through to the global value.
	if cfg.Tasks.DateFormat != "2006-01-02" {
		t.Errorf("expected global date format, got %q", cfg.Tasks.DateFormat)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, "tend.toml"), "not [valid")

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
	if !strings.Contains(err.Error(), "parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}
