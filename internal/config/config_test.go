package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestConfigDirEnv(t *testing.T) {
	t.Setenv("MINI_CONFIG_HOME", "/tmp/mini-config")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/mini-config" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/mini-config")
	}

	t.Setenv("MINI_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/xdg/mini" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/xdg/mini")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("MINI_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MINI_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "config.toml"), `
[editor]
debug = true

[theme]
foreground = "#111111"
statusline-background = "#222222"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.Editor.Debug {
		t.Fatalf("Debug = false, want true")
	}
	if cfg.Theme.Foreground != "#111111" {
		t.Fatalf("Foreground = %q, want %q", cfg.Theme.Foreground, "#111111")
	}
	if cfg.Theme.StatuslineBackground != "#222222" {
		t.Fatalf("StatuslineBackground = %q, want %q", cfg.Theme.StatuslineBackground, "#222222")
	}
	if cfg.Theme.Background != Default().Theme.Background {
		t.Fatalf("Background = %q, want default %q", cfg.Theme.Background, Default().Theme.Background)
	}
}

func TestLoadInvalidToml(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MINI_CONFIG_HOME", dir)
	writeFile(t, filepath.Join(dir, "config.toml"), "not [valid")

	if _, err := Load(); err == nil {
		t.Fatalf("Load error = nil, want parse error")
	}
}
