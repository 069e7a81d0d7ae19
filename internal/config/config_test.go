package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TODO_CONFIG_PATH", "")
	for _, k := range []string{"TODO_BACKEND", "TODO_DIR", "TODO_KEY", "TODO_THEME", "TODO_NO_COLOR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
}

func TestDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend != "diskv" || cfg.Key != "todo_app_v1" || cfg.Theme != "classic" || cfg.NoColor {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if strings.HasPrefix(cfg.Dir, "~") || filepath.Base(cfg.Dir) != ".todo" {
		t.Fatalf("dir not expanded: %q", cfg.Dir)
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TODO_BACKEND", "sqlite")
	t.Setenv("TODO_KEY", "work")
	t.Setenv("TODO_NO_COLOR", "true")

	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend != "sqlite" || cfg.Key != "work" || !cfg.NoColor {
		t.Fatalf("env not applied: %+v", cfg)
	}
	opts := cfg.StoreOptions()
	if opts.Backend != "sqlite" || opts.Key != "work" || opts.Dir != cfg.Dir {
		t.Fatalf("store options mismatch: %+v", opts)
	}
}

func TestConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	data := "backend: json\ndir: " + filepath.Join(dir, "data") + "\ntheme: mono\n"
	if err := os.WriteFile(filepath.Join(dir, ".todo.yaml"), []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TODO_CONFIG_PATH", dir)

	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend != "json" || cfg.Theme != "mono" || cfg.Dir != filepath.Join(dir, "data") {
		t.Fatalf("config file not applied: %+v", cfg)
	}
}

func TestMalformedConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".todo.yaml"), []byte("backend: [unterminated\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TODO_CONFIG_PATH", dir)

	if _, err := Load(New()); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}
