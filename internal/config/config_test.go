package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Input.Speed != 160 {
		t.Fatalf("want speed 160, got %v", cfg.Input.Speed)
	}
	if cfg.Input.GyroStaleAfter != 500*time.Millisecond {
		t.Fatalf("want 500ms staleness, got %v", cfg.Input.GyroStaleAfter)
	}
	if cfg.Storage != "file" {
		t.Fatalf("want file storage, got %q", cfg.Storage)
	}
}

func TestParseOverridesAndNormalizes(t *testing.T) {
	t.Setenv("MAZERUN_SPEED", "240")
	t.Setenv("MAZERUN_DEADZONE", "1.5")
	t.Setenv("MAZERUN_PLATFORM", "android")
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Input.Speed != 240 {
		t.Fatalf("want speed 240, got %v", cfg.Input.Speed)
	}
	if cfg.Input.DeadZone != 0.08 {
		t.Fatalf("out of range dead zone should reset, got %v", cfg.Input.DeadZone)
	}
	if !cfg.Mobile() {
		t.Fatalf("android should count as mobile")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Setenv("MAZERUN_SPEED", "fast")
	if _, err := Parse(); err == nil {
		t.Fatalf("want error for non-numeric speed")
	}
	if got := Load(); got.Input.Speed != 160 {
		t.Fatalf("Load should fall back to defaults, got speed %v", got.Input.Speed)
	}
}

func TestProfileDir(t *testing.T) {
	root := t.TempDir()
	cfg := Config{DataDir: root, Profile: "My Profile!"}
	dir := cfg.ProfileDir()
	if dir != filepath.Join(root, "my_profile") {
		t.Fatalf("unexpected profile dir %q", dir)
	}
	if p := cfg.Path("storage.json"); !strings.HasPrefix(p, dir) {
		t.Fatalf("path %q outside profile dir", p)
	}
}
