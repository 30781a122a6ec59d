package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Derived.ArenaW32 != float32(cfg.Screen.Width) || cfg.Derived.ArenaH32 != float32(cfg.Screen.Height) {
		t.Errorf("arena should default to screen size, got %vx%v", cfg.Derived.ArenaW32, cfg.Derived.ArenaH32)
	}
	if cfg.Derived.Radius32 != 16 {
		t.Errorf("Radius32 = %v, want 16", cfg.Derived.Radius32)
	}
	if cfg.Controls.MaxPerKind != 150 || cfg.Controls.MinPerKind != 1 {
		t.Errorf("per-kind bounds = [%d, %d], want [1, 150]", cfg.Controls.MinPerKind, cfg.Controls.MaxPerKind)
	}
	if math.Abs(cfg.Steering.Blend-0.2) > 1e-9 {
		t.Errorf("Blend = %v, want 0.2", cfg.Steering.Blend)
	}
	if len(cfg.Audio.BackgroundFiles) != 3 {
		t.Errorf("expected 3 background entries, got %d", len(cfg.Audio.BackgroundFiles))
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("arena:\n  width: 400\n  height: 300\ncontrols:\n  max_per_kind: 500\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Controls.MaxPerKind != 500 {
		t.Errorf("MaxPerKind = %d, want 500", cfg.Controls.MaxPerKind)
	}
	// Untouched fields keep their defaults
	if cfg.Controls.DefaultAggression != 60 {
		t.Errorf("DefaultAggression = %d, want 60", cfg.Controls.DefaultAggression)
	}
	if !cfg.Derived.SmallArena {
		t.Error("400px arena should use the small radius tier")
	}
	if cfg.Derived.Radius32 != 10 || cfg.Derived.SpriteSize != 20 {
		t.Errorf("small tier = radius %v sprite %v, want 10 / 20", cfg.Derived.Radius32, cfg.Derived.SpriteSize)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Default()
	cfg.Controls.DefaultDensity = 77

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Controls.DefaultDensity != 77 {
		t.Errorf("DefaultDensity = %d, want 77", loaded.Controls.DefaultDensity)
	}
}
