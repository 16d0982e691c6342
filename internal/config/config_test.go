package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 1920 || cfg.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.G != 9.8 {
		t.Errorf("expected g 9.8 without truncation, got %v", cfg.G)
	}
	if cfg.Rebound != 0.5 || cfg.Mass != 10 || cfg.FPS != 60 || cfg.MaxBodies != 10 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -10 }},
		{"zero mass", func(c *Config) { c.Mass = 0 }},
		{"negative mass", func(c *Config) { c.Mass = -3 }},
		{"negative rebound", func(c *Config) { c.Rebound = -0.1 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"no bodies", func(c *Config) { c.MaxBodies = 0 }},
		{"empty trace file", func(c *Config) { c.TraceFile = "" }},
		{"unknown backend", func(c *Config) { c.Backend = "sdl" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestValidate_AllowsAmplifyingRebound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rebound = 1.5
	if err := cfg.Validate(); err != nil {
		t.Errorf("rebound > 1 should be allowed: %v", err)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gravtrail.yaml")

	cfg := DefaultConfig()
	cfg.G = 12.5
	cfg.Layout = "ring"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.G != 12.5 || loaded.Layout != "ring" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("g: 3.5\nwidth: 640\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.G != 3.5 || cfg.Width != 640 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Height != DefaultHeight || cfg.TraceFile != DefaultTraceFile {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("binary")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Layout != "binary" || cfg.MaxBodies != 2 {
		t.Errorf("unexpected preset: %+v", cfg)
	}
	if cfg.Width != DefaultWidth {
		t.Error("preset should start from defaults")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	cfg := DefaultConfig()
	if ApplyPreset(cfg, "nonexistent") {
		t.Error("ApplyPreset should report unknown presets")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
