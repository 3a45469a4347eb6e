package config

import (
	"path/filepath"
	"testing"
	"time"

	"gonum.org/v1/plot/vg"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.IntervalMs != 50 {
		t.Errorf("expected interval 50, got %d", cfg.IntervalMs)
	}
	if cfg.StepsPerFrame != 3 {
		t.Errorf("expected steps per frame 3, got %d", cfg.StepsPerFrame)
	}
	if cfg.ShowAverage {
		t.Error("average should be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestRenderOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IntervalMs = 80
	cfg.ShowAverage = true

	opts := cfg.RenderOptions()
	if opts.Interval != 80*time.Millisecond {
		t.Errorf("expected 80ms, got %v", opts.Interval)
	}
	if opts.Size != 4*vg.Inch {
		t.Errorf("expected 4in, got %v", opts.Size)
	}
	if !opts.ShowAverage {
		t.Error("expected average shown")
	}
	if opts.Pixels() != 400 {
		t.Errorf("expected 400 px, got %d", opts.Pixels())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"steps", func(c *Config) { c.StepsPerFrame = 0 }},
		{"interval", func(c *Config) { c.IntervalMs = -5 }},
		{"dpi", func(c *Config) { c.Canvas.DPI = 0 }},
		{"output", func(c *Config) { c.Output = "out.avi" }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.modify(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")

	cfg := DefaultConfig()
	cfg.StepsPerFrame = 5
	cfg.Output = "sync.gif"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.StepsPerFrame != 5 || loaded.Output != "sync.gif" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("draft")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.StepsPerFrame != 6 {
		t.Errorf("expected 6 steps per frame, got %d", cfg.StepsPerFrame)
	}

	cfg.StepsPerFrame = 99
	if Presets["draft"].StepsPerFrame == 99 {
		t.Error("GetPreset must return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	got := ListPresets()
	want := []string{"draft", "notebook", "poster", "smooth"}
	if len(got) != len(want) {
		t.Fatalf("presets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("presets = %v, want %v", got, want)
			break
		}
	}

	smooth := GetPreset("smooth")
	if smooth.StepsPerFrame != 1 || smooth.IntervalMs != 20 || !smooth.ShowAverage {
		t.Errorf("smooth preset = %+v", smooth)
	}
}
