package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.A != 0.011 || cfg.B != 0.014 {
		t.Errorf("expected a/b 0.011/0.014, got %g/%g", cfg.A, cfg.B)
	}
	if cfg.Sweep.DcLow != 10 || cfg.Sweep.DcHigh != 1000 || cfg.Sweep.Count != 5 {
		t.Errorf("unexpected sweep defaults: %+v", cfg.Sweep)
	}
	if !cfg.RadiationDamping {
		t.Error("expected radiation damping on by default")
	}

	p := cfg.Params().WithDc(10)
	if err := p.Validate(); err != nil {
		t.Errorf("default config should map to valid params: %v", err)
	}
	if p.MuTZero != DefaultMuTZero {
		t.Errorf("expected mu_t_zero %g, got %g", DefaultMuTZero, p.MuTZero)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Dc = 42
	cfg.Seed = 7
	cfg.NumSteps = 200
	cfg.Sweep.Count = 3

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Dc != 42 || loaded.Seed != 7 || loaded.NumSteps != 200 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	if loaded.Sweep.Count != 3 {
		t.Errorf("expected sweep count 3, got %d", loaded.Sweep.Count)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("stick-slip")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Dc != 10 {
		t.Errorf("expected dc 10, got %g", cfg.Dc)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected presets")
	}
}
