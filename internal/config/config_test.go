package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.TickIntervalMS != 15000 {
		t.Errorf("tick interval = %d, want 15000", cfg.TickIntervalMS)
	}
	if cfg.TickInterval() != 15*time.Second {
		t.Errorf("tick duration = %v, want 15s", cfg.TickInterval())
	}
	if cfg.AutosaveEveryTicks != 40 {
		t.Errorf("autosave cadence = %d, want 40", cfg.AutosaveEveryTicks)
	}
	if !cfg.OfflineProgression {
		t.Error("offline progression should default on")
	}
	if cfg.Species != "sprout" || cfg.PetName != "Nibble" {
		t.Errorf("starter = %s/%s, want sprout/Nibble", cfg.Species, cfg.PetName)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("tick_interval_ms: 1000\npet_name: Ember\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load overlay: %v", err)
	}
	if cfg.TickIntervalMS != 1000 {
		t.Errorf("tick interval = %d, want 1000", cfg.TickIntervalMS)
	}
	if cfg.PetName != "Ember" {
		t.Errorf("pet name = %s, want Ember", cfg.PetName)
	}
	// Untouched keys keep their defaults.
	if cfg.AutosaveEveryTicks != 40 {
		t.Errorf("autosave cadence = %d, want 40", cfg.AutosaveEveryTicks)
	}
}

func TestLoadRejectsBadInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tick_interval_ms: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for non-positive interval")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
