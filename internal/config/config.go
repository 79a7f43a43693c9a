// Package config provides configuration loading for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds the runtime parameters of the core.
type Config struct {
	TickIntervalMS     int    `yaml:"tick_interval_ms"`
	AutosaveEveryTicks int    `yaml:"autosave_every_ticks"`
	OfflineProgression bool   `yaml:"offline_progression"`
	DBPath             string `yaml:"db_path"`
	Seed               int64  `yaml:"seed"`

	// Defaults for a fresh game.
	Species string `yaml:"species"`
	PetName string `yaml:"pet_name"`
}

// Load builds a Config from the embedded defaults, overlaid by an
// optional YAML file.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parse defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if cfg.TickIntervalMS <= 0 {
		return nil, fmt.Errorf("tick_interval_ms must be positive, got %d", cfg.TickIntervalMS)
	}
	return cfg, nil
}

// TickInterval returns the tick cadence as a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}
