package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Game.StartingCash != 100_000 {
		t.Errorf("starting cash = %v, want 100000", cfg.Game.StartingCash)
	}
	if cfg.Game.DefaultDuration != 90 {
		t.Errorf("default duration = %v, want 90", cfg.Game.DefaultDuration)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"nonpositive starting cash", func(c *Config) { c.Game.StartingCash = 0 }},
		{"zero duration", func(c *Config) { c.Game.DefaultDuration = 0 }},
		{"leverage below one", func(c *Config) { c.Game.MaxLeverage = 0.5 }},
		{"event chance above one", func(c *Config) { c.Narrative.EventChance = 1.5 }},
		{"negative chain share", func(c *Config) { c.Narrative.ChainShare = -0.1 }},
		{"story chance above one", func(c *Config) { c.Narrative.StoryChance = 2 }},
		{"zero conflict retries", func(c *Config) { c.Narrative.MaxConflictRetries = 0 }},
		{"zero mood window", func(c *Config) { c.Narrative.MoodWindowDays = 0 }},
		{"unsorted milestone thresholds", func(c *Config) {
			c.Detectors.MilestoneThresholds = []float64{1_000_000, 250_000}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted a broken config")
			}
		})
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
	def := Default()
	if cfg.Game.StartingCash != def.Game.StartingCash ||
		cfg.Narrative.EventChance != def.Narrative.EventChance {
		t.Errorf("Load without a file must return the defaults, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	data := `
[game]
starting_cash = 250000.0
default_duration = 30

[narrative]
event_chance = 0.4
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.StartingCash != 250_000 {
		t.Errorf("starting cash = %v, want override 250000", cfg.Game.StartingCash)
	}
	if cfg.Game.DefaultDuration != 30 {
		t.Errorf("duration = %v, want override 30", cfg.Game.DefaultDuration)
	}
	if cfg.Narrative.EventChance != 0.4 {
		t.Errorf("event chance = %v, want override 0.4", cfg.Narrative.EventChance)
	}
	// Untouched keys keep their defaults.
	if cfg.Game.MaxLeverage != Default().Game.MaxLeverage {
		t.Errorf("max leverage = %v, want default", cfg.Game.MaxLeverage)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	data := `
[game]
starting_cash = -5.0
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("Load must reject a config that fails validation")
	}
}
