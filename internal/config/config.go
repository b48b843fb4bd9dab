// Package config provides configuration management for the simulation engine.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Game      GameConfig      `mapstructure:"game"`
	Narrative NarrativeConfig `mapstructure:"narrative"`
	Detectors DetectorConfig  `mapstructure:"detectors"`
	Logging   LogConfig       `mapstructure:"logging"`
}

// GameConfig holds the financial tunables of a run.
type GameConfig struct {
	StartingCash       float64 `mapstructure:"starting_cash"`
	DefaultDuration    int     `mapstructure:"default_duration"`
	MaxLeverage        float64 `mapstructure:"max_leverage"`
	LargeOfferMinWorth float64 `mapstructure:"large_offer_min_worth"`
	SmallOfferMinWorth float64 `mapstructure:"small_offer_min_worth"`
	OfferChance        float64 `mapstructure:"offer_chance"`
	OfferCutoffDays    int     `mapstructure:"offer_cutoff_days"`
}

// NarrativeConfig holds the tunables of the daily selection engine.
type NarrativeConfig struct {
	EventChance        float64 `mapstructure:"event_chance"`
	ChainShare         float64 `mapstructure:"chain_share"`
	StoryChance        float64 `mapstructure:"story_chance"`
	MaxConflictRetries int     `mapstructure:"max_conflict_retries"`
	MoodWindowDays     int     `mapstructure:"mood_window_days"`
	StrongEffect       float64 `mapstructure:"strong_effect"`
}

// DetectorConfig holds milestone, near-miss, and encounter tunables.
type DetectorConfig struct {
	MilestoneThresholds  []float64 `mapstructure:"milestone_thresholds"`
	MilestoneBannerDelay int       `mapstructure:"milestone_banner_delay"`
	NearMissChance       float64   `mapstructure:"near_miss_chance"`
	NearMissCooldown     int       `mapstructure:"near_miss_cooldown"`
	EncounterBaseChance  float64   `mapstructure:"encounter_base_chance"`
	EncounterMinDay      int       `mapstructure:"encounter_min_day"`
	EncounterSpacing     int       `mapstructure:"encounter_spacing"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/market-tycoon"
	}
	return filepath.Join(home, ".config", "market-tycoon")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			StartingCash:       100_000,
			DefaultDuration:    90,
			MaxLeverage:        10,
			SmallOfferMinWorth: 150_000,
			LargeOfferMinWorth: 1_000_000,
			OfferChance:        0.12,
			OfferCutoffDays:    10,
		},
		Narrative: NarrativeConfig{
			EventChance:        0.65,
			ChainShare:         0.25,
			StoryChance:        0.10,
			MaxConflictRetries: 4,
			MoodWindowDays:     3,
			StrongEffect:       0.05,
		},
		Detectors: DetectorConfig{
			MilestoneThresholds:  []float64{250_000, 1_000_000, 5_000_000, 10_000_000, 50_000_000},
			MilestoneBannerDelay: 2,
			NearMissChance:       0.35,
			NearMissCooldown:     3,
			EncounterBaseChance:  0.04,
			EncounterMinDay:      10,
			EncounterSpacing:     7,
		},
		Logging: LogConfig{
			Level:      "info",
			Console:    true,
			File:       false,
			FilePath:   filepath.Join(DefaultConfigDir(), "logs", "tycoon.log"),
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}

// Load loads configuration from the specified directory, falling back to the
// built-in defaults when no config file exists.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config.toml: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Game.StartingCash <= 0 {
		return fmt.Errorf("game.starting_cash must be positive")
	}
	if c.Game.DefaultDuration < 1 {
		return fmt.Errorf("game.default_duration must be at least 1")
	}
	if c.Game.MaxLeverage < 1 {
		return fmt.Errorf("game.max_leverage must be at least 1")
	}
	if c.Narrative.EventChance < 0 || c.Narrative.EventChance > 1 {
		return fmt.Errorf("narrative.event_chance must be in [0, 1]")
	}
	if c.Narrative.ChainShare < 0 || c.Narrative.ChainShare > 1 {
		return fmt.Errorf("narrative.chain_share must be in [0, 1]")
	}
	if c.Narrative.StoryChance < 0 || c.Narrative.StoryChance > 1 {
		return fmt.Errorf("narrative.story_chance must be in [0, 1]")
	}
	if c.Narrative.MaxConflictRetries < 1 {
		return fmt.Errorf("narrative.max_conflict_retries must be at least 1")
	}
	if c.Narrative.MoodWindowDays < 1 {
		return fmt.Errorf("narrative.mood_window_days must be at least 1")
	}
	for i := 1; i < len(c.Detectors.MilestoneThresholds); i++ {
		if c.Detectors.MilestoneThresholds[i] <= c.Detectors.MilestoneThresholds[i-1] {
			return fmt.Errorf("detectors.milestone_thresholds must be strictly increasing")
		}
	}
	return nil
}
