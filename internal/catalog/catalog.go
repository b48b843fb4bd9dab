// Package catalog provides the read-only reference data consumed by the
// simulation engine: assets, narrative content, startups, and lifestyle
// items.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"market-tycoon/internal/errors"
	"market-tycoon/internal/models"
)

// Catalog holds all static content for a game. The engine treats it as
// immutable.
type Catalog struct {
	Assets          []models.Asset          `yaml:"assets"`
	Events          []models.MarketEvent    `yaml:"events"`
	Chains          []models.EventChain     `yaml:"chains"`
	Stories         []models.Story          `yaml:"stories"`
	Startups        []models.Startup        `yaml:"startups"`
	Lifestyle       []models.LifestyleAsset `yaml:"lifestyle"`
	CategoryWeights map[string]float64      `yaml:"category_weights"`

	// LifestyleImpacts maps a news effect id to the fractional market-value
	// adjustment it applies per lifestyle category. The explicit id reference
	// keeps display text out of the simulation.
	LifestyleImpacts map[string]map[models.LifestyleCategory]float64 `yaml:"lifestyle_impacts"`
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks catalog invariants.
func (c *Catalog) Validate() error {
	if len(c.Assets) == 0 {
		return errors.NewCatalogError("assets", "", fmt.Errorf("catalog has no assets"))
	}
	ids := make(map[string]bool, len(c.Assets))
	for _, a := range c.Assets {
		if a.BasePrice <= 0 {
			return errors.NewCatalogError("asset", a.ID, fmt.Errorf("base price must be positive"))
		}
		if a.Volatility <= 0 {
			return errors.NewCatalogError("asset", a.ID, fmt.Errorf("volatility must be positive"))
		}
		ids[a.ID] = true
	}
	for _, e := range c.Events {
		if _, ok := c.CategoryWeights[e.Category]; !ok {
			return errors.NewCatalogError("event", e.ID, fmt.Errorf("unknown category %q", e.Category))
		}
		for asset := range e.Effects {
			if !ids[asset] {
				return errors.NewCatalogError("event", e.ID, fmt.Errorf("effect on unknown asset %q", asset))
			}
		}
	}
	for _, ch := range c.Chains {
		if ch.Duration < 1 {
			return errors.NewCatalogError("chain", ch.ID, fmt.Errorf("duration must be at least 1"))
		}
		if len(ch.Outcomes) == 0 {
			return errors.NewCatalogError("chain", ch.ID, fmt.Errorf("chain has no outcomes"))
		}
	}
	for _, st := range c.Stories {
		if len(st.Stages) < 2 {
			return errors.NewCatalogError("story", st.ID, fmt.Errorf("story needs at least 2 stages"))
		}
		if len(st.Stages[0].Branches) != 0 {
			return errors.NewCatalogError("story", st.ID, fmt.Errorf("opening stage must not branch"))
		}
	}
	for _, s := range c.Startups {
		if s.MinDays < 1 || s.MaxDays < s.MinDays {
			return errors.NewCatalogError("startup", s.ID, fmt.Errorf("invalid duration range"))
		}
		if len(s.Outcomes) == 0 {
			return errors.NewCatalogError("startup", s.ID, fmt.Errorf("startup has no outcomes"))
		}
	}
	return nil
}

// AssetByID returns the asset with the given id.
func (c *Catalog) AssetByID(id string) (models.Asset, bool) {
	for _, a := range c.Assets {
		if a.ID == id {
			return a, true
		}
	}
	return models.Asset{}, false
}

// EventsByCategory returns all events in a category.
func (c *Catalog) EventsByCategory(category string) []models.MarketEvent {
	var out []models.MarketEvent
	for _, e := range c.Events {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// ChainsByCategory returns all chains in a category.
func (c *Catalog) ChainsByCategory(category string) []models.EventChain {
	var out []models.EventChain
	for _, ch := range c.Chains {
		if ch.Category == category {
			out = append(out, ch)
		}
	}
	return out
}

// ChainByID returns the chain with the given id.
func (c *Catalog) ChainByID(id string) (models.EventChain, bool) {
	for _, ch := range c.Chains {
		if ch.ID == id {
			return ch, true
		}
	}
	return models.EventChain{}, false
}

// StoryByID returns the story with the given id.
func (c *Catalog) StoryByID(id string) (models.Story, bool) {
	for _, st := range c.Stories {
		if st.ID == id {
			return st, true
		}
	}
	return models.Story{}, false
}

// StartupByID returns the startup with the given id.
func (c *Catalog) StartupByID(id string) (models.Startup, bool) {
	for _, s := range c.Startups {
		if s.ID == id {
			return s, true
		}
	}
	return models.Startup{}, false
}

// LifestyleByID returns the lifestyle asset with the given id.
func (c *Catalog) LifestyleByID(id string) (models.LifestyleAsset, bool) {
	for _, l := range c.Lifestyle {
		if l.ID == id {
			return l, true
		}
	}
	return models.LifestyleAsset{}, false
}
