package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"market-tycoon/internal/models"
)

func validCatalog() *Catalog {
	return &Catalog{
		Assets: []models.Asset{
			{ID: "AAA", Name: "Alpha", BasePrice: 100, Volatility: 0.02},
			{ID: "BBB", Name: "Beta", BasePrice: 50, Volatility: 0.05},
		},
		CategoryWeights: map[string]float64{"tech": 1},
		Events: []models.MarketEvent{
			{ID: "ev1", Category: "tech", Headline: "Chips rally", Effects: map[string]float64{"AAA": 0.05}},
		},
		Chains: []models.EventChain{
			{ID: "ch1", Category: "tech", Rumor: "Merger talk", Duration: 3,
				Outcomes: []models.ChainOutcome{{Headline: "Deal closes", Weight: 1}}},
		},
		Stories: []models.Story{
			{ID: "st1", Category: "tech", Stages: []models.StoryStage{
				{Headline: "Rumblings"},
				{Headline: "It lands", Effects: map[string]float64{"BBB": 0.1}},
			}},
		},
		Startups: []models.Startup{
			{ID: "su1", Name: "Nimble", Tier: models.StartupTierSmall, MinAmount: 5_000,
				MinDays: 5, MaxDays: 10,
				Outcomes: []models.StartupOutcome{{Label: "exit", Multiplier: 3, Weight: 1}}},
		},
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}
	if len(c.Assets) == 0 || len(c.Events) == 0 || len(c.Chains) == 0 ||
		len(c.Stories) == 0 || len(c.Startups) == 0 || len(c.Lifestyle) == 0 {
		t.Error("built-in catalog must populate every content section")
	}
	for _, ev := range c.Events {
		if _, ok := c.CategoryWeights[ev.Category]; !ok {
			t.Errorf("event %s references unweighted category %q", ev.ID, ev.Category)
		}
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Catalog)
	}{
		{"no assets", func(c *Catalog) { c.Assets = nil }},
		{"nonpositive base price", func(c *Catalog) { c.Assets[0].BasePrice = 0 }},
		{"nonpositive volatility", func(c *Catalog) { c.Assets[0].Volatility = -0.1 }},
		{"event with unknown category", func(c *Catalog) { c.Events[0].Category = "ghost" }},
		{"event effect on unknown asset", func(c *Catalog) { c.Events[0].Effects = map[string]float64{"ZZZ": 0.1} }},
		{"chain duration below one", func(c *Catalog) { c.Chains[0].Duration = 0 }},
		{"chain without outcomes", func(c *Catalog) { c.Chains[0].Outcomes = nil }},
		{"story with single stage", func(c *Catalog) { c.Stories[0].Stages = c.Stories[0].Stages[:1] }},
		{"story with branching opener", func(c *Catalog) {
			c.Stories[0].Stages[0].Branches = []models.StoryBranch{{Headline: "x", Weight: 1}}
		}},
		{"startup with inverted day range", func(c *Catalog) { c.Startups[0].MaxDays = 2 }},
		{"startup without outcomes", func(c *Catalog) { c.Startups[0].Outcomes = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCatalog()
			if err := c.Validate(); err != nil {
				t.Fatalf("fixture invalid before mutation: %v", err)
			}
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("Validate accepted a broken catalog")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data := `
assets:
  - id: AAA
    name: Alpha
    base_price: 100
    volatility: 0.02
category_weights:
  tech: 1.2
events:
  - id: ev1
    category: tech
    headline: Chips rally
    effects:
      AAA: 0.05
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(c.Assets) != 1 || c.Assets[0].ID != "AAA" {
		t.Errorf("assets = %+v, want one AAA entry", c.Assets)
	}
	if c.CategoryWeights["tech"] != 1.2 {
		t.Errorf("tech weight = %v, want 1.2", c.CategoryWeights["tech"])
	}
	if len(c.Events) != 1 || c.Events[0].Effects["AAA"] != 0.05 {
		t.Errorf("events = %+v, want one with a 0.05 effect on AAA", c.Events)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile must fail on a missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("assets: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("LoadFile must reject an empty asset list")
	}
}

func TestLookups(t *testing.T) {
	c := validCatalog()

	if a, ok := c.AssetByID("BBB"); !ok || a.Name != "Beta" {
		t.Errorf("AssetByID(BBB) = %+v, %v", a, ok)
	}
	if _, ok := c.AssetByID("nope"); ok {
		t.Error("AssetByID must miss on unknown ids")
	}
	if evs := c.EventsByCategory("tech"); len(evs) != 1 {
		t.Errorf("EventsByCategory(tech) = %d entries, want 1", len(evs))
	}
	if evs := c.EventsByCategory("ghost"); len(evs) != 0 {
		t.Errorf("EventsByCategory(ghost) = %d entries, want 0", len(evs))
	}
	if ch, ok := c.ChainByID("ch1"); !ok || ch.Duration != 3 {
		t.Errorf("ChainByID(ch1) = %+v, %v", ch, ok)
	}
	if st, ok := c.StoryByID("st1"); !ok || len(st.Stages) != 2 {
		t.Errorf("StoryByID(st1) = %+v, %v", st, ok)
	}
	if su, ok := c.StartupByID("su1"); !ok || su.MinAmount != 5_000 {
		t.Errorf("StartupByID(su1) = %+v, %v", su, ok)
	}
}
