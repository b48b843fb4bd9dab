package models

// EscalationSpec declares a temporary category weight boost attached to an
// event definition.
type EscalationSpec struct {
	Categories []string `json:"categories" yaml:"categories"`
	Boost      float64  `json:"boost" yaml:"boost"`
	Duration   int      `json:"duration" yaml:"duration"`
}

// MarketEvent is a single-day narrative unit with per-asset price effects.
type MarketEvent struct {
	ID         string             `json:"id" yaml:"id"`
	Category   string             `json:"category" yaml:"category"`
	Headline   string             `json:"headline" yaml:"headline"`
	Effects    map[string]float64 `json:"effects" yaml:"effects"`
	Escalation *EscalationSpec    `json:"escalation,omitempty" yaml:"escalation,omitempty"`
}

// ChainOutcome is one weighted resolution of an event chain.
type ChainOutcome struct {
	Headline string             `json:"headline" yaml:"headline"`
	Weight   float64            `json:"weight" yaml:"weight"`
	Effects  map[string]float64 `json:"effects" yaml:"effects"`
}

// EventChain is a rumor that resolves into exactly one weighted outcome after
// a fixed number of days.
type EventChain struct {
	ID       string         `json:"id" yaml:"id"`
	Category string         `json:"category" yaml:"category"`
	Rumor    string         `json:"rumor" yaml:"rumor"`
	Duration int            `json:"duration" yaml:"duration"`
	Outcomes []ChainOutcome `json:"outcomes" yaml:"outcomes"`
}

// StoryBranch is one weighted outcome of a branching story stage. Continues
// keeps the story alive and advances it to the next stage when one exists.
type StoryBranch struct {
	Headline  string             `json:"headline" yaml:"headline"`
	Weight    float64            `json:"weight" yaml:"weight"`
	Effects   map[string]float64 `json:"effects" yaml:"effects"`
	Continues bool               `json:"continues" yaml:"continues"`
}

// StoryStage is one step of a story. A stage with branches rolls one of them
// instead of applying its own headline and effects.
type StoryStage struct {
	Headline string             `json:"headline,omitempty" yaml:"headline,omitempty"`
	Effects  map[string]float64 `json:"effects,omitempty" yaml:"effects,omitempty"`
	Branches []StoryBranch      `json:"branches,omitempty" yaml:"branches,omitempty"`
}

// Story is a multi-stage narrative advancing one stage per day. The opening
// stage is always a plain rumor stage.
type Story struct {
	ID       string       `json:"id" yaml:"id"`
	Category string       `json:"category" yaml:"category"`
	Stages   []StoryStage `json:"stages" yaml:"stages"`
}

// ActiveChain tracks the single in-flight event chain.
type ActiveChain struct {
	ChainID       string `json:"chain_id"`
	Category      string `json:"category"`
	DaysRemaining int    `json:"days_remaining"`
	StartDay      int    `json:"start_day"`
}

// ActiveStory tracks the single in-flight story.
type ActiveStory struct {
	StoryID     string `json:"story_id"`
	Category    string `json:"category"`
	Stage       int    `json:"stage"`
	AdvancedDay int    `json:"advanced_day"`
}

// Mood records recent directional sentiment on an asset. Direction is +1 or
// -1. Moods are dropped once stale and are used only for conflict testing.
type Mood struct {
	AssetID   string `json:"asset_id"`
	Direction int    `json:"direction"`
	Day       int    `json:"day"`
}

// Escalation is an active category weight multiplier. ExpiresDay is
// exclusive: the escalation no longer applies on that day.
type Escalation struct {
	Categories []string `json:"categories"`
	Boost      float64  `json:"boost"`
	ExpiresDay int      `json:"expires_day"`
}
