package models

// EncounterType identifies a pre-advance encounter scenario.
type EncounterType string

const (
	// EncounterTaxAudit repeats and escalates with each occurrence.
	EncounterTaxAudit EncounterType = "tax_audit"
	// EncounterLawsuit fires at most once per game.
	EncounterLawsuit EncounterType = "lawsuit"
	// EncounterExchangeHack fires at most once per game.
	EncounterExchangeHack EncounterType = "exchange_hack"
	// EncounterRegulatorBan ends the game outright. One-shot.
	EncounterRegulatorBan EncounterType = "regulator_ban"
)

// Encounter is a pending forced event that defers the normal day pipeline
// until the player confirms it.
type Encounter struct {
	Type     EncounterType `json:"type"`
	Day      int           `json:"day"`
	Headline string        `json:"headline"`
	Demand   float64       `json:"demand"`
	Terminal bool          `json:"terminal"`
}

// EncounterState tracks encounter history across a run.
type EncounterState struct {
	Count      int                    `json:"count"`
	LastDay    int                    `json:"last_day"`
	OneShot    map[EncounterType]bool `json:"one_shot"`
	AuditCount int                    `json:"audit_count"`
}
