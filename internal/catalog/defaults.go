package catalog

import "market-tycoon/internal/models"

// Default returns the built-in catalog used when no content file is supplied.
func Default() *Catalog {
	return &Catalog{
		Assets: []models.Asset{
			{ID: "VECTRA", Name: "Vectra AI", BasePrice: 165, Volatility: 0.06},
			{ID: "NIMBUS", Name: "Nimbus Labs", BasePrice: 95, Volatility: 0.05},
			{ID: "QUARKX", Name: "Quarkx Compute", BasePrice: 135, Volatility: 0.07},
			{ID: "NEBULA", Name: "Nebula Energy", BasePrice: 92, Volatility: 0.04},
			{ID: "FUSION", Name: "Fusion Grid", BasePrice: 110, Volatility: 0.045},
			{ID: "BITRON", Name: "Bitron Coin", BasePrice: 50, Volatility: 0.12},
			{ID: "LUMINA", Name: "Lumina Health", BasePrice: 102, Volatility: 0.055},
			{ID: "ARCANE", Name: "Arcane Finance", BasePrice: 145, Volatility: 0.05},
		},
		CategoryWeights: map[string]float64{
			"tech":    1.2,
			"energy":  1.0,
			"crypto":  1.0,
			"biotech": 0.8,
			"macro":   0.9,
		},
		Events: []models.MarketEvent{
			{
				ID: "tech-chip-shortage", Category: "tech",
				Headline: "Global chip shortage squeezes AI hardware supply",
				Effects:  map[string]float64{"VECTRA": -0.08, "QUARKX": -0.11, "NIMBUS": -0.04},
				Escalation: &models.EscalationSpec{
					Categories: []string{"tech"}, Boost: 1.6, Duration: 4,
				},
			},
			{
				ID: "tech-model-breakthrough", Category: "tech",
				Headline: "Vectra AI demos reasoning model that stuns researchers",
				Effects:  map[string]float64{"VECTRA": 0.14, "QUARKX": 0.06},
			},
			{
				ID: "tech-cloud-outage", Category: "tech",
				Headline: "Nimbus Labs outage knocks half the internet offline for hours",
				Effects:  map[string]float64{"NIMBUS": -0.09},
			},
			{
				ID: "energy-grid-contract", Category: "energy",
				Headline: "Fusion Grid wins national transmission overhaul contract",
				Effects:  map[string]float64{"FUSION": 0.1, "NEBULA": 0.03},
			},
			{
				ID: "energy-price-spike", Category: "energy",
				Headline: "Cold snap sends spot power prices to record highs",
				Effects:  map[string]float64{"NEBULA": 0.07, "FUSION": 0.05},
				Escalation: &models.EscalationSpec{
					Categories: []string{"energy"}, Boost: 1.4, Duration: 3,
				},
			},
			{
				ID: "energy-turbine-recall", Category: "energy",
				Headline: "Nebula Energy recalls flagship turbine line over fatigue cracks",
				Effects:  map[string]float64{"NEBULA": -0.1},
			},
			{
				ID: "crypto-etf-inflows", Category: "crypto",
				Headline: "Record ETF inflows push Bitron to new yearly high",
				Effects:  map[string]float64{"BITRON": 0.18, "ARCANE": 0.04},
			},
			{
				ID: "crypto-exchange-freeze", Category: "crypto",
				Headline: "Major offshore exchange freezes withdrawals without explanation",
				Effects:  map[string]float64{"BITRON": -0.2},
				Escalation: &models.EscalationSpec{
					Categories: []string{"crypto"}, Boost: 1.8, Duration: 3,
				},
			},
			{
				ID: "biotech-trial-win", Category: "biotech",
				Headline: "Lumina Health gene therapy clears pivotal phase III trial",
				Effects:  map[string]float64{"LUMINA": 0.16},
			},
			{
				ID: "biotech-fda-delay", Category: "biotech",
				Headline: "Regulator delays Lumina approval decision by six months",
				Effects:  map[string]float64{"LUMINA": -0.11},
			},
			{
				ID: "macro-rate-cut", Category: "macro",
				Headline: "Central bank surprises markets with a half-point rate cut",
				Effects: map[string]float64{
					"VECTRA": 0.05, "NIMBUS": 0.04, "QUARKX": 0.05, "ARCANE": 0.07, "BITRON": 0.08,
				},
			},
			{
				ID: "macro-recession-print", Category: "macro",
				Headline: "GDP contraction confirms recession fears",
				Effects: map[string]float64{
					"VECTRA": -0.06, "NIMBUS": -0.05, "FUSION": -0.04, "ARCANE": -0.08, "LUMINA": -0.03,
				},
			},
		},
		Chains: []models.EventChain{
			{
				ID: "chain-vectra-buyout", Category: "tech",
				Rumor:    "Whispers of a mega-cap takeover bid for Vectra AI",
				Duration: 3,
				Outcomes: []models.ChainOutcome{
					{Headline: "Takeover confirmed: Vectra AI acquired at a 30% premium", Weight: 0.4,
						Effects: map[string]float64{"VECTRA": 0.3}},
					{Headline: "Takeover talks collapse over antitrust concerns", Weight: 0.6,
						Effects: map[string]float64{"VECTRA": -0.15}},
				},
			},
			{
				ID: "chain-quarkx-fab", Category: "tech",
				Rumor:    "Quarkx said to be courting state subsidies for a new fab",
				Duration: 4,
				Outcomes: []models.ChainOutcome{
					{Headline: "Quarkx lands subsidy package for domestic fab buildout", Weight: 0.5,
						Effects: map[string]float64{"QUARKX": 0.18}},
					{Headline: "Subsidy bill dies in committee, Quarkx fab shelved", Weight: 0.5,
						Effects: map[string]float64{"QUARKX": -0.12}},
				},
			},
			{
				ID: "chain-bitron-fork", Category: "crypto",
				Rumor:    "Developers split over a contentious Bitron protocol fork",
				Duration: 3,
				Outcomes: []models.ChainOutcome{
					{Headline: "Fork resolved peacefully, Bitron upgrade ships", Weight: 0.45,
						Effects: map[string]float64{"BITRON": 0.15}},
					{Headline: "Bitron chain splits, miners abandon the legacy network", Weight: 0.35,
						Effects: map[string]float64{"BITRON": -0.25}},
					{Headline: "Fork postponed indefinitely, traders shrug", Weight: 0.2,
						Effects: map[string]float64{"BITRON": -0.03}},
				},
			},
			{
				ID: "chain-nebula-probe", Category: "energy",
				Rumor:    "Regulators open inquiry into Nebula Energy's accounting",
				Duration: 5,
				Outcomes: []models.ChainOutcome{
					{Headline: "Nebula cleared of wrongdoing, auditors sign off", Weight: 0.55,
						Effects: map[string]float64{"NEBULA": 0.1}},
					{Headline: "Nebula restates three years of earnings, CFO resigns", Weight: 0.45,
						Effects: map[string]float64{"NEBULA": -0.22}},
				},
			},
		},
		Stories: []models.Story{
			{
				ID: "story-arcane-whale", Category: "macro",
				Stages: []models.StoryStage{
					{Headline: "Rumor: an unnamed fund is quietly amassing Arcane Finance shares",
						Effects: map[string]float64{"ARCANE": 0.03}},
					{Headline: "Filings confirm a 5% stake in Arcane by a secretive macro fund",
						Effects: map[string]float64{"ARCANE": 0.06}},
					{Branches: []models.StoryBranch{
						{Headline: "The whale goes activist, demanding an Arcane breakup", Weight: 0.5,
							Effects: map[string]float64{"ARCANE": 0.12}, Continues: true},
						{Headline: "The whale dumps its entire Arcane stake overnight", Weight: 0.5,
							Effects: map[string]float64{"ARCANE": -0.14}},
					}},
					{Branches: []models.StoryBranch{
						{Headline: "Arcane board capitulates, breakup plan announced", Weight: 0.6,
							Effects: map[string]float64{"ARCANE": 0.1}},
						{Headline: "Proxy fight fizzles, activist retreats", Weight: 0.4,
							Effects: map[string]float64{"ARCANE": -0.06}},
					}},
				},
			},
			{
				ID: "story-lumina-pandemic", Category: "biotech",
				Stages: []models.StoryStage{
					{Headline: "Health authorities track an unusual flu cluster overseas",
						Effects: map[string]float64{"LUMINA": 0.02}},
					{Headline: "Outbreak spreads; Lumina fast-tracks its antiviral candidate",
						Effects: map[string]float64{"LUMINA": 0.08, "NIMBUS": -0.02}},
					{Branches: []models.StoryBranch{
						{Headline: "Lumina antiviral proves effective, governments place orders", Weight: 0.45,
							Effects: map[string]float64{"LUMINA": 0.25}},
						{Headline: "Outbreak fizzles out before trials complete", Weight: 0.35,
							Effects: map[string]float64{"LUMINA": -0.1}},
						{Headline: "Rival lab beats Lumina to market", Weight: 0.2,
							Effects: map[string]float64{"LUMINA": -0.18}},
					}},
				},
			},
			{
				ID: "story-fusion-blackout", Category: "energy",
				Stages: []models.StoryStage{
					{Headline: "Grid operators warn of stress ahead of a record heatwave",
						Effects: map[string]float64{"FUSION": 0.03, "NEBULA": 0.03}},
					{Headline: "Rolling blackouts hit three states; Fusion Grid blamed",
						Effects: map[string]float64{"FUSION": -0.09}},
					{Branches: []models.StoryBranch{
						{Headline: "Inquiry clears Fusion Grid, blames legacy infrastructure", Weight: 0.55,
							Effects: map[string]float64{"FUSION": 0.11}},
						{Headline: "Fusion Grid fined and stripped of two regional contracts", Weight: 0.45,
							Effects: map[string]float64{"FUSION": -0.16}},
					}},
				},
			},
		},
		Startups: []models.Startup{
			{
				ID: "startup-ferrytech", Name: "FerryTech", Tier: models.StartupTierSmall,
				Pitch:     "Autonomous electric ferries for commuter routes",
				MinAmount: 10_000, MinDays: 8, MaxDays: 16,
				Outcomes: []models.StartupOutcome{
					{Label: "acquired", Multiplier: 3.0, Weight: 0.25},
					{Label: "steady", Multiplier: 1.4, Weight: 0.35},
					{Label: "folded", Multiplier: 0, Weight: 0.4},
				},
			},
			{
				ID: "startup-grainloop", Name: "GrainLoop", Tier: models.StartupTierSmall,
				Pitch:     "Closed-loop vertical farming for city blocks",
				MinAmount: 15_000, MinDays: 10, MaxDays: 20,
				Outcomes: []models.StartupOutcome{
					{Label: "ipo", Multiplier: 4.0, Weight: 0.15},
					{Label: "acquired", Multiplier: 2.0, Weight: 0.3},
					{Label: "folded", Multiplier: 0.1, Weight: 0.55},
				},
			},
			{
				ID: "startup-orbitalmesh", Name: "OrbitalMesh", Tier: models.StartupTierLarge,
				Pitch:     "Laser-linked satellite backbone for zero-latency trading",
				MinAmount: 250_000, MinDays: 12, MaxDays: 25,
				Outcomes: []models.StartupOutcome{
					{Label: "moonshot", Multiplier: 8.0, Weight: 0.12,
						Effects: map[string]float64{"NIMBUS": -0.05, "ARCANE": 0.04}},
					{Label: "acquired", Multiplier: 2.5, Weight: 0.33},
					{Label: "folded", Multiplier: 0, Weight: 0.55},
				},
			},
			{
				ID: "startup-chronosbio", Name: "Chronos Bio", Tier: models.StartupTierLarge,
				Pitch:     "Cellular reprogramming for age reversal",
				MinAmount: 500_000, MinDays: 15, MaxDays: 30,
				Outcomes: []models.StartupOutcome{
					{Label: "breakthrough", Multiplier: 12.0, Weight: 0.08,
						Effects: map[string]float64{"LUMINA": 0.1}},
					{Label: "partial", Multiplier: 1.5, Weight: 0.32},
					{Label: "folded", Multiplier: 0, Weight: 0.6},
				},
			},
		},
		LifestyleImpacts: map[string]map[models.LifestyleCategory]float64{
			"macro-recession-print": {
				models.LifestyleProperty: -0.02,
				models.LifestyleArt:      -0.03,
				models.LifestyleJet:      -0.01,
			},
			"macro-rate-cut": {
				models.LifestyleProperty: 0.015,
				models.LifestyleArt:      0.01,
			},
			"crypto-etf-inflows": {
				models.LifestyleArt: 0.01,
			},
		},
		Lifestyle: []models.LifestyleAsset{
			{ID: "life-penthouse", Name: "Harbor View Penthouse", Category: models.LifestyleProperty,
				BasePrice: 2_500_000, Volatility: 0.01, DailyReturn: 0.0004},
			{ID: "life-vineyard", Name: "Valley Vineyard Estate", Category: models.LifestyleProperty,
				BasePrice: 6_000_000, Volatility: 0.008, DailyReturn: 0.0005},
			{ID: "life-gulfjet", Name: "G800 Private Jet", Category: models.LifestyleJet,
				BasePrice: 70_000_000, Volatility: 0.006, DailyReturn: 25_000},
			{ID: "life-basquiat", Name: "Untitled (1982) Canvas", Category: models.LifestyleArt,
				BasePrice: 45_000_000, Volatility: 0.015, DailyReturn: 0},
		},
	}
}
