package engine

import (
	"testing"

	"github.com/rs/zerolog"

	"market-tycoon/internal/catalog"
	errs "market-tycoon/internal/errors"
	"market-tycoon/internal/models"
)

// soloCatalog holds one asset and one chain in a single category, so the
// narrative draw is fully predictable.
func soloCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Assets: []models.Asset{
			{ID: "AAA", Name: "Alpha Corp", BasePrice: 100, Volatility: 0.01},
		},
		CategoryWeights: map[string]float64{"solo": 1},
		Chains: []models.EventChain{{
			ID: "solo-chain", Category: "solo", Rumor: "Something is brewing at Alpha",
			Duration: 3,
			Outcomes: []models.ChainOutcome{
				{Headline: "It was true", Weight: 1, Effects: map[string]float64{"AAA": 0.1}},
			},
		}},
	}
}

func TestChainLifecycle(t *testing.T) {
	cfg := quietConfig()
	cfg.Narrative.EventChance = 1
	cfg.Narrative.ChainShare = 1

	eng := New(soloCatalog(), cfg, NewRand(7), zerolog.Nop())
	s := eng.StartGame(90)

	// Day 1: the chain starts and fires its rumor.
	if err := eng.TriggerNextDay(s); err != nil {
		t.Fatalf("day 1: %v", err)
	}
	if s.ActiveChain == nil || s.ActiveChain.ChainID != "solo-chain" {
		t.Fatalf("active chain = %+v, want solo-chain", s.ActiveChain)
	}
	if !s.UsedChains["solo-chain"] {
		t.Error("chain id must enter the used set at creation")
	}
	if len(s.TodayNews) != 1 || s.TodayNews[0].Kind != models.NewsRumor {
		t.Fatalf("day 1 news = %+v, want one rumor", s.TodayNews)
	}

	// Days 2 and 3: the chain counts down silently. Its category is blocked,
	// so no other unit fires.
	for day := 2; day <= 3; day++ {
		if err := eng.TriggerNextDay(s); err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
		if s.ActiveChain == nil {
			t.Fatalf("day %d: chain resolved early", day)
		}
		if len(s.TodayNews) != 0 {
			t.Errorf("day %d: news = %+v, want none while the only category is blocked", day, s.TodayNews)
		}
	}

	// Day 4, the third advance after the start, resolves the chain.
	if err := eng.TriggerNextDay(s); err != nil {
		t.Fatalf("day 4: %v", err)
	}
	if s.ActiveChain != nil {
		t.Fatal("chain should be resolved on the third advance after its start")
	}
	found := false
	for _, item := range s.TodayNews {
		if item.Kind == models.NewsResolution {
			found = true
		}
	}
	if !found {
		t.Fatalf("day 4 news = %+v, want a resolution headline", s.TodayNews)
	}

	// A used chain is never selected again: the next days stay chain-free.
	for day := 5; day <= 8; day++ {
		if err := eng.TriggerNextDay(s); err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
		if s.ActiveChain != nil {
			t.Fatalf("day %d: used chain got reselected", day)
		}
	}
}

func TestWinCondition(t *testing.T) {
	eng := New(soloCatalog(), quietConfig(), NewRand(3), zerolog.Nop())
	s := eng.StartGame(3)

	for day := 1; day <= 3; day++ {
		if err := eng.TriggerNextDay(s); err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
		if !s.Running() {
			t.Fatalf("day %d: game ended early with status %s", day, s.Status)
		}
	}

	// The advance past the final day ends the run.
	if err := eng.TriggerNextDay(s); err != nil {
		t.Fatalf("final advance: %v", err)
	}
	if s.Status != models.GameWon {
		t.Fatalf("status = %s, want WON", s.Status)
	}
	if err := eng.TriggerNextDay(s); !errs.Is(err, errs.ErrGameOver) {
		t.Errorf("advance after win = %v, want ErrGameOver", err)
	}
}

func TestBankruptcyClassification(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *State)
		want  models.BankruptcyCause
	}{
		{
			name:  "plain zero",
			setup: func(s *State) { s.Cash = 0 },
			want:  models.CausePlain,
		},
		{
			name:  "margin",
			setup: func(s *State) { s.Cash = -5_000 },
			want:  models.CauseMargin,
		},
		{
			name: "short squeeze",
			setup: func(s *State) {
				s.Cash = -5_000
				s.Shorts = append(s.Shorts, models.ShortPosition{AssetID: "AAA", Quantity: 1})
			},
			want: models.CauseShortSqueeze,
		},
		{
			name:  "catastrophic",
			setup: func(s *State) { s.Cash = -2_000_000 },
			want:  models.CauseCatastrophic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newTestEngine(t, nil, nil)
			s := eng.StartGame(90)
			tt.setup(s)
			eng.evaluateTerminal(s)
			if s.Status != models.GameBankrupt {
				t.Fatalf("status = %s, want BANKRUPT", s.Status)
			}
			if s.Cause != tt.want {
				t.Errorf("cause = %s, want %s", s.Cause, tt.want)
			}
		})
	}
}

func TestEncounterPaidFromCash(t *testing.T) {
	eng := newTestEngine(t, nil, nil)
	s := eng.StartGame(90)
	s.PendingEncounter = &models.Encounter{
		Type: models.EncounterLawsuit, Day: s.Day + 1,
		Headline: "Sued", Demand: 25_000,
	}

	if err := eng.ConfirmEncounter(s); err != nil {
		t.Fatalf("ConfirmEncounter: %v", err)
	}
	if !s.Running() {
		t.Fatalf("game ended: %s", s.Status)
	}
	if s.PendingEncounter != nil {
		t.Error("encounter must be consumed")
	}
	// 100000 starting cash minus the 25000 demand, then the day advanced.
	if s.Cash > 75_000+0.01 || s.Cash < 75_000-0.01 {
		t.Errorf("cash = %.2f, want 75000.00", s.Cash)
	}
	if len(s.TodayNews) == 0 || s.TodayNews[0].Kind != models.NewsEncounter {
		t.Errorf("today's news = %+v, want the encounter outcome first", s.TodayNews)
	}
	if !almostEqual(s.Ledger, eng.NetWorth(s)) {
		t.Errorf("ledger %.2f disagrees with net worth %.2f", s.Ledger, eng.NetWorth(s))
	}
}

func TestEncounterForcedLiquidation(t *testing.T) {
	eng := newTestEngine(t, nil, nil)
	s := eng.StartGame(90)
	setPrice(s, "VECTRA", 100)
	setPrice(s, "NIMBUS", 100)

	if err := eng.Buy(s, "VECTRA", 400); err != nil {
		t.Fatal(err)
	}
	if err := eng.Buy(s, "NIMBUS", 400); err != nil {
		t.Fatal(err)
	}
	// 20000 cash, 80000 in holdings.
	s.PendingEncounter = &models.Encounter{
		Type: models.EncounterTaxAudit, Day: s.Day + 1,
		Headline: "Audited", Demand: 50_000,
	}

	if err := eng.ConfirmEncounter(s); err != nil {
		t.Fatalf("ConfirmEncounter: %v", err)
	}
	if !s.Running() {
		t.Fatalf("game ended: %s", s.Status)
	}
	if s.Cash < 0 {
		t.Errorf("cash = %.2f, forced liquidation must cover the demand", s.Cash)
	}
	held := s.Holdings["VECTRA"] + s.Holdings["NIMBUS"]
	if held >= 800 {
		t.Errorf("holdings = %d, want some shares sold", held)
	}
	if held == 0 {
		t.Errorf("everything sold, pro-rata split should leave shares behind")
	}
}

func TestEncounterTerminal(t *testing.T) {
	eng := newTestEngine(t, nil, nil)
	s := eng.StartGame(90)
	day := s.Day
	s.PendingEncounter = &models.Encounter{
		Type: models.EncounterRegulatorBan, Day: day + 1,
		Headline: "Banned", Terminal: true,
	}

	if err := eng.ConfirmEncounter(s); err != nil {
		t.Fatalf("ConfirmEncounter: %v", err)
	}
	if s.Status != models.GameBankrupt || s.Cause != models.CauseEncounter {
		t.Fatalf("status=%s cause=%s, want BANKRUPT/encounter", s.Status, s.Cause)
	}
	if s.Day != day {
		t.Errorf("day advanced to %d on a terminal encounter, want %d", s.Day, day)
	}
}

func TestEncounterShortfallBankrupts(t *testing.T) {
	eng := newTestEngine(t, nil, nil)
	s := eng.StartGame(90)
	s.Cash = 1_000
	s.Ledger = eng.NetWorth(s)
	s.PendingEncounter = &models.Encounter{
		Type: models.EncounterLawsuit, Day: s.Day + 1,
		Headline: "Sued", Demand: 10_000,
	}

	if err := eng.ConfirmEncounter(s); err != nil {
		t.Fatalf("ConfirmEncounter: %v", err)
	}
	if s.Status != models.GameBankrupt || s.Cause != models.CauseEncounter {
		t.Fatalf("status=%s cause=%s, want BANKRUPT/encounter", s.Status, s.Cause)
	}
}

func TestEncounterGateRespectsMinDayAndSpacing(t *testing.T) {
	cfg := quietConfig()
	cfg.Detectors.EncounterBaseChance = 1 // always fire when eligible
	eng := New(soloCatalog(), cfg, NewRand(11), zerolog.Nop())
	s := eng.StartGame(90)

	// Before the minimum day nothing can fire.
	for day := 1; day < cfg.Detectors.EncounterMinDay; day++ {
		if err := eng.TriggerNextDay(s); err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
		if s.PendingEncounter != nil {
			t.Fatalf("day %d: encounter before minimum day", day)
		}
	}

	// The first eligible day fires and defers the transition.
	dayBefore := s.Day
	if err := eng.TriggerNextDay(s); err != nil {
		t.Fatal(err)
	}
	if s.PendingEncounter == nil {
		t.Fatal("expected an encounter on the first eligible day")
	}
	if s.Day != dayBefore {
		t.Error("day must not advance while an encounter is pending")
	}
	firstDay := s.PendingEncounter.Day

	if err := eng.ConfirmEncounter(s); err != nil {
		t.Fatal(err)
	}
	if !s.Running() {
		t.Skipf("run ended on the first encounter: %s", s.Status)
	}

	// The next encounter honors the spacing window.
	for s.Running() && s.PendingEncounter == nil {
		if err := eng.TriggerNextDay(s); err != nil {
			t.Fatal(err)
		}
	}
	if s.PendingEncounter != nil {
		if gap := s.PendingEncounter.Day - firstDay; gap < cfg.Detectors.EncounterSpacing {
			t.Errorf("encounter gap = %d days, want at least %d", gap, cfg.Detectors.EncounterSpacing)
		}
	}
}

func TestMilestoneDetection(t *testing.T) {
	eng := newTestEngine(t, nil, nil)
	s := eng.StartGame(90)

	s.Cash = 300_000
	eng.checkMilestones(s)
	if s.MilestoneToday == nil || s.MilestoneToday.Threshold != 250_000 {
		t.Fatalf("milestone = %+v, want 250000 threshold", s.MilestoneToday)
	}

	// The same threshold never fires twice.
	s.MilestoneToday = nil
	eng.checkMilestones(s)
	if s.MilestoneToday != nil {
		t.Fatalf("milestone fired again: %+v", s.MilestoneToday)
	}

	// Only the first unreached threshold fires even after a huge jump.
	s.Cash = 20_000_000
	eng.checkMilestones(s)
	if s.MilestoneToday == nil || s.MilestoneToday.Threshold != 1_000_000 {
		t.Fatalf("milestone = %+v, want the next threshold 1000000", s.MilestoneToday)
	}

	m := *s.MilestoneToday
	if got := eng.Phase(m, m.Day); got != PhaseTakeover {
		t.Errorf("phase on milestone day = %s, want takeover", got)
	}
	if got := eng.Phase(m, m.Day+2); got != PhaseBanner {
		t.Errorf("phase after delay = %s, want banner", got)
	}
}

func TestNearMissClassification(t *testing.T) {
	tests := []struct {
		change float64
		want   models.NearMissKind
		ok     bool
	}{
		{0.60, models.NearMissMissedMoon, true},
		{0.30, models.NearMissMissedGain, true},
		{-0.35, models.NearMissBulletDodged, true},
		{-0.20, models.NearMissLuckyExit, true},
		{0.10, "", false},
		{-0.05, "", false},
	}
	for _, tt := range tests {
		kind, ok := classifyNearMiss(tt.change)
		if ok != tt.ok || kind != tt.want {
			t.Errorf("classifyNearMiss(%.2f) = (%s, %v), want (%s, %v)", tt.change, kind, ok, tt.want, tt.ok)
		}
	}
}

func TestNearMissDetection(t *testing.T) {
	cfg := quietConfig()
	cfg.Detectors.NearMissChance = 1
	eng := newTestEngine(t, cfg, &stubRNG{floats: []float64{0.0}})
	s := eng.StartGame(90)

	s.Day = 10
	setPrice(s, "VECTRA", 160)
	s.SoldPositions = []models.SoldPosition{{AssetID: "VECTRA", Quantity: 10, Price: 100, Day: 5}}

	eng.checkNearMiss(s)
	if s.NearMissToday == nil {
		t.Fatal("expected a near-miss for a +60% move 5 days after the sale")
	}
	if s.NearMissToday.Kind != models.NearMissMissedMoon {
		t.Errorf("kind = %s, want missed moon", s.NearMissToday.Kind)
	}
	if s.LastNearMiss != 10 {
		t.Errorf("cooldown anchor = %d, want 10", s.LastNearMiss)
	}

	// Within the cooldown nothing else fires.
	s.NearMissToday = nil
	s.Day = 11
	eng.checkNearMiss(s)
	if s.NearMissToday != nil {
		t.Error("near-miss fired inside the cooldown window")
	}
}
