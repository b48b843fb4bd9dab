package engine

import (
	errs "market-tycoon/internal/errors"
	"market-tycoon/internal/logging"
	"market-tycoon/internal/models"
)

// TriggerNextDay is the single entry point for advancing time. The encounter
// gate runs first: when it fires, the day does NOT advance and the pending
// encounter must be confirmed before anything else happens.
func (e *Engine) TriggerNextDay(s *State) error {
	if s == nil || s.GameID == "" {
		return errs.ErrGameNotStarted
	}
	if !s.Running() {
		return errs.ErrGameOver
	}
	if s.PendingEncounter != nil {
		return errs.ErrEncounterPending
	}

	if enc := e.rollEncounter(s); enc != nil {
		e.log.Info().
			Str("type", string(enc.Type)).
			Int("day", enc.Day).
			Float64("demand", enc.Demand).
			Msg("Encounter triggered")
		return nil
	}

	e.advanceDay(s)
	return nil
}

// ConfirmEncounter acknowledges the pending encounter, applies its
// consequence, and then runs the deferred day transition. A terminal
// encounter ends the game without advancing the day.
func (e *Engine) ConfirmEncounter(s *State) error {
	if s == nil || s.GameID == "" {
		return errs.ErrGameNotStarted
	}
	if !s.Running() {
		return errs.ErrGameOver
	}
	if s.PendingEncounter == nil {
		return errs.ErrNoEncounterPending
	}

	item := e.resolveEncounter(s)
	if !s.Running() {
		s.addNews(item)
		logging.LogGameOver(e.log, s.Day, string(s.Status), string(s.Cause), e.NetWorth(s))
		return nil
	}

	e.advanceDay(s)
	// Surface the encounter's outcome ahead of the new day's headlines.
	item.Day = s.Day
	s.TodayNews = append([]models.NewsItem{item}, s.TodayNews...)
	return nil
}

// advanceDay runs the ordered per-day pipeline. The sequencing matters:
// narrative continuations go before fresh selection, all effect deltas are
// aggregated before prices move, and terminal evaluation sees the fully
// settled day.
func (e *Engine) advanceDay(s *State) {
	s.Day++
	s.clearTransients()
	e.decayMoods(s)
	e.pruneEscalations(s)

	effects := make(map[string]float64)
	chainResolved := e.tickChain(s, effects)
	storyFired := e.advanceStory(s, effects)

	if !chainResolved && !storyFired && e.rng.Float64() < e.cfg.Narrative.EventChance {
		unit := e.selectUnit(s)
		switch {
		case unit.chain != nil:
			e.startChain(s, unit.chain)
		case unit.event != nil:
			e.applyEvent(s, unit.event, effects)
		}
	}

	e.maybeStartStory(s, chainResolved, storyFired, effects)
	e.tickStartups(s, effects)
	e.advancePrices(s, effects)
	e.tickLifestyle(s)
	e.maybeOffer(s)
	e.checkMilestones(s)
	e.checkNearMiss(s)
	e.evaluateTerminal(s)

	logging.LogDay(e.log, s.Day, e.NetWorth(s), s.Cash, len(s.TodayNews))
	if !s.Running() {
		logging.LogGameOver(e.log, s.Day, string(s.Status), string(s.Cause), e.NetWorth(s))
	}
}
