package engine

import "market-tycoon/internal/models"

// startChain activates a chain: the rumor headline fires today and the id
// enters the used set immediately, never to be selected again.
func (e *Engine) startChain(s *State, ch *models.EventChain) {
	s.ActiveChain = &models.ActiveChain{
		ChainID:       ch.ID,
		Category:      ch.Category,
		DaysRemaining: ch.Duration,
		StartDay:      s.Day,
	}
	s.UsedChains[ch.ID] = true
	s.addNews(models.NewsItem{
		Kind:     models.NewsRumor,
		Category: ch.Category,
		Headline: ch.Rumor,
		EffectID: ch.ID,
	})
}

// tickChain decrements the active chain's countdown and resolves it when it
// reaches zero. Reports whether a resolution fired today.
func (e *Engine) tickChain(s *State, effects map[string]float64) bool {
	if s.ActiveChain == nil {
		return false
	}

	s.ActiveChain.DaysRemaining--
	if s.ActiveChain.DaysRemaining > 0 {
		return false
	}

	ch, ok := e.catalog.ChainByID(s.ActiveChain.ChainID)
	s.ActiveChain = nil
	if !ok {
		return false
	}

	outcome := e.resolveChainOutcome(s, ch)
	mergeEffects(effects, outcome.Effects)
	s.addNews(models.NewsItem{
		Kind:     models.NewsResolution,
		Category: ch.Category,
		Headline: outcome.Headline,
		EffectID: ch.ID,
		Effects:  outcome.Effects,
	})
	e.registerMoods(s, outcome.Effects)
	return true
}

// resolveChainOutcome picks the chain's resolution. Outcomes that agree with
// current sentiment are preferred over ones that contradict it, so the
// resolution preserves narrative momentum; the weighted roll falls back to
// the full set when every outcome conflicts.
func (e *Engine) resolveChainOutcome(s *State, ch models.EventChain) models.ChainOutcome {
	var calm []models.ChainOutcome
	for _, o := range ch.Outcomes {
		if !e.conflictsWithMood(s, o.Effects) {
			calm = append(calm, o)
		}
	}
	pool := calm
	if len(pool) == 0 {
		pool = ch.Outcomes
	}

	weights := make([]float64, len(pool))
	for i, o := range pool {
		weights[i] = o.Weight
	}
	idx := weightedIndex(e.rng, weights)
	if idx < 0 {
		idx = 0
	}
	return pool[idx]
}
