package engine

import (
	"sort"

	"market-tycoon/internal/models"
)

// selectedUnit is the tagged result of the daily narrative draw: exactly one
// of event or chain is set, or both are nil when no unit fires.
type selectedUnit struct {
	event *models.MarketEvent
	chain *models.EventChain
}

// pruneEscalations drops escalations whose expiry day has arrived.
func (e *Engine) pruneEscalations(s *State) {
	kept := s.Escalations[:0]
	for _, esc := range s.Escalations {
		if s.Day < esc.ExpiresDay {
			kept = append(kept, esc)
		}
	}
	s.Escalations = kept
}

// blockedCategories returns the categories owned by the active chain and the
// active story. Blocking them is the principal mechanism preventing two
// unrelated narratives about the same topic from overlapping.
func (e *Engine) blockedCategories(s *State) map[string]bool {
	blocked := make(map[string]bool)
	if s.ActiveChain != nil {
		blocked[s.ActiveChain.Category] = true
	}
	if s.ActiveStory != nil {
		blocked[s.ActiveStory.Category] = true
	}
	return blocked
}

// categoryWeights computes the post-blocking sampling weights: base category
// weight times the product of active escalation boosts, with blocked
// categories forced to zero. Returns the weights and their total.
func (e *Engine) categoryWeights(s *State) (map[string]float64, float64) {
	blocked := e.blockedCategories(s)
	weights := make(map[string]float64, len(e.catalog.CategoryWeights))
	var total float64

	for category, base := range e.catalog.CategoryWeights {
		if blocked[category] {
			weights[category] = 0
			continue
		}
		w := base
		for _, esc := range s.Escalations {
			if s.Day >= esc.ExpiresDay {
				continue
			}
			for _, c := range esc.Categories {
				if c == category {
					w *= esc.Boost
				}
			}
		}
		weights[category] = w
		total += w
	}
	return weights, total
}

// sampleCategory draws a category from the weight distribution. Iteration
// order is fixed so a seeded run replays identically.
func (e *Engine) sampleCategory(weights map[string]float64) string {
	categories := make([]string, 0, len(weights))
	for c := range weights {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	values := make([]float64, len(categories))
	for i, c := range categories {
		values[i] = weights[c]
	}
	idx := weightedIndex(e.rng, values)
	if idx < 0 {
		return ""
	}
	return categories[idx]
}

// selectUnit runs the daily weighted draw with bounded conflict retries.
// Exhausting the retries degrades to no unit rather than looping.
func (e *Engine) selectUnit(s *State) selectedUnit {
	weights, total := e.categoryWeights(s)
	if total <= 0 {
		return selectedUnit{}
	}

	for attempt := 0; attempt < e.cfg.Narrative.MaxConflictRetries; attempt++ {
		category := e.sampleCategory(weights)
		if category == "" {
			return selectedUnit{}
		}

		if unit := e.pickFromCategory(s, category); unit.event != nil || unit.chain != nil {
			candidate := unit.effects()
			if !e.conflictsWithMood(s, candidate) {
				return unit
			}
		}
	}
	return selectedUnit{}
}

// pickFromCategory picks a uniformly random item from the category's
// eligible pool, rolling the chain-versus-event split first.
func (e *Engine) pickFromCategory(s *State, category string) selectedUnit {
	if s.ActiveChain == nil && e.rng.Float64() < e.cfg.Narrative.ChainShare {
		var pool []models.EventChain
		for _, ch := range e.catalog.ChainsByCategory(category) {
			if !s.UsedChains[ch.ID] {
				pool = append(pool, ch)
			}
		}
		if len(pool) > 0 {
			ch := pool[e.rng.Intn(len(pool))]
			return selectedUnit{chain: &ch}
		}
	}

	events := e.catalog.EventsByCategory(category)
	if len(events) == 0 {
		return selectedUnit{}
	}
	ev := events[e.rng.Intn(len(events))]
	return selectedUnit{event: &ev}
}

// effects returns the candidate effect map used for conflict testing. A
// chain's candidate is its rumor, which carries no immediate effects.
func (u selectedUnit) effects() map[string]float64 {
	if u.event != nil {
		return u.event.Effects
	}
	return nil
}

// applyEvent fires a single event: effects merge into today's deltas, an
// escalation is registered when declared, and a mood is recorded.
func (e *Engine) applyEvent(s *State, ev *models.MarketEvent, effects map[string]float64) {
	mergeEffects(effects, ev.Effects)
	s.addNews(models.NewsItem{
		Kind:     models.NewsEvent,
		Category: ev.Category,
		Headline: ev.Headline,
		EffectID: ev.ID,
		Effects:  ev.Effects,
	})
	e.registerMoods(s, ev.Effects)

	if esc := ev.Escalation; esc != nil {
		s.Escalations = append(s.Escalations, models.Escalation{
			Categories: esc.Categories,
			Boost:      esc.Boost,
			ExpiresDay: s.Day + esc.Duration,
		})
	}
}

// mergeEffects sums src into dst.
func mergeEffects(dst, src map[string]float64) {
	for assetID, effect := range src {
		dst[assetID] += effect
	}
}
