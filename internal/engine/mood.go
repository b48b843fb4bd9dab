package engine

import "market-tycoon/internal/models"

// registerMoods records directional sentiment for every asset an effect map
// pushes strongly. Moods never feed prices; they only veto contradictory
// narratives.
func (e *Engine) registerMoods(s *State, effects map[string]float64) {
	threshold := e.cfg.Narrative.StrongEffect
	for assetID, effect := range effects {
		if effect >= threshold {
			s.Moods = append(s.Moods, models.Mood{AssetID: assetID, Direction: 1, Day: s.Day})
		} else if effect <= -threshold {
			s.Moods = append(s.Moods, models.Mood{AssetID: assetID, Direction: -1, Day: s.Day})
		}
	}
}

// decayMoods drops moods older than the recency window.
func (e *Engine) decayMoods(s *State) {
	window := e.cfg.Narrative.MoodWindowDays
	kept := s.Moods[:0]
	for _, m := range s.Moods {
		if s.Day-m.Day < window {
			kept = append(kept, m)
		}
	}
	s.Moods = kept
}

// conflictsWithMood reports whether a candidate effect map would push any
// asset against a still-fresh mood.
func (e *Engine) conflictsWithMood(s *State, effects map[string]float64) bool {
	threshold := e.cfg.Narrative.StrongEffect
	window := e.cfg.Narrative.MoodWindowDays
	for _, m := range s.Moods {
		if s.Day-m.Day >= window {
			continue
		}
		effect, ok := effects[m.AssetID]
		if !ok {
			continue
		}
		if m.Direction > 0 && effect <= -threshold {
			return true
		}
		if m.Direction < 0 && effect >= threshold {
			return true
		}
	}
	return false
}
