package engine

import "market-tycoon/internal/models"

// Near-miss lookback bounds and movement thresholds.
const (
	nearMissMinAge = 3
	nearMissMaxAge = 7

	missedMoonPct   = 0.50
	missedGainPct   = 0.25
	bulletDodgedPct = -0.30
	luckyExitPct    = -0.15
)

// checkNearMiss inspects the rolling window of closed trades for a "what if
// you hadn't sold" moment: 3-7 days after a sale, a large enough move in
// either direction may surface exactly one regret or relief notification,
// subject to a bounded chance and a cooldown between notifications.
func (e *Engine) checkNearMiss(s *State) {
	if s.NearMissToday != nil {
		return
	}
	if s.LastNearMiss > 0 && s.Day-s.LastNearMiss < e.cfg.Detectors.NearMissCooldown {
		return
	}

	for _, sold := range s.SoldPositions {
		age := s.Day - sold.Day
		if age < nearMissMinAge || age > nearMissMaxAge || sold.Price <= 0 {
			continue
		}

		change := (s.Prices[sold.AssetID] - sold.Price) / sold.Price
		kind, ok := classifyNearMiss(change)
		if !ok {
			continue
		}
		if e.rng.Float64() >= e.cfg.Detectors.NearMissChance {
			continue
		}

		s.NearMissToday = &models.NearMiss{
			Kind:      kind,
			AssetID:   sold.AssetID,
			SoldDay:   sold.Day,
			ChangePct: change * 100,
			Day:       s.Day,
		}
		s.LastNearMiss = s.Day
		return
	}
}

func classifyNearMiss(change float64) (models.NearMissKind, bool) {
	switch {
	case change >= missedMoonPct:
		return models.NearMissMissedMoon, true
	case change >= missedGainPct:
		return models.NearMissMissedGain, true
	case change <= bulletDodgedPct:
		return models.NearMissBulletDodged, true
	case change <= luckyExitPct:
		return models.NearMissLuckyExit, true
	default:
		return "", false
	}
}
