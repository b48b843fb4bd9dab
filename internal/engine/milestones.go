package engine

import "market-tycoon/internal/models"

// MilestonePhase describes how a reached milestone is currently presented.
type MilestonePhase string

const (
	// PhaseTakeover is the celebratory full-screen state right after the
	// threshold is crossed.
	PhaseTakeover MilestonePhase = "takeover"
	// PhaseBanner is the persistent banner the takeover settles into.
	PhaseBanner MilestonePhase = "banner"
)

// checkMilestones flags the first net-worth threshold crossed today that has
// not been reached before. Side-effect-only: it never feeds back into the
// simulation.
func (e *Engine) checkMilestones(s *State) {
	netWorth := e.NetWorth(s)
	reached := make(map[float64]bool, len(s.Milestones))
	for _, m := range s.Milestones {
		reached[m.Threshold] = true
	}

	for _, threshold := range e.cfg.Detectors.MilestoneThresholds {
		if reached[threshold] || netWorth < threshold {
			continue
		}
		m := models.Milestone{Threshold: threshold, Day: s.Day}
		s.Milestones = append(s.Milestones, m)
		s.MilestoneToday = &m
		return
	}
}

// Phase returns the presentation phase of a milestone on the given day: the
// takeover state transitions to a banner after the configured delay.
func (e *Engine) Phase(m models.Milestone, day int) MilestonePhase {
	if day-m.Day < e.cfg.Detectors.MilestoneBannerDelay {
		return PhaseTakeover
	}
	return PhaseBanner
}
