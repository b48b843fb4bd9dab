package engine

import (
	"fmt"

	"market-tycoon/internal/models"
	"market-tycoon/pkg/utils"
)

// rollInvestment pre-rolls a startup investment's outcome and maturity at
// purchase time. Neither is ever re-rolled; resolution merely realizes what
// was decided here. The resolve day is clamped so it lands before game end.
func (e *Engine) rollInvestment(s *State, startup models.Startup, amount float64) models.ActiveInvestment {
	weights := make([]float64, len(startup.Outcomes))
	for i, o := range startup.Outcomes {
		weights[i] = o.Weight
	}
	idx := weightedIndex(e.rng, weights)
	if idx < 0 {
		idx = 0
	}

	duration := startup.MinDays
	if spread := startup.MaxDays - startup.MinDays; spread > 0 {
		duration += e.rng.Intn(spread + 1)
	}
	resolveDay := s.Day + duration
	if resolveDay > s.Duration {
		resolveDay = s.Duration
	}

	return models.ActiveInvestment{
		StartupID:   startup.ID,
		Tier:        startup.Tier,
		Amount:      amount,
		InvestedDay: s.Day,
		ResolveDay:  resolveDay,
		Outcome:     startup.Outcomes[idx],
		HintShown:   false,
	}
}

// tickStartups emits one-shot halfway hints and realizes matured
// investments: the payout lands in cash, the outcome's market effects merge
// into today's deltas, and a headline reports the realized amount.
func (e *Engine) tickStartups(s *State, effects map[string]float64) {
	kept := s.Investments[:0]
	for _, inv := range s.Investments {
		if s.Day < inv.ResolveDay {
			halfway := inv.InvestedDay + (inv.ResolveDay-inv.InvestedDay)/2
			if !inv.HintShown && s.Day >= halfway {
				inv.HintShown = true
				e.emitHint(s, inv)
			}
			kept = append(kept, inv)
			continue
		}

		payout := utils.RoundCents(inv.Amount * inv.Outcome.Multiplier)
		s.Cash += payout
		s.Ledger += payout - inv.Amount
		mergeEffects(effects, inv.Outcome.Effects)

		startup, _ := e.catalog.StartupByID(inv.StartupID)
		s.addNews(models.NewsItem{
			Kind:     models.NewsStartup,
			Headline: e.resolutionHeadline(startup, inv, payout),
			EffectID: inv.StartupID,
			Effects:  inv.Outcome.Effects,
		})
	}
	s.Investments = kept
}

// emitHint publishes the single mid-duration foreshadowing headline without
// revealing the exact outcome.
func (e *Engine) emitHint(s *State, inv models.ActiveInvestment) {
	startup, ok := e.catalog.StartupByID(inv.StartupID)
	if !ok {
		return
	}
	var headline string
	if inv.Outcome.Multiplier >= 1 {
		headline = fmt.Sprintf("%s is said to be ahead of plan, insiders upbeat", startup.Name)
	} else {
		headline = fmt.Sprintf("%s reportedly burning cash faster than projected", startup.Name)
	}
	s.addNews(models.NewsItem{
		Kind:     models.NewsHint,
		Headline: headline,
		EffectID: inv.StartupID,
	})
}

func (e *Engine) resolutionHeadline(startup models.Startup, inv models.ActiveInvestment, payout float64) string {
	name := startup.Name
	if name == "" {
		name = inv.StartupID
	}
	switch {
	case inv.Outcome.Multiplier >= 2:
		return fmt.Sprintf("%s exits big: your stake pays out %s", name, utils.FormatUSD(payout))
	case inv.Outcome.Multiplier >= 1:
		return fmt.Sprintf("%s winds up modestly, returning %s", name, utils.FormatUSD(payout))
	case payout > 0:
		return fmt.Sprintf("%s fire-sold for parts; you recover %s", name, utils.FormatUSD(payout))
	default:
		return fmt.Sprintf("%s shuts down; your investment is wiped out", name)
	}
}

// maybeOffer surfaces a new startup offer. Offers stop near the end of the
// game, require tier-matched net worth, and skip startups the player cannot
// currently afford; a skipped startup stays in the pool.
func (e *Engine) maybeOffer(s *State) {
	if s.PendingOffer != nil || s.DaysRemaining() <= e.cfg.Game.OfferCutoffDays {
		return
	}
	if e.rng.Float64() >= e.cfg.Game.OfferChance {
		return
	}

	netWorth := e.NetWorth(s)
	var pool []models.Startup
	for _, startup := range e.catalog.Startups {
		if s.UsedStartups[startup.ID] || s.Cash < startup.MinAmount {
			continue
		}
		switch startup.Tier {
		case models.StartupTierLarge:
			if netWorth < e.cfg.Game.LargeOfferMinWorth {
				continue
			}
		default:
			if netWorth < e.cfg.Game.SmallOfferMinWorth {
				continue
			}
		}
		pool = append(pool, startup)
	}
	if len(pool) == 0 {
		return
	}

	startup := pool[e.rng.Intn(len(pool))]
	s.PendingOffer = &models.StartupOffer{StartupID: startup.ID, Day: s.Day}
}
