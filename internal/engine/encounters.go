package engine

import (
	"fmt"
	"math"
	"sort"

	"market-tycoon/internal/models"
	"market-tycoon/pkg/utils"
)

// rollEncounter runs the pre-advance probabilistic gate. The firing chance is
// keyed on the upcoming day, the cumulative encounter count, cash, net
// worth, and game duration; one-shot types never repeat, and the tax audit
// escalates with each occurrence.
func (e *Engine) rollEncounter(s *State) *models.Encounter {
	day := s.Day + 1
	if day < e.cfg.Detectors.EncounterMinDay {
		return nil
	}
	if s.Encounters.Count > 0 && day-s.Encounters.LastDay < e.cfg.Detectors.EncounterSpacing {
		return nil
	}

	netWorth := e.NetWorth(s)
	chance := e.cfg.Detectors.EncounterBaseChance
	if netWorth > 1_000_000 {
		chance *= 1.5
	}
	if s.Cash > 500_000 {
		chance *= 1.25
	}
	if day > s.Duration*3/4 {
		chance *= 1.3
	}
	if e.rng.Float64() >= chance {
		return nil
	}

	enc := e.buildEncounter(s, day, netWorth)
	if enc == nil {
		return nil
	}

	s.Encounters.Count++
	s.Encounters.LastDay = day
	if enc.Type == models.EncounterTaxAudit {
		s.Encounters.AuditCount++
	} else {
		s.Encounters.OneShot[enc.Type] = true
	}
	s.PendingEncounter = enc
	return enc
}

func (e *Engine) buildEncounter(s *State, day int, netWorth float64) *models.Encounter {
	type candidate struct {
		typ    models.EncounterType
		weight float64
	}
	candidates := []candidate{{models.EncounterTaxAudit, 0.6}}
	if !s.Encounters.OneShot[models.EncounterLawsuit] {
		candidates = append(candidates, candidate{models.EncounterLawsuit, 0.2})
	}
	if !s.Encounters.OneShot[models.EncounterExchangeHack] {
		candidates = append(candidates, candidate{models.EncounterExchangeHack, 0.15})
	}
	if !s.Encounters.OneShot[models.EncounterRegulatorBan] && s.Encounters.AuditCount >= 2 {
		candidates = append(candidates, candidate{models.EncounterRegulatorBan, 0.05})
	}

	weights := make([]float64, len(candidates))
	for i, c := range candidates {
		weights[i] = c.weight
	}
	idx := weightedIndex(e.rng, weights)
	if idx < 0 {
		return nil
	}

	switch candidates[idx].typ {
	case models.EncounterTaxAudit:
		rate := 0.08 + 0.04*float64(s.Encounters.AuditCount)
		demand := utils.RoundCents(math.Max(netWorth*rate, 5_000))
		return &models.Encounter{
			Type: models.EncounterTaxAudit, Day: day, Demand: demand,
			Headline: fmt.Sprintf("Tax authority audits your accounts: %s due immediately", utils.FormatUSD(demand)),
		}
	case models.EncounterLawsuit:
		demand := utils.RoundCents(math.Max(s.Cash*0.25, 10_000))
		return &models.Encounter{
			Type: models.EncounterLawsuit, Day: day, Demand: demand,
			Headline: fmt.Sprintf("Former partner sues over old trades: settlement of %s ordered", utils.FormatUSD(demand)),
		}
	case models.EncounterExchangeHack:
		demand := utils.RoundCents(math.Max(netWorth*0.15, 10_000))
		return &models.Encounter{
			Type: models.EncounterExchangeHack, Day: day, Demand: demand,
			Headline: fmt.Sprintf("Exchange breach hits your custodian: %s in recovery costs", utils.FormatUSD(demand)),
		}
	default:
		return &models.Encounter{
			Type: models.EncounterRegulatorBan, Day: day, Terminal: true,
			Headline: "Regulator bans you from the markets for life",
		}
	}
}

// resolveEncounter applies the pending encounter's consequence: a cash
// penalty, a pro-rata forced liquidation when cash falls short, or an
// immediate game over. Returns the news item describing the outcome.
func (e *Engine) resolveEncounter(s *State) models.NewsItem {
	enc := *s.PendingEncounter
	s.PendingEncounter = nil

	item := models.NewsItem{Kind: models.NewsEncounter, Headline: enc.Headline}

	if enc.Terminal {
		s.Status = models.GameBankrupt
		s.Cause = models.CauseEncounter
		return item
	}

	if s.Cash < enc.Demand {
		e.forceLiquidate(s, enc.Demand-s.Cash)
	}
	if s.Cash < enc.Demand {
		// Even selling everything could not cover the penalty.
		s.Cash -= enc.Demand
		s.Ledger -= enc.Demand
		s.Status = models.GameBankrupt
		s.Cause = models.CauseEncounter
		return item
	}

	s.Cash -= enc.Demand
	s.Ledger -= enc.Demand
	return item
}

// forceLiquidate sells spot holdings pro-rata by current position value to
// raise the needed amount. Per-holding sale quantities round up so the
// penalty is fully covered; the rounding excess stays with the player.
func (e *Engine) forceLiquidate(s *State, need float64) {
	var total float64
	for assetID, qty := range s.Holdings {
		total += float64(qty) * s.Prices[assetID]
	}
	if total <= 0 {
		return
	}

	assetIDs := make([]string, 0, len(s.Holdings))
	for assetID := range s.Holdings {
		assetIDs = append(assetIDs, assetID)
	}
	sort.Strings(assetIDs)

	for _, assetID := range assetIDs {
		qty := s.Holdings[assetID]
		price := s.Prices[assetID]
		if qty == 0 || price <= 0 {
			continue
		}

		share := float64(qty) * price / total
		sellQty := int(math.Ceil(need * share / price))
		if sellQty > qty {
			sellQty = qty
		}
		if sellQty <= 0 {
			continue
		}

		proceeds := utils.RoundCents(float64(sellQty) * price)
		s.CostBasis[assetID] -= s.CostBasis[assetID] * float64(sellQty) / float64(qty)
		s.Holdings[assetID] -= sellQty
		if s.Holdings[assetID] == 0 {
			delete(s.Holdings, assetID)
			delete(s.CostBasis, assetID)
		}
		s.Cash += proceeds
	}
}
