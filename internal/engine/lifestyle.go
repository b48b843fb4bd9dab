package engine

import (
	"market-tycoon/pkg/utils"

	"market-tycoon/internal/models"
)

// tickLifestyle revalues every owned lifestyle item and applies its daily
// cash flow. Market value drifts by the item's volatility plus any
// effect-id-linked adjustment from today's headlines; property pays income
// proportional to the purchase price while jets charge a flat daily cost.
func (e *Engine) tickLifestyle(s *State) {
	for i := range s.Lifestyle {
		item := &s.Lifestyle[i]
		asset, ok := e.catalog.LifestyleByID(item.AssetID)
		if !ok {
			continue
		}

		drift := symmetric(e.rng, asset.Volatility) + e.headlineImpact(s, asset.Category)
		next := utils.RoundCents(item.CurrentValue * (1 + drift))
		if next < minPrice {
			next = minPrice
		}
		s.Ledger += next - item.CurrentValue
		item.CurrentValue = next

		switch asset.Category {
		case models.LifestyleProperty:
			income := utils.RoundCents(item.PurchasePrice * asset.DailyReturn)
			s.Cash += income
			s.Ledger += income
		case models.LifestyleJet:
			s.Cash -= asset.DailyReturn
			s.Ledger -= asset.DailyReturn
		}
	}
}

// headlineImpact sums the lifestyle adjustments referenced by today's news
// effect ids for one category.
func (e *Engine) headlineImpact(s *State, category models.LifestyleCategory) float64 {
	var total float64
	for _, item := range s.TodayNews {
		if item.EffectID == "" {
			continue
		}
		if impact, ok := e.catalog.LifestyleImpacts[item.EffectID]; ok {
			total += impact[category]
		}
	}
	return total
}
