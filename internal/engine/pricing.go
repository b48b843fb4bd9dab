package engine

import (
	"market-tycoon/internal/models"
	"market-tycoon/pkg/utils"
)

// advancePrices moves every asset to today's close and appends the day's
// candle. effects holds the aggregated fractional deltas from every narrative
// unit and startup resolution active today. The running ledger is adjusted by
// the exact revaluation of spot, leveraged, and short exposure.
func (e *Engine) advancePrices(s *State, effects map[string]float64) {
	for _, a := range e.catalog.Assets {
		prev := s.Prices[a.ID]
		next := e.nextClose(a, prev, effects[a.ID])

		s.PrevCloses[a.ID] = prev
		s.Prices[a.ID] = next
		s.Candles[a.ID] = append(s.Candles[a.ID], e.makeCandle(a, s.Day, prev, next))

		s.Ledger += (next - prev) * float64(e.exposure(s, a.ID))
	}
}

// nextClose computes today's close from yesterday's: a bounded symmetric walk
// plus the day's effect delta, floored and rounded to cents.
func (e *Engine) nextClose(a models.Asset, prev, effect float64) float64 {
	move := symmetric(e.rng, a.Volatility) + effect
	next := utils.RoundCents(prev * (1 + move))
	if next < minPrice {
		next = minPrice
	}
	return next
}

// makeCandle synthesizes a plausible intraday range around open and close.
func (e *Engine) makeCandle(a models.Asset, day int, open, close float64) models.Candle {
	hi := open
	if close > hi {
		hi = close
	}
	lo := open
	if close < lo {
		lo = close
	}

	spread := a.Volatility * 0.5
	high := utils.RoundCents(hi * (1 + e.rng.Float64()*spread))
	low := utils.RoundCents(lo * (1 - e.rng.Float64()*spread))
	if low < minPrice {
		low = minPrice
	}

	return models.Candle{Day: day, Open: open, High: high, Low: low, Close: close}
}

// exposure returns the signed share count sensitive to an asset's price:
// spot holdings plus leveraged quantity minus shorted quantity.
func (e *Engine) exposure(s *State, assetID string) int {
	qty := s.Holdings[assetID]
	for _, p := range s.Leveraged {
		if p.AssetID == assetID {
			qty += p.Quantity
		}
	}
	for _, p := range s.Shorts {
		if p.AssetID == assetID {
			qty -= p.Quantity
		}
	}
	return qty
}
