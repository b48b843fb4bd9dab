package engine

import (
	"market-tycoon/internal/models"
	"market-tycoon/pkg/utils"
)

// catastrophicThreshold is the insolvency depth that classifies a bankruptcy
// as catastrophic.
const catastrophicThreshold = -1_000_000

// NetWorth recomputes net worth from scratch: cash, spot holdings, leveraged
// equity (possibly negative), unresolved startup face value, and lifestyle
// market value, minus short liabilities at current prices. Must agree with
// the incrementally maintained ledger to the cent.
func (e *Engine) NetWorth(s *State) float64 {
	total := s.Cash
	for assetID, qty := range s.Holdings {
		total += float64(qty) * s.Prices[assetID]
	}
	for _, p := range s.Leveraged {
		total += p.Equity(s.Prices[p.AssetID])
	}
	for _, inv := range s.Investments {
		total += inv.Amount
	}
	for _, item := range s.Lifestyle {
		total += item.CurrentValue
	}
	for _, p := range s.Shorts {
		total -= p.Liability(s.Prices[p.AssetID])
	}
	return utils.RoundCents(total)
}

// PortfolioValue returns the market value of spot holdings.
func (e *Engine) PortfolioValue(s *State) float64 {
	var total float64
	for assetID, qty := range s.Holdings {
		total += float64(qty) * s.Prices[assetID]
	}
	return utils.RoundCents(total)
}

// PriceChangePct returns today's move of one asset versus its previous
// close, in percent.
func (e *Engine) PriceChangePct(s *State, assetID string) float64 {
	prev := s.PrevCloses[assetID]
	if prev <= 0 {
		return 0
	}
	return (s.Prices[assetID] - prev) / prev * 100
}

// InvestmentChangePct returns the percentage change of everything the player
// has put money into (spot, leveraged down payments, startups, lifestyle)
// against its cost basis.
func (e *Engine) InvestmentChangePct(s *State) float64 {
	var basis, current float64
	for assetID, qty := range s.Holdings {
		basis += s.CostBasis[assetID]
		current += float64(qty) * s.Prices[assetID]
	}
	for _, p := range s.Leveraged {
		basis += float64(p.Quantity)*p.EntryPrice - p.Debt
		current += p.Equity(s.Prices[p.AssetID])
	}
	for _, inv := range s.Investments {
		basis += inv.Amount
		current += inv.Amount
	}
	for _, item := range s.Lifestyle {
		basis += item.PurchasePrice
		current += item.CurrentValue
	}
	if basis <= 0 {
		return 0
	}
	return (current - basis) / basis * 100
}

// TotalChangePct returns net worth growth versus starting cash, in percent.
func (e *Engine) TotalChangePct(s *State) float64 {
	if s.StartingCash <= 0 {
		return 0
	}
	return (e.NetWorth(s) - s.StartingCash) / s.StartingCash * 100
}

// evaluateTerminal decides whether the run continues, is won, or ends in a
// classified bankruptcy. Insolvency and the win condition are normal state
// machine outcomes, never errors.
func (e *Engine) evaluateTerminal(s *State) {
	if !s.Running() {
		return
	}

	netWorth := e.NetWorth(s)
	switch {
	case netWorth < 0:
		s.Status = models.GameBankrupt
		s.Cause = e.classifyBankruptcy(s, netWorth)
	case netWorth == 0:
		s.Status = models.GameBankrupt
		s.Cause = models.CausePlain
	case s.Day > s.Duration:
		s.Status = models.GameWon
	}
}

func (e *Engine) classifyBankruptcy(s *State, netWorth float64) models.BankruptcyCause {
	switch {
	case netWorth <= catastrophicThreshold:
		return models.CauseCatastrophic
	case len(s.Shorts) > len(s.Leveraged):
		return models.CauseShortSqueeze
	default:
		return models.CauseMargin
	}
}
