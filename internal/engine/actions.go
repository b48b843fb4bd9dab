package engine

import (
	"fmt"

	errs "market-tycoon/internal/errors"
	"market-tycoon/internal/logging"
	"market-tycoon/internal/models"
	"market-tycoon/pkg/utils"
)

// guard rejects actions outside the running, encounter-free window. All
// player actions pass through here before touching state.
func (e *Engine) guard(s *State, action string) error {
	switch {
	case s == nil || s.GameID == "":
		return errs.NewActionError(action, "", "no active game", errs.ErrGameNotStarted)
	case !s.Running():
		return e.reject(s, action, "", "the game is over", errs.ErrGameOver)
	case s.PendingEncounter != nil:
		return e.reject(s, action, "", "resolve the pending encounter first", errs.ErrEncounterPending)
	}
	return nil
}

// reject builds the rejection error and surfaces its reason as the notice.
// Nothing else about the state changes on a rejected action.
func (e *Engine) reject(s *State, action, asset, reason string, sentinel error) error {
	err := errs.NewActionError(action, asset, reason, sentinel)
	s.Notice = reason
	e.log.Warn().Str("action", action).Str("asset", asset).Str("reason", reason).Msg("Action rejected")
	return err
}

// Buy purchases a spot quantity of an asset at the current price.
func (e *Engine) Buy(s *State, assetID string, qty int) error {
	const action = "buy"
	if err := e.guard(s, action); err != nil {
		return err
	}
	if qty < 1 {
		return e.reject(s, action, assetID, "quantity must be at least 1", errs.ErrInvalidQuantity)
	}
	price, ok := s.Prices[assetID]
	if !ok {
		return e.reject(s, action, assetID, "unknown asset", errs.ErrUnknownAsset)
	}
	cost := utils.RoundCents(float64(qty) * price)
	if cost > s.Cash {
		return e.reject(s, action, assetID,
			fmt.Sprintf("need %s, have %s", utils.FormatUSD(cost), utils.FormatUSD(s.Cash)),
			errs.ErrInsufficientFunds)
	}

	s.Cash -= cost
	s.Holdings[assetID] += qty
	s.CostBasis[assetID] += cost
	logging.LogTrade(e.log, action, assetID, qty, price)
	return nil
}

// Sell closes a spot quantity at the current price. The cost basis shrinks
// proportionally and the trade enters the near-miss window.
func (e *Engine) Sell(s *State, assetID string, qty int) error {
	const action = "sell"
	if err := e.guard(s, action); err != nil {
		return err
	}
	if qty < 1 {
		return e.reject(s, action, assetID, "quantity must be at least 1", errs.ErrInvalidQuantity)
	}
	held := s.Holdings[assetID]
	if held < qty {
		return e.reject(s, action, assetID,
			fmt.Sprintf("own %d, tried to sell %d", held, qty),
			errs.ErrInsufficientHoldings)
	}

	price := s.Prices[assetID]
	proceeds := utils.RoundCents(float64(qty) * price)
	s.Cash += proceeds
	s.CostBasis[assetID] -= s.CostBasis[assetID] * float64(qty) / float64(held)
	s.Holdings[assetID] -= qty
	if s.Holdings[assetID] == 0 {
		delete(s.Holdings, assetID)
		delete(s.CostBasis, assetID)
	}
	s.recordSale(assetID, qty, price)
	logging.LogTrade(e.log, action, assetID, qty, price)
	return nil
}

// BuyWithLeverage opens a borrowed-capital position: the player pays a down
// payment of total/leverage and owes the rest as fixed debt.
func (e *Engine) BuyWithLeverage(s *State, assetID string, qty int, leverage float64) error {
	const action = "buy_leveraged"
	if err := e.guard(s, action); err != nil {
		return err
	}
	if qty < 1 {
		return e.reject(s, action, assetID, "quantity must be at least 1", errs.ErrInvalidQuantity)
	}
	if leverage < 2 || leverage > e.cfg.Game.MaxLeverage {
		return e.reject(s, action, assetID,
			fmt.Sprintf("leverage must be between 2x and %.0fx", e.cfg.Game.MaxLeverage),
			errs.ErrInvalidQuantity)
	}
	price, ok := s.Prices[assetID]
	if !ok {
		return e.reject(s, action, assetID, "unknown asset", errs.ErrUnknownAsset)
	}

	total := utils.RoundCents(float64(qty) * price)
	down := utils.RoundCents(total / leverage)
	if down > s.Cash {
		return e.reject(s, action, assetID,
			fmt.Sprintf("down payment of %s exceeds cash", utils.FormatUSD(down)),
			errs.ErrInsufficientFunds)
	}

	s.Cash -= down
	s.Leveraged = append(s.Leveraged, models.LeveragedPosition{
		AssetID:    assetID,
		Quantity:   qty,
		EntryPrice: price,
		Leverage:   leverage,
		Debt:       utils.RoundCents(total - down),
		OpenDay:    s.Day,
	})
	logging.LogTrade(e.log, action, assetID, qty, price)
	return nil
}

// CloseLeveragedPosition settles a leveraged position at the current price.
// Negative equity is debited from cash; the game does not end here even if
// cash goes negative.
func (e *Engine) CloseLeveragedPosition(s *State, index int) error {
	const action = "close_leveraged"
	if err := e.guard(s, action); err != nil {
		return err
	}
	if index < 0 || index >= len(s.Leveraged) {
		return e.reject(s, action, "", "no such leveraged position", errs.ErrPositionNotFound)
	}

	p := s.Leveraged[index]
	price := s.Prices[p.AssetID]
	equity := utils.RoundCents(p.Equity(price))
	s.Cash += equity
	s.Leveraged = append(s.Leveraged[:index], s.Leveraged[index+1:]...)
	s.recordSale(p.AssetID, p.Quantity, price)
	logging.LogTrade(e.log, action, p.AssetID, p.Quantity, price)
	return nil
}

// ShortSell opens a short: the sale proceeds land in cash immediately while
// the buy-back liability is marked to the market every day.
func (e *Engine) ShortSell(s *State, assetID string, qty int) error {
	const action = "short"
	if err := e.guard(s, action); err != nil {
		return err
	}
	if qty < 1 {
		return e.reject(s, action, assetID, "quantity must be at least 1", errs.ErrInvalidQuantity)
	}
	price, ok := s.Prices[assetID]
	if !ok {
		return e.reject(s, action, assetID, "unknown asset", errs.ErrUnknownAsset)
	}

	received := utils.RoundCents(float64(qty) * price)
	s.Cash += received
	s.Shorts = append(s.Shorts, models.ShortPosition{
		AssetID:      assetID,
		Quantity:     qty,
		EntryPrice:   price,
		CashReceived: received,
		OpenDay:      s.Day,
	})
	logging.LogTrade(e.log, action, assetID, qty, price)
	return nil
}

// CoverShort buys back a short position at the current price.
func (e *Engine) CoverShort(s *State, index int) error {
	const action = "cover"
	if err := e.guard(s, action); err != nil {
		return err
	}
	if index < 0 || index >= len(s.Shorts) {
		return e.reject(s, action, "", "no such short position", errs.ErrPositionNotFound)
	}

	p := s.Shorts[index]
	price := s.Prices[p.AssetID]
	cost := utils.RoundCents(p.Liability(price))
	if cost > s.Cash {
		return e.reject(s, action, p.AssetID,
			fmt.Sprintf("covering costs %s, have %s", utils.FormatUSD(cost), utils.FormatUSD(s.Cash)),
			errs.ErrInsufficientFunds)
	}

	s.Cash -= cost
	s.Shorts = append(s.Shorts[:index], s.Shorts[index+1:]...)
	logging.LogTrade(e.log, action, p.AssetID, p.Quantity, price)
	return nil
}

// InvestInStartup accepts the pending offer with the given amount. The
// outcome and maturity are rolled once, here.
func (e *Engine) InvestInStartup(s *State, amount float64) error {
	const action = "invest"
	if err := e.guard(s, action); err != nil {
		return err
	}
	if s.PendingOffer == nil {
		return e.reject(s, action, "", "no startup offer on the table", errs.ErrNoOfferPending)
	}
	startup, ok := e.catalog.StartupByID(s.PendingOffer.StartupID)
	if !ok {
		s.PendingOffer = nil
		return e.reject(s, action, "", "offer references an unknown startup", errs.ErrUnknownAsset)
	}
	if amount < startup.MinAmount {
		return e.reject(s, action, startup.ID,
			fmt.Sprintf("%s requires at least %s", startup.Name, utils.FormatUSD(startup.MinAmount)),
			errs.ErrInvalidQuantity)
	}
	if amount > s.Cash {
		return e.reject(s, action, startup.ID, "not enough cash for that stake", errs.ErrInsufficientFunds)
	}

	amount = utils.RoundCents(amount)
	s.Cash -= amount
	s.Investments = append(s.Investments, e.rollInvestment(s, startup, amount))
	s.UsedStartups[startup.ID] = true
	s.PendingOffer = nil
	e.log.Info().Str("startup", startup.ID).Float64("amount", amount).Msg("Startup investment made")
	return nil
}

// DismissStartupOffer declines the pending offer. A dismissed startup never
// comes back.
func (e *Engine) DismissStartupOffer(s *State) error {
	const action = "dismiss_offer"
	if err := e.guard(s, action); err != nil {
		return err
	}
	if s.PendingOffer == nil {
		return e.reject(s, action, "", "no startup offer on the table", errs.ErrNoOfferPending)
	}

	s.UsedStartups[s.PendingOffer.StartupID] = true
	s.PendingOffer = nil
	return nil
}

// BuyLifestyle purchases a lifestyle asset at its base price. Each asset can
// be owned at most once.
func (e *Engine) BuyLifestyle(s *State, assetID string) error {
	const action = "buy_lifestyle"
	if err := e.guard(s, action); err != nil {
		return err
	}
	asset, ok := e.catalog.LifestyleByID(assetID)
	if !ok {
		return e.reject(s, action, assetID, "unknown lifestyle asset", errs.ErrUnknownAsset)
	}
	for _, item := range s.Lifestyle {
		if item.AssetID == assetID {
			return e.reject(s, action, assetID, "already owned", errs.ErrInvalidQuantity)
		}
	}
	if asset.BasePrice > s.Cash {
		return e.reject(s, action, assetID,
			fmt.Sprintf("%s costs %s", asset.Name, utils.FormatUSD(asset.BasePrice)),
			errs.ErrInsufficientFunds)
	}

	s.Cash -= asset.BasePrice
	s.Lifestyle = append(s.Lifestyle, models.OwnedLifestyleItem{
		AssetID:       assetID,
		PurchasePrice: asset.BasePrice,
		CurrentValue:  asset.BasePrice,
		PurchaseDay:   s.Day,
	})
	e.log.Info().Str("asset", assetID).Float64("price", asset.BasePrice).Msg("Lifestyle purchase")
	return nil
}

// SellLifestyle sells an owned lifestyle item at its current market value.
func (e *Engine) SellLifestyle(s *State, assetID string) error {
	const action = "sell_lifestyle"
	if err := e.guard(s, action); err != nil {
		return err
	}
	for i, item := range s.Lifestyle {
		if item.AssetID != assetID {
			continue
		}
		s.Cash += item.CurrentValue
		s.Lifestyle = append(s.Lifestyle[:i], s.Lifestyle[i+1:]...)
		e.log.Info().Str("asset", assetID).Float64("value", item.CurrentValue).Msg("Lifestyle sale")
		return nil
	}
	return e.reject(s, action, assetID, "you do not own that", errs.ErrNotOwned)
}
