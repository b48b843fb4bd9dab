package models

// StartupTier separates the small angel deals from the large offers gated
// behind higher net worth.
type StartupTier string

const (
	StartupTierSmall StartupTier = "small"
	StartupTierLarge StartupTier = "large"
)

// StartupOutcome is one weighted result of a startup investment.
type StartupOutcome struct {
	Label      string             `json:"label" yaml:"label"`
	Multiplier float64            `json:"multiplier" yaml:"multiplier"`
	Weight     float64            `json:"weight" yaml:"weight"`
	Effects    map[string]float64 `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// Startup is an investable private company from the catalog.
type Startup struct {
	ID        string           `json:"id" yaml:"id"`
	Name      string           `json:"name" yaml:"name"`
	Tier      StartupTier      `json:"tier" yaml:"tier"`
	Pitch     string           `json:"pitch" yaml:"pitch"`
	MinAmount float64          `json:"min_amount" yaml:"min_amount"`
	MinDays   int              `json:"min_days" yaml:"min_days"`
	MaxDays   int              `json:"max_days" yaml:"max_days"`
	Outcomes  []StartupOutcome `json:"outcomes" yaml:"outcomes"`
}

// ActiveInvestment is a committed startup investment. The outcome and the
// resolve day are rolled once at purchase time and never re-rolled.
type ActiveInvestment struct {
	StartupID   string         `json:"startup_id"`
	Tier        StartupTier    `json:"tier"`
	Amount      float64        `json:"amount"`
	InvestedDay int            `json:"invested_day"`
	ResolveDay  int            `json:"resolve_day"`
	Outcome     StartupOutcome `json:"-"`
	HintShown   bool           `json:"hint_shown"`
}

// StartupOffer is a pending offer surfaced to the player. It stays pending
// until accepted or dismissed.
type StartupOffer struct {
	StartupID string `json:"startup_id"`
	Day       int    `json:"day"`
}

// LeveragedPosition is a borrowed-capital holding. Equity may go negative
// without immediately ending the game.
type LeveragedPosition struct {
	AssetID    string  `json:"asset_id"`
	Quantity   int     `json:"quantity"`
	EntryPrice float64 `json:"entry_price"`
	Leverage   float64 `json:"leverage"`
	Debt       float64 `json:"debt"`
	OpenDay    int     `json:"open_day"`
}

// Equity returns the position's current equity at the given price.
func (p LeveragedPosition) Equity(price float64) float64 {
	return float64(p.Quantity)*price - p.Debt
}

// ShortPosition is an open short. Liability is marked to the current price;
// the cash received at open already sits in the cash balance.
type ShortPosition struct {
	AssetID      string  `json:"asset_id"`
	Quantity     int     `json:"quantity"`
	EntryPrice   float64 `json:"entry_price"`
	CashReceived float64 `json:"cash_received"`
	OpenDay      int     `json:"open_day"`
}

// Liability returns the cost of covering the short at the given price.
func (p ShortPosition) Liability(price float64) float64 {
	return float64(p.Quantity) * price
}

// LifestyleCategory selects the cash-flow rule for a lifestyle asset.
type LifestyleCategory string

const (
	LifestyleProperty LifestyleCategory = "property"
	LifestyleJet      LifestyleCategory = "jet"
	LifestyleArt      LifestyleCategory = "art"
)

// LifestyleAsset is a purchasable lifestyle item from the catalog. For
// property the daily return is a fraction of the purchase price paid as
// income; for jets it is a flat daily dollar cost.
type LifestyleAsset struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Category    LifestyleCategory `json:"category" yaml:"category"`
	BasePrice   float64           `json:"base_price" yaml:"base_price"`
	Volatility  float64           `json:"volatility" yaml:"volatility"`
	DailyReturn float64           `json:"daily_return" yaml:"daily_return"`
}

// OwnedLifestyleItem is a purchased lifestyle asset whose market value drifts
// daily.
type OwnedLifestyleItem struct {
	AssetID       string  `json:"asset_id"`
	PurchasePrice float64 `json:"purchase_price"`
	CurrentValue  float64 `json:"current_value"`
	PurchaseDay   int     `json:"purchase_day"`
}

// SoldPosition is a closed spot trade kept for near-miss detection.
type SoldPosition struct {
	AssetID  string  `json:"asset_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Day      int     `json:"day"`
}
