// Package models provides domain models for the market career simulation.
package models

// Asset represents a tradable market asset.
type Asset struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	BasePrice  float64 `json:"base_price" yaml:"base_price"`
	Volatility float64 `json:"volatility" yaml:"volatility"`
}

// Candle represents one day of OHLC price data.
type Candle struct {
	Day   int     `json:"day"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// NewsKind identifies the source of a news item.
type NewsKind string

const (
	NewsEvent      NewsKind = "event"
	NewsRumor      NewsKind = "rumor"
	NewsResolution NewsKind = "resolution"
	NewsStory      NewsKind = "story"
	NewsStartup    NewsKind = "startup"
	NewsHint       NewsKind = "hint"
	NewsEncounter  NewsKind = "encounter"
)

// NewsItem is a headline emitted during a day transition. EffectID carries an
// explicit reference to the effects applied alongside the headline so that
// downstream consumers never have to match on display text.
type NewsItem struct {
	Day      int                `json:"day"`
	Kind     NewsKind           `json:"kind"`
	Category string             `json:"category,omitempty"`
	Headline string             `json:"headline"`
	EffectID string             `json:"effect_id,omitempty"`
	Effects  map[string]float64 `json:"effects,omitempty"`
}

// GameStatus represents the lifecycle state of a run.
type GameStatus string

const (
	GameRunning  GameStatus = "RUNNING"
	GameWon      GameStatus = "WON"
	GameBankrupt GameStatus = "BANKRUPT"
)

// BankruptcyCause classifies how a run ended in insolvency.
type BankruptcyCause string

const (
	CauseNone         BankruptcyCause = ""
	CausePlain        BankruptcyCause = "bankrupt"
	CauseMargin       BankruptcyCause = "margin_failure"
	CauseShortSqueeze BankruptcyCause = "short_squeeze"
	CauseCatastrophic BankruptcyCause = "catastrophic"
	CauseEncounter    BankruptcyCause = "encounter"
)

// Milestone records a net-worth threshold the player has crossed.
type Milestone struct {
	Threshold float64 `json:"threshold"`
	Day       int     `json:"day"`
}

// NearMissKind classifies a retrospective notification about a closed trade.
type NearMissKind string

const (
	NearMissMissedMoon   NearMissKind = "missed_moon"
	NearMissMissedGain   NearMissKind = "missed_gain"
	NearMissBulletDodged NearMissKind = "bullet_dodged"
	NearMissLuckyExit    NearMissKind = "lucky_exit"
)

// NearMiss is a regret/relief notification about a previously sold position.
type NearMiss struct {
	Kind      NearMissKind `json:"kind"`
	AssetID   string       `json:"asset_id"`
	SoldDay   int          `json:"sold_day"`
	ChangePct float64      `json:"change_pct"`
	Day       int          `json:"day"`
}
