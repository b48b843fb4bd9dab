package engine

import (
	"market-tycoon/internal/models"
)

// soldWindow is the number of closed trades kept for near-miss detection.
const soldWindow = 20

// State is the aggregate root of one run. The host layer owns the single
// long-lived reference; the engine mutates it only inside sequential action
// and day-transition calls.
type State struct {
	GameID   string `json:"game_id"`
	Day      int    `json:"day"`
	Duration int    `json:"duration"`

	Cash         float64 `json:"cash"`
	StartingCash float64 `json:"starting_cash"`

	Holdings   map[string]int             `json:"holdings"`
	CostBasis  map[string]float64         `json:"cost_basis"`
	Prices     map[string]float64         `json:"prices"`
	PrevCloses map[string]float64         `json:"prev_closes"`
	Candles    map[string][]models.Candle `json:"candles"`

	ActiveChain *models.ActiveChain `json:"active_chain,omitempty"`
	UsedChains  map[string]bool     `json:"used_chains"`
	ActiveStory *models.ActiveStory `json:"active_story,omitempty"`
	UsedStories map[string]bool     `json:"used_stories"`
	Moods       []models.Mood       `json:"moods"`
	Escalations []models.Escalation `json:"escalations"`

	Investments  []models.ActiveInvestment `json:"investments"`
	PendingOffer *models.StartupOffer      `json:"pending_offer,omitempty"`
	UsedStartups map[string]bool           `json:"used_startups"`

	Leveraged []models.LeveragedPosition  `json:"leveraged"`
	Shorts    []models.ShortPosition      `json:"shorts"`
	Lifestyle []models.OwnedLifestyleItem `json:"lifestyle"`

	SoldPositions []models.SoldPosition `json:"sold_positions"`
	Milestones    []models.Milestone    `json:"milestones"`
	LastNearMiss  int                   `json:"last_near_miss"`

	Encounters       models.EncounterState `json:"encounters"`
	PendingEncounter *models.Encounter     `json:"pending_encounter,omitempty"`

	// Per-day transients, fully replaced each transition.
	TodayNews      []models.NewsItem `json:"today_news"`
	MilestoneToday *models.Milestone `json:"milestone_today,omitempty"`
	NearMissToday  *models.NearMiss  `json:"near_miss_today,omitempty"`
	Notice         string            `json:"notice,omitempty"`

	Status models.GameStatus      `json:"status"`
	Cause  models.BankruptcyCause `json:"cause,omitempty"`

	// Running net worth, maintained incrementally alongside every mutation.
	// Must agree with the from-scratch NetWorth getter to the cent.
	Ledger float64 `json:"ledger"`
}

// Running reports whether the game accepts further actions.
func (s *State) Running() bool {
	return s.Status == models.GameRunning
}

// DaysRemaining returns the number of days until the scheduled end.
func (s *State) DaysRemaining() int {
	remaining := s.Duration - s.Day
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Price returns the current price of an asset, zero when unknown.
func (s *State) Price(assetID string) float64 {
	return s.Prices[assetID]
}

// recordSale appends a closed trade to the bounded near-miss window.
func (s *State) recordSale(assetID string, qty int, price float64) {
	s.SoldPositions = append(s.SoldPositions, models.SoldPosition{
		AssetID:  assetID,
		Quantity: qty,
		Price:    price,
		Day:      s.Day,
	})
	if len(s.SoldPositions) > soldWindow {
		s.SoldPositions = s.SoldPositions[len(s.SoldPositions)-soldWindow:]
	}
}

// addNews appends a news item to today's feed.
func (s *State) addNews(item models.NewsItem) {
	item.Day = s.Day
	s.TodayNews = append(s.TodayNews, item)
}

// clearTransients resets the per-day fields at the start of a transition.
func (s *State) clearTransients() {
	s.TodayNews = nil
	s.MilestoneToday = nil
	s.NearMissToday = nil
	s.Notice = ""
}
