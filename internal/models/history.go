package models

import "time"

// RunRecord is one game run as persisted in history.
type RunRecord struct {
	GameID        string     `json:"game_id"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
	Duration      int        `json:"duration"`
	StartingCash  float64    `json:"starting_cash"`
	FinalNetWorth float64    `json:"final_net_worth"`
	Days          int        `json:"days"`
	Status        GameStatus `json:"status"`
	Cause         string     `json:"cause,omitempty"`
}

// DailySnapshot is the end-of-day financial summary stored per run day.
type DailySnapshot struct {
	GameID    string   `json:"game_id"`
	Day       int      `json:"day"`
	Cash      float64  `json:"cash"`
	NetWorth  float64  `json:"net_worth"`
	Portfolio float64  `json:"portfolio"`
	Headlines []string `json:"headlines,omitempty"`
}
