// Package store provides run-history persistence interfaces and
// implementations.
package store

import (
	"context"
	"time"

	"market-tycoon/internal/models"
)

// HistoryStore defines the interface for run-history persistence.
type HistoryStore interface {
	// Runs
	CreateRun(ctx context.Context, run *models.RunRecord) error
	FinishRun(ctx context.Context, gameID string, status models.GameStatus, cause string, finalNetWorth float64, days int) error
	GetRun(ctx context.Context, gameID string) (*models.RunRecord, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]models.RunRecord, error)
	Leaderboard(ctx context.Context, limit int) ([]models.RunRecord, error)

	// Daily snapshots
	SaveSnapshot(ctx context.Context, snap *models.DailySnapshot) error
	GetSnapshots(ctx context.Context, gameID string) ([]models.DailySnapshot, error)

	// Lifecycle
	Close() error
}

// RunFilter represents filters for querying past runs.
type RunFilter struct {
	Status    models.GameStatus
	StartDate time.Time
	EndDate   time.Time
	Limit     int
}
