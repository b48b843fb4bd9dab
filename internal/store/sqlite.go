// Package store provides run-history persistence implementations.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	errs "market-tycoon/internal/errors"
	"market-tycoon/internal/models"
)

// SQLiteStore implements HistoryStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based history store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errs.Wrap(err, "opening history database")
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, errs.Wrap(err, "initializing history schema")
	}
	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Runs table, one row per game
	CREATE TABLE IF NOT EXISTS runs (
		game_id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		finished_at DATETIME,
		duration INTEGER NOT NULL,
		starting_cash REAL NOT NULL,
		final_net_worth REAL DEFAULT 0,
		days INTEGER DEFAULT 0,
		status TEXT NOT NULL,
		cause TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- End-of-day snapshots per run
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		cash REAL NOT NULL,
		net_worth REAL NOT NULL,
		portfolio REAL NOT NULL,
		headlines TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(game_id, day),
		FOREIGN KEY (game_id) REFERENCES runs(game_id)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	CREATE INDEX IF NOT EXISTS idx_snapshots_game ON snapshots(game_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateRun records the start of a new game run.
func (s *SQLiteStore) CreateRun(ctx context.Context, run *models.RunRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (game_id, started_at, duration, starting_cash, status)
		VALUES (?, ?, ?, ?, ?)
	`, run.GameID, run.StartedAt, run.Duration, run.StartingCash, run.Status)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// FinishRun marks a run as over with its final result.
func (s *SQLiteStore) FinishRun(ctx context.Context, gameID string, status models.GameStatus, cause string, finalNetWorth float64, days int) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE runs SET finished_at = ?, status = ?, cause = ?, final_net_worth = ?, days = ?
		WHERE game_id = ?
	`, time.Now(), status, cause, finalNetWorth, days, gameID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("run not found: %s", gameID)
	}
	return nil
}

// GetRun retrieves a single run by game id.
func (s *SQLiteStore) GetRun(ctx context.Context, gameID string) (*models.RunRecord, error) {
	var r models.RunRecord
	var finishedAt sql.NullTime
	var cause sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT game_id, started_at, finished_at, duration, starting_cash, final_net_worth, days, status, cause
		FROM runs WHERE game_id = ?
	`, gameID).Scan(&r.GameID, &r.StartedAt, &finishedAt, &r.Duration, &r.StartingCash, &r.FinalNetWorth, &r.Days, &r.Status, &cause)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	if finishedAt.Valid {
		r.FinishedAt = &finishedAt.Time
	}
	r.Cause = cause.String
	return &r, nil
}

// ListRuns retrieves past runs matching the filter, newest first.
func (s *SQLiteStore) ListRuns(ctx context.Context, filter RunFilter) ([]models.RunRecord, error) {
	query := "SELECT game_id, started_at, finished_at, duration, starting_cash, final_net_worth, days, status, cause FROM runs WHERE 1=1"
	args := []interface{}{}

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	if !filter.StartDate.IsZero() {
		query += " AND started_at >= ?"
		args = append(args, filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		query += " AND started_at <= ?"
		args = append(args, filter.EndDate)
	}

	query += " ORDER BY started_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// Leaderboard returns the finished runs with the highest final net worth.
func (s *SQLiteStore) Leaderboard(ctx context.Context, limit int) ([]models.RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT game_id, started_at, finished_at, duration, starting_cash, final_net_worth, days, status, cause
		FROM runs WHERE finished_at IS NOT NULL
		ORDER BY final_net_worth DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]models.RunRecord, error) {
	var runs []models.RunRecord
	for rows.Next() {
		var r models.RunRecord
		var finishedAt sql.NullTime
		var cause sql.NullString

		if err := rows.Scan(&r.GameID, &r.StartedAt, &finishedAt, &r.Duration, &r.StartingCash, &r.FinalNetWorth, &r.Days, &r.Status, &cause); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if finishedAt.Valid {
			r.FinishedAt = &finishedAt.Time
		}
		r.Cause = cause.String
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// SaveSnapshot stores the end-of-day summary for one run day.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, snap *models.DailySnapshot) error {
	headlines, _ := json.Marshal(snap.Headlines)
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO snapshots (game_id, day, cash, net_worth, portfolio, headlines)
		VALUES (?, ?, ?, ?, ?, ?)
	`, snap.GameID, snap.Day, snap.Cash, snap.NetWorth, snap.Portfolio, string(headlines))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// GetSnapshots retrieves all snapshots for a run in day order.
func (s *SQLiteStore) GetSnapshots(ctx context.Context, gameID string) ([]models.DailySnapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT game_id, day, cash, net_worth, portfolio, headlines
		FROM snapshots WHERE game_id = ? ORDER BY day ASC
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []models.DailySnapshot
	for rows.Next() {
		var snap models.DailySnapshot
		var headlinesJSON string
		if err := rows.Scan(&snap.GameID, &snap.Day, &snap.Cash, &snap.NetWorth, &snap.Portfolio, &headlinesJSON); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		json.Unmarshal([]byte(headlinesJSON), &snap.Headlines)
		snaps = append(snaps, snap)
	}

	return snaps, rows.Err()
}
