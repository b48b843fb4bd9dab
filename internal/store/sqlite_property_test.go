package store

import (
	"context"
	"fmt"
	"math"
	"os"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"market-tycoon/internal/models"
)

// Property: For any valid snapshot sequence, saving the snapshots of a run and
// then retrieving them should produce equivalent data in day order
// (round-trip consistency).
func TestProperty_SnapshotRoundTripConsistency(t *testing.T) {
	dbPath := "test_snapshots_property.db"
	defer os.Remove(dbPath)

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	countGen := gen.IntRange(1, 30)
	cashGen := gen.Float64Range(-50_000, 5_000_000)
	worthGen := gen.Float64Range(-1_500_000, 50_000_000)

	properties.Property("Snapshot round-trip: save then retrieve produces equivalent data", prop.ForAll(
		func(count int, baseCash, baseWorth float64) bool {
			ctx := context.Background()
			gameID := fmt.Sprintf("game_%d", time.Now().UnixNano())

			snaps := make([]models.DailySnapshot, count)
			for i := range snaps {
				snaps[i] = models.DailySnapshot{
					GameID:    gameID,
					Day:       i + 1,
					Cash:      baseCash + float64(i)*17.5,
					NetWorth:  baseWorth + float64(i)*42.25,
					Portfolio: math.Abs(baseWorth-baseCash) + float64(i),
					Headlines: []string{fmt.Sprintf("headline %d", i)},
				}
				if err := store.SaveSnapshot(ctx, &snaps[i]); err != nil {
					t.Logf("Failed to save snapshot: %v", err)
					return false
				}
			}

			retrieved, err := store.GetSnapshots(ctx, gameID)
			if err != nil {
				t.Logf("Failed to get snapshots: %v", err)
				return false
			}
			if len(retrieved) != count {
				t.Logf("Count mismatch: expected %d, got %d", count, len(retrieved))
				return false
			}

			for i, orig := range snaps {
				ret := retrieved[i]
				if ret.Day != orig.Day ||
					math.Abs(ret.Cash-orig.Cash) > 1e-6 ||
					math.Abs(ret.NetWorth-orig.NetWorth) > 1e-6 ||
					math.Abs(ret.Portfolio-orig.Portfolio) > 1e-6 ||
					len(ret.Headlines) != len(orig.Headlines) {
					t.Logf("Snapshot mismatch at day %d: original=%+v, retrieved=%+v", orig.Day, orig, ret)
					return false
				}
			}
			return true
		},
		countGen,
		cashGen,
		worthGen,
	))

	// Re-saving the same day must replace, not duplicate.
	properties.Property("Snapshot upsert: saving a day twice keeps one row", prop.ForAll(
		func(cash float64) bool {
			ctx := context.Background()
			gameID := fmt.Sprintf("game_upsert_%d", time.Now().UnixNano())

			snap := models.DailySnapshot{GameID: gameID, Day: 1, Cash: cash, NetWorth: cash, Portfolio: 0}
			if err := store.SaveSnapshot(ctx, &snap); err != nil {
				return false
			}
			snap.Cash = cash + 100
			if err := store.SaveSnapshot(ctx, &snap); err != nil {
				return false
			}

			retrieved, err := store.GetSnapshots(ctx, gameID)
			if err != nil || len(retrieved) != 1 {
				return false
			}
			return math.Abs(retrieved[0].Cash-(cash+100)) < 1e-6
		},
		cashGen,
	))

	properties.TestingRun(t)
}

func TestRunLifecycle(t *testing.T) {
	dbPath := "test_runs.db"
	defer os.Remove(dbPath)

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	run := &models.RunRecord{
		GameID:       "run-1",
		StartedAt:    time.Now(),
		Duration:     90,
		StartingCash: 100_000,
		Status:       models.GameRunning,
	}
	if err := store.CreateRun(ctx, run); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	got, err := store.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got == nil || got.Status != models.GameRunning || got.FinishedAt != nil {
		t.Fatalf("unexpected run: %+v", got)
	}

	if err := store.FinishRun(ctx, "run-1", models.GameWon, "", 1_234_567.89, 90); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}
	got, err = store.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetRun after finish: %v", err)
	}
	if got.Status != models.GameWon || got.FinishedAt == nil || got.Days != 90 {
		t.Fatalf("unexpected finished run: %+v", got)
	}

	board, err := store.Leaderboard(ctx, 5)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(board) != 1 || board[0].GameID != "run-1" {
		t.Fatalf("unexpected leaderboard: %+v", board)
	}

	if err := store.FinishRun(ctx, "missing", models.GameWon, "", 0, 0); err == nil {
		t.Fatal("expected error finishing unknown run")
	}
}

func TestNewSQLiteStoreBadPath(t *testing.T) {
	if _, err := NewSQLiteStore(t.TempDir()); err == nil {
		t.Fatal("NewSQLiteStore must fail when the path is a directory")
	}
}
