package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"market-tycoon/internal/engine"
	"market-tycoon/internal/logging"
	"market-tycoon/internal/models"
	"market-tycoon/pkg/utils"
)

func newSimulateCmd(app *App) *cobra.Command {
	var days int
	var seed int64
	var invest float64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a headless buy-and-hold simulation",
		Long: `Run a full game without interaction.

The simulated player spreads a fraction of the starting cash evenly across
every asset on day one and then just advances time, accepting whatever the
market and the encounters do to it. Useful for balancing catalogs and for
reproducing seeded runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			eng := engine.New(app.Catalog, app.Config, engine.NewRand(seed), logging.WithGame(app.Logger, ""))
			state := eng.StartGame(days)
			output := NewOutput(cmd)

			return runSimulation(cmd.Context(), app, eng, state, output, seed, invest)
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "run duration in days (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = random)")
	cmd.Flags().Float64Var(&invest, "invest", 0.8, "fraction of starting cash to spread across assets")
	return cmd
}

func runSimulation(ctx context.Context, app *App, eng *engine.Engine, state *engine.State, output *Output, seed int64, invest float64) error {
	if app.Store != nil {
		app.Store.CreateRun(ctx, &models.RunRecord{
			GameID:       state.GameID,
			StartedAt:    time.Now(),
			Duration:     state.Duration,
			StartingCash: state.StartingCash,
			Status:       models.GameRunning,
		})
	}

	// Spread the stake evenly across every asset.
	if invest > 0 && invest <= 1 {
		assets := eng.Catalog().Assets
		perAsset := state.StartingCash * invest / float64(len(assets))
		for _, a := range assets {
			qty := int(perAsset / state.Prices[a.ID])
			if qty > 0 {
				eng.Buy(state, a.ID, qty)
			}
		}
	}

	for state.Running() {
		if err := eng.TriggerNextDay(state); err != nil {
			return err
		}
		if state.PendingEncounter != nil {
			if err := eng.ConfirmEncounter(state); err != nil {
				return err
			}
		}
		// Headless policy: decline every startup offer.
		if state.PendingOffer != nil {
			eng.DismissStartupOffer(state)
		}

		if app.Store != nil {
			headlines := make([]string, 0, len(state.TodayNews))
			for _, item := range state.TodayNews {
				headlines = append(headlines, item.Headline)
			}
			app.Store.SaveSnapshot(ctx, &models.DailySnapshot{
				GameID:    state.GameID,
				Day:       state.Day,
				Cash:      state.Cash,
				NetWorth:  eng.NetWorth(state),
				Portfolio: eng.PortfolioValue(state),
				Headlines: headlines,
			})
		}
	}

	finalWorth := eng.NetWorth(state)
	if app.Store != nil {
		app.Store.FinishRun(ctx, state.GameID, state.Status, string(state.Cause), finalWorth, state.Day)
	}

	if output.IsJSON() {
		return output.JSON(map[string]interface{}{
			"game_id":   state.GameID,
			"seed":      seed,
			"days":      state.Day,
			"status":    state.Status,
			"cause":     state.Cause,
			"net_worth": finalWorth,
			"change":    eng.TotalChangePct(state),
		})
	}

	output.Bold("Simulation finished")
	output.Printf("  Seed:      %d\n", seed)
	output.Printf("  Days:      %d of %d\n", state.Day, state.Duration)
	output.Printf("  Status:    %s\n", statusLine(output, state))
	output.Printf("  Net worth: %s (%s)\n", utils.FormatUSD(finalWorth), output.FormatPercent(eng.TotalChangePct(state)))
	return nil
}

func statusLine(output *Output, state *engine.State) string {
	switch state.Status {
	case models.GameWon:
		return output.Green("WON")
	case models.GameBankrupt:
		return output.Red(fmt.Sprintf("BANKRUPT (%s)", state.Cause))
	default:
		return string(state.Status)
	}
}
