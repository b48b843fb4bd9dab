package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"market-tycoon/internal/models"
	"market-tycoon/internal/store"
	"market-tycoon/pkg/utils"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past runs",
	}

	var limit int
	var status string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List past runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return fmt.Errorf("history store unavailable")
			}

			runs, err := app.Store.ListRuns(cmd.Context(), store.RunFilter{
				Status: models.GameStatus(status),
				Limit:  limit,
			})
			if err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(runs)
			}

			if len(runs) == 0 {
				output.Dim("No runs yet. Try 'tycoon play'.")
				return nil
			}
			table := NewTable(output, "GAME", "STARTED", "DAYS", "STATUS", "NET WORTH")
			for _, r := range runs {
				table.AddRow(
					shortID(r.GameID),
					r.StartedAt.Format("2006-01-02 15:04"),
					fmt.Sprintf("%d/%d", r.Days, r.Duration),
					runStatus(output, r),
					utils.FormatUSD(r.FinalNetWorth),
				)
			}
			table.Render()
			return nil
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to show")
	listCmd.Flags().StringVar(&status, "status", "", "filter by status (RUNNING, WON, BANKRUPT)")

	showCmd := &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show the day-by-day curve of one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return fmt.Errorf("history store unavailable")
			}

			run, err := app.Store.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if run == nil {
				return fmt.Errorf("no run with id %s", args[0])
			}
			snaps, err := app.Store.GetSnapshots(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{"run": run, "snapshots": snaps})
			}

			output.Bold("Run %s: %s, %d days", shortID(run.GameID), runStatus(output, *run), run.Days)
			table := NewTable(output, "DAY", "CASH", "NET WORTH", "NEWS")
			for _, snap := range snaps {
				table.AddRow(
					fmt.Sprintf("%d", snap.Day),
					utils.FormatUSD(snap.Cash),
					utils.FormatUSD(snap.NetWorth),
					fmt.Sprintf("%d", len(snap.Headlines)),
				)
			}
			table.Render()
			return nil
		},
	}

	var topN int
	topCmd := &cobra.Command{
		Use:   "top",
		Short: "Show the best finished runs by final net worth",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return fmt.Errorf("history store unavailable")
			}

			runs, err := app.Store.Leaderboard(cmd.Context(), topN)
			if err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(runs)
			}

			table := NewTable(output, "#", "GAME", "STATUS", "NET WORTH")
			for i, r := range runs {
				table.AddRow(
					fmt.Sprintf("%d", i+1),
					shortID(r.GameID),
					runStatus(output, r),
					utils.FormatUSD(r.FinalNetWorth),
				)
			}
			table.Render()
			return nil
		},
	}
	topCmd.Flags().IntVar(&topN, "limit", 10, "number of runs to show")

	cmd.AddCommand(listCmd, showCmd, topCmd)
	return cmd
}

func runStatus(output *Output, r models.RunRecord) string {
	switch r.Status {
	case models.GameWon:
		return output.Green("WON")
	case models.GameBankrupt:
		return output.Red("BANKRUPT")
	default:
		return output.Yellow(string(r.Status))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
