package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"market-tycoon/pkg/utils"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the loaded game catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "assets",
		Short: "List tradable assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Catalog.Assets)
			}
			table := NewTable(output, "ID", "NAME", "BASE PRICE", "VOLATILITY")
			for _, a := range app.Catalog.Assets {
				table.AddRow(a.ID, a.Name, utils.FormatUSD(a.BasePrice), fmt.Sprintf("%.1f%%", a.Volatility*100))
			}
			table.Render()
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "events",
		Short: "List market events, chains, and stories",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"events":  app.Catalog.Events,
					"chains":  app.Catalog.Chains,
					"stories": app.Catalog.Stories,
				})
			}

			output.Bold("Events (%d)", len(app.Catalog.Events))
			for _, ev := range app.Catalog.Events {
				output.Printf("  [%s] %s\n", ev.Category, ev.Headline)
			}
			output.Println()
			output.Bold("Chains (%d)", len(app.Catalog.Chains))
			for _, ch := range app.Catalog.Chains {
				output.Printf("  [%s] %s (%d days, %d outcomes)\n", ch.Category, ch.Rumor, ch.Duration, len(ch.Outcomes))
			}
			output.Println()
			output.Bold("Stories (%d)", len(app.Catalog.Stories))
			for _, st := range app.Catalog.Stories {
				output.Printf("  [%s] %s (%d stages)\n", st.Category, st.ID, len(st.Stages))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "startups",
		Short: "List investable startups",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Catalog.Startups)
			}
			table := NewTable(output, "ID", "NAME", "TIER", "MIN STAKE", "HORIZON")
			for _, s := range app.Catalog.Startups {
				table.AddRow(s.ID, s.Name, string(s.Tier), utils.FormatUSD(s.MinAmount), fmt.Sprintf("%d-%d days", s.MinDays, s.MaxDays))
			}
			table.Render()
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "lifestyle",
		Short: "List lifestyle assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Catalog.Lifestyle)
			}
			table := NewTable(output, "ID", "NAME", "CATEGORY", "PRICE")
			for _, a := range app.Catalog.Lifestyle {
				table.AddRow(a.ID, a.Name, string(a.Category), utils.FormatUSD(a.BasePrice))
			}
			table.Render()
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the loaded catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Catalog.Validate(); err != nil {
				output.Error("Catalog validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]bool{"valid": true})
			}
			output.Success("Catalog is valid")
			return nil
		},
	})

	return cmd
}
