// Package cli provides the command-line interface for the game.
package cli

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"market-tycoon/internal/catalog"
	"market-tycoon/internal/config"
	"market-tycoon/internal/logging"
	"market-tycoon/internal/store"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-09-01"
)

// App holds the application dependencies.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Catalog *catalog.Catalog
	Store   store.HistoryStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "tycoon",
		Short: "Market Tycoon - a market-trading career game",
		Long: `Market Tycoon is a single-player market-trading career game.

Start with a cash pile, trade a fictional market driven by narrative events,
and try to end the run richer than you started. Leverage, shorts, startup
deals, and lifestyle assets are all on the table; so are audits and lawsuits.

Use 'tycoon help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}

			catalogPath, _ := cmd.Flags().GetString("catalog")
			if catalogPath != "" {
				cat, err := catalog.LoadFile(catalogPath)
				if err != nil {
					return err
				}
				app.Catalog = cat
			} else {
				app.Catalog = catalog.Default()
			}

			dbPath := filepath.Join(resolveConfigDir(cmd), "tycoon.db")
			historyStore, err := store.NewSQLiteStore(dbPath)
			if err != nil {
				app.Logger.Warn().Err(err).Msg("Failed to initialize history store, runs will not be saved")
			} else {
				app.Store = historyStore
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Store != nil {
				app.Store.Close()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/market-tycoon)")
	rootCmd.PersistentFlags().String("catalog", "", "path to a custom catalog YAML file")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newPlayCmd(app))
	rootCmd.AddCommand(newSimulateCmd(app))
	rootCmd.AddCommand(newHistoryCmd(app))
	rootCmd.AddCommand(newCatalogCmd(app))

	return rootCmd
}

// resolveConfigDir returns the directory holding config and history data,
// honoring the --config override.
func resolveConfigDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("config")
	if dir == "" {
		return config.DefaultConfigDir()
	}
	return dir
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("Market Tycoon v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			return showConfig(output, app.Config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": resolveConfigDir(cmd)})
			} else {
				output.Println(resolveConfigDir(cmd))
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) error {
	output.Bold("Game Configuration")
	output.Printf("  Starting Cash:   %.0f\n", cfg.Game.StartingCash)
	output.Printf("  Duration:        %d days\n", cfg.Game.DefaultDuration)
	output.Printf("  Max Leverage:    %.0fx\n", cfg.Game.MaxLeverage)
	output.Printf("  Offer Chance:    %.0f%%\n", cfg.Game.OfferChance*100)
	output.Println()

	output.Bold("Narrative Configuration")
	output.Printf("  Event Chance:    %.0f%%\n", cfg.Narrative.EventChance*100)
	output.Printf("  Chain Share:     %.0f%%\n", cfg.Narrative.ChainShare*100)
	output.Printf("  Story Chance:    %.0f%%\n", cfg.Narrative.StoryChance*100)
	output.Printf("  Mood Window:     %d days\n", cfg.Narrative.MoodWindowDays)
	output.Println()

	output.Bold("Detector Configuration")
	output.Printf("  Milestones:      %d thresholds\n", len(cfg.Detectors.MilestoneThresholds))
	output.Printf("  Near-Miss:       %.0f%% chance, %d day cooldown\n", cfg.Detectors.NearMissChance*100, cfg.Detectors.NearMissCooldown)
	output.Printf("  Encounters:      %.0f%% base chance from day %d\n", cfg.Detectors.EncounterBaseChance*100, cfg.Detectors.EncounterMinDay)

	return nil
}
