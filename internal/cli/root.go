// Package cli provides the command-line interface for the options lab.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"optionsim/internal/config"
	"optionsim/internal/logging"
	"optionsim/internal/strategy"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "optionsim",
		Short: "Options Lab - strategy payoff and Monte Carlo simulator",
		Long: `Options Lab models the expiry payoff of common option strategies on
Indian index options and estimates their risk/reward with Monte Carlo
simulation under geometric Brownian motion.

Use 'optionsim strategies' to list the supported strategies.
Use 'optionsim payoff <strategy>' to chart a payoff and its breakevens.
Use 'optionsim analyze <strategy>' for the Monte Carlo summary.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/optionsim)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newStrategiesCmd(app))
	rootCmd.AddCommand(newPayoffCmd(app))
	rootCmd.AddCommand(newAnalyzeCmd(app))

	return rootCmd
}

// Default parameters mirror the NIFTY-scale defaults the lab started with.
const (
	defaultStrike      = 25000.0
	defaultCallPremium = 380.0
	defaultPutPremium  = 360.0
	defaultQty         = 1.0
	defaultSpot        = 24900.0
	defaultDays        = 9
	defaultVol         = 0.18
)

// addStrategyFlags registers the flags shared by the payoff and analyze
// commands.
func addStrategyFlags(cmd *cobra.Command, app *App) {
	cmd.Flags().Float64("strike", defaultStrike, "Center strike K")
	cmd.Flags().Float64("call-premium", defaultCallPremium, "ATM call premium")
	cmd.Flags().Float64("put-premium", defaultPutPremium, "ATM put premium")
	cmd.Flags().Float64("qty", defaultQty, "Quantity multiplier (lots)")
	cmd.Flags().Float64("width", app.Config.Strategy.Width, "Spread width in points")
	cmd.Flags().Float64("spot", defaultSpot, "Current spot price")
}

// strategyParams reads the shared strategy flags.
func strategyParams(cmd *cobra.Command) strategy.Params {
	strike, _ := cmd.Flags().GetFloat64("strike")
	callPremium, _ := cmd.Flags().GetFloat64("call-premium")
	putPremium, _ := cmd.Flags().GetFloat64("put-premium")
	qty, _ := cmd.Flags().GetFloat64("qty")
	width, _ := cmd.Flags().GetFloat64("width")

	return strategy.Params{
		Strike:      strike,
		CallPremium: callPremium,
		PutPremium:  putPremium,
		Qty:         qty,
		Width:       width,
	}
}
