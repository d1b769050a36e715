package cli

import (
	"github.com/spf13/cobra"

	"optionsim/internal/models"
	"optionsim/internal/simulate"
	"optionsim/internal/strategy"
)

// analyzeResult is the JSON shape of the analyze command output.
type analyzeResult struct {
	Strategy  models.Strategy  `json:"strategy"`
	Params    simulate.Params  `json:"params"`
	Analytics models.Analytics `json:"analytics"`
}

func newAnalyzeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <strategy>",
		Short: "Monte Carlo risk/reward summary for a strategy",
		Long: `Build a strategy and estimate its expiry risk/reward by Monte Carlo
simulation: terminal prices are sampled under geometric Brownian motion
and the strategy payoff is evaluated at each sample.

Reports expected value, probability of profit, median payoff, and
downside probability. Runs with the same seed and inputs are exactly
reproducible. A zero-day horizon degenerates to a single sample at
spot, so the probabilities collapse to 0 or 1.`,
		Example: `  optionsim analyze straddle --strike 25000 --days 9 --vol 0.18
  optionsim analyze butterfly --spot 24900 --sims 50000 --seed 7
  optionsim analyze iron-condor --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			kind, err := strategy.ParseKind(args[0])
			if err != nil {
				output.Error("Unknown strategy %q. Run 'optionsim strategies' to list them.", args[0])
				return err
			}

			params := strategyParams(cmd)
			spot, _ := cmd.Flags().GetFloat64("spot")
			days, _ := cmd.Flags().GetInt("days")
			vol, _ := cmd.Flags().GetFloat64("vol")
			drift, _ := cmd.Flags().GetFloat64("drift")
			sims, _ := cmd.Flags().GetInt("sims")
			seed, _ := cmd.Flags().GetInt64("seed")

			built := strategy.Build(kind, params)
			simParams := simulate.Params{
				Spot:        spot,
				Drift:       drift,
				Sigma:       vol,
				HorizonDays: days,
				Samples:     sims,
				Seed:        seed,
			}

			analytics, err := simulate.Analyze(built.Legs, simParams)
			if err != nil {
				output.Error("Simulation failed: %v", err)
				return err
			}

			app.Logger.Debug().
				Str("strategy", string(kind)).
				Int("samples", sims).
				Int64("seed", seed).
				Float64("ev", analytics.EV).
				Msg("monte carlo run complete")

			if output.IsJSON() {
				return output.JSON(analyzeResult{
					Strategy:  built,
					Params:    simParams,
					Analytics: analytics,
				})
			}

			displayAnalytics(output, built, simParams, analytics)
			return nil
		},
	}

	addStrategyFlags(cmd, app)
	cmd.Flags().Int("days", defaultDays, "Horizon in trading days")
	cmd.Flags().Float64("vol", defaultVol, "Annualized volatility")
	cmd.Flags().Float64("drift", app.Config.Simulation.Drift, "Annualized drift")
	cmd.Flags().Int("sims", app.Config.Simulation.Samples, "Monte Carlo sample count")
	cmd.Flags().Int64("seed", app.Config.Simulation.Seed, "Random seed")

	return cmd
}

func displayAnalytics(output *Output, built models.Strategy, p simulate.Params, a models.Analytics) {
	output.Bold("Monte Carlo Analytics - %s", built.Label)
	output.Printf("  Spot: %s  Horizon: %dd  Vol: %.1f%%  Samples: %d\n\n",
		FormatPrice(p.Spot), p.HorizonDays, p.Sigma*100, p.Samples)

	table := NewTable(output, "Metric", "Value")
	table.AddRow("Expected Value (EV)", output.FormatPnL(a.EV))
	table.AddRow("Probability of Profit", FormatPercent(a.ProbProfit))
	table.AddRow("Median", output.FormatPnL(a.Median))
	table.AddRow("Downside Probability", FormatPercent(a.DownsidePct))
	table.Render()

	if p.HorizonDays == 0 {
		output.Println()
		output.Dim("  Zero-day horizon: single sample at spot, probabilities are 0 or 1.")
	}
}
