package cli

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"optionsim/internal/models"
	"optionsim/internal/payoff"
	"optionsim/internal/strategy"
)

// curveRow is one CSV row of the exported payoff curve.
type curveRow struct {
	Price  float64 `csv:"price"`
	Payoff float64 `csv:"payoff"`
}

// payoffResult is the JSON shape of the payoff command output.
type payoffResult struct {
	Strategy   models.Strategy `json:"strategy"`
	NetPremium float64         `json:"net_premium"`
	Breakevens []float64       `json:"breakevens"`
	MaxProfit  float64         `json:"max_profit"`
	MaxLoss    float64         `json:"max_loss"`
	Grid       []float64       `json:"grid,omitempty"`
	Curve      []float64       `json:"curve,omitempty"`
}

func newPayoffCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payoff <strategy>",
		Short: "Chart strategy payoff and breakevens",
		Long: `Build a strategy, compute its expiry payoff over a price grid around
spot, and display the payoff chart, breakeven prices, and profit/loss
extremes over the grid.

Breakevens are located by linear interpolation between adjacent grid
points, so their precision is bounded by the grid spacing.`,
		Example: `  optionsim payoff straddle --strike 25000 --call-premium 380 --put-premium 360
  optionsim payoff iron-condor --strike 25000 --width 400
  optionsim payoff strangle --csv curve.csv`,
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
			span, _ := cmd.Flags().GetFloat64("grid-span")
			points, _ := cmd.Flags().GetInt("points")
			csvPath, _ := cmd.Flags().GetString("csv")
			withCurve, _ := cmd.Flags().GetBool("curve")

			built := strategy.Build(kind, params)
			grid := payoff.Grid(spot-span, spot+span, points)
			curve, err := payoff.Combined(grid, built.Legs)
			if err != nil {
				output.Error("Failed to compute payoff: %v", err)
				return err
			}
			breakevens := payoff.Breakevens(grid, curve)

			app.Logger.Debug().
				Str("strategy", string(kind)).
				Float64("strike", params.Strike).
				Int("grid_points", len(grid)).
				Int("breakevens", len(breakevens)).
				Msg("payoff curve computed")

			if csvPath != "" {
				if err := writeCurveCSV(csvPath, grid, curve); err != nil {
					output.Error("Failed to write CSV: %v", err)
					return err
				}
				if !output.IsJSON() {
					output.Info("Curve written to %s", csvPath)
				}
			}

			maxProfit, maxLoss := curveExtremes(curve)

			if output.IsJSON() {
				result := payoffResult{
					Strategy:   built,
					NetPremium: built.NetPremium(),
					Breakevens: breakevens,
					MaxProfit:  maxProfit,
					MaxLoss:    maxLoss,
				}
				if withCurve {
					result.Grid = grid
					result.Curve = curve
				}
				return output.JSON(result)
			}

			displayPayoff(output, built, grid, curve, spot, breakevens, maxProfit, maxLoss)
			return nil
		},
	}

	addStrategyFlags(cmd, app)
	cmd.Flags().Float64("grid-span", app.Config.Grid.Span, "Grid half-width around spot")
	cmd.Flags().Int("points", app.Config.Grid.Points, "Number of grid points")
	cmd.Flags().String("csv", "", "Write the price/payoff curve to a CSV file")
	cmd.Flags().Bool("curve", false, "Include the full curve in JSON output")

	return cmd
}

func displayPayoff(output *Output, built models.Strategy, grid, curve []float64, spot float64, breakevens []float64, maxProfit, maxLoss float64) {
	output.Bold("Payoff - %s", built.Label)
	output.Println()

	output.Bold("Legs")
	for i, leg := range built.Legs {
		action := "BUY "
		if !leg.Long() {
			action = "SELL"
		}
		side := "CE"
		if leg.Type == models.LegPut {
			side = "PE"
		}
		output.Printf("  %d. %s %.0f %s x%.1f @ %s\n",
			i+1, action, leg.Strike, side, leg.Qty, FormatPrice(leg.Premium))
	}
	output.Println()

	renderChart(output, grid, curve, spot)
	output.Println()

	output.Bold("Analysis")
	output.Printf("  Net Premium:  %s\n", FormatIndianCurrency(built.NetPremium()))
	output.Printf("  Max Profit:   %s (over grid)\n", output.Green(FormatPnL(maxProfit)))
	output.Printf("  Max Loss:     %s (over grid)\n", output.Red(FormatPnL(maxLoss)))
	output.Printf("  Breakeven(s): %s\n", formatBreakevens(breakevens))
}

func formatBreakevens(breakevens []float64) string {
	if len(breakevens) == 0 {
		return "None"
	}
	s := ""
	for i, be := range breakevens {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%.0f", be)
	}
	return s
}

func curveExtremes(curve []float64) (maxProfit, maxLoss float64) {
	if len(curve) == 0 {
		return 0, 0
	}
	maxProfit, maxLoss = curve[0], curve[0]
	for _, v := range curve[1:] {
		if v > maxProfit {
			maxProfit = v
		}
		if v < maxLoss {
			maxLoss = v
		}
	}
	return maxProfit, maxLoss
}

func writeCurveCSV(path string, grid, curve []float64) error {
	rows := make([]*curveRow, len(grid))
	for i := range grid {
		rows[i] = &curveRow{Price: grid[i], Payoff: curve[i]}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&rows, f)
}
