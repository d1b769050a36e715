package simulate

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"optionsim/internal/models"
)

// Property: for any valid parameter combination, the Monte Carlo summary
// stays within its mathematical bounds and repeated runs with the same
// seed agree exactly.
func TestProperty_AnalyzeBoundsAndDeterminism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	legs := []models.Leg{
		{Type: models.LegCall, Strike: 25000, Premium: 380, Qty: 1, Side: models.SideLong},
		{Type: models.LegPut, Strike: 25000, Premium: 360, Qty: 1, Side: models.SideLong},
	}

	properties.Property("probabilities bounded and runs reproducible", prop.ForAll(
		func(spot, sigma float64, days int, seed int64) bool {
			p := Params{
				Spot:        spot,
				Drift:       DefaultDrift,
				Sigma:       sigma,
				HorizonDays: days,
				Samples:     500,
				Seed:        seed,
			}

			a, err := Analyze(legs, p)
			if err != nil {
				return false
			}
			b, err := Analyze(legs, p)
			if err != nil {
				return false
			}

			if a != b {
				return false
			}
			if a.ProbProfit < 0 || a.ProbProfit > 1 {
				return false
			}
			if a.DownsidePct < 0 || a.DownsidePct > 1 {
				return false
			}
			return a.ProbProfit+a.DownsidePct <= 1
		},
		gen.Float64Range(1000, 50000),
		gen.Float64Range(0.05, 1.0),
		gen.IntRange(0, 90),
		gen.Int64Range(0, 1<<20),
	))

	properties.TestingRun(t)
}

// Property: all simulated terminal prices are positive, whatever the
// drift sign; the lognormal model cannot produce zero or negative prices.
func TestProperty_TerminalPricesPositive(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("terminal prices stay positive", prop.ForAll(
		func(spot, drift, sigma float64, days int, seed int64) bool {
			prices, err := TerminalPrices(Params{
				Spot:        spot,
				Drift:       drift,
				Sigma:       sigma,
				HorizonDays: days,
				Samples:     200,
				Seed:        seed,
			})
			if err != nil {
				return false
			}
			for _, s := range prices {
				if s <= 0 {
					return false
				}
			}
			return true
		},
		gen.Float64Range(1, 50000),
		gen.Float64Range(-0.5, 0.5),
		gen.Float64Range(0.05, 1.0),
		gen.IntRange(1, 365),
		gen.Int64Range(0, 1<<20),
	))

	properties.TestingRun(t)
}
