package payoff

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"optionsim/internal/models"
)

// Property: long and short positions are exact mirrors of each other.
func TestProperty_LongShortAntisymmetry(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("call long/short payoffs are antisymmetric", prop.ForAll(
		func(s, k, premium, qty float64) bool {
			return Call(s, k, premium, qty, true) == -Call(s, k, premium, qty, false)
		},
		gen.Float64Range(1, 50000),
		gen.Float64Range(1, 50000),
		gen.Float64Range(0, 1000),
		gen.Float64Range(0.1, 10),
	))

	properties.Property("put long/short payoffs are antisymmetric", prop.ForAll(
		func(s, k, premium, qty float64) bool {
			return Put(s, k, premium, qty, true) == -Put(s, k, premium, qty, false)
		},
		gen.Float64Range(1, 50000),
		gen.Float64Range(1, 50000),
		gen.Float64Range(0, 1000),
		gen.Float64Range(0.1, 10),
	))

	properties.TestingRun(t)
}

// Property: a long option can never lose more than the premium paid, and
// an empty strategy pays exactly zero everywhere.
func TestProperty_PayoffBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("long call loss is bounded by premium", prop.ForAll(
		func(s, k, premium, qty float64) bool {
			return Call(s, k, premium, qty, true) >= -premium*qty-1e-9
		},
		gen.Float64Range(1, 50000),
		gen.Float64Range(1, 50000),
		gen.Float64Range(0, 1000),
		gen.Float64Range(0.1, 10),
	))

	properties.Property("empty strategy pays zero at every price", prop.ForAll(
		func(s float64) bool {
			pnl, err := CombinedAt(s, nil)
			return err == nil && pnl == 0
		},
		gen.Float64Range(1, 100000),
	))

	properties.TestingRun(t)
}

// Property: the combined payoff is linear between adjacent strikes, so on
// any segment between two consecutive kink points the midpoint payoff is
// the average of the endpoint payoffs.
func TestProperty_PiecewiseLinearity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("payoff is linear away from strikes", prop.ForAll(
		func(k, premium, qty float64) bool {
			legs := []models.Leg{
				{Type: models.LegCall, Strike: k, Premium: premium, Qty: qty, Side: models.SideLong},
				{Type: models.LegPut, Strike: k, Premium: premium, Qty: qty, Side: models.SideShort},
			}
			// Segment strictly above the only kink point.
			x0, x1 := k+100, k+300
			mid := (x0 + x1) / 2
			y0, err0 := CombinedAt(x0, legs)
			y1, err1 := CombinedAt(x1, legs)
			ym, errm := CombinedAt(mid, legs)
			if err0 != nil || err1 != nil || errm != nil {
				return false
			}
			return math.Abs(ym-(y0+y1)/2) < 1e-6
		},
		gen.Float64Range(1000, 50000),
		gen.Float64Range(0, 1000),
		gen.Float64Range(0.1, 10),
	))

	properties.TestingRun(t)
}
