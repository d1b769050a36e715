// Package payoff provides expiry payoff calculations for option legs and
// multi-leg strategies.
package payoff

import (
	"math"

	errs "optionsim/internal/errors"
	"optionsim/internal/models"
)

// Call calculates the per-unit P&L of a call leg at underlying price s.
func Call(s, k, premium, qty float64, long bool) float64 {
	pnl := (math.Max(s-k, 0) - premium) * qty
	if long {
		return pnl
	}
	return -pnl
}

// Put calculates the per-unit P&L of a put leg at underlying price s.
func Put(s, k, premium, qty float64, long bool) float64 {
	pnl := (math.Max(k-s, 0) - premium) * qty
	if long {
		return pnl
	}
	return -pnl
}

// LegAt evaluates a single leg at underlying price s.
func LegAt(s float64, leg models.Leg) (float64, error) {
	switch leg.Type {
	case models.LegCall:
		return Call(s, leg.Strike, leg.Premium, leg.Qty, leg.Long()), nil
	case models.LegPut:
		return Put(s, leg.Strike, leg.Premium, leg.Qty, leg.Long()), nil
	default:
		return 0, errs.ErrUnknownLegType
	}
}

// CombinedAt evaluates the total strategy payoff at a single underlying price.
// An empty leg list yields zero. An unrecognized leg type fails the whole
// call rather than silently dropping the leg.
func CombinedAt(s float64, legs []models.Leg) (float64, error) {
	var total float64
	for i, leg := range legs {
		pnl, err := LegAt(s, leg)
		if err != nil {
			return 0, errs.NewLegError(i, string(leg.Type), err)
		}
		total += pnl
	}
	return total, nil
}

// Combined evaluates the total strategy payoff at each price in prices.
// The result is aligned index-for-index with the input.
func Combined(prices []float64, legs []models.Leg) ([]float64, error) {
	curve := make([]float64, len(prices))
	for i, s := range prices {
		pnl, err := CombinedAt(s, legs)
		if err != nil {
			return nil, err
		}
		curve[i] = pnl
	}
	return curve, nil
}

// Grid returns points ascending prices evenly spaced over [lo, hi],
// endpoints included. Fewer than two points collapses to [lo].
func Grid(lo, hi float64, points int) []float64 {
	if points < 2 {
		return []float64{lo}
	}
	grid := make([]float64, points)
	step := (hi - lo) / float64(points-1)
	for i := range grid {
		grid[i] = lo + float64(i)*step
	}
	return grid
}
