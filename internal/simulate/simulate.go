// Package simulate provides geometric Brownian motion terminal-price
// sampling and Monte Carlo analytics for option strategies.
package simulate

import (
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"

	errs "optionsim/internal/errors"
	"optionsim/internal/models"
	"optionsim/internal/payoff"
)

const (
	// TradingDaysPerYear converts a horizon in trading days to years.
	TradingDaysPerYear = 252

	// DefaultSeed is used when the caller does not override the seed.
	DefaultSeed int64 = 42

	// DefaultSamples is the default Monte Carlo sample count.
	DefaultSamples = 12000

	// DefaultDrift is the default annualized drift.
	DefaultDrift = 0.06
)

// Params holds the inputs of a terminal-price simulation.
type Params struct {
	Spot        float64
	Drift       float64
	Sigma       float64
	HorizonDays int
	Samples     int
	Seed        int64
}

// Validate rejects parameter combinations the simulator cannot run on.
func (p Params) Validate() error {
	if p.Spot <= 0 {
		return errs.NewValidationError("spot", p.Spot, "must be positive")
	}
	if p.Sigma <= 0 {
		return errs.NewValidationError("sigma", p.Sigma, "must be positive")
	}
	if p.HorizonDays < 0 {
		return errs.NewValidationError("horizon_days", p.HorizonDays, "must not be negative")
	}
	if p.Samples <= 0 {
		return errs.NewValidationError("samples", p.Samples, "must be positive")
	}
	return nil
}

// TerminalPrices samples terminal underlying prices under lognormal (GBM)
// dynamics. A zero-day horizon returns the single-element slice [Spot]:
// no time has passed, so there is nothing to sample. All randomness comes
// from the explicit seed, so identical inputs produce identical output.
func TerminalPrices(p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	years := float64(p.HorizonDays) / TradingDaysPerYear
	if years == 0 {
		return []float64{p.Spot}, nil
	}

	rng := rand.New(rand.NewSource(p.Seed))
	drift := (p.Drift - 0.5*p.Sigma*p.Sigma) * years
	vol := p.Sigma * math.Sqrt(years)

	prices := make([]float64, p.Samples)
	for i := range prices {
		prices[i] = p.Spot * math.Exp(drift+vol*rng.NormFloat64())
	}
	return prices, nil
}

// Analyze estimates the risk/reward profile of a strategy at expiry by
// evaluating its payoff over simulated terminal prices.
//
// ProbProfit counts outcomes strictly above zero and DownsidePct outcomes
// strictly below; exact-zero outcomes count toward neither, so the two
// fractions sum to at most one. With a zero-day horizon the "distribution"
// is a single sample and the probabilities collapse to 0 or 1; that is the
// documented degenerate behavior, not a bug.
func Analyze(legs []models.Leg, p Params) (models.Analytics, error) {
	prices, err := TerminalPrices(p)
	if err != nil {
		return models.Analytics{}, err
	}

	payoffs := make([]float64, len(prices))
	var profits, losses int
	for i, s := range prices {
		pnl, err := payoff.CombinedAt(s, legs)
		if err != nil {
			return models.Analytics{}, err
		}
		payoffs[i] = pnl
		if pnl > 0 {
			profits++
		} else if pnl < 0 {
			losses++
		}
	}

	ev, err := stats.Mean(payoffs)
	if err != nil {
		return models.Analytics{}, err
	}
	median, err := stats.Median(payoffs)
	if err != nil {
		return models.Analytics{}, err
	}

	n := float64(len(payoffs))
	return models.Analytics{
		EV:          ev,
		ProbProfit:  float64(profits) / n,
		Median:      median,
		DownsidePct: float64(losses) / n,
	}, nil
}
