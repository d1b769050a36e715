// Package models provides domain models for option strategies and analytics.
package models

// LegType represents the type of an option contract.
type LegType string

const (
	LegCall LegType = "CALL"
	LegPut  LegType = "PUT"
)

// Side represents the direction of an option leg.
type Side string

const (
	SideLong  Side = "LONG"
	SideShort Side = "SHORT"
)

// Leg represents a single option position within a strategy.
// Premium is the per-unit premium paid (long) or received (short).
type Leg struct {
	Type    LegType `json:"type"`
	Strike  float64 `json:"strike"`
	Premium float64 `json:"premium"`
	Qty     float64 `json:"qty"`
	Side    Side    `json:"side"`
}

// Long reports whether the leg is a long position.
func (l Leg) Long() bool {
	return l.Side == SideLong
}

// Strategy represents a built option strategy: an ordered list of legs
// plus a display label. Built fresh per request, never mutated.
type Strategy struct {
	Label string `json:"label"`
	Legs  []Leg  `json:"legs"`
}

// NetPremium returns the total premium outlay of the strategy.
// Positive means net debit (premium paid), negative means net credit.
func (s Strategy) NetPremium() float64 {
	var net float64
	for _, leg := range s.Legs {
		if leg.Long() {
			net += leg.Premium * leg.Qty
		} else {
			net -= leg.Premium * leg.Qty
		}
	}
	return net
}

// Analytics holds the Monte Carlo summary for a strategy at expiry.
type Analytics struct {
	EV          float64 `json:"ev"`
	ProbProfit  float64 `json:"prob_profit"`
	Median      float64 `json:"median"`
	DownsidePct float64 `json:"downside_pct"`
}
