// Package strategy builds canned multi-leg option strategies from a strike,
// premium quotes, and a spread width.
package strategy

import (
	"fmt"
	"strings"

	errs "optionsim/internal/errors"
	"optionsim/internal/models"
)

// Kind identifies one of the supported canned strategies.
type Kind string

const (
	Straddle       Kind = "straddle"
	Strangle       Kind = "strangle"
	IronCondor     Kind = "iron-condor"
	BullCallSpread Kind = "bull-call-spread"
	Butterfly      Kind = "butterfly"
)

// DefaultWidth is the default spread width in index points. The strangle
// offset, condor wings, vertical spread width, and butterfly wings all
// derive from it.
const DefaultWidth = 400.0

// MinStrike is the floor applied when a derived strike would go non-positive.
const MinStrike = 1.0

// Premium scale factors applied to the quoted ATM premiums when legs move
// away from the center strike.
const (
	stranglePremiumScale = 0.6
	condorNearScale      = 0.7
	condorFarScale       = 0.3
	spreadLongScale      = 0.9
	spreadShortScale     = 0.5
	butterflyWingScale   = 0.9
	butterflyBodyScale   = 0.7
)

// Params holds the base parameters a strategy is built from.
type Params struct {
	Strike      float64
	CallPremium float64
	PutPremium  float64
	Qty         float64
	// Width is the spread width in points; zero means DefaultWidth.
	Width float64
}

func (p Params) width() float64 {
	if p.Width <= 0 {
		return DefaultWidth
	}
	return p.Width
}

type buildFunc func(Params) models.Strategy

// builders is the closed dispatch table from strategy kind to construction
// function. There is no extension point; unknown kinds fall back to a
// straddle via Build.
var builders = map[Kind]buildFunc{
	Straddle:       buildStraddle,
	Strangle:       buildStrangle,
	IronCondor:     buildIronCondor,
	BullCallSpread: buildBullCallSpread,
	Butterfly:      buildButterfly,
}

// Kinds returns the supported strategy kinds in display order.
func Kinds() []Kind {
	return []Kind{Straddle, Strangle, IronCondor, BullCallSpread, Butterfly}
}

// ParseKind parses a user-supplied strategy name. Matching is
// case-insensitive and accepts underscores in place of hyphens.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	if _, ok := builders[k]; !ok {
		return "", fmt.Errorf("%w: %q", errs.ErrUnknownStrategy, s)
	}
	return k, nil
}

// Build constructs the legs and display label for the given strategy kind.
// An unknown kind falls back to a straddle; this mirrors the behavior of
// the strategy selector it replaces and is deliberate, not an error.
func Build(kind Kind, p Params) models.Strategy {
	build, ok := builders[kind]
	if !ok {
		build = buildStraddle
	}
	return build(p)
}

func buildStraddle(p Params) models.Strategy {
	return models.Strategy{
		Label: "Long Straddle",
		Legs: []models.Leg{
			{Type: models.LegCall, Strike: p.Strike, Premium: p.CallPremium, Qty: p.Qty, Side: models.SideLong},
			{Type: models.LegPut, Strike: p.Strike, Premium: p.PutPremium, Qty: p.Qty, Side: models.SideLong},
		},
	}
}

func buildStrangle(p Params) models.Strategy {
	w := p.width()
	kPut := clampStrike(p.Strike - w)
	kCall := p.Strike + w
	return models.Strategy{
		Label: fmt.Sprintf("Long Strangle (%.0f/%.0f)", kPut, kCall),
		Legs: []models.Leg{
			{Type: models.LegPut, Strike: kPut, Premium: p.PutPremium * stranglePremiumScale, Qty: p.Qty, Side: models.SideLong},
			{Type: models.LegCall, Strike: kCall, Premium: p.CallPremium * stranglePremiumScale, Qty: p.Qty, Side: models.SideLong},
		},
	}
}

func buildIronCondor(p Params) models.Strategy {
	near := p.width()
	far := 2 * near
	return models.Strategy{
		Label: "Iron Condor",
		Legs: []models.Leg{
			{Type: models.LegPut, Strike: p.Strike - near, Premium: p.PutPremium * condorNearScale, Qty: p.Qty, Side: models.SideShort},
			{Type: models.LegPut, Strike: p.Strike - far, Premium: p.PutPremium * condorFarScale, Qty: p.Qty, Side: models.SideLong},
			{Type: models.LegCall, Strike: p.Strike + near, Premium: p.CallPremium * condorNearScale, Qty: p.Qty, Side: models.SideShort},
			{Type: models.LegCall, Strike: p.Strike + far, Premium: p.CallPremium * condorFarScale, Qty: p.Qty, Side: models.SideLong},
		},
	}
}

func buildBullCallSpread(p Params) models.Strategy {
	w := p.width()
	kBuy := clampStrike(p.Strike - w/2)
	kSell := kBuy + w
	return models.Strategy{
		Label: fmt.Sprintf("Bull Call Spread (%.0f->%.0f)", kBuy, kSell),
		Legs: []models.Leg{
			{Type: models.LegCall, Strike: kBuy, Premium: p.CallPremium * spreadLongScale, Qty: p.Qty, Side: models.SideLong},
			{Type: models.LegCall, Strike: kSell, Premium: p.CallPremium * spreadShortScale, Qty: p.Qty, Side: models.SideShort},
		},
	}
}

func buildButterfly(p Params) models.Strategy {
	wing := 1.5 * p.width()
	kLow := p.Strike - wing
	kHigh := p.Strike + wing
	return models.Strategy{
		Label: fmt.Sprintf("Long Butterfly (%.0f,%.0f,%.0f)", kLow, p.Strike, kHigh),
		Legs: []models.Leg{
			{Type: models.LegCall, Strike: kLow, Premium: p.CallPremium * butterflyWingScale, Qty: p.Qty, Side: models.SideLong},
			{Type: models.LegCall, Strike: p.Strike, Premium: p.CallPremium * butterflyBodyScale, Qty: p.Qty * 2, Side: models.SideShort},
			{Type: models.LegCall, Strike: kHigh, Premium: p.CallPremium * butterflyWingScale, Qty: p.Qty, Side: models.SideLong},
		},
	}
}

func clampStrike(k float64) float64 {
	if k < MinStrike {
		return MinStrike
	}
	return k
}

// Describe returns a one-line description for a strategy kind.
func Describe(kind Kind) string {
	switch kind {
	case Straddle:
		return "Buy ATM Call + Put at the same strike"
	case Strangle:
		return "Buy OTM Put below and OTM Call above the strike"
	case IronCondor:
		return "Sell near OTM Call + Put, buy further OTM wings"
	case BullCallSpread:
		return "Buy lower strike Call, sell higher strike Call"
	case Butterfly:
		return "Buy wings, sell 2x the body, calls only"
	default:
		return ""
	}
}
