package simulate

import (
	"errors"
	"math"
	"testing"

	errs "optionsim/internal/errors"
	"optionsim/internal/models"
)

func validParams() Params {
	return Params{
		Spot:        24900,
		Drift:       0.06,
		Sigma:       0.18,
		HorizonDays: 9,
		Samples:     2000,
		Seed:        DefaultSeed,
	}
}

func TestTerminalPricesZeroHorizon(t *testing.T) {
	p := validParams()
	p.Spot = 100
	p.HorizonDays = 0

	prices, err := TerminalPrices(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(prices) != 1 || prices[0] != 100 {
		t.Errorf("got %v, want [100]", prices)
	}
}

func TestTerminalPricesDeterministic(t *testing.T) {
	p := validParams()

	a, err := TerminalPrices(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := TerminalPrices(p)
	if err != nil {
		t.Fatal(err)
	}

	if len(a) != p.Samples {
		t.Fatalf("got %d samples, want %d", len(a), p.Samples)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("samples diverge at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestTerminalPricesSeedChangesSamples(t *testing.T) {
	p := validParams()
	a, err := TerminalPrices(p)
	if err != nil {
		t.Fatal(err)
	}

	p.Seed = 7
	b, err := TerminalPrices(p)
	if err != nil {
		t.Fatal(err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical samples")
	}
}

func TestTerminalPricesPositive(t *testing.T) {
	prices, err := TerminalPrices(validParams())
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range prices {
		if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			t.Fatalf("sample %d = %v, want positive finite", i, s)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero spot", func(p *Params) { p.Spot = 0 }},
		{"negative spot", func(p *Params) { p.Spot = -100 }},
		{"zero sigma", func(p *Params) { p.Sigma = 0 }},
		{"negative sigma", func(p *Params) { p.Sigma = -0.2 }},
		{"negative horizon", func(p *Params) { p.HorizonDays = -1 }},
		{"zero samples", func(p *Params) { p.Samples = 0 }},
		{"negative samples", func(p *Params) { p.Samples = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)

			_, err := TerminalPrices(p)
			if !errors.Is(err, errs.ErrInvalidParameters) {
				t.Errorf("err = %v, want ErrInvalidParameters", err)
			}

			var valErr *errs.ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("err type = %T, want ValidationError", err)
			}
		})
	}
}

func straddleLegs() []models.Leg {
	return []models.Leg{
		{Type: models.LegCall, Strike: 25000, Premium: 380, Qty: 1, Side: models.SideLong},
		{Type: models.LegPut, Strike: 25000, Premium: 360, Qty: 1, Side: models.SideLong},
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	p := validParams()

	a, err := Analyze(straddleLegs(), p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Analyze(straddleLegs(), p)
	if err != nil {
		t.Fatal(err)
	}

	if a != b {
		t.Errorf("identical inputs gave %+v and %+v", a, b)
	}
}

func TestAnalyzeProbabilityBounds(t *testing.T) {
	a, err := Analyze(straddleLegs(), validParams())
	if err != nil {
		t.Fatal(err)
	}

	if a.ProbProfit < 0 || a.ProbProfit > 1 {
		t.Errorf("ProbProfit = %v, want in [0,1]", a.ProbProfit)
	}
	if a.DownsidePct < 0 || a.DownsidePct > 1 {
		t.Errorf("DownsidePct = %v, want in [0,1]", a.DownsidePct)
	}
	if a.ProbProfit+a.DownsidePct > 1 {
		t.Errorf("ProbProfit + DownsidePct = %v, want <= 1", a.ProbProfit+a.DownsidePct)
	}
}

func TestAnalyzeZeroHorizon(t *testing.T) {
	p := validParams()
	p.Spot = 25000
	p.HorizonDays = 0

	// Single sample at the strike: both options expire worthless.
	a, err := Analyze(straddleLegs(), p)
	if err != nil {
		t.Fatal(err)
	}

	if a.EV != -740 || a.Median != -740 {
		t.Errorf("EV/Median = %v/%v, want -740/-740", a.EV, a.Median)
	}
	if a.ProbProfit != 0 || a.DownsidePct != 1 {
		t.Errorf("probabilities = %v/%v, want 0/1", a.ProbProfit, a.DownsidePct)
	}
}

func TestAnalyzeEmptyStrategy(t *testing.T) {
	// Zero payoff everywhere: exact zeros count toward neither profit
	// nor downside.
	a, err := Analyze(nil, validParams())
	if err != nil {
		t.Fatal(err)
	}

	if a.EV != 0 || a.Median != 0 {
		t.Errorf("EV/Median = %v/%v, want 0/0", a.EV, a.Median)
	}
	if a.ProbProfit != 0 || a.DownsidePct != 0 {
		t.Errorf("probabilities = %v/%v, want 0/0", a.ProbProfit, a.DownsidePct)
	}
}

func TestAnalyzeUnknownLegType(t *testing.T) {
	legs := []models.Leg{{Type: "SWAP", Strike: 25000, Qty: 1, Side: models.SideLong}}

	_, err := Analyze(legs, validParams())
	if !errors.Is(err, errs.ErrUnknownLegType) {
		t.Errorf("err = %v, want ErrUnknownLegType", err)
	}
}
