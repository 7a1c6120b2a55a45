// Package profit calibrates a fixed production cost so that the steady-state
// profit share hits a target at zero trend inflation, and evaluates the
// implied profit share at other steady states.
//
// With real cost c = MC·NU and intermediate-goods share s_m the profit share
// net of the fixed cost f is
//
//	(1 - c - f) / (1 - s_m·c)
//
// s_m = 0 gives the model without intermediate goods.
package profit

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerate indicates a zero or non-finite profit-share denominator, or
// non-finite calibration inputs.
var ErrDegenerate = errors.New("profit: degenerate calibration")

// DefaultIntermediateShare is the intermediate-input share 8/7·0.52.
const DefaultIntermediateShare = 8.0 / 7.0 * 0.52

// Outcome is a steady state that reports its real cost MC·NU.
// steadystate.Result and calvo.Result both satisfy it.
type Outcome interface {
	RealCost() float64
}

// Model is a calibrated fixed cost.
type Model struct {
	Target            float64 `json:"target"`
	IntermediateShare float64 `json:"intermediate_share"`
	FixedCost         float64 `json:"fixed_cost"`
}

// Calibrate returns the fixed cost that makes the profit share at base equal
// target.
func Calibrate(target, intermediateShare float64, base Outcome) (Model, error) {
	if math.IsNaN(target) || math.IsInf(target, 0) || math.IsNaN(intermediateShare) || math.IsInf(intermediateShare, 0) {
		return Model{}, fmt.Errorf("%w: target=%g intermediate share=%g", ErrDegenerate, target, intermediateShare)
	}
	c := base.RealCost()
	if _, err := denominator(intermediateShare, c); err != nil {
		return Model{}, err
	}
	return Model{
		Target:            target,
		IntermediateShare: intermediateShare,
		FixedCost:         1 - c - target*(1-intermediateShare*c),
	}, nil
}

// Share returns the profit share at o net of the calibrated fixed cost.
func (m Model) Share(o Outcome) (float64, error) {
	c := o.RealCost()
	den, err := denominator(m.IntermediateShare, c)
	if err != nil {
		return 0, err
	}
	return (1 - c - m.FixedCost) / den, nil
}

// Gross returns 1 - MC·NU, the profit share before fixed costs.
func Gross(o Outcome) float64 { return 1 - o.RealCost() }

func denominator(sm, c float64) (float64, error) {
	den := 1 - sm*c
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return 0, fmt.Errorf("%w: 1 - s_m*MC*NU = %g (s_m=%g, MC*NU=%g)", ErrDegenerate, den, sm, c)
	}
	return den, nil
}
