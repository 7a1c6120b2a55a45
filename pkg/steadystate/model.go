package steadystate

import (
	"math"

	"github.com/ja7ad/calvoss/pkg/util"
)

// WeightTolerance is the allowed deviation of sum(Weights) from one.
const WeightTolerance = 1e-6

// Params is the structural parameter set of the multi-sector model.
// All rates are per model period.
//   - Beta: discount factor, 0 < Beta < 1
//   - Lambdas: per-sector Calvo adjustment hazards in (0,1]
//   - Pistar: gross trend inflation, > 0 (1 means zero inflation)
//   - Sigma: within-sector elasticity of substitution, > 1
//   - Tau: across-sector elasticity of substitution
//   - Weights: sector expenditure shares, summing to one
type Params struct {
	Beta    float64   `json:"beta" mapstructure:"beta"`
	Lambdas []float64 `json:"lambdas" mapstructure:"lambdas"`
	Pistar  float64   `json:"pistar" mapstructure:"pistar"`
	Sigma   float64   `json:"sigma" mapstructure:"sigma"`
	Tau     float64   `json:"tau" mapstructure:"tau"`
	Weights []float64 `json:"weights" mapstructure:"weights"`
}

// DefaultParams returns a monthly two-sector benchmark: 4% annual discounting,
// 2% annual trend inflation and SIGMA = TAU = 8.
func DefaultParams() Params {
	return Params{
		Beta:    math.Pow(0.96, 1.0/12),
		Lambdas: []float64{0.2, 0.1},
		Pistar:  math.Pow(1.02, 1.0/12),
		Sigma:   8,
		Tau:     8,
		Weights: []float64{0.4, 0.6},
	}
}

// Sector pairs the weight and hazard of one sector.
type Sector struct {
	Index  int     `json:"index"`
	Weight float64 `json:"weight"`
	Lambda float64 `json:"lambda"`
}

// Sectors zips Weights and Lambdas. The shorter length wins; Validate
// rejects mismatched lengths before Solve gets here.
func (p Params) Sectors() []Sector {
	n := min(len(p.Weights), len(p.Lambdas))
	out := make([]Sector, n)
	for j := 0; j < n; j++ {
		out[j] = Sector{Index: j, Weight: p.Weights[j], Lambda: p.Lambdas[j]}
	}
	return out
}

// SectorResult holds the steady-state values of one sector.
type SectorResult struct {
	Sector
	PjstaroverPj float64 `json:"pj_star_over_pj"` // optimal reset price relative to the sector index
	NUj          float64 `json:"nu_j"`           // sector price dispersion
	TermInFOC    float64 `json:"term_in_foc"`    // sector pricing FOC term
	PjoverP      float64 `json:"pj_over_p"`      // sector price relative to the aggregate index
}

// Result is the aggregate steady state.
type Result struct {
	MC      float64        `json:"mc"`
	NU      float64        `json:"nu"`
	Sigma   float64        `json:"sigma"`
	Tau     float64        `json:"tau"`
	Sectors []SectorResult `json:"sectors"`
}

// RealCost returns MC*NU, the aggregate real cost per unit of output.
func (r Result) RealCost() float64 { return r.MC * r.NU }

// ProfitShare returns 1 - MC*NU.
func (r Result) ProfitShare() float64 { return 1 - r.RealCost() }

// MarkupAdjustedMC returns MC scaled by the flexible-price markup
// SIGMA/(SIGMA-1). It equals one at zero trend inflation.
func (r Result) MarkupAdjustedMC() float64 { return r.MC * r.Sigma / (r.Sigma - 1) }

// PjstaroverPj returns the per-sector reset price ratios in sector order.
func (r Result) PjstaroverPj() []float64 {
	return util.Map(r.Sectors, func(s SectorResult) float64 { return s.PjstaroverPj })
}

// NUj returns the per-sector dispersion terms in sector order.
func (r Result) NUj() []float64 {
	return util.Map(r.Sectors, func(s SectorResult) float64 { return s.NUj })
}

// TermInFOC returns the per-sector FOC terms in sector order.
func (r Result) TermInFOC() []float64 {
	return util.Map(r.Sectors, func(s SectorResult) float64 { return s.TermInFOC })
}

// PjoverP returns the per-sector relative price levels in sector order.
func (r Result) PjoverP() []float64 {
	return util.Map(r.Sectors, func(s SectorResult) float64 { return s.PjoverP })
}
