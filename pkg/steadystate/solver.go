package steadystate

import (
	"fmt"
	"math"

	"github.com/ja7ad/calvoss/pkg/util"
)

// Validate checks the parameter set without solving the model.
func (p Params) Validate() error {
	if len(p.Lambdas) == 0 {
		return fmt.Errorf("%w: no sectors", ErrInvalidInput)
	}
	if len(p.Lambdas) != len(p.Weights) {
		return fmt.Errorf("%w: %d lambdas but %d weights", ErrInvalidInput, len(p.Lambdas), len(p.Weights))
	}
	if !(p.Beta > 0 && p.Beta < 1) {
		return fmt.Errorf("%w: beta must be in (0,1), got %g", ErrInvalidInput, p.Beta)
	}
	if !(p.Pistar > 0) || !util.IsFinite(p.Pistar) {
		return fmt.Errorf("%w: pistar must be positive, got %g", ErrInvalidInput, p.Pistar)
	}
	if !(p.Sigma > 1) || !util.IsFinite(p.Sigma) {
		return fmt.Errorf("%w: sigma must be > 1, got %g", ErrInvalidInput, p.Sigma)
	}
	if !util.IsFinite(p.Tau) {
		return fmt.Errorf("%w: tau must be finite, got %g", ErrInvalidInput, p.Tau)
	}
	for _, s := range p.Sectors() {
		if !(s.Lambda > 0 && s.Lambda <= 1) {
			return p.sectorErr(ErrInvalidInput, s, s.Lambda, "lambda must be in (0,1]")
		}
		if !(s.Weight >= 0) || !util.IsFinite(s.Weight) {
			return p.sectorErr(ErrInvalidInput, s, s.Weight, "weight must be non-negative")
		}
	}
	if sum := util.Sum(p.Weights); !util.AlmostEqual(sum, 1, WeightTolerance) {
		return fmt.Errorf("%w: weights must sum to 1, got %g", ErrInvalidInput, sum)
	}
	return nil
}

// Solve computes the closed-form steady state of the multi-sector Calvo
// model in a single pass over the sectors.
//
// Per sector j:
//
//	P*_j/P_j  = ((1 - (1-λ_j) Π^(σ-1)) / λ_j)^(1/(1-σ))
//	ν_j       = λ_j (P*_j/P_j)^(-σ) / (1 - (1-λ_j) Π^σ)
//	foc_j     = σ/(σ-1) · (1 - (1-λ_j) β Π^(σ-1)) / (1 - (1-λ_j) β Π^σ) / (P*_j/P_j)
//
// Aggregation:
//
//	S     = Σ_j w_j foc_j^(1-τ)
//	MC    = (1/S)^(1/(1-τ))
//	P_j/P = foc_j · MC
//	NU    = Σ_j w_j (P_j/P)^(-τ) ν_j
//
// At τ = 1 the aggregator is Cobb-Douglas and MC = exp(-Σ_j w_j ln foc_j).
//
// The result does not depend on sector order.
func Solve(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	sectors := p.Sectors()

	// Reset prices are checked for every sector before anything else so that
	// an infeasible sector is reported as invalid input, not divergence.
	out := make([]SectorResult, len(sectors))
	for j, s := range sectors {
		ratio, err := p.resetPrice(s)
		if err != nil {
			return Result{}, err
		}
		out[j] = SectorResult{Sector: s, PjstaroverPj: ratio}
	}

	for j := range out {
		if err := p.fillSector(&out[j]); err != nil {
			return Result{}, err
		}
	}

	mc, err := p.marginalCost(out)
	if err != nil {
		return Result{}, err
	}

	for j := range out {
		out[j].PjoverP = out[j].TermInFOC * mc
	}
	nu := util.SumFunc(out, func(s SectorResult) float64 {
		return s.Weight * math.Pow(s.PjoverP, -p.Tau) * s.NUj
	})

	res := Result{MC: mc, NU: nu, Sigma: p.Sigma, Tau: p.Tau, Sectors: out}
	if err := p.check(res); err != nil {
		return Result{}, err
	}
	return res, nil
}

func (p Params) resetPrice(s Sector) (float64, error) {
	bracket := (1 - (1-s.Lambda)*math.Pow(p.Pistar, p.Sigma-1)) / s.Lambda
	ratio := math.Pow(bracket, 1/(1-p.Sigma))
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return 0, p.sectorErr(ErrInvalidInput, s, ratio,
			"reset price ratio must be positive; too few prices adjust relative to trend inflation, "+
				"lower pistar or sigma, or raise lambda")
	}
	return ratio, nil
}

func (p Params) fillSector(r *SectorResult) error {
	keep := 1 - r.Lambda
	r.NUj = r.Lambda * math.Pow(r.PjstaroverPj, -p.Sigma) / (1 - keep*math.Pow(p.Pistar, p.Sigma))

	markup := p.Sigma / (p.Sigma - 1)
	num := 1 - keep*p.Beta*math.Pow(p.Pistar, p.Sigma-1)
	den := 1 - keep*p.Beta*math.Pow(p.Pistar, p.Sigma)
	r.TermInFOC = markup * num / den / r.PjstaroverPj
	if r.TermInFOC < 0 || !util.IsFinite(r.TermInFOC) {
		return p.sectorErr(ErrSolverDivergence, r.Sector, r.TermInFOC, "FOC term must be non-negative")
	}
	return nil
}

func (p Params) marginalCost(out []SectorResult) (float64, error) {
	if p.Tau == 1 {
		logSum := util.SumFunc(out, func(s SectorResult) float64 {
			return s.Weight * math.Log(s.TermInFOC)
		})
		if math.IsNaN(logSum) || math.IsInf(logSum, 0) {
			return 0, fmt.Errorf("%w: log aggregation sum is %g", ErrSolverDivergence, logSum)
		}
		return math.Exp(-logSum), nil
	}

	sumterm := util.SumFunc(out, func(s SectorResult) float64 {
		return s.Weight * math.Pow(s.TermInFOC, 1-p.Tau)
	})
	if !(sumterm > 0) {
		return 0, fmt.Errorf("%w: aggregation sum must be positive, got %g (tau=%g)", ErrSolverDivergence, sumterm, p.Tau)
	}
	return math.Pow(1/sumterm, 1/(1-p.Tau)), nil
}

func (p Params) check(r Result) error {
	for _, s := range r.Sectors {
		if !(s.NUj >= 0) {
			return p.sectorErr(ErrInvalidResult, s.Sector, s.NUj, "sector dispersion must be non-negative")
		}
	}
	if !(r.MC > 0) || !util.IsFinite(r.MC) {
		return fmt.Errorf("%w: marginal cost must be positive and finite, got %g", ErrInvalidResult, r.MC)
	}
	if !(r.NU > 0) || !util.IsFinite(r.NU) {
		return fmt.Errorf("%w: dispersion must be positive and finite, got %g", ErrInvalidResult, r.NU)
	}
	return nil
}

func (p Params) sectorErr(kind error, s Sector, value float64, reason string) error {
	return &SectorError{
		Kind:   kind,
		Sector: s.Index,
		Lambda: s.Lambda,
		Pistar: p.Pistar,
		Sigma:  p.Sigma,
		Value:  value,
		Reason: reason,
	}
}
