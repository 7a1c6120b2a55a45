// Package steadystate computes the closed-form steady state of a multi-sector
// New-Keynesian model with Calvo pricing under constant trend inflation.
//
// Overview
//
//   - Params carries the structural parameters: discount factor (Beta),
//     per-sector adjustment hazards (Lambdas), gross trend inflation (Pistar),
//     within-sector elasticity (Sigma), across-sector elasticity (Tau) and
//     sector expenditure weights (Weights).
//
//   - Solve(Params) (Result, error) runs one pass over the sectors, computes
//     each sector's reset price ratio, dispersion term and pricing FOC term,
//     then reduces them to aggregate marginal cost MC and dispersion NU.
//
//   - Errors (errs.go):
//     ErrInvalidInput     : weights off one by more than 1e-6, bad lengths, or a
//     sector whose reset price ratio is not positive
//     ErrSolverDivergence : negative FOC term or non-positive aggregation sum
//     ErrInvalidResult    : negative sector dispersion or non-finite aggregates
//
//     Sector-indexed failures are *SectorError values carrying the sector
//     index, its lambda, and the pistar/sigma in use.
//
// Zero inflation
//
// At Pistar = 1 every reset price ratio and every NUj is one, all sectors price
// at the aggregate index (PjoverP = 1), NU = 1 and MC = (Sigma-1)/Sigma, so
// MarkupAdjustedMC() = 1.
//
// Feasibility
//
// For a sector with hazard λ the reset price ratio exists only while
// (1-λ)·Pistar^(Sigma-1) < 1. Past that point Solve returns ErrInvalidInput
// naming the sector.
//
// Example
//
//	p := steadystate.Params{
//	    Beta:    math.Pow(0.96, 1.0/12),
//	    Lambdas: []float64{0.1, 0.2},
//	    Pistar:  math.Pow(1.02, 1.0/12),
//	    Sigma:   8,
//	    Tau:     8,
//	    Weights: []float64{0.5, 0.5},
//	}
//	res, err := steadystate.Solve(p)
//	if err != nil {
//	    var se *steadystate.SectorError
//	    if errors.As(err, &se) {
//	        log.Printf("sector %d infeasible (lambda=%g)", se.Sector, se.Lambda)
//	    }
//	    return err
//	}
//	fmt.Printf("profit share: %.4f\n", res.ProfitShare())
//
// Solve is a pure function: it keeps no state and may be called from many
// goroutines at once.
package steadystate
