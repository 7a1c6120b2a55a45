package steadystate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a malformed parameter set: weights that do not
	// sum to one, mismatched lengths, or a sector whose reset-price ratio is
	// not strictly positive. Adjust the parameters and retry.
	ErrInvalidInput = errors.New("steadystate: invalid input")

	// ErrSolverDivergence indicates the closed form produced a value with no
	// economic meaning (negative FOC term, non-positive aggregation sum). The
	// parameter combination lies outside the model's valid region.
	ErrSolverDivergence = errors.New("steadystate: solver divergence")

	// ErrInvalidResult indicates a post-condition failure on the computed
	// steady state (negative sector dispersion, non-finite aggregates).
	ErrInvalidResult = errors.New("steadystate: invalid result")
)

// SectorError reports a failure tied to one sector. It unwraps to one of the
// package sentinels, so callers can match with errors.Is and read the
// offending values with errors.As.
type SectorError struct {
	Kind   error
	Sector int
	Lambda float64
	Pistar float64
	Sigma  float64
	Value  float64
	Reason string
}

func (e *SectorError) Error() string {
	return fmt.Sprintf("%v: sector %d (lambda=%g, pistar=%g, sigma=%g): %s (got %g)",
		e.Kind, e.Sector, e.Lambda, e.Pistar, e.Sigma, e.Reason, e.Value)
}

func (e *SectorError) Unwrap() error { return e.Kind }
