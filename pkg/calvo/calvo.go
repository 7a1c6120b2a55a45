// Package calvo solves the steady state of the one-sector Calvo model. It is
// the reference the multi-sector solver must reproduce when there is a single
// sector with weight one.
package calvo

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput indicates parameters outside the model domain or a
	// reset price ratio that does not exist at this trend inflation.
	ErrInvalidInput = errors.New("calvo: invalid input")

	// ErrSolverDivergence indicates a non-positive marginal cost.
	ErrSolverDivergence = errors.New("calvo: solver divergence")
)

// Result is the one-sector steady state.
type Result struct {
	// Efficiency is 1/NU, output per unit of labor relative to the
	// undistorted allocation.
	Efficiency float64 `json:"efficiency"`
	MC         float64 `json:"mc"`
	NU         float64 `json:"nu"`
	PstarOverP float64 `json:"pstar_over_p"`
}

// RealCost returns MC*NU.
func (r Result) RealCost() float64 { return r.MC * r.NU }

// Solve returns the steady state for discount factor beta, reset hazard
// lambda, elasticity sigma and gross trend inflation pistar.
func Solve(beta, lambda, sigma, pistar float64) (Result, error) {
	switch {
	case !(beta > 0 && beta < 1):
		return Result{}, fmt.Errorf("%w: beta must be in (0,1), got %g", ErrInvalidInput, beta)
	case !(lambda > 0 && lambda <= 1):
		return Result{}, fmt.Errorf("%w: lambda must be in (0,1], got %g", ErrInvalidInput, lambda)
	case !(sigma > 1):
		return Result{}, fmt.Errorf("%w: sigma must be > 1, got %g", ErrInvalidInput, sigma)
	case !(pistar > 0):
		return Result{}, fmt.Errorf("%w: pistar must be positive, got %g", ErrInvalidInput, pistar)
	}

	keep := 1 - lambda
	pstar := math.Pow((1-keep*math.Pow(pistar, sigma-1))/lambda, 1/(1-sigma))
	if !(pstar > 0) || math.IsInf(pstar, 0) {
		return Result{}, fmt.Errorf("%w: reset price ratio %g (lambda=%g, pistar=%g, sigma=%g)",
			ErrInvalidInput, pstar, lambda, pistar, sigma)
	}

	// from the reset-price FOC: P*/P = σ/(σ-1) · MC · (1-(1-λ)βΠ^(σ-1))/(1-(1-λ)βΠ^σ)
	mc := (sigma - 1) / sigma * pstar *
		(1 - keep*beta*math.Pow(pistar, sigma)) / (1 - keep*beta*math.Pow(pistar, sigma-1))
	if !(mc > 0) {
		return Result{}, fmt.Errorf("%w: marginal cost %g (lambda=%g, pistar=%g)", ErrSolverDivergence, mc, lambda, pistar)
	}

	nu := lambda * math.Pow(pstar, -sigma) / (1 - keep*math.Pow(pistar, sigma))
	if !(nu > 0) || math.IsInf(nu, 0) {
		return Result{}, fmt.Errorf("%w: dispersion %g (lambda=%g, pistar=%g)", ErrSolverDivergence, nu, lambda, pistar)
	}

	return Result{Efficiency: 1 / nu, MC: mc, NU: nu, PstarOverP: pstar}, nil
}
