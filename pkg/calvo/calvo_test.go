package calvo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_ZeroInflation(t *testing.T) {
	r, err := Solve(math.Pow(0.96, 1.0/12), 0.087, 8, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r.PstarOverP, 1e-12)
	assert.InDelta(t, 1.0, r.NU, 1e-12)
	assert.InDelta(t, 1.0, r.Efficiency, 1e-12)
	assert.InDelta(t, 7.0/8.0, r.MC, 1e-12)
}

func TestSolve_PositiveInflation(t *testing.T) {
	r, err := Solve(math.Pow(0.96, 1.0/12), 0.087, 8, math.Pow(1.02, 1.0/12))
	require.NoError(t, err)
	assert.Greater(t, r.PstarOverP, 1.0, "resetters overshoot the average price")
	assert.Greater(t, r.NU, 1.0)
	assert.Less(t, r.Efficiency, 1.0)
	assert.InDelta(t, r.MC*r.NU, r.RealCost(), 1e-15)
	t.Logf("P*/P=%.6f MC=%.6f NU=%.6f", r.PstarOverP, r.MC, r.NU)
}

func TestSolve_FlexiblePrices(t *testing.T) {
	// λ = 1: all prices reset every period, no dispersion at any inflation
	r, err := Solve(0.99, 1, 6, 1.05)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r.PstarOverP, 1e-12)
	assert.InDelta(t, 1.0, r.NU, 1e-12)
	assert.InDelta(t, 5.0/6.0, r.MC, 1e-12)
}

func TestSolve_InvalidInput(t *testing.T) {
	cases := []struct {
		name                       string
		beta, lambda, sigma, pistar float64
	}{
		{"beta", 1, 0.1, 8, 1},
		{"lambda", 0.99, 0, 8, 1},
		{"sigma", 0.99, 0.1, 1, 1},
		{"pistar", 0.99, 0.1, 8, 0},
		{"infeasible reset price", 0.99, 0.1, 8, 1.05},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Solve(tc.beta, tc.lambda, tc.sigma, tc.pistar)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSolve_Divergence(t *testing.T) {
	_, err := Solve(math.Pow(0.96, 1.0/12), 0.1, 8, 1.014)
	require.ErrorIs(t, err, ErrSolverDivergence)
}
