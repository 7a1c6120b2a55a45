package util

import (
	"math"
	"strconv"
)

// Map applies f to every element of in and returns the results in order.
func Map[T, U any](in []T, f func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

// SumFunc reduces in to the sum of f over its elements.
func SumFunc[T any](in []T, f func(T) float64) float64 {
	var s float64
	for _, v := range in {
		s += f(v)
	}
	return s
}

// Sum returns the sum of xs.
func Sum(xs []float64) float64 {
	return SumFunc(xs, func(x float64) float64 { return x })
}

// AlmostEqual reports whether |a-b| <= tol.
func AlmostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FmtFloat formats x with the shortest representation that round-trips.
func FmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
