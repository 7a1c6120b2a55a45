package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_PreservesOrder(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(i int) float64 { return float64(i) * 0.5 })
	require.Len(t, got, 3)
	assert.Equal(t, []float64{0.5, 1, 1.5}, got)
}

func TestMap_Empty(t *testing.T) {
	got := Map([]int{}, func(i int) int { return i })
	assert.Empty(t, got)
}

func TestSumFunc_Weighted(t *testing.T) {
	type pair struct{ w, x float64 }
	in := []pair{{0.25, 4}, {0.75, 8}}
	got := SumFunc(in, func(p pair) float64 { return p.w * p.x })
	assert.InDelta(t, 7.0, got, 1e-12)
}

func TestSum(t *testing.T) {
	assert.InDelta(t, 1.0, Sum([]float64{0.2, 0.3, 0.5}), 1e-12)
	assert.Equal(t, 0.0, Sum(nil))
}

func TestAlmostEqual(t *testing.T) {
	assert.True(t, AlmostEqual(1, 1+1e-9, 1e-6))
	assert.False(t, AlmostEqual(1, 0.9, 1e-6))
	// NaN never compares equal
	assert.False(t, AlmostEqual(math.NaN(), 1, 1))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-12.5))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestFmtFloat(t *testing.T) {
	assert.Equal(t, "0.875", FmtFloat(0.875))
	assert.Equal(t, "1", FmtFloat(1))
	assert.Equal(t, "1e-10", FmtFloat(1e-10))
}
