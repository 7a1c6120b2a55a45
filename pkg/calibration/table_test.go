package calibration

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	assert.Equal(t, []int{6, 9, 11, 14}, Supported())
}

func TestLookup_AllTables(t *testing.T) {
	for _, n := range Supported() {
		t.Run(fmt.Sprintf("sectors_%d", n), func(t *testing.T) {
			w, l, err := Lookup(n, Monthly)
			require.NoError(t, err)
			require.Len(t, w, n)
			require.Len(t, l, n)

			var sum float64
			for j := range w {
				sum += w[j]
				assert.Greater(t, w[j], 0.0)
				assert.Greater(t, l[j], 0.0, "sector %d", j)
				assert.Less(t, l[j], 1.0, "sector %d", j)
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		})
	}
}

func TestLookup_FourteenSectors(t *testing.T) {
	w, l, err := Lookup(14, Monthly)
	require.NoError(t, err)

	var sum float64
	for _, x := range w {
		sum += x
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.InDelta(t, 0.916, l[0], 1e-12)
	assert.InDelta(t, 0.029, l[13], 1e-12)
	assert.InDelta(t, 7.7/100.0, w[0], 1e-12, "raw 14-sector weights total 100")
}

func TestLookup_Quarterly(t *testing.T) {
	_, monthly, err := Lookup(6, Monthly)
	require.NoError(t, err)
	_, quarterly, err := Lookup(6, Quarterly)
	require.NoError(t, err)

	for j := range monthly {
		want := 1 - math.Pow(1-monthly[j], 3)
		assert.InDelta(t, want, quarterly[j], 1e-12, "sector %d", j)
		assert.Greater(t, quarterly[j], monthly[j])
	}
}

func TestLookup_FractionalPeriod(t *testing.T) {
	_, half, err := Lookup(9, 0.5)
	require.NoError(t, err)
	_, monthly, err := Lookup(9, Monthly)
	require.NoError(t, err)
	for j := range half {
		assert.InDelta(t, monthly[j], 1-math.Pow(1-half[j], 2), 1e-12)
	}
}

func TestLookup_Unsupported(t *testing.T) {
	for _, n := range []int{0, 1, 7, 15, -6} {
		_, _, err := Lookup(n, Monthly)
		require.ErrorIs(t, err, ErrUnsupportedConfiguration, "sectors=%d", n)
		assert.Contains(t, err.Error(), fmt.Sprintf("%d sectors", n))
	}
}

func TestLookup_InvalidPeriod(t *testing.T) {
	for _, m := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, _, err := Lookup(14, m)
		require.ErrorIs(t, err, ErrInvalidPeriod)
	}
}

func TestRaw_ReturnsCopy(t *testing.T) {
	a, err := Raw(6)
	require.NoError(t, err)
	a.Weights[0] = 999
	a.Freqs[0] = 0

	b, err := Raw(6)
	require.NoError(t, err)
	assert.Equal(t, 7.7, b.Weights[0])
	assert.InDelta(t, 91.6, float64(b.Freqs[0]), 1e-12)
	assert.NotEmpty(t, b.Source)
}

func TestTable_Monthly(t *testing.T) {
	tb := Table{Weights: []float64{1, 3}, Freqs: nil}
	w, h := tb.Monthly()
	assert.Equal(t, []float64{0.25, 0.75}, w)
	assert.Empty(t, h)
}
