package types

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent_Fraction(t *testing.T) {
	cases := []struct {
		in   Percent
		want float64
	}{
		{0, 0},
		{8.8, 0.088},
		{91.6, 0.916},
		{100, 1},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			require.InDelta(t, tc.want, tc.in.Fraction(), 1e-12)
			require.InDelta(t, tc.want, float64(tc.in.Hazard()), 1e-12)
		})
	}
}

func TestPercent_String(t *testing.T) {
	assert.Equal(t, "35.5%", Percent(35.5).String())
	assert.Equal(t, "2.9%", Percent(2.9).String())
}

func TestHazard_CompoundIdentity(t *testing.T) {
	h := Hazard(0.2)
	assert.InDelta(t, 0.2, float64(h.Compound(1)), 1e-12)
	assert.InDelta(t, 0.0, float64(h.Compound(0)), 1e-12)
}

func TestHazard_CompoundQuarterly(t *testing.T) {
	// 3 monthly draws at 10% each: 1 - 0.9^3
	h := Hazard(0.1).Compound(3)
	assert.InDelta(t, 1-math.Pow(0.9, 3), float64(h), 1e-12)
	assert.Greater(t, float64(h), 0.1)
}

func TestHazard_CompoundRoundTrip(t *testing.T) {
	annual := Hazard(0.6)
	quarterly := annual.Compound(0.25)
	assert.InDelta(t, 1-math.Pow(0.4, 0.25), float64(quarterly), 1e-12)
	assert.InDelta(t, 0.6, float64(quarterly.Compound(4)), 1e-12)
}

func TestHazard_Valid(t *testing.T) {
	assert.True(t, Hazard(0.5).Valid())
	assert.False(t, Hazard(0).Valid())
	assert.False(t, Hazard(1).Valid())
	assert.False(t, Hazard(-0.1).Valid())
}

func TestHazard_Duration(t *testing.T) {
	assert.InDelta(t, 10.0, Hazard(0.1).Duration(), 1e-12)
	assert.True(t, math.IsInf(Hazard(0).Duration(), 1))
}
