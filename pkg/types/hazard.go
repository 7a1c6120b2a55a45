package types

import (
	"fmt"
	"math"
)

// Percent is a frequency stored in percentage points (e.g. 8.8 means 8.8%).
type Percent float64

// Fraction returns the percentage as a fraction in [0,1] (for valid inputs).
func (p Percent) Fraction() float64 { return float64(p) / 100 }

// Hazard returns the percentage as a per-period adjustment probability.
func (p Percent) Hazard() Hazard { return Hazard(p.Fraction()) }

// String renders the value with one decimal, e.g. "35.5%".
func (p Percent) String() string { return fmt.Sprintf("%.1f%%", float64(p)) }

// Hazard is the probability that a price is reset within one period.
type Hazard float64

// Survival returns the probability that a price is not reset within one period.
func (h Hazard) Survival() float64 { return 1 - float64(h) }

// Compound converts a one-period hazard to the hazard over n periods:
//
//	1 - (1-h)^n
//
// n need not be an integer; n = 1/3 turns a quarterly hazard into a monthly one.
func (h Hazard) Compound(n float64) Hazard {
	return Hazard(1 - math.Pow(h.Survival(), n))
}

// Valid reports whether the hazard lies in the open interval (0,1).
func (h Hazard) Valid() bool { return h > 0 && h < 1 }

// Duration returns the expected spell length 1/h in periods.
func (h Hazard) Duration() float64 {
	if h <= 0 {
		return math.Inf(1)
	}
	return 1 / float64(h)
}
