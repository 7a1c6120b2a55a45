// Package calibration holds sector weights and monthly price-change
// frequencies from Nakamura and Steinsson (2008, 2010) and turns them into
// inputs for the steady-state solver.
package calibration

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/ja7ad/calvoss/pkg/types"
	"github.com/ja7ad/calvoss/pkg/util"
)

var (
	// ErrUnsupportedConfiguration indicates a sector count with no table.
	ErrUnsupportedConfiguration = errors.New("calibration: unsupported configuration")

	// ErrInvalidPeriod indicates a non-positive or non-finite period length.
	ErrInvalidPeriod = errors.New("calibration: invalid period length")
)

// Common period lengths, in months.
const (
	Monthly   = 1.0
	Quarterly = 3.0
	Annual    = 12.0
)

// Table is one raw partition: expenditure weights (any scale) and monthly
// frequencies of price change in percent, in matching order.
type Table struct {
	Source  string
	Weights []float64
	Freqs   []types.Percent
}

var tables = map[int]Table{
	6: {
		Source:  "Nakamura-Steinsson (2010), Table 2",
		Weights: []float64{7.7, 19.1, 5.9, 13.7, 38.5, 15.1},
		Freqs:   []types.Percent{91.6, 35.5, 25.4, 11.9, 8.8, 5.2},
	},
	9: {
		Source:  "Nakamura-Steinsson (2010), Table 2",
		Weights: []float64{7.7, 19.1, 5.9, 9.2, 13.7, 9.6, 10.0, 15.1, 9.7},
		Freqs:   []types.Percent{91.6, 35.5, 25.4, 19.7, 11.9, 7.6, 5.5, 5.2, 3.2},
	},
	11: {
		Source:  "Nakamura-Steinsson (2008), Five Facts About Prices, Table 2",
		Weights: []float64{8.2, 5.9, 5.0, 6.5, 8.3, 3.6, 5.4, 5.3, 5.1, 5.5, 38.5},
		Freqs:   []types.Percent{10.5, 25.0, 6.0, 3.6, 31.3, 6.0, 15.0, 38.1, 87.6, 41.7, 6.1},
	},
	14: {
		Source:  "Nakamura-Steinsson (2010), Table 2",
		Weights: []float64{7.7, 5.3, 5.5, 5.9, 8.3, 7.7, 13.7, 7.5, 5.0, 7.8, 3.6, 7.6, 6.5, 7.9},
		Freqs:   []types.Percent{91.6, 49.4, 43.7, 25.4, 21.3, 21.7, 11.9, 8.4, 6.5, 6.2, 6.1, 4.9, 3.6, 2.9},
	},
}

// Supported lists the sector counts with a table, ascending.
func Supported() []int {
	out := make([]int, 0, len(tables))
	for n := range tables {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Raw returns a copy of the un-normalized table for the given sector count.
func Raw(sectors int) (Table, error) {
	t, ok := tables[sectors]
	if !ok {
		return Table{}, fmt.Errorf("%w: no table for %d sectors (supported: %v)",
			ErrUnsupportedConfiguration, sectors, Supported())
	}
	return Table{
		Source:  t.Source,
		Weights: slices.Clone(t.Weights),
		Freqs:   slices.Clone(t.Freqs),
	}, nil
}

// Monthly returns weights normalized to sum to one and monthly hazards as
// fractions.
func (t Table) Monthly() (weights []float64, hazards []types.Hazard) {
	total := util.Sum(t.Weights)
	weights = util.Map(t.Weights, func(w float64) float64 { return w / total })
	hazards = util.Map(t.Freqs, types.Percent.Hazard)
	return weights, hazards
}

// Lookup returns normalized weights and per-period hazards for the given
// sector count. A monthly hazard f becomes 1-(1-f)^monthsPerPeriod, so
// monthsPerPeriod = 3 gives quarterly hazards.
func Lookup(sectors int, monthsPerPeriod float64) (weights, lambdas []float64, err error) {
	if !(monthsPerPeriod > 0) || math.IsInf(monthsPerPeriod, 0) {
		return nil, nil, fmt.Errorf("%w: %g months per period", ErrInvalidPeriod, monthsPerPeriod)
	}
	t, err := Raw(sectors)
	if err != nil {
		return nil, nil, err
	}
	weights, monthly := t.Monthly()
	lambdas = util.Map(monthly, func(h types.Hazard) float64 {
		return float64(h.Compound(monthsPerPeriod))
	})
	return weights, lambdas, nil
}
