package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ja7ad/calvoss/pkg/calvo"
	"github.com/ja7ad/calvoss/pkg/profit"
	"github.com/ja7ad/calvoss/pkg/steadystate"
	"github.com/ja7ad/calvoss/pkg/types"
)

type profitRow struct {
	Model string
	Gross float64
	Basic float64
	Inter float64
}

func newProfitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profit",
		Short: "Profit share at trend inflation with fixed costs calibrated at zero inflation",
		Long: `Calibrates a fixed cost so the profit share equals --target at zero trend
inflation, with and without intermediate goods, for both the one-sector
reference model (hazard --basic-lambda) and the multi-sector model, then
reports the profit shares at --pistar.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			rows, err := profitRows(v)
			if err != nil {
				return err
			}
			printProfit(cmd.OutOrStdout(), v.GetFloat64("target"), rows)
			return nil
		},
	}

	addModelFlags(cmd.Flags())
	cmd.Flags().Float64("target", 0.1, "profit share at zero trend inflation")
	cmd.Flags().Float64("intermediate-share", profit.DefaultIntermediateShare, "intermediate-goods share s_m")
	cmd.Flags().Float64("basic-lambda", 0.087, "monthly hazard of the one-sector reference model")
	return cmd
}

func profitRows(v *viper.Viper) ([]profitRow, error) {
	p, err := modelParams(v)
	if err != nil {
		return nil, err
	}
	target := v.GetFloat64("target")
	sm := v.GetFloat64("intermediate-share")
	lambda := float64(types.Hazard(v.GetFloat64("basic-lambda")).Compound(v.GetFloat64("months-per-period")))

	zero := p
	zero.Pistar = 1

	basic0, err := calvo.Solve(p.Beta, lambda, p.Sigma, 1)
	if err != nil {
		return nil, fmt.Errorf("one-sector at zero inflation: %w", err)
	}
	basic, err := calvo.Solve(p.Beta, lambda, p.Sigma, p.Pistar)
	if err != nil {
		return nil, fmt.Errorf("one-sector: %w", err)
	}
	multi0, err := steadystate.Solve(zero)
	if err != nil {
		return nil, fmt.Errorf("multi-sector at zero inflation: %w", err)
	}
	multi, err := steadystate.Solve(p)
	if err != nil {
		return nil, fmt.Errorf("multi-sector: %w", err)
	}

	var rows []profitRow
	for _, c := range []struct {
		name       string
		base, here profit.Outcome
	}{
		{"one-sector", basic0, basic},
		{fmt.Sprintf("%d-sector", len(p.Lambdas)), multi0, multi},
	} {
		plain, err := profit.Calibrate(target, 0, c.base)
		if err != nil {
			return nil, err
		}
		inter, err := profit.Calibrate(target, sm, c.base)
		if err != nil {
			return nil, err
		}
		b, err := plain.Share(c.here)
		if err != nil {
			return nil, err
		}
		i, err := inter.Share(c.here)
		if err != nil {
			return nil, err
		}
		slog.Debug("calibrated", "model", c.name, "f_basic", plain.FixedCost, "f_intermediate", inter.FixedCost)
		rows = append(rows, profitRow{Model: c.name, Gross: profit.Gross(c.here), Basic: b, Inter: i})
	}
	return rows, nil
}

func printProfit(w io.Writer, target float64, rows []profitRow) {
	fmt.Fprintf(w, "profit share (target %.3f at zero inflation)\n\n", target)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\t1-MC*NU\tNET OF FIXED COST\tWITH INTERMEDIATE GOODS")
	fmt.Fprintln(tw, "-----\t-------\t-----------------\t-----------------------")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.6f\n", r.Model, r.Gross, r.Basic, r.Inter)
	}
	tw.Flush()
}
