package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ja7ad/calvoss/pkg/calibration"
	"github.com/ja7ad/calvoss/pkg/types"
)

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show a sector calibration table and the implied per-period hazards",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), v.GetInt("sectors"), v.GetFloat64("months-per-period"))
		},
	}
	cmd.Flags().Int("sectors", 14, "sector count (6, 9, 11, 14)")
	cmd.Flags().Float64("months-per-period", calibration.Monthly, "length of a model period in months")
	return cmd
}

func printTable(w io.Writer, sectors int, months float64) error {
	raw, err := calibration.Raw(sectors)
	if err != nil {
		return err
	}
	weights, lambdas, err := calibration.Lookup(sectors, months)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%d sectors, %g month(s) per period (%s)\n\n", sectors, months, raw.Source)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SECTOR\tRAW WEIGHT\tMONTHLY FREQ\tWEIGHT\tLAMBDA\tDURATION (periods)")
	fmt.Fprintln(tw, "------\t----------\t------------\t------\t------\t------------------")
	for j := range weights {
		fmt.Fprintf(tw, "%d\t%.1f\t%s\t%.4f\t%.4f\t%.2f\n",
			j, raw.Weights[j], raw.Freqs[j], weights[j], lambdas[j], types.Hazard(lambdas[j]).Duration())
	}
	return tw.Flush()
}
