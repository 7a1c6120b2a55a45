package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ja7ad/calvoss/pkg/steadystate"
)

func newSolveCmd() *cobra.Command {
	var jsonPath string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the steady state for one parameter set",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			p, err := modelParams(v)
			if err != nil {
				return err
			}
			slog.Debug("solving",
				"beta", p.Beta, "pistar", p.Pistar, "sigma", p.Sigma, "tau", p.Tau,
				"sectors", len(p.Lambdas))

			res, err := steadystate.Solve(p)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}

			printSteadyState(cmd.OutOrStdout(), p, res)

			if jsonPath != "" {
				out := struct {
					Params steadystate.Params `json:"params"`
					Result steadystate.Result `json:"result"`
				}{p, res}
				if err := writeJSON(jsonPath, out); err != nil {
					return err
				}
				slog.Info("wrote result", "path", jsonPath)
			}
			return nil
		},
	}

	addModelFlags(cmd.Flags())
	cmd.Flags().StringVar(&jsonPath, "json", "", "write parameters and result to a JSON file")
	return cmd
}

func printSteadyState(w io.Writer, p steadystate.Params, res steadystate.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SECTOR\tWEIGHT\tLAMBDA\tP*j/Pj\tNUj\tFOC\tPj/P")
	fmt.Fprintln(tw, "------\t------\t------\t------\t---\t---\t----")
	for _, s := range res.Sectors {
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.6f\t%.6f\t%.6f\t%.6f\n",
			s.Index, s.Weight, s.Lambda, s.PjstaroverPj, s.NUj, s.TermInFOC, s.PjoverP)
	}
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "steady state (beta=%.6f, pistar=%.6f, sigma=%g, tau=%g):\n", p.Beta, p.Pistar, p.Sigma, p.Tau)
	fmt.Fprintf(w, "- MC:                  %.8f\n", res.MC)
	fmt.Fprintf(w, "- NU:                  %.8f\n", res.NU)
	fmt.Fprintf(w, "- MC*NU:               %.8f\n", res.RealCost())
	fmt.Fprintf(w, "- profit share:        %.8f\n", res.ProfitShare())
	fmt.Fprintf(w, "- MC / flexible MC:    %.8f\n", res.MarkupAdjustedMC())
}
