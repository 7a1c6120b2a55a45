package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

func main() {
	root := &cobra.Command{
		Use:   "calvoss",
		Short: "Steady state of the multi-sector Calvo pricing model",
		Long: `The calvoss tool computes the closed-form steady state of a multi-sector
New-Keynesian model with Calvo pricing under trend inflation: aggregate
marginal cost, price dispersion, and per-sector reset and relative prices.

Sector weights and price-change frequencies can be given explicitly or taken
from the Nakamura-Steinsson 6/9/11/14-sector tables.

Parameters may come from flags, CALVOSS_* environment variables, or a config
file (--config), in that order of precedence.

Examples:
  calvoss solve --sectors 14 --pistar 1.02
  calvoss solve --lambdas 0.1,0.2 --weights 0.5,0.5 --tau 4 --json out/ss.json
  calvoss solve --months-per-period 3 --beta 0.94 --pistar 1.04 --sectors 9
  calvoss table --sectors 6 --months-per-period 3
  calvoss profit --target 0.1 --pistar 1.04`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "read parameters from a YAML/TOML/JSON file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newSolveCmd(), newTableCmd(), newProfitCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info", "":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
	})))
	return nil
}
