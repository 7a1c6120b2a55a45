package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ja7ad/calvoss/pkg/calibration"
	"github.com/ja7ad/calvoss/pkg/steadystate"
)

// addModelFlags registers the flags shared by solve and profit.
func addModelFlags(fs *pflag.FlagSet) {
	fs.Float64("beta", 0.96, "discount factor (annual unless --annual=false)")
	fs.Float64("pistar", 1.02, "gross trend inflation (annual unless --annual=false)")
	fs.Float64("sigma", 8, "within-sector elasticity of substitution (> 1)")
	fs.Float64("tau", 8, "across-sector elasticity of substitution")
	fs.Bool("annual", true, "beta and pistar are annual rates, converted to the model period")
	fs.Float64("months-per-period", calibration.Monthly, "length of a model period in months (3 = quarterly)")
	fs.Int("sectors", 14, "calibration table to use when --lambdas is empty (6, 9, 11, 14)")
	// string slices keep full precision; viper renders float slices with %f
	fs.StringSlice("lambdas", nil, "per-period price adjustment hazards, one per sector")
	fs.StringSlice("weights", nil, "sector expenditure weights summing to 1 (default: equal)")
}

// loadConfig layers flags over CALVOSS_* environment variables over the
// optional config file.
func loadConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("CALVOSS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}
	return v, nil
}

// perPeriod converts an annual gross rate to one model period.
func perPeriod(annual, monthsPerPeriod float64) float64 {
	return math.Pow(annual, monthsPerPeriod/calibration.Annual)
}

func modelParams(v *viper.Viper) (steadystate.Params, error) {
	mpp := v.GetFloat64("months-per-period")
	if !(mpp > 0) {
		return steadystate.Params{}, fmt.Errorf("months-per-period must be > 0, got %g", mpp)
	}

	p := steadystate.Params{
		Beta:   v.GetFloat64("beta"),
		Pistar: v.GetFloat64("pistar"),
		Sigma:  v.GetFloat64("sigma"),
		Tau:    v.GetFloat64("tau"),
	}
	if v.GetBool("annual") {
		p.Beta = perPeriod(p.Beta, mpp)
		p.Pistar = perPeriod(p.Pistar, mpp)
	}

	lambdas, err := floats(v, "lambdas")
	if err != nil {
		return steadystate.Params{}, err
	}
	weights, err := floats(v, "weights")
	if err != nil {
		return steadystate.Params{}, err
	}

	switch {
	case len(lambdas) == 0:
		if len(weights) > 0 {
			return steadystate.Params{}, fmt.Errorf("--weights given without --lambdas")
		}
		weights, lambdas, err = calibration.Lookup(v.GetInt("sectors"), mpp)
		if err != nil {
			return steadystate.Params{}, err
		}
	case len(weights) == 0:
		weights = make([]float64, len(lambdas))
		for j := range weights {
			weights[j] = 1 / float64(len(lambdas))
		}
	}
	p.Lambdas, p.Weights = lambdas, weights
	return p, nil
}

// floats reads a list of numbers that may arrive as flag values, an
// environment string ("0.1,0.2") or a config-file list.
func floats(v *viper.Viper, key string) ([]float64, error) {
	var items []any
	switch x := v.Get(key).(type) {
	case nil:
		return nil, nil
	case []float64:
		return x, nil
	case string:
		s := strings.Trim(strings.TrimSpace(x), "[]")
		if s == "" {
			return nil, nil
		}
		for _, part := range strings.Split(s, ",") {
			items = append(items, strings.TrimSpace(part))
		}
	case []string:
		for _, part := range x {
			items = append(items, strings.TrimSpace(part))
		}
	case []any:
		items = x
	default:
		return nil, fmt.Errorf("%s: unsupported value %v", key, x)
	}

	out := make([]float64, 0, len(items))
	for _, it := range items {
		f, err := cast.ToFloat64E(it)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out = append(out, f)
	}
	return out, nil
}
