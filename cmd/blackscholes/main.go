package main

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/walkingshamrock/black-scholes/internal/config"
	"github.com/walkingshamrock/black-scholes/internal/pricing"
	"github.com/walkingshamrock/black-scholes/internal/quote"
	"github.com/walkingshamrock/black-scholes/internal/server"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "blackscholes",
		Short:         "Black-Scholes-Merton option pricing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config")

	root.AddCommand(
		newPriceCommand(&cfgPath),
		newGreekCommand(&cfgPath),
		newSummaryCommand(&cfgPath),
		newServeCommand(&cfgPath),
	)
	return root
}

// marketFlags holds the shared option inputs. --symbol lets the quote layer
// fill spot and volatility from market data; explicit flags always win.
type marketFlags struct {
	symbol   string
	spot     float64
	strike   float64
	maturity float64
	rate     float64
	yield    float64
	vol      float64
	typ      string
}

func (f *marketFlags) add(fs *pflag.FlagSet) {
	fs.StringVar(&f.symbol, "symbol", "", "ticker to resolve spot and volatility from market data")
	fs.Float64Var(&f.spot, "spot", 0, "spot price of the underlying (S)")
	fs.Float64Var(&f.strike, "strike", 0, "strike price (K)")
	fs.Float64Var(&f.maturity, "maturity", 0, "time to maturity in years (T)")
	fs.Float64Var(&f.rate, "rate", 0, "risk-free rate, annualized decimal (r)")
	fs.Float64Var(&f.yield, "yield", 0, "continuous dividend yield, annualized decimal (q)")
	fs.Float64Var(&f.vol, "vol", 0, "volatility, annualized decimal")
	fs.StringVar(&f.typ, "type", "call", "option type: call or put")
}

// resolve turns flags into validated-shape inputs, pulling configured
// defaults for rate and yield and, when --symbol is given, market data for
// spot and volatility.
func (f *marketFlags) resolve(fs *pflag.FlagSet, cfg *config.Config) (pricing.Params, pricing.OptionType, error) {
	p := pricing.Params{
		S:   f.spot,
		K:   f.strike,
		T:   f.maturity,
		R:   f.rate,
		Q:   f.yield,
		Vol: f.vol,
	}
	if !fs.Changed("rate") {
		p.R = cfg.Defaults.Rate
	}
	if !fs.Changed("yield") {
		p.Q = cfg.Defaults.Yield
	}

	if f.symbol != "" {
		prov := newProvider(cfg)
		now := time.Now()
		if !fs.Changed("spot") {
			spot, err := quote.Spot(prov, f.symbol, now)
			if err != nil {
				return p, "", err
			}
			p.S = spot
		}
		if !fs.Changed("vol") {
			bars, err := prov.DailyBars(f.symbol, now.AddDate(-1, 0, 0), now)
			if err != nil {
				return p, "", err
			}
			p.Vol = quote.AnnualizedVolatility(quote.Closes(bars))
		}
	}

	typ, err := pricing.ParseOptionType(f.typ)
	if err != nil {
		return p, "", err
	}
	return p, typ, nil
}

func newProvider(cfg *config.Config) quote.Provider {
	if cfg.Quote.Provider == "polygon" && cfg.Quote.APIKey != "" {
		return quote.NewPolygonProvider(cfg.Quote.APIKey)
	}
	return quote.NewSyntheticProvider(cfg.Quote.Seed)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newPriceCommand(cfgPath *string) *cobra.Command {
	flags := &marketFlags{}
	cmd := &cobra.Command{
		Use:   "price",
		Short: "price a European vanilla option",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			p, typ, err := flags.resolve(cmd.Flags(), cfg)
			if err != nil {
				return err
			}
			v, err := pricing.Price(p, typ)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatValue(v))
			return nil
		},
	}
	flags.add(cmd.Flags())
	return cmd
}

func newGreekCommand(cfgPath *string) *cobra.Command {
	flags := &marketFlags{}
	cmd := &cobra.Command{
		Use:       "greek <name>",
		Short:     "compute a single greek (delta, gamma, vega, ...)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: greekNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(args[0])
			f, ok := greekByName(name)
			if !ok {
				return fmt.Errorf("unknown greek %q, expected one of: %s", name, strings.Join(greekNames(), ", "))
			}
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			p, typ, err := flags.resolve(cmd.Flags(), cfg)
			if err != nil {
				return err
			}
			v, err := f(p, typ)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatValue(v))
			return nil
		},
	}
	flags.add(cmd.Flags())
	return cmd
}

func newSummaryCommand(cfgPath *string) *cobra.Command {
	flags := &marketFlags{}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "print the price and all greeks as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			p, typ, err := flags.resolve(cmd.Flags(), cfg)
			if err != nil {
				return err
			}
			sum, err := pricing.Summarize(p, typ)
			if err != nil {
				return err
			}
			// Lambda saturates to a signed infinity for near-worthless
			// options; JSON cannot carry that, so it is emitted as a string.
			out := struct {
				*pricing.Summary
				Lambda any `json:"lambda"`
			}{Summary: sum, Lambda: anyValue(sum.Lambda)}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	flags.add(cmd.Flags())
	return cmd
}

func newServeCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run the pricing REST server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			if err := setupLogger(cfg.LogLevel); err != nil {
				return err
			}
			zap.L().Info("starting server", zap.String("listen", cfg.Listen))
			return http.ListenAndServe(cfg.Listen, server.New(cfg).Router())
		},
	}
}

func setupLogger(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zcfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

type greekFunc func(pricing.Params, pricing.OptionType) (float64, error)

func typeFree(f func(pricing.Params) (float64, error)) greekFunc {
	return func(p pricing.Params, _ pricing.OptionType) (float64, error) {
		return f(p)
	}
}

var greekFuncs = map[string]greekFunc{
	"delta":   pricing.Delta,
	"vega":    typeFree(pricing.Vega),
	"theta":   pricing.Theta,
	"rho":     pricing.Rho,
	"gamma":   typeFree(pricing.Gamma),
	"vanna":   typeFree(pricing.Vanna),
	"charm":   pricing.Charm,
	"vomma":   pricing.Vomma,
	"veta":    typeFree(pricing.Veta),
	"speed":   typeFree(pricing.Speed),
	"zomma":   typeFree(pricing.Zomma),
	"color":   typeFree(pricing.Color),
	"ultima":  pricing.Ultima,
	"vera":    pricing.Vera,
	"lambda":  pricing.Lambda,
	"epsilon": typeFree(pricing.Epsilon),
}

func greekByName(name string) (greekFunc, bool) {
	f, ok := greekFuncs[name]
	return f, ok
}

func greekNames() []string {
	names := make([]string, 0, len(greekFuncs))
	for name := range greekFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func anyValue(v float64) any {
	if math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}
