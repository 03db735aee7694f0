// Command lvknap picks the most profitable set of shares affordable with a
// given balance and reports how long the chosen algorithm took.
//
// Usage:
//
//	lvknap [-balance 500] [-dataset 0] [-algorithm 0] [-curves] [-compare]
//	       [-data-dir dataset] [-file listing.csv] [-synthetic n -seed s]
//	       [-config lvknap.yaml] [-env .env] [-memo n] [-history runs.db]
//	       [-plot curve.png] [-metrics lvknap.prom] [-log-level info]
//
// Precedence: flags > LVKNAP_* environment (.env included) > config file >
// defaults. Exit status is 2 for configuration errors (unknown algorithm
// included), 1 for runtime failures.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvknap/bench"
	"github.com/katalvlaran/lvknap/config"
	"github.com/katalvlaran/lvknap/curve"
	"github.com/katalvlaran/lvknap/dataset"
	"github.com/katalvlaran/lvknap/history"
	"github.com/katalvlaran/lvknap/item"
	"github.com/katalvlaran/lvknap/knapsack"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// cliFlags holds raw flag values; only the ones set on the command line are
// applied over the configuration.
type cliFlags struct {
	configPath string
	envPath    string
	balance    string
	dataset    int
	algorithm  string
	curves     bool
	compare    bool
	dataDir    string
	file       string
	synthetic  int
	seed       int64
	memo       int
	history    string
	plot       string
	metrics    string
	logLevel   string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lvknap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var f cliFlags
	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&f.envPath, "env", ".env", "dotenv file with LVKNAP_* variables")
	fs.StringVar(&f.balance, "balance", "500", "budget available for buying")
	fs.IntVar(&f.dataset, "dataset", 0, "dataset number (dataset{N}_Python+P7.csv)")
	fs.StringVar(&f.algorithm, "algorithm", "0", "algorithm number (0-4) or name")
	fs.BoolVar(&f.curves, "curves", false, "sweep sizes and draw the duration curve")
	fs.BoolVar(&f.compare, "compare", false, "run every algorithm and print the gap to the optimum")
	fs.StringVar(&f.dataDir, "data-dir", "dataset", "directory holding the dataset files")
	fs.StringVar(&f.file, "file", "", "explicit CSV listing (overrides -dataset)")
	fs.IntVar(&f.synthetic, "synthetic", 0, "generate n random items instead of reading a file")
	fs.Int64Var(&f.seed, "seed", 0, "seed for -synthetic")
	fs.IntVar(&f.memo, "memo", 0, "memo capacity for the recursive solvers (0 = off)")
	fs.StringVar(&f.history, "history", "", "SQLite file recording every run")
	fs.StringVar(&f.plot, "plot", "curve.png", "output image for -curves")
	fs.StringVar(&f.metrics, "metrics", "", "write Prometheus metrics to this text file")
	fs.StringVar(&f.logLevel, "log-level", "info", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return exitConfig
	}

	cfg, err := loadConfig(fs, f)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return exitConfig
	}
	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(stderr, err)

		return exitConfig
	}
	defer func() { _ = logger.Sync() }()

	if err := execute(ctx, cfg, f, logger, stdout); err != nil {
		logger.Error("run failed", zap.Error(err))

		return exitRuntime
	}

	return exitOK
}

// loadConfig layers file, environment and explicitly set flags, then validates.
func loadConfig(fs *flag.FlagSet, f cliFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	if err := config.LoadEnvFile(f.envPath); err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "balance":
			cfg.Balance = f.balance
		case "dataset":
			cfg.Dataset = f.dataset
		case "algorithm":
			cfg.Algorithm = f.algorithm
		case "curves":
			cfg.Curves = f.curves
		case "compare":
			cfg.Compare = f.compare
		case "data-dir":
			cfg.DataDir = f.dataDir
		case "file":
			cfg.File = f.file
		case "memo":
			cfg.MemoSize = f.memo
		case "history":
			cfg.HistoryPath = f.history
		case "plot":
			cfg.PlotPath = f.plot
		case "metrics":
			cfg.MetricsPath = f.metrics
		case "log-level":
			cfg.Log.Level = f.logLevel
		}
	})

	return cfg, cfg.Validate()
}

func execute(ctx context.Context, cfg config.Config, f cliFlags, logger *zap.Logger, out io.Writer) error {
	budget, err := cfg.Budget()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	items, source, err := loadItems(cfg, f)
	if err != nil {
		return err
	}
	logger.Info("items loaded", zap.String("source", source), zap.Int("count", len(items)))

	reg := prometheus.NewRegistry()
	metrics, err := bench.NewMetrics(reg)
	if err != nil {
		return err
	}
	conf := bench.Config{Options: opts, Dataset: source, Metrics: metrics}
	if cfg.HistoryPath != "" {
		store, err := history.Open(ctx, cfg.HistoryPath, logger)
		if err != nil {
			return err
		}
		defer store.Close()
		conf.Sink = store
	}
	runner, err := bench.NewRunner(logger, conf)
	if err != nil {
		return err
	}

	switch {
	case cfg.Curves:
		err = curves(ctx, runner, cfg, items, budget, opts.Algo, out)
	case cfg.Compare:
		err = compare(ctx, runner, items, budget, out)
	default:
		err = single(ctx, runner, items, budget, opts.Algo, out)
	}
	if err != nil {
		return err
	}

	if cfg.MetricsPath != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsPath, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// loadItems returns the cleaned, unsorted listing and a label for it.
func loadItems(cfg config.Config, f cliFlags) ([]item.Item, string, error) {
	if f.synthetic > 0 {
		return dataset.Synthetic(f.synthetic, f.seed), fmt.Sprintf("synthetic(%d,%d)", f.synthetic, f.seed), nil
	}
	path := cfg.File
	if path == "" {
		path = dataset.Path(cfg.DataDir, cfg.Dataset)
	}
	rows, err := dataset.LoadFile(path)
	if err != nil {
		return nil, path, err
	}

	return dataset.Clean(rows), path, nil
}

func single(ctx context.Context, r *bench.Runner, items []item.Item, budget decimal.Decimal, algo knapsack.Algorithm, out io.Writer) error {
	rep, err := r.RunOnce(ctx, items, budget, algo)
	if err != nil {
		return err
	}
	res := rep.Result

	fmt.Fprintf(out, "Sorting duration : %s\n", rep.SortDuration)
	fmt.Fprintln(out, "Actions to buy :")
	for _, name := range rep.Names {
		fmt.Fprintln(out, name)
	}
	fmt.Fprintf(out, "%s : earnings %s ; balance %s ; duration %s\n", algo, res.Earnings, res.Balance, res.Duration)

	if err := knapsack.Verify(res.Selection, rep.Items, budget); err != nil {
		return err
	}
	fmt.Fprintf(out, "Checked benefits : %s\n", item.TotalBenefit(rep.Items, res.Chosen))
	fmt.Fprintf(out, "Checked balance : %s\n", budget.Sub(item.TotalPrice(rep.Items, res.Chosen)))

	return nil
}

func compare(ctx context.Context, r *bench.Runner, items []item.Item, budget decimal.Decimal, out io.Writer) error {
	reps, err := r.Compare(ctx, items, budget)
	if err != nil {
		return err
	}
	var optimum *knapsack.Result
	for i := range reps {
		if reps[i].Algorithm.Exhaustive() {
			optimum = &reps[i].Result
			break
		}
	}
	if optimum == nil {
		return errors.New("compare: no exhaustive algorithm ran")
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "algorithm\tearnings\tbalance\tchosen\tgap\tduration")
	for _, rep := range reps {
		res := rep.Result
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			rep.Algorithm, res.Earnings, res.Balance, len(res.Chosen), knapsack.Gap(*optimum, res), res.Duration)
	}

	return tw.Flush()
}

func curves(ctx context.Context, r *bench.Runner, cfg config.Config, items []item.Item, budget decimal.Decimal, algo knapsack.Algorithm, out io.Writer) error {
	s := cfg.Sweep
	points, err := r.Sweep(ctx, items, budget, algo, bench.SweepOptions{
		From: s.From, To: s.To, Step: s.Step, Min: s.Min, MaxDuration: s.MaxDuration,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	for _, p := range points {
		fmt.Fprintf(out, "Plot %d : %s\n", p.Size, p.Duration)
	}
	if len(points) == 0 {
		return err
	}
	if rerr := curve.Render(points, curve.Options{Path: cfg.PlotPath}); rerr != nil {
		return rerr
	}
	fmt.Fprintf(out, "Curve written to %s\n", cfg.PlotPath)

	return err
}
