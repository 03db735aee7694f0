package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvknap/history"
	"github.com/katalvlaran/lvknap/item"
	"github.com/katalvlaran/lvknap/knapsack"
)

// ErrBadSweep is returned by Sweep for an unusable SweepOptions.
var ErrBadSweep = errors.New("bench: invalid sweep options")

// Sink receives one record per successful run. *history.Store implements it.
type Sink interface {
	Save(ctx context.Context, r history.Record) error
}

// Config holds what a Runner applies to every run.
type Config struct {
	// Options is passed to knapsack.Solve; Algo is overridden per call.
	Options knapsack.Options

	// Dataset labels history records (e.g. a file name). Optional.
	Dataset string

	Metrics *Metrics
	Sink    Sink
}

// Runner times and reports solves.
type Runner struct {
	logger *zap.Logger
	conf   Config
}

// NewRunner returns a Runner. A nil logger is replaced by zap.NewNop.
func NewRunner(logger *zap.Logger, conf Config) (*Runner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conf.Options.MemoSize < 0 {
		return nil, fmt.Errorf("bench: %w", knapsack.ErrBadMemoSize)
	}

	return &Runner{logger: logger, conf: conf}, nil
}

// Report describes one run.
type Report struct {
	RunID        string
	Algorithm    knapsack.Algorithm
	Size         int
	Budget       decimal.Decimal
	SortDuration time.Duration
	Result       knapsack.Result

	// Items is the sorted listing the indices in Result.Chosen refer to.
	Items []item.Item

	// Names lists the chosen item names in buying order.
	Names []string
}

// Record converts r into a history record.
func (r Report) Record(dataset string) history.Record {
	return history.Record{
		RunID:     r.RunID,
		Algorithm: r.Algorithm.String(),
		Dataset:   dataset,
		Size:      r.Size,
		Budget:    r.Budget,
		Earnings:  r.Result.Earnings,
		Balance:   r.Result.Balance,
		Duration:  r.Result.Duration,
		Chosen:    r.Names,
	}
}

// RunOnce sorts items by descending profit (timed separately), solves with
// algo, logs the outcome, updates metrics and forwards the run to the sink.
// Validation errors from knapsack.Solve are returned unchanged.
func (r *Runner) RunOnce(ctx context.Context, items []item.Item, budget decimal.Decimal, algo knapsack.Algorithm) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	start := time.Now()
	sorted := item.SortByProfitDesc(items)
	sortDur := time.Since(start)

	opts := r.conf.Options
	opts.Algo = algo
	res, err := knapsack.Solve(sorted, budget, opts)
	if err != nil {
		r.conf.Metrics.fail(algo.String())
		r.logger.Error("solve rejected", zap.Stringer("algorithm", algo), zap.Error(err))

		return Report{}, err
	}

	rep := Report{
		RunID:        uuid.NewString(),
		Algorithm:    algo,
		Size:         len(sorted),
		Budget:       budget,
		SortDuration: sortDur,
		Result:       res,
		Items:        sorted,
		Names:        item.Names(sorted, res.Chosen),
	}
	r.logger.Info("solve finished",
		zap.String("run_id", rep.RunID),
		zap.Stringer("algorithm", algo),
		zap.Int("size", rep.Size),
		zap.Duration("sort_duration", sortDur),
		zap.Duration("duration", res.Duration),
		zap.Stringer("earnings", res.Earnings),
		zap.Stringer("balance", res.Balance),
		zap.Int("chosen", len(res.Chosen)),
	)
	r.conf.Metrics.observe(rep)

	if r.conf.Sink != nil {
		if err := r.conf.Sink.Save(ctx, rep.Record(r.conf.Dataset)); err != nil {
			return rep, fmt.Errorf("bench: save run %s: %w", rep.RunID, err)
		}
	}

	return rep, nil
}

// Compare calls RunOnce for each algorithm (all of them when algos is empty)
// and returns the reports in the same order.
func (r *Runner) Compare(ctx context.Context, items []item.Item, budget decimal.Decimal, algos ...knapsack.Algorithm) ([]Report, error) {
	if len(algos) == 0 {
		algos = knapsack.Algorithms()
	}
	out := make([]Report, 0, len(algos))
	for _, a := range algos {
		rep, err := r.RunOnce(ctx, items, budget, a)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}

	return out, nil
}
