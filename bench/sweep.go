package bench

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvknap/item"
	"github.com/katalvlaran/lvknap/knapsack"
)

// SweepOptions bounds a Sweep. Sizes run From, From+Step, ... up to To
// inclusive; each is clamped to [Min, len(items)].
type SweepOptions struct {
	From int
	To   int
	Step int
	Min  int

	// MaxDuration stops the sweep after the first sample slower than it.
	// Zero means no limit.
	MaxDuration time.Duration
}

// DefaultSweepOptions samples 0..1000 by 10 with at least 2 items.
func DefaultSweepOptions() SweepOptions {
	return SweepOptions{From: 0, To: 1000, Step: 10, Min: 2}
}

func (o SweepOptions) validate() error {
	switch {
	case o.Step <= 0:
		return fmt.Errorf("%w: step %d", ErrBadSweep, o.Step)
	case o.From < 0 || o.Min < 0:
		return fmt.Errorf("%w: negative bound", ErrBadSweep)
	case o.To < o.From:
		return fmt.Errorf("%w: to %d < from %d", ErrBadSweep, o.To, o.From)
	case o.MaxDuration < 0:
		return fmt.Errorf("%w: max duration %s", ErrBadSweep, o.MaxDuration)
	}

	return nil
}

// Point is one sample of a sweep.
type Point struct {
	Size      int
	Duration  time.Duration
	Reference time.Duration
}

// Sweep times algo on growing prefixes of items (in the given order). Each
// sample covers sorting the prefix and solving it, as RunOnce would, without
// logging per sample, touching metrics or writing history.
//
// ctx is checked before every sample; on cancellation the points gathered so
// far are returned with ctx.Err().
func (r *Runner) Sweep(ctx context.Context, items []item.Item, budget decimal.Decimal, algo knapsack.Algorithm, o SweepOptions) ([]Point, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	opts := r.conf.Options
	opts.Algo = algo

	var (
		points []Point
		size   int
	)
	for size = o.From; size <= o.To; size += o.Step {
		if err := ctx.Err(); err != nil {
			return withReference(points, algo), err
		}
		n := clamp(size, o.Min, len(items))

		start := time.Now()
		sorted := item.SortByProfitDesc(items[:n])
		if _, err := knapsack.Solve(sorted, budget, opts); err != nil {
			return nil, err
		}
		d := time.Since(start)
		points = append(points, Point{Size: n, Duration: d})
		r.logger.Debug("sweep sample", zap.Stringer("algorithm", algo), zap.Int("size", n), zap.Duration("duration", d))

		if o.MaxDuration > 0 && d > o.MaxDuration {
			r.logger.Info("sweep stopped", zap.Stringer("algorithm", algo), zap.Int("size", n), zap.Duration("duration", d))
			break
		}
	}

	return withReference(points, algo), nil
}

// clamp returns max(lo, min(n, hi)), never more than hi.
func clamp(n, lo, hi int) int {
	return min(max(lo, min(n, hi)), hi)
}

// ReferenceCost is the unscaled reference curve for algo at size n:
// 2ⁿ for BruteForceBinary, n! for BruteForceRedundant, n² for the pruned
// variants and n for GreedyOnePass.
func ReferenceCost(algo knapsack.Algorithm, n int) float64 {
	x := float64(n)
	switch algo {
	case knapsack.BruteForceBinary:
		return math.Exp2(x)
	case knapsack.BruteForceRedundant:
		return math.Gamma(x + 1)
	case knapsack.PrunedRecursive, knapsack.PrunedRecursiveStack:
		return x * x
	default:
		return x
	}
}

// withReference fills Reference by scaling ReferenceCost so that it matches
// the first sample with a non-zero duration and cost.
func withReference(points []Point, algo knapsack.Algorithm) []Point {
	var coef float64
	for _, p := range points {
		c := ReferenceCost(algo, p.Size)
		if p.Duration > 0 && c > 0 && !math.IsInf(c, 0) {
			coef = float64(p.Duration) / c
			break
		}
	}
	if coef == 0 {
		return points
	}
	for i := range points {
		v := coef * ReferenceCost(algo, points[i].Size)
		if v >= math.MaxInt64 || math.IsInf(v, 0) || math.IsNaN(v) {
			points[i].Reference = time.Duration(math.MaxInt64)
			continue
		}
		points[i].Reference = time.Duration(v)
	}

	return points
}
