// Package knapsack - unified dispatcher.
//
// Solve is the canonical entry point: it validates budget and Options, gives
// the chosen solver a private copy of the items, measures the call and checks
// the result with MustVerify. Compare runs several solvers on the same input.
package knapsack

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvknap/item"
)

// Solve validates inputs and routes to opts.Algo.
//
// Contracts:
//   - budget ≥ 0, otherwise ErrNegativeBudget.
//   - opts.Algo is a known selector, otherwise ErrUnsupportedAlgorithm.
//   - opts.MemoSize ≥ 0, otherwise ErrBadMemoSize.
//   - items may be empty; the result is then zero earnings, nothing chosen,
//     Balance == budget.
//   - For PrunedRecursive, GreedyOnePass and PrunedRecursiveStack the caller
//     sorts items by descending profit beforehand.
//
// The caller's slice is never touched. Result.Duration covers the solver call
// only (not validation, not verification).
func Solve(items []item.Item, budget decimal.Decimal, opts Options) (Result, error) {
	if err := validateAll(budget, opts); err != nil {
		return Result{}, err
	}

	input := item.Clone(items)
	start := time.Now()
	sel, err := run(input, budget, opts)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, err
	}

	if opts.Verify {
		MustVerify(sel, input, budget)
	}

	return Result{Selection: sel, Algorithm: opts.Algo, Duration: elapsed}, nil
}

// run dispatches to one solver.
func run(items []item.Item, budget decimal.Decimal, opts Options) (Selection, error) {
	switch opts.Algo {
	case BruteForceBinary:
		return SolveBruteForceBinary(items, budget), nil
	case BruteForceRedundant:
		return SolveBruteForceRedundant(items, budget, opts.MemoSize), nil
	case PrunedRecursive:
		return SolvePrunedRecursive(items, budget, opts.MemoSize), nil
	case GreedyOnePass:
		return SolveGreedyOnePass(items, budget), nil
	case PrunedRecursiveStack:
		return SolvePrunedRecursiveStack(items, budget), nil
	default:
		return Selection{}, ErrUnsupportedAlgorithm
	}
}

// Compare runs each algorithm in algos (all of them when empty) on its own
// copy of items, sequentially, with opts applied to every run except Algo.
// Results are returned in the order of algos.
func Compare(items []item.Item, budget decimal.Decimal, opts Options, algos ...Algorithm) ([]Result, error) {
	if len(algos) == 0 {
		algos = Algorithms()
	}
	out := make([]Result, 0, len(algos))
	for _, a := range algos {
		o := opts
		o.Algo = a
		res, err := Solve(items, budget, o)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, nil
}

// Gap returns optimum.Earnings − r.Earnings, the benefit a heuristic left on
// the table compared with an exhaustive run on the same input.
func Gap(optimum, r Result) decimal.Decimal {
	return optimum.Earnings.Sub(r.Earnings)
}
