package knapsack

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// validateAll checks the budget and Options before any solver runs.
// Item fields need no check here: item.New already refuses non-positive
// prices and profits.
//
// Complexity: O(1).
func validateAll(budget decimal.Decimal, opts Options) error {
	if budget.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeBudget, budget)
	}
	if err := validateOptions(opts); err != nil {
		return err
	}

	return nil
}

// validateOptions checks Options in isolation.
func validateOptions(opts Options) error {
	if !opts.Algo.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(opts.Algo))
	}
	if opts.MemoSize < 0 {
		return ErrBadMemoSize
	}

	return nil
}
