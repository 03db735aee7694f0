// Package knapsack_test provides helpers shared across *_test.go files in
// this package: decimal shorthands, the reference scenario, and a seeded
// random instance generator.
package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknap/item"
	"github.com/katalvlaran/lvknap/knapsack"
)

const (
	// maxRedundantNoMemo bounds n for BruteForceRedundant without memo (n! frames).
	maxRedundantNoMemo = 7

	// memoTests is the memo capacity used when the memo is switched on.
	memoTests = 1 << 12

	// randomRounds is the number of seeded instances per property test.
	randomRounds = 40
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func mk(name, price, profit string) item.Item {
	return item.MustNew(name, dec(price), dec(profit))
}

// scenario is the reference instance, in listing order:
// A 100@10% (10), B 200@8% (16), C 50@20% (10).
func scenario() []item.Item {
	return []item.Item{
		mk("A", "100", "10"),
		mk("B", "200", "8"),
		mk("C", "50", "20"),
	}
}

// heuristicTrap defeats the stop-after-improvement rule: sorted by profit,
// X+W improves the first frame, so Y+Z (the optimum, 44) is never tried.
func heuristicTrap() []item.Item {
	return []item.Item{
		mk("X", "60", "50"),
		mk("W", "10", "45"),
		mk("Y", "50", "44"),
		mk("Z", "50", "44"),
	}
}

// randomItems returns n items with prices in [1, 120] (cents allowed) and
// profits in [1, 40]%, sorted by descending profit.
func randomItems(rng *rand.Rand, n int) []item.Item {
	out := make([]item.Item, n)
	var i int
	for i = 0; i < n; i++ {
		price := decimal.New(int64(100+rng.Intn(12000)), -2)
		profit := decimal.New(int64(1+rng.Intn(400)), -1)
		out[i] = item.MustNew("R"+decimal.NewFromInt(int64(i)).String(), price, profit)
	}

	return item.SortByProfitDesc(out)
}

// randomBudget returns a budget in [0, 300).
func randomBudget(rng *rand.Rand) decimal.Decimal {
	return decimal.New(int64(rng.Intn(30000)), -2)
}

// names maps chosen indices to item names.
func names(items []item.Item, sel knapsack.Selection) []string {
	return item.Names(items, sel.Chosen)
}

// requireSameSelection compares two selections by value (decimals are
// compared numerically, Chosen element-wise).
func requireSameSelection(t *testing.T, want, got knapsack.Selection, msgAndArgs ...interface{}) {
	t.Helper()
	require.Truef(t, want.Earnings.Equal(got.Earnings), "earnings %s, want %s", got.Earnings, want.Earnings)
	require.Truef(t, want.Balance.Equal(got.Balance), "balance %s, want %s", got.Balance, want.Balance)
	require.Equal(t, want.Chosen, got.Chosen, msgAndArgs...)
}

// requireDecEqual asserts numeric equality of two decimals.
func requireDecEqual(t *testing.T, want, got decimal.Decimal, what string) {
	t.Helper()
	require.Truef(t, want.Equal(got), "%s = %s, want %s", what, got, want)
}
