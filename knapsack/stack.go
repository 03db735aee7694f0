package knapsack

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvknap/item"
)

// stackFrame explores candidates from cursor onwards. Unlike prunedEngine it
// needs no visited set: every recursion starts strictly after the item it
// just bought, so an index can never be bought twice.
//
// Earnings and balance are cumulative, so a frame that buys nothing still
// reports the state it was called with.
func stackFrame(items []item.Item, cursor int, balance, earnings decimal.Decimal) extension {
	best := extension{earnings: earnings, balance: balance}
	improved := false

	var i int
	for i = cursor; i < len(items); i++ {
		it := items[i]
		if balance.LessThan(it.Price()) {
			continue
		}
		if improved {
			break
		}

		nb, ne := balance.Sub(it.Price()), earnings.Add(it.Benefit())
		if ne.GreaterThan(best.earnings) {
			best = extension{tail: []int{i}, earnings: ne, balance: nb}
		}

		sub := stackFrame(items, i+1, nb, ne)
		if sub.earnings.GreaterThan(best.earnings) {
			improved = true
			best = sub.prepend(i)
		}
	}

	return best
}

// SolvePrunedRecursiveStack is the cursor-driven variant of SolvePrunedRecursive:
// after the first affordable item of a frame it recurses from the next
// position and replaces the running choice only on strict improvement.
// Same ordering precondition and same stop rule as PrunedRecursive.
func SolvePrunedRecursiveStack(items []item.Item, budget decimal.Decimal) Selection {
	return selectionFrom(stackFrame(items, 0, budget, decimal.Zero))
}
