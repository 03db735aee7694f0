package knapsack

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvknap/item"
)

// SolveGreedyOnePass walks items once and buys every item that still fits.
// A skipped item is never reconsidered. With items sorted by descending
// profit this is the fast lower-bound baseline.
//
// Complexity: O(n) time.
func SolveGreedyOnePass(items []item.Item, budget decimal.Decimal) Selection {
	sel := emptySelection(budget)
	for i, it := range items {
		if sel.Balance.GreaterThanOrEqual(it.Price()) {
			sel.Balance = sel.Balance.Sub(it.Price())
			sel.Earnings = sel.Earnings.Add(it.Benefit())
			sel.Chosen = append(sel.Chosen, i)
		}
	}

	return sel
}
