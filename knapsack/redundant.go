package knapsack

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvknap/item"
)

// redundantEngine runs BruteForceRedundant. path is the chosen stack in
// buying order and only serves as memo key.
type redundantEngine struct {
	items []item.Item
	path  []int
	memo  *memo
}

// explore returns the best extension of the current state. remaining holds
// the indices not bought yet, in ascending order.
func (e *redundantEngine) explore(remaining []int, balance, earnings decimal.Decimal) extension {
	if x, ok := e.memo.get(e.path); ok {
		return x
	}

	best := extension{earnings: earnings, balance: balance}
	for k, i := range remaining {
		it := e.items[i]
		if balance.LessThan(it.Price()) {
			continue
		}

		e.path = append(e.path, i)
		sub := e.explore(without(remaining, k), balance.Sub(it.Price()), earnings.Add(it.Benefit()))
		e.path = e.path[:len(e.path)-1]

		if sub.earnings.GreaterThan(best.earnings) {
			best = sub.prepend(i)
		}
	}
	e.memo.put(e.path, best)

	return best
}

// without returns a fresh slice equal to s minus its k-th element.
func without(s []int, k int) []int {
	out := make([]int, 0, len(s)-1)
	out = append(out, s[:k]...)

	return append(out, s[k+1:]...)
}

// SolveBruteForceRedundant returns an optimal selection. Every frame tries every
// affordable item still in the remaining list and recurses on the list minus
// that item, so each subset is reached once per buying order. It exists as a
// slow reference; memoSize > 0 collapses the orders through a per-call memo.
//
// Complexity: O(n!) time without memo, O(2ⁿ·n) with an unbounded memo.
func SolveBruteForceRedundant(items []item.Item, budget decimal.Decimal, memoSize int) Selection {
	remaining := make([]int, len(items))
	for i := range remaining {
		remaining[i] = i
	}
	e := redundantEngine{
		items: items,
		path:  make([]int, 0, len(items)),
		memo:  newMemo(memoSize),
	}
	x := e.explore(remaining, budget, decimal.Zero)

	return selectionFrom(x)
}

// selectionFrom converts a root extension into a Selection that owns its slice.
func selectionFrom(x extension) Selection {
	chosen := make([]int, len(x.tail))
	copy(chosen, x.tail)

	return Selection{Earnings: x.earnings, Chosen: chosen, Balance: x.balance}
}
