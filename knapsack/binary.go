package knapsack

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvknap/item"
)

// binaryEngine holds the search state of BruteForceBinary.
// The running totals and the chosen stack are owned by the active call chain:
// every mutation on the include branch is reverted before dfs returns.
type binaryEngine struct {
	items []item.Item

	// Current search state
	balance  decimal.Decimal
	earnings decimal.Decimal
	chosen   []int

	// Incumbent
	best Selection
}

// buy includes item i and records a new incumbent on strict improvement.
func (e *binaryEngine) buy(i int) {
	it := e.items[i]
	e.balance = e.balance.Sub(it.Price())
	e.earnings = e.earnings.Add(it.Benefit())
	e.chosen = append(e.chosen, i)
	if e.earnings.GreaterThan(e.best.Earnings) && !e.balance.IsNegative() {
		e.best.Earnings = e.earnings
		e.best.Balance = e.balance
		e.best.Chosen = append(e.best.Chosen[:0], e.chosen...)
	}
}

// undo restores the totals saved before buy(i) and pops i.
// A mismatching pop means the backtracking discipline broke: panic.
func (e *binaryEngine) undo(i int, balance, earnings decimal.Decimal) {
	last := len(e.chosen) - 1
	if last < 0 || e.chosen[last] != i {
		panic(fmt.Sprintf("knapsack: backtracking popped %v, want %d", e.chosen, i))
	}
	e.chosen = e.chosen[:last]
	e.balance = balance
	e.earnings = earnings
}

// dfs visits the exclude branch of index i, then the include branch when i
// is affordable. 2ⁿ leaves.
func (e *binaryEngine) dfs(i int) {
	if i >= len(e.items) {
		return
	}

	// Without item i.
	e.dfs(i + 1)

	// With item i.
	if e.balance.GreaterThanOrEqual(e.items[i].Price()) {
		balance, earnings := e.balance, e.earnings
		e.buy(i)
		e.dfs(i + 1)
		e.undo(i, balance, earnings)
	}
}

// SolveBruteForceBinary returns an optimal selection by exploring, for every index,
// the branch without the item and the branch with it.
//
// No ordering precondition. Among equally good subsets the first one reached
// (exclude-first order) wins.
//
// Complexity: O(2ⁿ) time, O(n) extra space (recursion depth n).
func SolveBruteForceBinary(items []item.Item, budget decimal.Decimal) Selection {
	e := binaryEngine{
		items:    items,
		balance:  budget,
		earnings: decimal.Zero,
		chosen:   make([]int, 0, len(items)),
		best:     emptySelection(budget),
	}
	e.dfs(0)

	return e.best.Clone()
}
