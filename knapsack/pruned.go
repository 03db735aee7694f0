package knapsack

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvknap/item"
)

// prunedEngine runs PrunedRecursive.
//
// State per frame: the visited set (bought items, any order), the remaining
// balance and the accumulated earnings. visited and path change on the way
// down and are restored on the way up.
type prunedEngine struct {
	items   []item.Item
	visited []bool
	path    []int
	memo    *memo
}

// frame returns the best extension of the current state.
//
// Candidates are scanned in input order with this policy:
//  1. unaffordable at the current balance → skip;
//  2. an earlier candidate's recursion already improved this frame → stop;
//  3. already bought → skip;
//  4. otherwise buy tentatively (kept when strictly better than the frame's
//     best), recurse, keep the recursive result when strictly better and
//     raise the stop flag from that comparison.
func (e *prunedEngine) frame(balance, earnings decimal.Decimal) extension {
	if x, ok := e.memo.get(e.path); ok {
		return x
	}

	best := extension{earnings: earnings, balance: balance}
	improved := false
	for i, it := range e.items {
		if balance.LessThan(it.Price()) {
			continue
		}
		if improved {
			break
		}
		if e.visited[i] {
			continue
		}

		nb, ne := balance.Sub(it.Price()), earnings.Add(it.Benefit())
		if ne.GreaterThan(best.earnings) {
			best = extension{tail: []int{i}, earnings: ne, balance: nb}
		}

		e.visited[i] = true
		e.path = append(e.path, i)
		sub := e.frame(nb, ne)
		e.path = e.path[:len(e.path)-1]
		e.visited[i] = false

		if sub.earnings.GreaterThan(best.earnings) {
			improved = true
			best = sub.prepend(i)
		}
	}
	e.memo.put(e.path, best)

	return best
}

// SolvePrunedRecursive explores items in the given order, which must be sorted by
// descending profit percentage, and ends a frame at the first affordable
// candidate after a recursion that improved the frame.
//
// The stop rule is a heuristic: the result is usually, not always, optimal.
// memoSize > 0 enables the per-call memo keyed by the visited set.
func SolvePrunedRecursive(items []item.Item, budget decimal.Decimal, memoSize int) Selection {
	e := prunedEngine{
		items:   items,
		visited: make([]bool, len(items)),
		path:    make([]int, 0, len(items)),
		memo:    newMemo(memoSize),
	}

	return selectionFrom(e.frame(budget, decimal.Zero))
}
