package item

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Clone returns a shallow copy of items. Items are immutable, so a shallow
// copy is a fully independent input for a solver.
func Clone(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)

	return out
}

// SortByProfitDesc returns a copy of items ordered by descending profit
// percentage. Items with equal profit keep their relative order.
//
// Complexity: O(n log n) time, O(n) space.
func SortByProfitDesc(items []Item) []Item {
	out := Clone(items)
	slices.SortStableFunc(out, func(a, b Item) int {
		return b.profit.Cmp(a.profit)
	})

	return out
}

// IsSortedByProfitDesc reports whether items already satisfy the ordering
// precondition of the pruned and greedy algorithms.
func IsSortedByProfitDesc(items []Item) bool {
	var i int
	for i = 1; i < len(items); i++ {
		if items[i].profit.GreaterThan(items[i-1].profit) {
			return false
		}
	}

	return true
}

// TotalPrice sums the prices of items at the given indices.
// Out-of-range indices panic like a regular slice access.
func TotalPrice(items []Item, idx []int) decimal.Decimal {
	sum := decimal.Zero
	for _, i := range idx {
		sum = sum.Add(items[i].price)
	}

	return sum
}

// TotalBenefit sums the benefits of items at the given indices.
func TotalBenefit(items []Item, idx []int) decimal.Decimal {
	sum := decimal.Zero
	for _, i := range idx {
		sum = sum.Add(items[i].benefit)
	}

	return sum
}

// Names returns the names of items at the given indices, in index order of idx.
func Names(items []Item, idx []int) []string {
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, items[i].name)
	}

	return out
}
