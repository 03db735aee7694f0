package knapsack

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvknap/item"
)

// Verify recomputes earnings and balance from sel.Chosen and checks them
// against the reported totals.
//
// Checks, in order:
//   - every index is in [0, len(items)) and appears once;
//   - Σ benefit == sel.Earnings;
//   - budget − Σ price == sel.Balance;
//   - sel.Balance ≥ 0.
//
// The first failure is returned as *InvariantError (errors.Is ErrInvariant).
//
// Complexity: O(k) for k chosen indices.
func Verify(sel Selection, items []item.Item, budget decimal.Decimal) error {
	seen := make(map[int]struct{}, len(sel.Chosen))
	earnings := decimal.Zero
	balance := budget
	for _, i := range sel.Chosen {
		if i < 0 || i >= len(items) {
			return &InvariantError{Check: "index", Want: "[0," + strconv.Itoa(len(items)) + ")", Got: strconv.Itoa(i)}
		}
		if _, dup := seen[i]; dup {
			return &InvariantError{Check: "unique index", Want: "one occurrence", Got: strconv.Itoa(i) + " repeated"}
		}
		seen[i] = struct{}{}
		earnings = earnings.Add(items[i].Benefit())
		balance = balance.Sub(items[i].Price())
	}

	if !earnings.Equal(sel.Earnings) {
		return &InvariantError{Check: "earnings", Want: earnings.String(), Got: sel.Earnings.String()}
	}
	if !balance.Equal(sel.Balance) {
		return &InvariantError{Check: "balance", Want: balance.String(), Got: sel.Balance.String()}
	}
	if balance.IsNegative() {
		return &InvariantError{Check: "non-negative balance", Want: ">= 0", Got: balance.String()}
	}

	return nil
}

// MustVerify panics when Verify fails. A failed invariant is a solver defect,
// never a recoverable condition.
func MustVerify(sel Selection, items []item.Item, budget decimal.Decimal) {
	if err := Verify(sel, items, budget); err != nil {
		panic(err)
	}
}
