package knapsack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel errors returned by the dispatcher and validators.
var (
	// ErrUnsupportedAlgorithm indicates a selector outside the closed Algorithm set.
	ErrUnsupportedAlgorithm = errors.New("knapsack: unsupported algorithm")

	// ErrNegativeBudget indicates a budget below zero.
	ErrNegativeBudget = errors.New("knapsack: budget must be non-negative")

	// ErrBadMemoSize indicates a negative Options.MemoSize.
	ErrBadMemoSize = errors.New("knapsack: memo size must be non-negative")

	// ErrInvariant is wrapped by every *InvariantError reported by Verify.
	ErrInvariant = errors.New("knapsack: selection invariant violated")
)

// Algorithm selects one of the five solvers. The numeric values are part of
// the public contract (CLI flag, stored history) and never change.
type Algorithm int

const (
	// BruteForceBinary explores include/exclude for each index. Optimal.
	BruteForceBinary Algorithm = iota

	// BruteForceRedundant tries every affordable remaining item at every level. Optimal.
	BruteForceRedundant

	// PrunedRecursive is the visited-set DFS with the stop-after-improvement rule.
	PrunedRecursive

	// GreedyOnePass buys whatever fits in one pass over sorted items.
	GreedyOnePass

	// PrunedRecursiveStack is the cursor-based DFS with the same stop rule.
	PrunedRecursiveStack
)

var algorithmNames = [...]string{
	BruteForceBinary:     "brute-force-binary",
	BruteForceRedundant:  "brute-force-redundant",
	PrunedRecursive:      "pruned-recursive",
	GreedyOnePass:        "greedy-one-pass",
	PrunedRecursiveStack: "pruned-recursive-stack",
}

// Algorithms returns every supported selector in numeric order.
func Algorithms() []Algorithm {
	return []Algorithm{BruteForceBinary, BruteForceRedundant, PrunedRecursive, GreedyOnePass, PrunedRecursiveStack}
}

// Valid reports whether a is one of the supported selectors.
func (a Algorithm) Valid() bool {
	return a >= BruteForceBinary && a <= PrunedRecursiveStack
}

// String returns the kebab-case name, or "algorithm(N)" for unknown values.
func (a Algorithm) String() string {
	if !a.Valid() {
		return "algorithm(" + strconv.Itoa(int(a)) + ")"
	}

	return algorithmNames[a]
}

// Exhaustive reports whether the algorithm always returns an optimal selection.
func (a Algorithm) Exhaustive() bool {
	return a == BruteForceBinary || a == BruteForceRedundant
}

// RequiresSorted reports whether the algorithm assumes descending profit order.
func (a Algorithm) RequiresSorted() bool {
	return a == PrunedRecursive || a == GreedyOnePass || a == PrunedRecursiveStack
}

// ParseAlgorithm accepts either the numeric selector ("0".."4") or its name.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if n, err := strconv.Atoi(s); err == nil {
		a := Algorithm(n)
		if !a.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, n)
		}

		return a, nil
	}
	for i, name := range algorithmNames {
		if name == s {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// Selection is the outcome of one solve.
//
// Invariants (checked by Verify):
//   - Balance  = budget − Σ price[i], i ∈ Chosen, and Balance ≥ 0.
//   - Earnings = Σ benefit[i], i ∈ Chosen.
//   - Chosen holds distinct indices in [0, len(items)).
//
// Chosen lists indices in buying order; it is never nil on a returned value.
type Selection struct {
	Earnings decimal.Decimal
	Chosen   []int
	Balance  decimal.Decimal
}

// emptySelection is the fresh accumulator every solver starts from.
func emptySelection(budget decimal.Decimal) Selection {
	return Selection{Earnings: decimal.Zero, Chosen: []int{}, Balance: budget}
}

// Clone returns a copy that shares no memory with s.
func (s Selection) Clone() Selection {
	out := s
	out.Chosen = make([]int, len(s.Chosen))
	copy(out.Chosen, s.Chosen)

	return out
}

// Spent returns budget − Balance.
func (s Selection) Spent(budget decimal.Decimal) decimal.Decimal {
	return budget.Sub(s.Balance)
}

// Result is what Solve returns: the selection, the algorithm that produced it
// and the wall-clock duration of the solver call (informational only).
type Result struct {
	Selection
	Algorithm Algorithm
	Duration  time.Duration
}

// InvariantError describes the first failed check of Verify.
type InvariantError struct {
	Check string // which invariant failed (e.g. "earnings", "balance", "index")
	Want  string
	Got   string
}

// Error implements error.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("knapsack: %s invariant violated: got %s, want %s", e.Check, e.Got, e.Want)
}

// Unwrap lets errors.Is match ErrInvariant.
func (e *InvariantError) Unwrap() error { return ErrInvariant }
