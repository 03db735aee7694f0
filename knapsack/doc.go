// Package knapsack selects the subset of items that maximizes total benefit
// under a fixed budget (0/1 knapsack over decimal prices).
//
// Five solvers share one input contract (items, budget) and one output type
// (Selection). They trade exhaustiveness against running time:
//
//	BruteForceBinary      include/exclude DFS with backtracking      O(2ⁿ)     optimal
//	BruteForceRedundant   every affordable item at every level        O(n!)     optimal
//	PrunedRecursive       visited-set DFS, stops after an improvement  heuristic
//	GreedyOnePass         one pass, buy whatever fits                  O(n)      lower bound
//	PrunedRecursiveStack  cursor DFS, same stop rule as PrunedRecursive heuristic
//
// PrunedRecursive, GreedyOnePass and PrunedRecursiveStack expect items sorted
// by descending profit percentage (see item.SortByProfitDesc). The solvers do
// not sort; an unsorted input yields a consistent but possibly poorer result.
//
// The pruned variants share a stop rule: inside one frame, once a candidate's
// recursion improved on the frame's best, the next affordable candidate ends
// the frame. It assumes lower-percentage items cannot do better, which does
// not hold for every price distribution; BruteForceBinary measures the gap.
//
// Entry points:
//
//	res, err := knapsack.Solve(items, budget, knapsack.DefaultOptions())
//	all, err := knapsack.Compare(items, budget, opts)  // every algorithm
//
// Each solver is also callable directly as Solve<Algorithm>, e.g.
// SolveGreedyOnePass(items, budget); the direct calls skip validation,
// cloning and verification.
//
// Solve validates the budget and the selector, hands the solver a private copy
// of the items, times the call and runs Verify on the result. A Verify failure
// is an algorithm defect and panics (MustVerify); it is never returned as an
// ordinary error.
//
// Memoization: Options.MemoSize > 0 enables a bounded LRU memo, local to one
// call, for BruteForceRedundant and PrunedRecursive. The memo is keyed by the
// sorted chosen indices and never changes the result, only the running time.
//
// Everything here is single-threaded and synchronous. There is no
// cancellation: the exhaustive solvers are meant for small n (≲ 20 for the
// binary one, ≲ 8 for the redundant one without memo).
package knapsack
