package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvknap/knapsack"
)

// benchmarkSolve runs one algorithm on a seeded instance of size n.
// Input is built outside the timer.
func benchmarkSolve(b *testing.B, a knapsack.Algorithm, n int, memo int) {
	rng := rand.New(rand.NewSource(1))
	items := randomItems(rng, n)
	budget := decimal.NewFromInt(500)
	opts := knapsack.NewOptions(knapsack.WithAlgorithm(a), knapsack.WithMemoSize(memo), knapsack.WithVerify(false))

	b.ReportAllocs()
	b.ResetTimer()
	var it int
	for it = 0; it < b.N; it++ {
		if _, err := knapsack.Solve(items, budget, opts); err != nil {
			b.Fatalf("solve failed: %v", err)
		}
	}
}

// BenchmarkBruteForceBinary_n16 measures the 2ⁿ exhaustive search.
func BenchmarkBruteForceBinary_n16(b *testing.B) {
	benchmarkSolve(b, knapsack.BruteForceBinary, 16, 0)
}

// BenchmarkBruteForceRedundant_n7 measures the n! baseline without memo.
func BenchmarkBruteForceRedundant_n7(b *testing.B) {
	benchmarkSolve(b, knapsack.BruteForceRedundant, 7, 0)
}

// BenchmarkBruteForceRedundant_Memo_n14 measures the memo-collapsed search.
func BenchmarkBruteForceRedundant_Memo_n14(b *testing.B) {
	benchmarkSolve(b, knapsack.BruteForceRedundant, 14, 1<<15)
}

// BenchmarkPrunedRecursive_n200 measures the visited-set pruned search.
func BenchmarkPrunedRecursive_n200(b *testing.B) {
	benchmarkSolve(b, knapsack.PrunedRecursive, 200, 0)
}

// BenchmarkPrunedRecursiveStack_n200 measures the cursor pruned search.
func BenchmarkPrunedRecursiveStack_n200(b *testing.B) {
	benchmarkSolve(b, knapsack.PrunedRecursiveStack, 200, 0)
}

// BenchmarkGreedyOnePass_n1000 measures the linear pass.
func BenchmarkGreedyOnePass_n1000(b *testing.B) {
	benchmarkSolve(b, knapsack.GreedyOnePass, 1000, 0)
}

// BenchmarkVerify_n1000 measures the verifier over a full greedy selection.
func BenchmarkVerify_n1000(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	items := randomItems(rng, 1000)
	budget := decimal.NewFromInt(100000)
	sel := knapsack.SolveGreedyOnePass(items, budget)

	b.ResetTimer()
	var it int
	for it = 0; it < b.N; it++ {
		if err := knapsack.Verify(sel, items, budget); err != nil {
			b.Fatal(err)
		}
	}
}
