package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknap/item"
	"github.com/katalvlaran/lvknap/knapsack"
)

// TestGreedyOnePass_Suboptimal shows greedy buying C then A (20, balance 100)
// while the optimum is B+C (26).
func TestGreedyOnePass_Suboptimal(t *testing.T) {
	items := item.SortByProfitDesc(scenario())
	budget := dec("250")

	greedy := knapsack.SolveGreedyOnePass(items, budget)
	opt := knapsack.SolveBruteForceBinary(items, budget)

	require.NoError(t, knapsack.Verify(greedy, items, budget))
	assert.Equal(t, []string{"C", "A"}, names(items, greedy))
	requireDecEqual(t, dec("20"), greedy.Earnings, "earnings")
	requireDecEqual(t, dec("100"), greedy.Balance, "balance")
	assert.True(t, opt.Earnings.GreaterThan(greedy.Earnings))
}

// TestGreedyOnePass_SkipsThenBuysCheaper verifies a skipped item does not stop
// the pass: later, cheaper items are still bought.
func TestGreedyOnePass_SkipsThenBuysCheaper(t *testing.T) {
	items := []item.Item{
		mk("big", "300", "30"),
		mk("mid", "90", "20"),
		mk("small", "10", "10"),
	}
	sel := knapsack.SolveGreedyOnePass(items, dec("100"))

	assert.Equal(t, []int{1, 2}, sel.Chosen)
	requireDecEqual(t, dec("0"), sel.Balance, "balance")
}
