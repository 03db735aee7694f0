package knapsack_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknap/knapsack"
)

// TestVerify_Valid accepts a hand-built consistent selection.
func TestVerify_Valid(t *testing.T) {
	sel := knapsack.Selection{Earnings: dec("26"), Chosen: []int{1, 2}, Balance: dec("0")}
	require.NoError(t, knapsack.Verify(sel, scenario(), dec("250")))
}

// TestVerify_Failures covers every invariant check.
func TestVerify_Failures(t *testing.T) {
	items := scenario()
	budget := dec("250")
	cases := []struct {
		name  string
		sel   knapsack.Selection
		check string
	}{
		{"out of range", knapsack.Selection{Earnings: dec("10"), Chosen: []int{3}, Balance: dec("150")}, "index"},
		{"negative index", knapsack.Selection{Chosen: []int{-1}}, "index"},
		{"duplicate", knapsack.Selection{Earnings: dec("20"), Chosen: []int{0, 0}, Balance: dec("50")}, "unique index"},
		{"earnings", knapsack.Selection{Earnings: dec("11"), Chosen: []int{0}, Balance: dec("150")}, "earnings"},
		{"balance", knapsack.Selection{Earnings: dec("10"), Chosen: []int{0}, Balance: dec("151")}, "balance"},
		{"overspend", knapsack.Selection{Earnings: dec("36"), Chosen: []int{0, 1, 2}, Balance: dec("-100")}, "non-negative balance"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := knapsack.Verify(tc.sel, items, budget)
			require.ErrorIs(t, err, knapsack.ErrInvariant)

			var ie *knapsack.InvariantError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tc.check, ie.Check)
		})
	}
}

// TestMustVerify_Panics ensures a broken selection aborts.
func TestMustVerify_Panics(t *testing.T) {
	bad := knapsack.Selection{Earnings: dec("1"), Chosen: []int{}, Balance: dec("250")}
	assert.Panics(t, func() { knapsack.MustVerify(bad, scenario(), dec("250")) })

	ok := knapsack.Selection{Earnings: decimal.Zero, Chosen: []int{}, Balance: dec("250")}
	assert.NotPanics(t, func() { knapsack.MustVerify(ok, scenario(), dec("250")) })
}
