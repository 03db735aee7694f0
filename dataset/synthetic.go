package dataset

import (
	"math/rand"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvknap/item"
)

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Synthetic returns n valid items in generation order (unsorted).
// Prices are in [1.00, 120.00] with cents, profits in [0.1, 40.0] percent.
// Same (n, seed) ⇒ same listing. n ≤ 0 yields an empty slice.
//
// Complexity: O(n).
func Synthetic(n int, seed int64) []item.Item {
	if n <= 0 {
		return []item.Item{}
	}
	rng := rngFromSeed(seed)
	out := make([]item.Item, n)

	var i int
	for i = 0; i < n; i++ {
		price := decimal.New(int64(100+rng.Intn(11901)), -2)
		profit := decimal.New(int64(1+rng.Intn(400)), -1)
		out[i] = item.MustNew("Share-"+strconv.Itoa(i+1), price, profit)
	}

	return out
}
