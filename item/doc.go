// Package item defines the purchasable unit shared by every selection
// algorithm in lvknap.
//
// An Item carries a name, a price and a profit percentage. Its benefit,
// the amount it returns once bought, is derived exactly once at construction:
//
//	benefit = price × profit / 100
//
// All amounts are github.com/shopspring/decimal values; no float ever touches
// a currency amount, so sums over thousands of items stay exact.
//
// Items are immutable. Inside one solve they are identified by their position
// in the input slice (0..n-1); the name exists for reporting only.
//
// Helpers in this package operate on []Item without mutating the argument:
//   - SortByProfitDesc returns a sorted copy (descending profit, stable on ties),
//     which is the ordering the pruned and greedy algorithms expect.
//   - TotalPrice / TotalBenefit sum a subset given by indices.
//   - Clone gives every caller its own slice.
package item
