// Package dataset loads item listings and turns them into the sorted
// []item.Item the knapsack solvers expect.
//
// The on-disk format is a CSV file with a header row naming at least the
// columns name, price and profit (any order, extra columns ignored):
//
//	name,price,profit
//	Share-GRUT,498.76,39.42
//	Share-GHIZ,-12.44,14.10
//
// Files follow the naming scheme dataset{N}_Python+P7.csv; Path builds it.
//
// Pipeline:
//
//	rows, err := dataset.LoadFile(dataset.Path("data", 1))
//	items := dataset.Prepare(rows) // Clean + item.SortByProfitDesc
//
// Clean keeps rows with price > 0 and profit > 0 and drops the rest silently;
// listings in the wild carry zero and negative entries. Parse errors are not
// silent: a cell that is not a decimal number fails the whole load with
// ErrMalformedRow and the 1-based line number.
//
// Synthetic generates a reproducible listing for sweeps and tests.
package dataset
