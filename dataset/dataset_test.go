package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknap/dataset"
	"github.com/katalvlaran/lvknap/item"
)

const listing = `name,price,profit
Share-A,100,10
Share-B,200.50,8
Share-Z,0,12
Share-N,-3.20,9
Share-C,50,20
Share-P,40,0
`

// TestLoad_Valid parses every row, including the ones Clean will drop.
func TestLoad_Valid(t *testing.T) {
	rows, err := dataset.Load(strings.NewReader(listing))
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Equal(t, "Share-B", rows[1].Name)
	assert.True(t, rows[1].Price.Equal(decimal.RequireFromString("200.50")))
	assert.Equal(t, 3, rows[1].Line)
	assert.True(t, rows[3].Price.IsNegative())
}

// TestLoad_ColumnOrder takes column positions from the header.
func TestLoad_ColumnOrder(t *testing.T) {
	in := "profit, Name ,extra,PRICE\n12.5,X,foo,80\n"
	rows, err := dataset.Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "X", rows[0].Name)
	assert.Equal(t, "80", rows[0].Price.String())
	assert.Equal(t, "12.5", rows[0].Profit.String())
}

// TestLoad_Empty returns no rows and no error.
func TestLoad_Empty(t *testing.T) {
	rows, err := dataset.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = dataset.Load(strings.NewReader("name,price,profit\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// TestLoad_Errors covers malformed cells and missing columns.
func TestLoad_Errors(t *testing.T) {
	_, err := dataset.Load(strings.NewReader("name,price,profit\nA,1,2\nB,abc,3\n"))
	require.ErrorIs(t, err, dataset.ErrMalformedRow)
	assert.Contains(t, err.Error(), "line 3")

	_, err = dataset.Load(strings.NewReader("name,price,profit\nA,1\n"))
	require.ErrorIs(t, err, dataset.ErrMalformedRow)

	_, err = dataset.Load(strings.NewReader("name,cost,profit\nA,1,2\n"))
	require.ErrorIs(t, err, dataset.ErrMissingColumn)
}

// TestClean_DropsNonPositive keeps only strictly positive rows, in order.
func TestClean_DropsNonPositive(t *testing.T) {
	rows, err := dataset.Load(strings.NewReader(listing))
	require.NoError(t, err)

	items := dataset.Clean(rows)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"Share-A", "Share-B", "Share-C"},
		item.Names(items, []int{0, 1, 2}))
}

// TestPrepare_Sorted returns cleaned items in descending profit order.
func TestPrepare_Sorted(t *testing.T) {
	rows, err := dataset.Load(strings.NewReader(listing))
	require.NoError(t, err)

	items := dataset.Prepare(rows)
	require.True(t, item.IsSortedByProfitDesc(items))
	assert.Equal(t, "Share-C", items[0].Name())
}

// TestLoadFile reads from disk and reports missing files.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := dataset.Path(dir, 2)
	assert.Equal(t, filepath.Join(dir, "dataset2_Python+P7.csv"), path)
	require.NoError(t, os.WriteFile(path, []byte(listing), 0o600))

	rows, err := dataset.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, rows, 6)

	_, err = dataset.LoadFile(dataset.Path(dir, 9))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestSynthetic_Deterministic produces the same listing for the same seed and
// treats seed 0 as the default seed.
func TestSynthetic_Deterministic(t *testing.T) {
	a := dataset.Synthetic(50, 7)
	b := dataset.Synthetic(50, 7)
	require.Len(t, a, 50)
	assert.Equal(t, a, b)

	assert.Equal(t, dataset.Synthetic(20, 0), dataset.Synthetic(20, 1))
	assert.NotEqual(t, dataset.Synthetic(20, 2), dataset.Synthetic(20, 3))
	assert.Empty(t, dataset.Synthetic(0, 5))

	for _, it := range a {
		assert.True(t, it.Price().IsPositive())
		assert.True(t, it.Profit().IsPositive())
	}
}
