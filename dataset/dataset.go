package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvknap/item"
)

var (
	// ErrMalformedRow reports a row whose price or profit is not a decimal
	// number, or which has fewer cells than the header requires.
	ErrMalformedRow = errors.New("dataset: malformed row")

	// ErrMissingColumn reports a header without one of name, price, profit.
	ErrMissingColumn = errors.New("dataset: missing column")
)

// requiredColumns are matched case-insensitively against the header.
var requiredColumns = [...]string{"name", "price", "profit"}

// RawRow is one parsed line before filtering. Price and Profit may be zero or
// negative here; Clean decides what survives.
type RawRow struct {
	Line   int
	Name   string
	Price  decimal.Decimal
	Profit decimal.Decimal
}

// Path returns the conventional file name for dataset n inside dir.
func Path(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("dataset%d_Python+P7.csv", n))
}

// LoadFile opens path and calls Load.
func LoadFile(path string) ([]RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

// Load parses a CSV listing. The header selects the columns; rows are
// returned in file order. An empty input (no header) yields no rows.
func Load(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []RawRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []RawRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		line, _ := cr.FieldPos(0)
		row, err := parseRow(rec, cols, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if rows == nil {
		rows = []RawRow{}
	}

	return rows, nil
}

// columnIndex maps name, price and profit to their header positions.
func columnIndex(header []string) ([3]int, error) {
	var idx [3]int
	for k, want := range requiredColumns {
		idx[k] = -1
		for j, h := range header {
			if strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")), want) {
				idx[k] = j
				break
			}
		}
		if idx[k] < 0 {
			return idx, fmt.Errorf("%w: %q", ErrMissingColumn, want)
		}
	}

	return idx, nil
}

func parseRow(rec []string, cols [3]int, line int) (RawRow, error) {
	for _, c := range cols {
		if c >= len(rec) {
			return RawRow{}, fmt.Errorf("%w: line %d: %d cells", ErrMalformedRow, line, len(rec))
		}
	}
	price, err := decimal.NewFromString(strings.TrimSpace(rec[cols[1]]))
	if err != nil {
		return RawRow{}, fmt.Errorf("%w: line %d: price %q", ErrMalformedRow, line, rec[cols[1]])
	}
	profit, err := decimal.NewFromString(strings.TrimSpace(rec[cols[2]]))
	if err != nil {
		return RawRow{}, fmt.Errorf("%w: line %d: profit %q", ErrMalformedRow, line, rec[cols[2]])
	}

	return RawRow{
		Line:   line,
		Name:   strings.TrimSpace(rec[cols[0]]),
		Price:  price,
		Profit: profit,
	}, nil
}

// Clean keeps rows with price > 0 and profit > 0, in input order.
func Clean(rows []RawRow) []item.Item {
	out := make([]item.Item, 0, len(rows))
	for _, r := range rows {
		it, err := item.New(r.Name, r.Price, r.Profit)
		if err != nil {
			continue
		}
		out = append(out, it)
	}

	return out
}

// Prepare is Clean followed by item.SortByProfitDesc.
func Prepare(rows []RawRow) []item.Item {
	return item.SortByProfitDesc(Clean(rows))
}
