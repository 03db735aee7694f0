package knapsack

import (
	"slices"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/shopspring/decimal"
)

// extension is the best continuation found from one search state: the items
// bought after that state (tail, in buying order) and the totals they lead to.
// Earnings and Balance are absolute, i.e. they include the state's own totals.
type extension struct {
	tail     []int
	earnings decimal.Decimal
	balance  decimal.Decimal
}

// prepend returns a new extension whose tail starts with i. The receiver's
// tail is never modified, so memoized extensions stay valid.
func (x extension) prepend(i int) extension {
	tail := make([]int, 0, len(x.tail)+1)
	tail = append(tail, i)
	tail = append(tail, x.tail...)

	return extension{tail: tail, earnings: x.earnings, balance: x.balance}
}

// memo caches extensions by the normalized (sorted) set of chosen indices.
// A memo lives for one solve call only; a nil *memo is a valid, disabled memo.
type memo struct {
	cache   *lru.Cache[string, extension]
	scratch []int
	sb      strings.Builder
}

// newMemo returns nil when size ≤ 0.
func newMemo(size int) *memo {
	if size <= 0 {
		return nil
	}
	c, err := lru.New[string, extension](size)
	if err != nil {
		return nil
	}

	return &memo{cache: c}
}

// key renders the sorted chosen set as "i,j,k".
func (m *memo) key(chosen []int) string {
	m.scratch = append(m.scratch[:0], chosen...)
	slices.Sort(m.scratch)
	m.sb.Reset()
	for k, i := range m.scratch {
		if k > 0 {
			m.sb.WriteByte(',')
		}
		m.sb.WriteString(strconv.Itoa(i))
	}

	return m.sb.String()
}

func (m *memo) get(chosen []int) (extension, bool) {
	if m == nil {
		return extension{}, false
	}

	return m.cache.Get(m.key(chosen))
}

func (m *memo) put(chosen []int, x extension) {
	if m == nil {
		return
	}
	m.cache.Add(m.key(chosen), x)
}
