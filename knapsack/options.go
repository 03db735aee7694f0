package knapsack

// Options configures Solve and Compare.
//
//   - Algo     – solver selector (see Algorithm).
//   - MemoSize – LRU capacity of the per-call memo for BruteForceRedundant and
//     PrunedRecursive; 0 disables it. Must be ≥ 0.
//   - Verify   – when true (default), Solve passes every result through
//     MustVerify before returning it.
type Options struct {
	Algo     Algorithm
	MemoSize int
	Verify   bool
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithAlgorithm selects the solver.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algo = a
	}
}

// WithMemoSize sets the memo capacity; 0 disables memoization.
// Negative values are rejected by Solve with ErrBadMemoSize.
func WithMemoSize(n int) Option {
	return func(o *Options) {
		o.MemoSize = n
	}
}

// WithVerify toggles the post-solve invariant check.
func WithVerify(on bool) Option {
	return func(o *Options) {
		o.Verify = on
	}
}

// DefaultOptions returns the defaults:
//   - Algo:     BruteForceBinary
//   - MemoSize: 0 (no memo)
//   - Verify:   true
func DefaultOptions() Options {
	return Options{
		Algo:     BruteForceBinary,
		MemoSize: 0,
		Verify:   true,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
