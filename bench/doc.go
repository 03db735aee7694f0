// Package bench drives knapsack solves the way an operator runs them: sort
// the listing, time the solve, verify, then report.
//
// A Runner owns the ambient concerns the core packages stay out of:
//
//   - structured logging (go.uber.org/zap), one entry per run;
//   - Prometheus collectors (solve counter, duration histogram, last
//     earnings gauge), registered on a caller supplied Registerer;
//   - an optional Sink (history.Store satisfies it) receiving one record
//     per run, keyed by a random UUID.
//
// RunOnce measures a single solve. Sweep measures one algorithm over growing
// prefixes of a listing and pairs every sample with the algorithm's reference
// complexity curve, scaled to the first non-zero sample, ready for the curve
// package to draw.
//
// Solves themselves are synchronous and cannot be interrupted; ctx is
// checked before each solve.
package bench
