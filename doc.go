// Package lvknap picks the most profitable set of shares you can afford,
// and measures how fast five different strategies get there.
//
// 🚀 What is lvknap?
//
//	A 0/1 knapsack toolkit over exact decimal money:
//		• Items: name, price, profit % and the derived benefit
//		• Solvers: binary brute force, redundant brute force, two pruned
//		  recursive searches, one-pass greedy
//		• Verifier: every selection is re-summed and checked before it leaves
//		• Tooling: CSV datasets, timing sweeps, duration curves, run history,
//		  Prometheus metrics, a CLI
//
// ✨ Why lvknap?
//
//   - Exact – shopspring/decimal everywhere money is touched, no float drift
//   - Honest – heuristics are measured against the exhaustive optimum
//   - Deterministic – same listing, budget and algorithm ⇒ same selection
//
// Packages:
//
//	item/     — Item type, sorting and summing helpers
//	knapsack/ — the five solvers, Verify, Solve/Compare dispatcher
//	dataset/  — CSV loading, cleaning, synthetic listings
//	bench/    — timed runs, size sweeps, metrics, history sink
//	history/  — SQLite run log
//	curve/    — duration vs size plots
//	config/   — YAML + LVKNAP_* environment configuration
//	cmd/lvknap — the command-line front end
//
// Quick example:
//
//	budget 250, shares A 100@10%, B 200@8%, C 50@20%
//	greedy  → C, A   benefit 20
//	optimum → C, B   benefit 26
//
//	go install github.com/katalvlaran/lvknap/cmd/lvknap@latest
package lvknap
