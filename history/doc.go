// Package history persists solve runs in a local SQLite file so that runs of
// different algorithms, datasets and budgets can be compared later.
//
// The driver is modernc.org/sqlite (pure Go, no cgo). One table, runs, holds
// one row per Record. Amounts are stored as decimal strings so nothing is
// lost to floating point; chosen names are a JSON array.
package history
