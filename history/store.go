package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

var (
	// ErrNotFound is returned by Get for an unknown run id.
	ErrNotFound = errors.New("history: run not found")

	// ErrEmptyRunID is returned by Save when the record has no id.
	ErrEmptyRunID = errors.New("history: empty run id")
)

// Record is one stored run.
type Record struct {
	RunID     string
	Algorithm string
	Dataset   string
	Size      int
	Budget    decimal.Decimal
	Earnings  decimal.Decimal
	Balance   decimal.Decimal
	Duration  time.Duration
	Chosen    []string
	CreatedAt time.Time
}

// Store is a SQLite backed run log. Safe for concurrent use (database/sql).
type Store struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

const schema = `CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	algorithm   TEXT NOT NULL,
	dataset     TEXT NOT NULL,
	size        INTEGER NOT NULL,
	budget      TEXT NOT NULL,
	earnings    TEXT NOT NULL,
	balance     TEXT NOT NULL,
	duration_ns INTEGER NOT NULL,
	chosen      TEXT NOT NULL,
	created_at  INTEGER NOT NULL
)`

// Open creates (if needed) the database file at path and the runs table.
// A nil logger is replaced by zap.NewNop.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		path = "lvknap.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("history: create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: create runs table: %w", err)
	}
	logger.Debug("history store opened", zap.String("path", path))

	return &Store{db: db, path: path, logger: logger}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Save inserts r. CreatedAt defaults to now.
func (s *Store) Save(ctx context.Context, r Record) error {
	if r.RunID == "" {
		return ErrEmptyRunID
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	chosen := r.Chosen
	if chosen == nil {
		chosen = []string{}
	}
	names, err := json.Marshal(chosen)
	if err != nil {
		return fmt.Errorf("history: encode chosen: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO runs
		(run_id, algorithm, dataset, size, budget, earnings, balance, duration_ns, chosen, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		r.RunID, r.Algorithm, r.Dataset, r.Size,
		r.Budget.String(), r.Earnings.String(), r.Balance.String(),
		int64(r.Duration), string(names), r.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("history: insert %s: %w", r.RunID, err)
	}
	s.logger.Debug("run saved", zap.String("run_id", r.RunID), zap.String("algorithm", r.Algorithm))

	return nil
}

const selectRuns = `SELECT run_id, algorithm, dataset, size, budget, earnings, balance, duration_ns, chosen, created_at FROM runs`

// Get returns the run with the given id or ErrNotFound.
func (s *Store) Get(ctx context.Context, runID string) (Record, error) {
	row := s.db.QueryRowContext(ctx, selectRuns+` WHERE run_id = ?`, runID)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, runID)
	}

	return r, err
}

// List returns the most recent runs first. limit ≤ 0 returns all of them.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	q := selectRuns + ` ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("history: select runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate runs: %w", err)
	}

	return out, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		r                         Record
		budget, earnings, balance string
		durationNS, createdNS     int64
		chosen                    string
	)
	err := sc.Scan(&r.RunID, &r.Algorithm, &r.Dataset, &r.Size,
		&budget, &earnings, &balance, &durationNS, &chosen, &createdNS)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, err
	}
	if err != nil {
		return Record{}, fmt.Errorf("history: scan: %w", err)
	}
	if r.Budget, err = decimal.NewFromString(budget); err != nil {
		return Record{}, fmt.Errorf("history: %s budget: %w", r.RunID, err)
	}
	if r.Earnings, err = decimal.NewFromString(earnings); err != nil {
		return Record{}, fmt.Errorf("history: %s earnings: %w", r.RunID, err)
	}
	if r.Balance, err = decimal.NewFromString(balance); err != nil {
		return Record{}, fmt.Errorf("history: %s balance: %w", r.RunID, err)
	}
	if err := json.Unmarshal([]byte(chosen), &r.Chosen); err != nil {
		return Record{}, fmt.Errorf("history: %s chosen: %w", r.RunID, err)
	}
	r.Duration = time.Duration(durationNS)
	r.CreatedAt = time.Unix(0, createdNS)

	return r, nil
}
