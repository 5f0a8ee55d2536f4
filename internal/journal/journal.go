// Package journal records bigcalc runs in a SQLite database.
//
// Integers are stored as decimal TEXT columns through the
// database/sql integration of bigint.Int, so values of any size
// survive the round trip unchanged.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/govalues/bigint"
	"github.com/govalues/bigint/internal/crosscheck"
	_ "modernc.org/sqlite" // SQLite driver
)

// ErrClosed is returned by operations on a closed journal
var ErrClosed = errors.New("journal is closed")

// driverName is the database/sql name of the modernc SQLite driver
const driverName = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS pow_results (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	base       TEXT    NOT NULL,
	exp        TEXT    NOT NULL,
	result     TEXT    NOT NULL,
	digits     INTEGER NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS check_runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	seed       INTEGER NOT NULL,
	checks     INTEGER NOT NULL,
	mismatches INTEGER NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS mismatches (
	run_id INTEGER NOT NULL REFERENCES check_runs(id),
	op     TEXT    NOT NULL,
	x      TEXT    NOT NULL,
	y      TEXT    NOT NULL,
	got    TEXT,
	want   TEXT
);

CREATE INDEX IF NOT EXISTS idx_mismatches_run ON mismatches(run_id);
`

// PowResult is a recorded exponentiation
type PowResult struct {
	ID        int64
	Base      bigint.Int
	Exp       bigint.Int
	Result    bigint.Int
	Elapsed   time.Duration
	CreatedAt time.Time
}

// CheckRun is a recorded differential check
type CheckRun struct {
	ID         int64
	Seed       int64
	Checks     int64
	Mismatches []crosscheck.Mismatch
	Elapsed    time.Duration
	CreatedAt  time.Time
}

// Journal is a SQLite-backed record of runs
type Journal struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens the journal at path, creating the database and its schema
// if needed.
func Open(ctx context.Context, path string) (*Journal, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal %s: %w", path, err)
	}

	// SQLite serializes writers
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping journal %s: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}

	return &Journal{db: db, now: time.Now}, nil
}

// Close closes the database
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	if err != nil {
		return fmt.Errorf("failed to close journal: %w", err)
	}
	return nil
}

// RecordPow stores the result of base^exp
func (j *Journal) RecordPow(ctx context.Context, base, exp, result bigint.Int, elapsed time.Duration) (int64, error) {
	if j.db == nil {
		return 0, ErrClosed
	}
	res, err := j.db.ExecContext(ctx,
		`INSERT INTO pow_results (base, exp, result, digits, elapsed_ns, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		base, exp, result, result.Prec(), elapsed.Nanoseconds(), j.now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record pow result: %w", err)
	}
	return res.LastInsertId()
}

// RecordCheck stores a check report together with its mismatches
// in one transaction.
func (j *Journal) RecordCheck(ctx context.Context, report crosscheck.Report) (id int64, err error) {
	if j.db == nil {
		return 0, ErrClosed
	}
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO check_runs (seed, checks, mismatches, elapsed_ns, created_at) VALUES (?, ?, ?, ?, ?)`,
		report.Seed, report.Checks, len(report.Mismatches), report.Elapsed.Nanoseconds(), j.now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record check run: %w", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read check run id: %w", err)
	}

	for _, m := range report.Mismatches {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO mismatches (run_id, op, x, y, got, want) VALUES (?, ?, ?, ?, ?, ?)`,
			id, m.Op, m.X, m.Y, m.Got, m.Want,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to record mismatch %v: %w", m, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit check run: %w", err)
	}
	return id, nil
}

// RecentPows returns up to limit most recent exponentiations, newest first
func (j *Journal) RecentPows(ctx context.Context, limit int) ([]PowResult, error) {
	if j.db == nil {
		return nil, ErrClosed
	}
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, base, exp, result, elapsed_ns, created_at FROM pow_results ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query pow results: %w", err)
	}
	defer rows.Close()

	var results []PowResult
	for rows.Next() {
		var (
			p       PowResult
			elapsed int64
			created int64
		)
		if err := rows.Scan(&p.ID, &p.Base, &p.Exp, &p.Result, &elapsed, &created); err != nil {
			return nil, fmt.Errorf("failed to scan pow result: %w", err)
		}
		p.Elapsed = time.Duration(elapsed)
		p.CreatedAt = time.Unix(0, created)
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pow results: %w", err)
	}
	return results, nil
}

// RecentChecks returns up to limit most recent check runs, newest first,
// each with its mismatches.
func (j *Journal) RecentChecks(ctx context.Context, limit int) ([]CheckRun, error) {
	if j.db == nil {
		return nil, ErrClosed
	}
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, seed, checks, elapsed_ns, created_at FROM check_runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query check runs: %w", err)
	}

	var runs []CheckRun
	for rows.Next() {
		var (
			r       CheckRun
			elapsed int64
			created int64
		)
		if err := rows.Scan(&r.ID, &r.Seed, &r.Checks, &elapsed, &created); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan check run: %w", err)
		}
		r.Elapsed = time.Duration(elapsed)
		r.CreatedAt = time.Unix(0, created)
		runs = append(runs, r)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate check runs: %w", err)
	}

	// The single connection is free again once rows are closed
	for i := range runs {
		runs[i].Mismatches, err = j.mismatches(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (j *Journal) mismatches(ctx context.Context, runID int64) ([]crosscheck.Mismatch, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT op, x, y, got, want FROM mismatches WHERE run_id = ? ORDER BY rowid`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query mismatches of run %d: %w", runID, err)
	}
	defer rows.Close()

	var list []crosscheck.Mismatch
	for rows.Next() {
		var m crosscheck.Mismatch
		if err := rows.Scan(&m.Op, &m.X, &m.Y, &m.Got, &m.Want); err != nil {
			return nil, fmt.Errorf("failed to scan mismatch of run %d: %w", runID, err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mismatches of run %d: %w", runID, err)
	}
	return list, nil
}
