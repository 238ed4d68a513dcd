// Package audit persists a record of each plan run to a local SQLite
// database, purely as an optional run-history log; nothing in the
// planner's core reads it back.
package audit

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/tourneyplan/tourneyplan/internal/result"
)

// Store is a handle to the audit database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite database at path and
// ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening sqlite database %q", path)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	scenario_path TEXT NOT NULL,
	admitted_count INTEGER NOT NULL,
	rejected_count INTEGER NOT NULL,
	ran_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS admitted_plans (
	run_id INTEGER NOT NULL REFERENCES runs(id),
	scenario_id TEXT NOT NULL,
	freq TEXT NOT NULL,
	starts_at_ms INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL
);
`
	_, err := s.db.Exec(schema)
	return errors.Wrap(err, "applying audit schema")
}

// RecordRun writes one run's outcome and its admitted plans.
func (s *Store) RecordRun(ctx context.Context, scenarioPath string, admitted []result.AdmittedResult, rejected int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning audit transaction")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (scenario_path, admitted_count, rejected_count, ran_at) VALUES (?, ?, ?, ?)`,
		scenarioPath, len(admitted), rejected, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return errors.Wrap(err, "inserting run row")
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "reading run id")
	}

	for _, a := range admitted {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO admitted_plans (run_id, scenario_id, freq, starts_at_ms, duration_ms) VALUES (?, ?, ?, ?, ?)`,
			runID, a.ID, a.Freq, a.StartsAtMS, a.DurationMS,
		); err != nil {
			return errors.Wrap(err, "inserting admitted plan row")
		}
	}

	return errors.Wrap(tx.Commit(), "committing audit transaction")
}

// RunSummary is one historical row from the runs table.
type RunSummary struct {
	ID            int64
	ScenarioPath  string
	AdmittedCount int
	RejectedCount int
	RanAt         string
}

// History returns the most recent runs, newest first, capped at limit.
func (s *Store) History(ctx context.Context, limit int) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, scenario_path, admitted_count, rejected_count, ran_at FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying run history")
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.ScenarioPath, &r.AdmittedCount, &r.RejectedCount, &r.RanAt); err != nil {
			return nil, errors.Wrap(err, "scanning run history row")
		}
		out = append(out, r)
	}
	return out, errors.Wrap(rows.Err(), "reading run history")
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
