package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/routekit/vrpkit/solver"
)

// SQLiteSchema mirrors PostgresSchema, minus the JSONB type (SQLite stores
// the payload as plain TEXT).
const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS solve_submissions (
	id          TEXT PRIMARY KEY,
	fingerprint TEXT NOT NULL,
	status      TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	result      TEXT,
	error       TEXT
);
`

// SQLiteStore is the embeddable, single-process backend: a CLI run or a
// local dev loop shouldn't need a Postgres instance just to keep a history
// of solved submissions.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if absent) a SQLite database at path and
// applies SQLiteSchema. Pass ":memory:" for an ephemeral store.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open sqlite: %w", err)
	}

	if _, err := db.Exec(SQLiteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateSubmission(ctx context.Context, id, fingerprint string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO solve_submissions (id, fingerprint, status, created_at) VALUES (?, ?, ?, ?)`,
		id, fingerprint, string(StatusPending), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("storage: create submission: %w", err)
	}

	return nil
}

func (s *SQLiteStore) CompleteSubmission(ctx context.Context, id string, result *solver.Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("storage: marshal result: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE solve_submissions SET status = ?, result = ? WHERE id = ?`,
		string(StatusCompleted), string(payload), id,
	)
	if err != nil {
		return fmt.Errorf("storage: complete submission: %w", err)
	}

	return nil
}

func (s *SQLiteStore) FailSubmission(ctx context.Context, id string, cause error) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE solve_submissions SET status = ?, error = ? WHERE id = ?`,
		string(StatusFailed), cause.Error(), id,
	)
	if err != nil {
		return fmt.Errorf("storage: fail submission: %w", err)
	}

	return nil
}

func (s *SQLiteStore) GetSubmission(ctx context.Context, id string) (Submission, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, fingerprint, status, created_at, result, error FROM solve_submissions WHERE id = ?`,
		id,
	)

	var (
		sub        Submission
		status     string
		createdAt  string
		resultText sql.NullString
		errText    sql.NullString
	)

	if err := row.Scan(&sub.ID, &sub.Fingerprint, &status, &createdAt, &resultText, &errText); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, fmt.Errorf("storage: get submission: %w", err)
	}

	sub.Status = Status(status)
	if errText.Valid {
		sub.Error = errText.String
	}

	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Submission{}, fmt.Errorf("storage: parse created_at: %w", err)
	}
	sub.CreatedAt = parsed

	if resultText.Valid && resultText.String != "" {
		var result solver.Result
		if err := json.Unmarshal([]byte(resultText.String), &result); err != nil {
			return Submission{}, fmt.Errorf("storage: unmarshal result: %w", err)
		}
		sub.Result = &result
	}

	return sub, nil
}
