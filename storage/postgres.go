package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/routekit/vrpkit/solver"
)

// DBPool is the slice of *pgxpool.Pool this package depends on. Accepting
// the interface rather than the concrete pool lets tests substitute
// pgxmock.PgxPoolIface without a real database.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Close()
}

// PostgresSchema is the DDL a deployment runs once before using PostgresStore.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS solve_submissions (
	id          TEXT PRIMARY KEY,
	fingerprint TEXT NOT NULL,
	status      TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	result      JSONB,
	error       TEXT
);
`

// PostgresStore persists submissions in a single JSONB-backed table,
// following MarketRepository's "thin wrapper over a pool interface" shape.
type PostgresStore struct {
	pool DBPool
}

// NewPostgresStore wraps an already-connected pool. Callers apply
// PostgresSchema themselves (e.g. via a migration step) before first use.
func NewPostgresStore(pool DBPool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) CreateSubmission(ctx context.Context, id, fingerprint string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO solve_submissions (id, fingerprint, status, created_at) VALUES ($1, $2, $3, $4)`,
		id, fingerprint, string(StatusPending), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage: create submission: %w", err)
	}

	return nil
}

func (s *PostgresStore) CompleteSubmission(ctx context.Context, id string, result *solver.Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("storage: marshal result: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`UPDATE solve_submissions SET status = $1, result = $2 WHERE id = $3`,
		string(StatusCompleted), payload, id,
	)
	if err != nil {
		return fmt.Errorf("storage: complete submission: %w", err)
	}

	return nil
}

func (s *PostgresStore) FailSubmission(ctx context.Context, id string, cause error) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE solve_submissions SET status = $1, error = $2 WHERE id = $3`,
		string(StatusFailed), cause.Error(), id,
	)
	if err != nil {
		return fmt.Errorf("storage: fail submission: %w", err)
	}

	return nil
}

func (s *PostgresStore) GetSubmission(ctx context.Context, id string) (Submission, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, fingerprint, status, created_at, result, error FROM solve_submissions WHERE id = $1`,
		id,
	)

	var (
		sub        Submission
		status     string
		resultJSON []byte
		errText    *string
	)

	if err := row.Scan(&sub.ID, &sub.Fingerprint, &status, &sub.CreatedAt, &resultJSON, &errText); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, fmt.Errorf("storage: get submission: %w", err)
	}

	sub.Status = Status(status)
	if errText != nil {
		sub.Error = *errText
	}
	if len(resultJSON) > 0 {
		var result solver.Result
		if err := json.Unmarshal(resultJSON, &result); err != nil {
			return Submission{}, fmt.Errorf("storage: unmarshal result: %w", err)
		}
		sub.Result = &result
	}

	return sub, nil
}
