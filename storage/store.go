// Package storage persists solve submissions and their results so a caller
// can poll a solve by ID instead of holding a connection open for the whole
// run (SPEC_FULL.md's persistence supplement).
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/routekit/vrpkit/solver"
)

// ErrNotFound is returned when no submission exists for the given ID.
var ErrNotFound = errors.New("storage: submission not found")

// Status is the lifecycle state of one solve submission.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Submission is one solve request's durable record.
type Submission struct {
	ID          string
	Fingerprint string // hash of (Input, Options), used by the caching layer
	Status      Status
	CreatedAt   time.Time
	Result      *solver.Result // nil until Status == StatusCompleted
	Error       string         // set when Status == StatusFailed
}

// Store is the persistence contract both PostgresStore and SQLiteStore
// satisfy: create a pending submission, then mark it complete or failed.
type Store interface {
	CreateSubmission(ctx context.Context, id, fingerprint string) error
	CompleteSubmission(ctx context.Context, id string, result *solver.Result) error
	FailSubmission(ctx context.Context, id string, cause error) error
	GetSubmission(ctx context.Context, id string) (Submission, error)
}
