package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/routekit/vrpkit/solver"
	"github.com/routekit/vrpkit/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStoreCreateSubmission(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO solve_submissions`).
		WithArgs("sub-1", "fp-abc", string(storage.StatusPending), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := storage.NewPostgresStore(mock)
	err = store.CreateSubmission(context.Background(), "sub-1", "fp-abc")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreCompleteSubmission(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	result := &solver.Result{
		Unassigned: []int{2},
		Summary:    solver.SolutionIndicators{AssignedJobs: 3, Cost: 42.5, UsedVehicles: 1},
	}

	mock.ExpectExec(`UPDATE solve_submissions SET status`).
		WithArgs(string(storage.StatusCompleted), pgxmock.AnyArg(), "sub-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	store := storage.NewPostgresStore(mock)
	err = store.CompleteSubmission(context.Background(), "sub-1", result)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreGetSubmissionNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, fingerprint, status, created_at, result, error FROM solve_submissions WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	store := storage.NewPostgresStore(mock)
	_, err = store.GetSubmission(context.Background(), "missing")

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreGetSubmissionFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "fingerprint", "status", "created_at", "result", "error"}).
		AddRow("sub-1", "fp-abc", string(storage.StatusCompleted), now, []byte(`{"Routes":null,"Unassigned":[1],"Summary":{"AssignedJobs":0,"Cost":0,"UsedVehicles":0,"TotalSetup":0,"TotalService":0,"TotalWaiting":0,"TotalPriority":0}}`), (*string)(nil))

	mock.ExpectQuery(`SELECT id, fingerprint, status, created_at, result, error FROM solve_submissions WHERE id = \$1`).
		WithArgs("sub-1").
		WillReturnRows(rows)

	store := storage.NewPostgresStore(mock)
	sub, err := store.GetSubmission(context.Background(), "sub-1")

	require.NoError(t, err)
	assert.Equal(t, storage.StatusCompleted, sub.Status)
	require.NotNil(t, sub.Result)
	assert.Equal(t, []int{1}, sub.Result.Unassigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}
