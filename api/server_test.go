package api_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/routekit/vrpkit/api"
	"github.com/routekit/vrpkit/distmatrix"
	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/solver"
	"github.com/routekit/vrpkit/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func fourStopRequest() api.SolveRequest {
	return api.SolveRequest{
		AmountDims: 1,
		Points: []distmatrix.Point{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
		},
		Jobs: []api.JobRequest{
			{ID: "j0", Location: 1, Pickup: []int64{1}},
			{ID: "j1", Location: 2, Pickup: []int64{1}},
			{ID: "j2", Location: 3, Pickup: []int64{1}},
			{ID: "j3", Location: 4, Pickup: []int64{1}},
		},
		Vehicles: []api.VehicleRequest{
			{ID: "v0", Capacity: []int64{10}, Window: model.TimeWindow{Start: 0, End: 1000}},
		},
		NBSearches: 1,
		NBThreads:  1,
		TimeoutMS:  1000,
	}
}

func TestHandleSolveReturnsResult(t *testing.T) {
	store, err := storage.OpenSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	srv := api.NewServer(store, nil, nil, solver.Options{}, 0, 0)

	body, err := json.Marshal(fourStopRequest())
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/solve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.App.Test(req, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleGetSolutionNotFound(t *testing.T) {
	store, err := storage.OpenSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	srv := api.NewServer(store, nil, nil, solver.Options{}, 0, 0)

	req := httptest.NewRequest("GET", "/solutions/does-not-exist", nil)
	resp, err := srv.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleSolveRateLimited(t *testing.T) {
	store, err := storage.OpenSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	srv := api.NewServer(store, nil, nil, solver.Options{}, rate.Limit(0.001), 1)

	body, err := json.Marshal(fourStopRequest())
	require.NoError(t, err)

	req1 := httptest.NewRequest("POST", "/solve", bytes.NewReader(body))
	req1.Header.Set("Content-Type", "application/json")
	resp1, err := srv.App.Test(req1, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, 200, resp1.StatusCode)

	req2 := httptest.NewRequest("POST", "/solve", bytes.NewReader(body))
	req2.Header.Set("Content-Type", "application/json")
	resp2, err := srv.App.Test(req2, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, 429, resp2.StatusCode)
}
