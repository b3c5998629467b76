package solver_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/routekit/vrpkit/amount"
	"github.com/routekit/vrpkit/construct"
	"github.com/routekit/vrpkit/distmatrix"
	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1: single vehicle, four customers around a depot — a bare TSP
// tour whose cost is the sum of four Euclidean edges plus the return leg.
func TestScenarioSingleVehicleTSPTour(t *testing.T) {
	points := []distmatrix.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 2, Y: 0},
		{X: 1, Y: -1},
		{X: -1, Y: 0},
	}
	matrix, err := distmatrix.Euclidean(points, distmatrix.DefaultCostModel())
	require.NoError(t, err)

	b := model.NewInputBuilder(1)
	b.SetMatrix("truck", matrix)
	for loc := 1; loc < len(points); loc++ {
		b.AddJob(model.Job{Location: loc, Delivery: amount.Amount{1}})
	}
	start := 0
	b.AddVehicle(model.Vehicle{Start: &start, End: &start, Capacity: amount.Amount{10}, VehicleType: "truck"})

	in, err := b.Finalize()
	require.NoError(t, err)

	res, err := solver.Solve(context.Background(), in, solver.Options{NBSearches: 8, Depth: 5, NBThreads: 2, Timeout: 2 * time.Second})
	require.NoError(t, err)

	assert.Empty(t, res.Unassigned)
	assert.Equal(t, 4, res.Summary.AssignedJobs)
	require.Len(t, res.Routes, 1)

	assert.Equal(t, 6, len(res.Routes[0].Steps)) // start + 4 jobs + end
	assert.InDelta(t, res.Summary.Cost, res.Routes[0].Cost, 1e-6)
}

// Scenario 2: two identical trucks, five deliveries whose combined demand
// (100) fits only by using both trucks with capacity 50 each.
func TestScenarioTwoTrucksSplitDeliveries(t *testing.T) {
	n := 6
	d, err := distmatrix.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dist := math.Abs(float64(i - j))
			require.NoError(t, d.SetDistance(i, j, dist))
			require.NoError(t, d.SetDuration(i, j, int64(dist)))
			require.NoError(t, d.SetCost(i, j, dist))
		}
	}

	b := model.NewInputBuilder(1)
	b.SetMatrix("truck", d)
	demands := []int64{10, 15, 20, 25, 30}
	for i, dem := range demands {
		b.AddJob(model.Job{Location: i + 1, Delivery: amount.Amount{dem}})
	}
	start := 0
	b.AddVehicle(model.Vehicle{Start: &start, Capacity: amount.Amount{50}, VehicleType: "truck"})
	b.AddVehicle(model.Vehicle{Start: &start, Capacity: amount.Amount{50}, VehicleType: "truck"})

	in, err := b.Finalize()
	require.NoError(t, err)

	res, err := solver.Solve(context.Background(), in, solver.Options{NBSearches: 16, Depth: 5, NBThreads: 4, Timeout: 2 * time.Second})
	require.NoError(t, err)

	assert.Empty(t, res.Unassigned)
	assert.Equal(t, 5, res.Summary.AssignedJobs)
	assert.Equal(t, 2, res.Summary.UsedVehicles)
	require.Len(t, res.Routes, 2)
	for _, rr := range res.Routes {
		var load int64
		for _, step := range rr.Steps {
			if step.Kind == model.StepJob {
				load += in.Jobs[step.JobRank].Delivery[0]
			}
		}
		assert.LessOrEqual(t, load, int64(50))
	}
}

// Scenario 3: one truck, capacity 40, two deliveries of 30 each — only one
// can be assigned; the solver must not split a single job's demand across
// partial fulfillment.
func TestScenarioCapacityExceededLeavesOneUnassigned(t *testing.T) {
	n := 3
	d, err := distmatrix.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dist := math.Abs(float64(i - j))
			require.NoError(t, d.SetDistance(i, j, dist))
			require.NoError(t, d.SetDuration(i, j, int64(dist)))
			require.NoError(t, d.SetCost(i, j, dist))
		}
	}

	b := model.NewInputBuilder(1)
	b.SetMatrix("truck", d)
	b.AddJob(model.Job{Location: 1, Delivery: amount.Amount{30}})
	b.AddJob(model.Job{Location: 2, Delivery: amount.Amount{30}})
	start := 0
	b.AddVehicle(model.Vehicle{Start: &start, Capacity: amount.Amount{40}, VehicleType: "truck"})

	in, err := b.Finalize()
	require.NoError(t, err)

	res, err := solver.Solve(context.Background(), in, solver.Options{NBSearches: 8, Depth: 3, NBThreads: 2, Timeout: time.Second})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Summary.AssignedJobs)
	assert.Len(t, res.Unassigned, 1)
}

// Scenario 4: VRPTW — one truck, window [0,100], two jobs with windows
// [0,20] and [80,100], travel time 10 between them. Serving the first job
// as soon as the vehicle arrives forces waiting before the second window.
func TestScenarioTimeWindowsForceWaiting(t *testing.T) {
	n := 3
	d, err := distmatrix.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			require.NoError(t, d.SetDistance(i, j, 10))
			require.NoError(t, d.SetDuration(i, j, 10))
			require.NoError(t, d.SetCost(i, j, 10))
		}
	}

	b := model.NewInputBuilder(1)
	b.SetMatrix("truck", d)
	b.AddJob(model.Job{Location: 1, Delivery: amount.Amount{1}, Windows: []model.TimeWindow{{Start: 0, End: 20}}})
	b.AddJob(model.Job{Location: 2, Delivery: amount.Amount{1}, Windows: []model.TimeWindow{{Start: 80, End: 100}}})
	start := 0
	b.AddVehicle(model.Vehicle{
		Start: &start, Capacity: amount.Amount{10}, VehicleType: "truck",
		Window: model.TimeWindow{Start: 0, End: 100},
	})

	in, err := b.Finalize()
	require.NoError(t, err)

	res, err := solver.Solve(context.Background(), in, solver.Options{NBSearches: 8, Depth: 3, NBThreads: 2, Timeout: time.Second})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Summary.AssignedJobs)
	assert.Greater(t, res.Summary.TotalWaiting, int64(0))
}

// Scenario 5: two parameter points that yield identical initial solutions
// cause the second search to skip local search — both win out at the same
// indicator tuple regardless.
func TestScenarioDuplicateHeuristicOutcomesDeduplicate(t *testing.T) {
	n := 4
	d, err := distmatrix.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dist := math.Abs(float64(i - j))
			require.NoError(t, d.SetDistance(i, j, dist))
			require.NoError(t, d.SetDuration(i, j, int64(dist)))
			require.NoError(t, d.SetCost(i, j, dist))
		}
	}

	b := model.NewInputBuilder(1)
	b.SetMatrix("truck", d)
	for loc := 1; loc < n; loc++ {
		b.AddJob(model.Job{Location: loc, Delivery: amount.Amount{1}})
	}
	start := 0
	b.AddVehicle(model.Vehicle{Start: &start, Capacity: amount.Amount{10}, VehicleType: "truck"})

	in, err := b.Finalize()
	require.NoError(t, err)

	identicalPoint := construct.ParamPoint{Init: construct.InitNone, Sort: construct.SortAvailability, Regret: 0}

	res, err := solver.Solve(context.Background(), in, solver.Options{
		NBSearches:      2,
		Depth:           3,
		NBThreads:       1,
		Timeout:         time.Second,
		HeuristicParams: []construct.ParamPoint{identicalPoint, identicalPoint},
	})
	require.NoError(t, err)

	assert.Equal(t, n-1, res.Summary.AssignedJobs)
}

// Scenario 6: a deadline shorter than even the constructive heuristic needs
// still returns a usable result — local search simply never runs a round.
func TestScenarioDeadlineBoundsButStillReturnsAResult(t *testing.T) {
	n := 4
	d, err := distmatrix.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dist := math.Abs(float64(i - j))
			require.NoError(t, d.SetDistance(i, j, dist))
			require.NoError(t, d.SetDuration(i, j, int64(dist)))
			require.NoError(t, d.SetCost(i, j, dist))
		}
	}

	b := model.NewInputBuilder(1)
	b.SetMatrix("truck", d)
	for loc := 1; loc < n; loc++ {
		b.AddJob(model.Job{Location: loc, Delivery: amount.Amount{1}})
	}
	start := 0
	b.AddVehicle(model.Vehicle{Start: &start, Capacity: amount.Amount{10}, VehicleType: "truck"})

	in, err := b.Finalize()
	require.NoError(t, err)

	res, err := solver.Solve(context.Background(), in, solver.Options{
		NBSearches: 1,
		Depth:      1,
		NBThreads:  1,
		Timeout:    time.Nanosecond,
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, res.Summary.AssignedJobs, n-1)
	assert.Equal(t, n-1, res.Summary.AssignedJobs+len(res.Unassigned))
}

