package construct_test

import (
	"testing"

	"github.com/routekit/vrpkit/amount"
	"github.com/routekit/vrpkit/construct"
	"github.com/routekit/vrpkit/distmatrix"
	"github.com/routekit/vrpkit/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFourCustomerInput(t *testing.T, vehicles int, capacity int64) *model.Input {
	t.Helper()

	n := 5
	d, err := distmatrix.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				c := float64(i + j + 1)
				require.NoError(t, d.SetDistance(i, j, c))
				require.NoError(t, d.SetDuration(i, j, int64(c)))
				require.NoError(t, d.SetCost(i, j, c))
			}
		}
	}

	b := model.NewInputBuilder(1)
	b.SetMatrix("truck", d)

	for loc := 1; loc < n; loc++ {
		b.AddJob(model.Job{Location: loc, Delivery: amount.Amount{1}})
	}

	start := 0
	for i := 0; i < vehicles; i++ {
		b.AddVehicle(model.Vehicle{Start: &start, Capacity: amount.Amount{capacity}, VehicleType: "truck"})
	}

	in, err := b.Finalize()
	require.NoError(t, err)

	return in
}

func TestTSPFastPlacesEveryJob(t *testing.T) {
	in := buildFourCustomerInput(t, 1, 100)

	sol, err := construct.TSPFast{}.Run(in)
	require.NoError(t, err)
	assert.Empty(t, sol.Unassigned)
	assert.Equal(t, 4, sol.Routes[0].Len())
}

func TestTSPFastRejectsMultiVehicle(t *testing.T) {
	in := buildFourCustomerInput(t, 2, 100)

	_, err := construct.TSPFast{}.Run(in)
	assert.ErrorIs(t, err, construct.ErrTSPFastRequiresSingleVehicle)
}

func TestBasicHeuristicPlacesJobsAcrossVehicles(t *testing.T) {
	in := buildFourCustomerInput(t, 2, 2)

	h := construct.BasicHeuristic{Params: construct.ParamPoint{Init: construct.InitNone, Sort: construct.SortAvailability}}
	sol, err := h.Run(in)
	require.NoError(t, err)

	placed := 0
	for _, r := range sol.Routes {
		placed += r.Len()
	}
	assert.Equal(t, 4, placed+len(sol.Unassigned))
}

func TestDynamicHeuristicPlacesJobs(t *testing.T) {
	in := buildFourCustomerInput(t, 2, 2)

	h := construct.DynamicHeuristic{Params: construct.ParamPoint{Init: construct.InitHigherAmount, Sort: construct.SortCost, Regret: 1}}
	sol, err := h.Run(in)
	require.NoError(t, err)

	placed := 0
	for _, r := range sol.Routes {
		placed += r.Len()
	}
	assert.Equal(t, 4, placed+len(sol.Unassigned))
}

func TestDefaultParamsNonEmpty(t *testing.T) {
	assert.NotEmpty(t, construct.DefaultParams(false))
	assert.NotEmpty(t, construct.DefaultParams(true))
}
