package neighborhood

import (
	"testing"

	"github.com/routekit/vrpkit/amount"
	"github.com/routekit/vrpkit/distmatrix"
	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildLineInput places locations 0..4 on a line (distance = |i-j|), so
// optimal tours are easy to reason about by hand and crossing tours have an
// obvious, checkable improvement.
func buildLineInput(t *testing.T, vehicles int) *model.Input {
	t.Helper()

	n := 5
	d, err := distmatrix.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dist := float64(i - j)
			if dist < 0 {
				dist = -dist
			}
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
	for i := 0; i < vehicles; i++ {
		b.AddVehicle(model.Vehicle{Start: &start, Capacity: amount.Amount{10}, VehicleType: "truck"})
	}

	in, err := b.Finalize()
	require.NoError(t, err)

	return in
}

func TestTwoOptUntanglesCrossedRoute(t *testing.T) {
	in := buildLineInput(t, 1)

	r := route.NewRawRoute(in, 0)
	for _, jobRank := range []int{2, 0, 1, 3} { // locations 3,1,2,4: a crossed tour
		require.NoError(t, r.Add(jobRank, r.Len()))
	}

	vehicles := []model.Vehicle{in.Vehicles[0]}
	routes := []route.CapacityOracle{r}

	before, err := routeCost(in, vehicles[0], r)
	require.NoError(t, err)

	move, ok := (TwoOpt{}).FindBest(in, vehicles, routes)
	require.True(t, ok)
	assert.Greater(t, move.Gain, 0.0)

	require.NoError(t, move.Apply())

	after, err := routeCost(in, vehicles[0], r)
	require.NoError(t, err)
	assert.Less(t, after, before)
	// Reversing the first two stops (locations 1,3,2,4, cost 6 from 8) is
	// the first best reversal found; no single reversal yields 0,1,2,3.
	assert.Equal(t, []int{0, 2, 1, 3}, r.Sequence())
}

func TestOrOptRelocatesMisplacedStop(t *testing.T) {
	in := buildLineInput(t, 1)

	r := route.NewRawRoute(in, 0)
	// locations 1,4,2,3: job at location 4 (rank 3) sits far too early.
	for _, jobRank := range []int{0, 3, 1, 2} {
		require.NoError(t, r.Add(jobRank, r.Len()))
	}

	vehicles := []model.Vehicle{in.Vehicles[0]}
	routes := []route.CapacityOracle{r}

	before, err := routeCost(in, vehicles[0], r)
	require.NoError(t, err)

	move, ok := (OrOpt{}).FindBest(in, vehicles, routes)
	require.True(t, ok)
	assert.Greater(t, move.Gain, 0.0)

	require.NoError(t, move.Apply())

	after, err := routeCost(in, vehicles[0], r)
	require.NoError(t, err)
	assert.Less(t, after, before)
}

func TestRelocateIntraImprovesAdjacentSwap(t *testing.T) {
	in := buildLineInput(t, 1)

	r := route.NewRawRoute(in, 0)
	for _, jobRank := range []int{0, 2, 1, 3} { // locations 1,3,2,4
		require.NoError(t, r.Add(jobRank, r.Len()))
	}

	vehicles := []model.Vehicle{in.Vehicles[0]}
	routes := []route.CapacityOracle{r}

	before, err := routeCost(in, vehicles[0], r)
	require.NoError(t, err)

	move, ok := (RelocateIntra{}).FindBest(in, vehicles, routes)
	require.True(t, ok)
	assert.Greater(t, move.Gain, 0.0)

	require.NoError(t, move.Apply())

	after, err := routeCost(in, vehicles[0], r)
	require.NoError(t, err)
	assert.Less(t, after, before)
}

func TestRelocateInterMovesJobBetweenRoutes(t *testing.T) {
	in := buildLineInput(t, 2)

	ra := route.NewRawRoute(in, 0)
	require.NoError(t, ra.Add(0, 0)) // location 1
	require.NoError(t, ra.Add(3, 1)) // location 4 — better served by rb

	rb := route.NewRawRoute(in, 1)
	require.NoError(t, rb.Add(1, 0)) // location 2
	require.NoError(t, rb.Add(2, 1)) // location 3

	vehicles := []model.Vehicle{in.Vehicles[0], in.Vehicles[1]}
	routes := []route.CapacityOracle{ra, rb}

	aBefore, err := routeCost(in, vehicles[0], ra)
	require.NoError(t, err)
	bBefore, err := routeCost(in, vehicles[1], rb)
	require.NoError(t, err)

	move, ok := (RelocateInter{}).FindBest(in, vehicles, routes)
	require.True(t, ok)
	assert.Greater(t, move.Gain, 0.0)

	require.NoError(t, move.Apply())

	aAfter, err := routeCost(in, vehicles[0], ra)
	require.NoError(t, err)
	bAfter, err := routeCost(in, vehicles[1], rb)
	require.NoError(t, err)

	assert.Less(t, aAfter+bAfter, aBefore+bBefore)
}

func TestCrossExchangeSwapsSegments(t *testing.T) {
	in := buildLineInput(t, 2)

	ra := route.NewRawRoute(in, 0)
	require.NoError(t, ra.Add(2, 0)) // location 3, far from route A's other stop
	require.NoError(t, ra.Add(0, 1)) // location 1

	rb := route.NewRawRoute(in, 1)
	require.NoError(t, rb.Add(1, 0)) // location 2
	require.NoError(t, rb.Add(3, 1)) // location 4, far from route B's other stop

	vehicles := []model.Vehicle{in.Vehicles[0], in.Vehicles[1]}
	routes := []route.CapacityOracle{ra, rb}

	aBefore, err := routeCost(in, vehicles[0], ra)
	require.NoError(t, err)
	bBefore, err := routeCost(in, vehicles[1], rb)
	require.NoError(t, err)

	move, ok := (CrossExchange{}).FindBest(in, vehicles, routes)
	require.True(t, ok)
	assert.Greater(t, move.Gain, 0.0)

	require.NoError(t, move.Apply())

	aAfter, err := routeCost(in, vehicles[0], ra)
	require.NoError(t, err)
	bAfter, err := routeCost(in, vehicles[1], rb)
	require.NoError(t, err)

	assert.Less(t, aAfter+bAfter, aBefore+bBefore)
}

func TestCanonicalOrderListsAllOperators(t *testing.T) {
	ops := CanonicalOrder()
	require.Len(t, ops, 5)

	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name()
	}
	assert.Equal(t, []string{"2-opt", "or-opt", "relocate-intra", "relocate-inter", "cross-exchange"}, names)
}
