package localsearch_test

import (
	"testing"
	"time"

	"github.com/routekit/vrpkit/amount"
	"github.com/routekit/vrpkit/distmatrix"
	"github.com/routekit/vrpkit/eval"
	"github.com/routekit/vrpkit/localsearch"
	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func totalCost(t *testing.T, in *model.Input, vehicles []model.Vehicle, routes []route.CapacityOracle) float64 {
	t.Helper()

	var sum float64
	for i, r := range routes {
		n := r.Len()
		locs := make([]int, 0, n+2)
		services := make([]int64, 0, n+2)

		start := 0
		if vehicles[i].Start != nil {
			start = *vehicles[i].Start
		}
		locs = append(locs, start)
		services = append(services, 0)
		for j := 0; j < n; j++ {
			job := in.Jobs[r.JobAt(j)]
			locs = append(locs, job.Location)
			services = append(services, job.Service)
		}
		end := start
		if vehicles[i].End != nil {
			end = *vehicles[i].End
		} else if n > 0 {
			end = in.Jobs[r.JobAt(n-1)].Location
		}
		locs = append(locs, end)
		services = append(services, 0)

		e, err := eval.RouteEval(in, vehicles[i], locs, services)
		require.NoError(t, err)
		sum += e.Cost
	}

	return sum
}

func TestDriverReachesLocalOptimumOnCrossedRoute(t *testing.T) {
	in := buildLineInput(t, 1)

	r := route.NewRawRoute(in, 0)
	for _, jobRank := range []int{2, 0, 1, 3} { // locations 3,1,2,4: crossed
		require.NoError(t, r.Add(jobRank, r.Len()))
	}

	vehicles := []model.Vehicle{in.Vehicles[0]}
	routes := []route.CapacityOracle{r}

	before := totalCost(t, in, vehicles, routes)

	d := localsearch.Driver{Depth: 2}
	d.Run(in, vehicles, routes, time.Time{})

	after := totalCost(t, in, vehicles, routes)
	assert.Less(t, after, before)
	assert.Equal(t, []int{0, 1, 2, 3}, routes[0].Sequence())
}

func TestDriverRespectsExpiredDeadline(t *testing.T) {
	in := buildLineInput(t, 1)

	r := route.NewRawRoute(in, 0)
	for _, jobRank := range []int{2, 0, 1, 3} {
		require.NoError(t, r.Add(jobRank, r.Len()))
	}

	vehicles := []model.Vehicle{in.Vehicles[0]}
	routes := []route.CapacityOracle{r}

	before := r.Sequence()
	seqBefore := append([]int(nil), before...)

	d := localsearch.Driver{Depth: 2}
	d.Run(in, vehicles, routes, time.Now().Add(-time.Hour))

	assert.Equal(t, seqBefore, routes[0].Sequence())
}

func TestDriverIdempotentAtLocalOptimum(t *testing.T) {
	in := buildLineInput(t, 1)

	r := route.NewRawRoute(in, 0)
	for _, jobRank := range []int{0, 1, 2, 3} {
		require.NoError(t, r.Add(jobRank, r.Len()))
	}

	vehicles := []model.Vehicle{in.Vehicles[0]}
	routes := []route.CapacityOracle{r}

	d := localsearch.Driver{Depth: 2}
	d.Run(in, vehicles, routes, time.Time{})
	firstPass := append([]int(nil), routes[0].Sequence()...)

	d.Run(in, vehicles, routes, time.Time{})
	assert.Equal(t, firstPass, routes[0].Sequence())
}
