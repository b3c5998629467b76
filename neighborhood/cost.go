// Package neighborhood implements the local-search move operators — 2-opt,
// Or-opt, Relocate (intra/inter), CrossExchange — each of which proposes a
// candidate move, reports its (gain, feasible) without mutating anything,
// and can apply itself on request (spec §4.6).
package neighborhood

import (
	"github.com/routekit/vrpkit/eval"
	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/route"
)

// routeCost sums the edge costs of the full route (depot start through every
// job to depot end) for the given vehicle.
func routeCost(in *model.Input, v model.Vehicle, r route.CapacityOracle) (float64, error) {
	locs, services := routeLocsAndServices(in, v, r)

	e, err := eval.RouteEval(in, v, locs, services)
	if err != nil {
		return 0, err
	}

	return e.Cost, nil
}

func routeLocsAndServices(in *model.Input, v model.Vehicle, r route.CapacityOracle) ([]int, []int64) {
	n := r.Len()
	locs := make([]int, 0, n+2)
	services := make([]int64, 0, n+2)

	start := 0
	if v.Start != nil {
		start = *v.Start
	}
	locs = append(locs, start)
	services = append(services, 0)

	for i := 0; i < n; i++ {
		job := in.Jobs[r.JobAt(i)]
		locs = append(locs, job.Location)
		services = append(services, job.Service)
	}

	end := 0
	if v.End != nil {
		end = *v.End
	} else if n > 0 {
		end = in.Jobs[r.JobAt(n-1)].Location
	} else {
		end = start
	}
	locs = append(locs, end)
	services = append(services, 0)

	return locs, services
}
