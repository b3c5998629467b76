package solver

import (
	"github.com/routekit/vrpkit/eval"
	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/route"
)

// SolutionIndicators is the lexicographic objective tuple (spec §3):
// more assigned jobs beats fewer; then lower cost; then fewer used
// vehicles; then higher priority sum. TotalSetup/TotalService/TotalWaiting
// carry alongside for deduplication (two searches with identical
// AssignedJobs/Cost/UsedVehicles/TotalPriority but different internal
// shapes still count as distinct for the dedup set) but do not themselves
// enter the ordering.
//
// TotalWaiting is aggregated across every route exactly the way
// TotalService is, fixing the reference implementation's documented slip
// (spec §9: "the source appears not to aggregate it in the indicator
// constructor").
type SolutionIndicators struct {
	AssignedJobs  int
	Cost          float64
	UsedVehicles  int
	TotalSetup    float64
	TotalService  int64
	TotalWaiting  int64
	TotalPriority int
}

// Less reports whether a ranks strictly better than b under the
// lexicographic order spec §3 defines.
func Less(a, b SolutionIndicators) bool {
	if a.AssignedJobs != b.AssignedJobs {
		return a.AssignedJobs > b.AssignedJobs
	}
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	if a.UsedVehicles != b.UsedVehicles {
		return a.UsedVehicles < b.UsedVehicles
	}

	return a.TotalPriority > b.TotalPriority
}

// computeIndicators folds a solution's routes into its SolutionIndicators.
func computeIndicators(in *model.Input, routes []route.CapacityOracle, unassigned []int) (SolutionIndicators, error) {
	var ind SolutionIndicators

	assignedSet := make(map[int]struct{}, len(in.Jobs))
	for i, r := range routes {
		n := r.Len()
		if n == 0 {
			continue
		}
		ind.UsedVehicles++

		v := in.Vehicles[i]
		ind.TotalSetup += v.FixedCost

		locs, services := routeLocsAndServices(in, v, r)
		e, err := eval.RouteEval(in, v, locs, services)
		if err != nil {
			return SolutionIndicators{}, err
		}
		ind.Cost += e.Cost

		for _, s := range services {
			ind.TotalService += s
		}

		if wo, ok := r.(route.WindowOracle); ok {
			ind.TotalWaiting += wo.TotalWaiting()
		}

		for j := 0; j < n; j++ {
			jobRank := r.JobAt(j)
			assignedSet[jobRank] = struct{}{}
			ind.TotalPriority += in.Jobs[jobRank].Priority
		}
	}

	ind.AssignedJobs = len(assignedSet)
	_ = unassigned // informational only; AssignedJobs is derived from the routes themselves

	return ind, nil
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

	end := start
	if v.End != nil {
		end = *v.End
	} else if n > 0 {
		end = in.Jobs[r.JobAt(n-1)].Location
	}
	locs = append(locs, end)
	services = append(services, 0)

	return locs, services
}
