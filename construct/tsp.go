package construct

import (
	"errors"
	"sort"

	"github.com/routekit/vrpkit/model"
)

// ErrTSPFastRequiresSingleVehicle indicates TSPFast was invoked on a problem
// with more than one vehicle; the fast path only applies to the pure-TSP
// single-tour case (spec §1: "pure TSP (single tour)").
var ErrTSPFastRequiresSingleVehicle = errors.New("construct: TSPFast requires exactly one vehicle")

// TSPFast is the cheapest-insertion fast path for the single-vehicle,
// no-window case: repeatedly insert the remaining job whose cheapest
// feasible position costs least, until every job is placed or none fits.
// This reuses the cheapest-insertion idiom the teacher's now-retired tsp
// package built its approximate solver around, adapted to operate directly
// against a route.CapacityOracle instead of a dedicated tour type.
type TSPFast struct{}

// Run executes the fast path. The caller is expected to have already
// decided this problem qualifies (single vehicle, no time windows) — Run
// itself only enforces the single-vehicle precondition, since a correctly
// unbounded capacity still makes sense to check through the ordinary
// oracle.
func (TSPFast) Run(in *model.Input) (*Solution, error) {
	if len(in.Vehicles) != 1 {
		return nil, ErrTSPFastRequiresSingleVehicle
	}

	sol := newEmptySolution(in)
	v := in.Vehicles[0]
	r := sol.Routes[0]

	remaining := make([]int, len(in.Jobs))
	for i := range remaining {
		remaining[i] = i
	}
	sort.Ints(remaining)

	unassigned := make(map[int]struct{}, len(remaining))
	for _, rank := range remaining {
		unassigned[rank] = struct{}{}
	}

	for len(unassigned) > 0 {
		bestJob, bestPos := -1, -1
		bestDelta := 0.0
		found := false

		for rank := range unassigned {
			pos, delta, ok := bestInsertion(in, v, r, rank)
			if !ok {
				continue
			}
			if !found || delta < bestDelta || (delta == bestDelta && rank < bestJob) {
				found = true
				bestDelta = delta
				bestJob = rank
				bestPos = pos
			}
		}

		if !found {
			break
		}

		if err := r.Add(bestJob, bestPos); err != nil {
			return nil, err
		}
		delete(unassigned, bestJob)
	}

	sol.Unassigned = sortedKeys(unassigned)

	return sol, nil
}
