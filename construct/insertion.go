package construct

import (
	"math"

	"github.com/routekit/vrpkit/eval"
	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/route"
)

func vehicleStartLoc(v model.Vehicle) int {
	if v.Start != nil {
		return *v.Start
	}

	return 0
}

func vehicleEndLoc(v model.Vehicle) int {
	if v.End != nil {
		return *v.End
	}

	return 0
}

// locationAt returns the location a vehicle is at just before inserting at
// sequence position pos (the depot start if pos == 0).
func locationAt(in *model.Input, v model.Vehicle, r route.CapacityOracle, pos int) int {
	if pos == 0 {
		return vehicleStartLoc(v)
	}

	return in.Jobs[r.JobAt(pos-1)].Location
}

// locationAfter returns the location a vehicle heads to once it leaves
// sequence position pos (the depot end if pos == route length; location 0
// when the vehicle has no End, a case insertionDelta handles before calling
// this for an append).
func locationAfter(in *model.Input, v model.Vehicle, r route.CapacityOracle, pos int) int {
	if pos >= r.Len() {
		return vehicleEndLoc(v)
	}

	return in.Jobs[r.JobAt(pos)].Location
}

// insertionDelta is the additional route cost of inserting jobRank at
// sequence position pos: cost(prev, job) + cost(job, next) - cost(prev,
// next), the direct edge it replaces (zero when the route is empty, since
// there is no direct edge to remove).
func insertionDelta(in *model.Input, v model.Vehicle, r route.CapacityOracle, jobRank, pos int) (float64, error) {
	jobLoc := in.Jobs[jobRank].Location
	prevLoc := locationAt(in, v, r, pos)
	nextLoc := locationAfter(in, v, r, pos)

	prevJob, err := eval.EdgeEval(in, v, prevLoc, jobLoc)
	if err != nil {
		return 0, err
	}
	// With no fixed end location the route ends at its last stop, so an
	// append adds only the edge into the new stop.
	if v.End == nil && pos >= r.Len() {
		return prevJob.Cost, nil
	}
	jobNext, err := eval.EdgeEval(in, v, jobLoc, nextLoc)
	if err != nil {
		return 0, err
	}

	removed := 0.0
	if r.Len() > 0 {
		prevNext, err := eval.EdgeEval(in, v, prevLoc, nextLoc)
		if err != nil {
			return 0, err
		}
		removed = prevNext.Cost
	}

	return prevJob.Cost + jobNext.Cost - removed, nil
}

// feasibleAt reports whether jobRank could be inserted at position pos on
// r, consulting the capacity oracle and, when r also satisfies WindowOracle,
// the time-window oracle too. Uses Input's Single-job accessors (which
// report zero for Pickup/Delivery-type jobs) rather than the job's raw
// fields directly, since those carry nil amounts on whichever side the job
// does not contribute to.
func feasibleAt(in *model.Input, r route.CapacityOracle, jobRank, pos int) bool {
	if !r.IsValidAdditionForCapacity(in.GetJobPickup(jobRank), in.GetJobDelivery(jobRank), pos) {
		return false
	}
	if wo, ok := asWindowOracle(r); ok {
		return wo.IsValidAdditionForTW(jobRank, pos)
	}

	return true
}

// bestInsertion scans every position in r and returns the cheapest feasible
// one for jobRank, or ok=false if none is feasible.
func bestInsertion(in *model.Input, v model.Vehicle, r route.CapacityOracle, jobRank int) (pos int, delta float64, ok bool) {
	best := math.Inf(1)
	bestPos := -1

	for p := 0; p <= r.Len(); p++ {
		if !feasibleAt(in, r, jobRank, p) {
			continue
		}
		d, err := insertionDelta(in, v, r, jobRank, p)
		if err != nil {
			continue
		}
		if d < best {
			best = d
			bestPos = p
		}
	}

	if bestPos < 0 {
		return 0, 0, false
	}

	return bestPos, best, true
}

// bestTwoInsertions returns the best and second-best feasible insertion
// delta for jobRank on r (secondOk is false if fewer than two positions are
// feasible), used by the regret-weighted scoring of §4.5.
func bestTwoInsertions(in *model.Input, v model.Vehicle, r route.CapacityOracle, jobRank int) (bestPos int, best float64, second float64, ok bool, secondOk bool) {
	best = math.Inf(1)
	second = math.Inf(1)
	bestPos = -1

	for p := 0; p <= r.Len(); p++ {
		if !feasibleAt(in, r, jobRank, p) {
			continue
		}
		d, err := insertionDelta(in, v, r, jobRank, p)
		if err != nil {
			continue
		}
		if d < best {
			second = best
			secondOk = ok
			best = d
			bestPos = p
			ok = true
		} else if d < second {
			second = d
			secondOk = true
		}
	}

	return bestPos, best, second, ok, secondOk
}

// regretScore combines the best and second-best insertion deltas into the
// single urgency score of §4.5: smaller means insert sooner. With no
// feasible second-best position the regret term is dropped (treated as
// zero extra urgency), since there is nothing to regret against.
func regretScore(best, second float64, secondOk bool, regret float64) float64 {
	if !secondOk || regret == 0 {
		return best
	}

	return best - regret*(second-best)
}
