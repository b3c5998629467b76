// Package construct implements the Solomon-I1-style constructive heuristics
// that seed empty routes with an initial, feasible-if-possible assignment of
// jobs before the local-search driver takes over (spec §4.5).
package construct

import (
	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/route"
)

// InitStrategy chooses the first job seeded into an otherwise-empty vehicle.
type InitStrategy int

const (
	// InitNone seeds with the first unassigned job in rank order.
	InitNone InitStrategy = iota
	// InitHigherAmount seeds with the unassigned job carrying the largest
	// total demand (summed across dimensions).
	InitHigherAmount
	// InitNearest seeds with the unassigned job closest to the vehicle's
	// start location.
	InitNearest
	// InitFurthest seeds with the unassigned job furthest from the
	// vehicle's start location.
	InitFurthest
	// InitEarliestDeadline seeds with the unassigned job whose earliest
	// time window closes soonest (VRPTW only).
	InitEarliestDeadline
)

// SortStrategy orders vehicles before the heuristic starts filling them.
type SortStrategy int

const (
	// SortAvailability keeps vehicles in their declared rank order.
	SortAvailability SortStrategy = iota
	// SortCost orders vehicles ascending by FixedCost, cheapest first.
	SortCost
)

// ParamPoint is one (family, init, sort, regret) parameter tuple the
// orchestrator enumerates as a curated list (spec §4.5/§4.8).
type ParamPoint struct {
	Dynamic bool
	Init    InitStrategy
	Sort    SortStrategy
	Regret  float64
}

// DefaultParams returns a curated set of parameter points to try, varying
// init/sort/regret. withWindows restricts InitEarliestDeadline's use to
// VRPTW problems, matching spec §4.5's "used by VRPTW" note.
func DefaultParams(withWindows bool) []ParamPoint {
	inits := []InitStrategy{InitNone, InitHigherAmount, InitNearest, InitFurthest}
	if withWindows {
		inits = append(inits, InitEarliestDeadline)
	}

	points := make([]ParamPoint, 0, len(inits)*2*2*2)
	for _, dynamic := range []bool{false, true} {
		for _, init := range inits {
			for _, sort := range []SortStrategy{SortAvailability, SortCost} {
				for _, regret := range []float64{0, 1} {
					points = append(points, ParamPoint{Dynamic: dynamic, Init: init, Sort: sort, Regret: regret})
				}
			}
		}
	}

	return points
}

// Solution is the output of a constructive heuristic run: one route per
// vehicle (empty routes for vehicles the heuristic never used) and the list
// of job ranks that could not be placed anywhere.
type Solution struct {
	Routes     []route.CapacityOracle
	Unassigned []int
}

// newRoute returns a TWRoute if any job in the input carries time windows,
// or a plain RawRoute otherwise — decided once per solve, not per job, so
// the rest of the heuristic never type-switches on route kind.
func newRoute(in *model.Input, vehicleRank int) route.CapacityOracle {
	for _, j := range in.Jobs {
		if len(j.Windows) > 0 {
			return route.NewTWRoute(in, vehicleRank)
		}
	}

	return route.NewRawRoute(in, vehicleRank)
}

func asWindowOracle(r route.CapacityOracle) (route.WindowOracle, bool) {
	w, ok := r.(route.WindowOracle)

	return w, ok
}
