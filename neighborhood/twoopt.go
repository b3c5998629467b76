package neighborhood

import (
	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/route"
)

// TwoOpt reverses a segment [i, j] within a single route (spec §4.6).
type TwoOpt struct{}

func (TwoOpt) Name() string { return "2-opt" }

func (TwoOpt) FindBest(in *model.Input, vehicles []model.Vehicle, routes []route.CapacityOracle) (Move, bool) {
	bestGain := 0.0
	var best Move
	found := false

	for ri, r := range routes {
		n := r.Len()
		if n < 2 {
			continue
		}
		v := vehicles[ri]

		before, err := routeCost(in, v, r)
		if err != nil {
			continue
		}

		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				seg := reversedSegment(r, i, j)

				after, ok := simulateReplace(in, v, r, i, j+1, seg)
				if !ok {
					continue
				}

				gain := before - after
				if gain > bestGain {
					bestGain = gain
					ri, i, j, seg := ri, i, j, seg // capture
					best = Move{
						Gain:     gain,
						Feasible: true,
						Operator: "2-opt",
						Apply: func() error {
							return routes[ri].Replace(i, j+1, seg)
						},
					}
					found = true
				}
			}
		}
	}

	return best, found
}

func reversedSegment(r route.CapacityOracle, i, j int) []int {
	seg := make([]int, j-i+1)
	for k := i; k <= j; k++ {
		seg[j-k] = r.JobAt(k)
	}

	return seg
}

// simulateReplace checks feasibility of splicing newSeq in place of
// [firstRank, lastRank) on a scratch clone of r's sequence, without
// mutating r, and returns the resulting route's cost.
func simulateReplace(in *model.Input, v model.Vehicle, r route.CapacityOracle, firstRank, lastRank int, newSeq []int) (float64, bool) {
	clone := cloneRoute(in, r)
	if err := clone.Replace(firstRank, lastRank, newSeq); err != nil {
		return 0, false
	}
	if !clone.Feasible() {
		return 0, false
	}

	cost, err := routeCost(in, v, clone)
	if err != nil {
		return 0, false
	}

	return cost, true
}

// cloneRoute rebuilds an independent route of the same kind as r containing
// the same sequence, used to test hypothetical moves without mutating the
// original (route has no native Clone; this is the simplest correct
// substitute given its Add/Replace-based construction).
func cloneRoute(in *model.Input, r route.CapacityOracle) route.CapacityOracle {
	var clone route.CapacityOracle
	if _, ok := r.(route.WindowOracle); ok {
		clone = route.NewTWRoute(in, r.VehicleRank())
	} else {
		clone = route.NewRawRoute(in, r.VehicleRank())
	}

	for _, job := range r.Sequence() {
		_ = clone.Add(job, clone.Len())
	}

	return clone
}
