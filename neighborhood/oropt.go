package neighborhood

import (
	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/route"
)

// OrOpt moves a contiguous subsequence of length 1, 2, or 3 to a new
// position within the same route (spec §4.6).
type OrOpt struct{}

func (OrOpt) Name() string { return "or-opt" }

func (OrOpt) FindBest(in *model.Input, vehicles []model.Vehicle, routes []route.CapacityOracle) (Move, bool) {
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

		for segLen := 1; segLen <= 3 && segLen < n; segLen++ {
			for start := 0; start+segLen <= n; start++ {
				seg := make([]int, segLen)
				for k := 0; k < segLen; k++ {
					seg[k] = r.JobAt(start + k)
				}

				for dest := 0; dest <= n-segLen; dest++ {
					if dest == start {
						continue // no-op placement
					}

					newSeq := spliceMove(r, start, segLen, seg, dest)

					after, ok := simulateFullReplace(in, v, r, newSeq)
					if !ok {
						continue
					}

					gain := before - after
					if gain > bestGain {
						bestGain = gain
						ri, newSeq := ri, newSeq
						best = Move{
							Gain:     gain,
							Feasible: true,
							Operator: "or-opt",
							Apply: func() error {
								return routes[ri].Replace(0, routes[ri].Len(), newSeq)
							},
						}
						found = true
					}
				}
			}
		}
	}

	return best, found
}

// spliceMove returns the sequence resulting from removing the segLen-long
// segment starting at `start` and reinserting it (in its original internal
// order) so that it begins at sequence position `dest` of the remainder.
func spliceMove(r route.CapacityOracle, start, segLen int, seg []int, dest int) []int {
	rest := make([]int, 0, r.Len()-segLen)
	for i := 0; i < r.Len(); i++ {
		if i >= start && i < start+segLen {
			continue
		}
		rest = append(rest, r.JobAt(i))
	}

	out := make([]int, 0, r.Len())
	out = append(out, rest[:dest]...)
	out = append(out, seg...)
	out = append(out, rest[dest:]...)

	return out
}

func simulateFullReplace(in *model.Input, v model.Vehicle, r route.CapacityOracle, newSeq []int) (float64, bool) {
	return simulateReplace(in, v, r, 0, r.Len(), newSeq)
}
