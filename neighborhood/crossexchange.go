package neighborhood

import (
	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/route"
)

// CrossExchange swaps a subsequence of length 1 or 2 on route A with a
// subsequence of length 1 or 2 on route B (spec §4.6). It is the only
// operator in the canonical order that mutates two routes at once other
// than RelocateInter.
type CrossExchange struct{}

func (CrossExchange) Name() string { return "cross-exchange" }

func (CrossExchange) FindBest(in *model.Input, vehicles []model.Vehicle, routes []route.CapacityOracle) (Move, bool) {
	bestGain := 0.0
	var best Move
	found := false

	for ai := 0; ai < len(routes); ai++ {
		ra := routes[ai]
		na := ra.Len()
		if na == 0 {
			continue
		}
		va := vehicles[ai]
		aBefore, err := routeCost(in, va, ra)
		if err != nil {
			continue
		}

		for bi := ai + 1; bi < len(routes); bi++ {
			rb := routes[bi]
			nb := rb.Len()
			if nb == 0 {
				continue
			}
			vb := vehicles[bi]
			bBefore, err := routeCost(in, vb, rb)
			if err != nil {
				continue
			}

			for aLen := 1; aLen <= 2 && aLen <= na; aLen++ {
				for aStart := 0; aStart+aLen <= na; aStart++ {
					segA := segmentOf(ra, aStart, aLen)

					for bLen := 1; bLen <= 2 && bLen <= nb; bLen++ {
						for bStart := 0; bStart+bLen <= nb; bStart++ {
							segB := segmentOf(rb, bStart, bLen)

							newA := spliceSegment(ra, aStart, aLen, segB)
							newB := spliceSegment(rb, bStart, bLen, segA)

							aAfter, aOK := simulateFullReplace(in, va, ra, newA)
							if !aOK {
								continue
							}
							bAfter, bOK := simulateFullReplace(in, vb, rb, newB)
							if !bOK {
								continue
							}

							gain := (aBefore + bBefore) - (aAfter + bAfter)
							if gain > bestGain {
								bestGain = gain
								ai, bi, newA, newB := ai, bi, newA, newB
								best = Move{
									Gain:     gain,
									Feasible: true,
									Operator: "cross-exchange",
									Apply: func() error {
										if err := routes[ai].Replace(0, routes[ai].Len(), newA); err != nil {
											return err
										}

										return routes[bi].Replace(0, routes[bi].Len(), newB)
									},
								}
								found = true
							}
						}
					}
				}
			}
		}
	}

	return best, found
}

func segmentOf(r route.CapacityOracle, start, length int) []int {
	seg := make([]int, length)
	for k := 0; k < length; k++ {
		seg[k] = r.JobAt(start + k)
	}

	return seg
}

// spliceSegment returns r's sequence with the length-long segment starting
// at start replaced by replacement (which may be a different length).
func spliceSegment(r route.CapacityOracle, start, length int, replacement []int) []int {
	out := make([]int, 0, r.Len()-length+len(replacement))
	for i := 0; i < start; i++ {
		out = append(out, r.JobAt(i))
	}
	out = append(out, replacement...)
	for i := start + length; i < r.Len(); i++ {
		out = append(out, r.JobAt(i))
	}

	return out
}
