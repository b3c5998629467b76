package neighborhood

import (
	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/route"
)

// RelocateIntra moves one job to a different position within the same
// route (spec §4.6). It is a length-1 special case of Or-opt's search
// space but kept as its own operator so the canonical tie-break order
// (spec §4.7) can rank it independently of Or-opt's longer segments.
type RelocateIntra struct{}

func (RelocateIntra) Name() string { return "relocate-intra" }

func (RelocateIntra) FindBest(in *model.Input, vehicles []model.Vehicle, routes []route.CapacityOracle) (Move, bool) {
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

		for from := 0; from < n; from++ {
			for to := 0; to <= n-1; to++ {
				if to == from {
					continue
				}

				newSeq := relocateWithin(r, from, to)

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
						Operator: "relocate-intra",
						Apply: func() error {
							return routes[ri].Replace(0, routes[ri].Len(), newSeq)
						},
					}
					found = true
				}
			}
		}
	}

	return best, found
}

// relocateWithin returns r's sequence with the job at position `from`
// removed and reinserted at position `to` of the remainder.
func relocateWithin(r route.CapacityOracle, from, to int) []int {
	rest := make([]int, 0, r.Len()-1)
	for i := 0; i < r.Len(); i++ {
		if i == from {
			continue
		}
		rest = append(rest, r.JobAt(i))
	}

	job := r.JobAt(from)
	out := make([]int, 0, r.Len())
	out = append(out, rest[:to]...)
	out = append(out, job)
	out = append(out, rest[to:]...)

	return out
}

// RelocateInter moves one job from route A to route B (spec §4.6).
type RelocateInter struct{}

func (RelocateInter) Name() string { return "relocate-inter" }

func (RelocateInter) FindBest(in *model.Input, vehicles []model.Vehicle, routes []route.CapacityOracle) (Move, bool) {
	bestGain := 0.0
	var best Move
	found := false

	for ai, ra := range routes {
		na := ra.Len()
		if na == 0 {
			continue
		}
		va := vehicles[ai]
		aBefore, err := routeCost(in, va, ra)
		if err != nil {
			continue
		}

		for bi, rb := range routes {
			if bi == ai {
				continue
			}
			vb := vehicles[bi]
			bBefore, err := routeCost(in, vb, rb)
			if err != nil {
				continue
			}

			for from := 0; from < na; from++ {
				jobRank := ra.JobAt(from)

				pickup := in.GetJobPickup(jobRank)
				delivery := in.GetJobDelivery(jobRank)

				newA := removeAt(ra, from)

				for pos := 0; pos <= rb.Len(); pos++ {
					if !rb.IsValidAdditionForCapacity(pickup, delivery, pos) {
						continue
					}

					newB := insertAt(rb, jobRank, pos)

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
							Operator: "relocate-inter",
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

	return best, found
}

func removeAt(r route.CapacityOracle, pos int) []int {
	out := make([]int, 0, r.Len()-1)
	for i := 0; i < r.Len(); i++ {
		if i == pos {
			continue
		}
		out = append(out, r.JobAt(i))
	}

	return out
}

func insertAt(r route.CapacityOracle, jobRank, pos int) []int {
	out := make([]int, 0, r.Len()+1)
	for i := 0; i < pos; i++ {
		out = append(out, r.JobAt(i))
	}
	out = append(out, jobRank)
	for i := pos; i < r.Len(); i++ {
		out = append(out, r.JobAt(i))
	}

	return out
}
