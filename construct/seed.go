package construct

import (
	"math"

	"github.com/routekit/vrpkit/eval"
	"github.com/routekit/vrpkit/model"
)

// pickSeed chooses, from candidates, the job rank to seed an empty vehicle
// with under the given init strategy. Returns false if candidates is empty.
func pickSeed(in *model.Input, v model.Vehicle, candidates []int, init InitStrategy) (int, bool) {
	if len(candidates) == 0 {
		return 0, false
	}

	switch init {
	case InitHigherAmount:
		return pickExtreme(candidates, func(r int) float64 {
			return demandTotal(in.GetJobDelivery(r)) + demandTotal(in.GetJobPickup(r)) + demandTotal(in.PDAmount(r))
		}, true)

	case InitNearest:
		start := vehicleStartLoc(v)

		return pickExtreme(candidates, func(r int) float64 {
			return edgeCostOrInf(in, v, start, in.Jobs[r].Location)
		}, false)

	case InitFurthest:
		start := vehicleStartLoc(v)

		return pickExtreme(candidates, func(r int) float64 {
			return edgeCostOrInf(in, v, start, in.Jobs[r].Location)
		}, true)

	case InitEarliestDeadline:
		return pickExtreme(candidates, func(r int) float64 {
			return earliestDeadline(in.Jobs[r])
		}, false)

	default: // InitNone
		return candidates[0], true
	}
}

func demandTotal(a []int64) float64 {
	var total float64
	for _, v := range a {
		total += float64(v)
	}

	return total
}

func edgeCostOrInf(in *model.Input, v model.Vehicle, from, to int) float64 {
	e, err := eval.EdgeEval(in, v, from, to)
	if err != nil {
		return math.Inf(1)
	}

	return e.Cost
}

func earliestDeadline(j model.Job) float64 {
	if len(j.Windows) == 0 {
		return math.Inf(1)
	}

	best := j.Windows[0].End
	for _, w := range j.Windows[1:] {
		if w.End < best {
			best = w.End
		}
	}

	return float64(best)
}

// pickExtreme returns the candidate maximizing (wantMax=true) or minimizing
// (wantMax=false) score, breaking ties by the lowest job rank for
// determinism.
func pickExtreme(candidates []int, score func(int) float64, wantMax bool) (int, bool) {
	best := candidates[0]
	bestScore := score(best)

	for _, c := range candidates[1:] {
		s := score(c)
		better := s < bestScore
		if wantMax {
			better = s > bestScore
		}
		if better || (s == bestScore && c < best) {
			best = c
			bestScore = s
		}
	}

	return best, true
}
