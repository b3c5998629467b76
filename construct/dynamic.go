package construct

import (
	"github.com/routekit/vrpkit/model"
)

// DynamicHeuristic chooses the (job, vehicle, position) triple globally at
// each step rather than committing to one vehicle at a time — spec §4.5's
// "Dynamic variant". Ties are broken lexicographically by
// (vehicle_rank, job_rank, position) for determinism; this is the one place
// the family genuinely diverges from BasicHeuristic rather than falling
// back to it, resolving spec §9's open question against silent fallback.
type DynamicHeuristic struct {
	Params ParamPoint
}

// Run executes the heuristic against in.
func (h DynamicHeuristic) Run(in *model.Input) (*Solution, error) {
	sol := newEmptySolution(in)

	unassigned := make(map[int]struct{}, len(in.Jobs))
	for i := range in.Jobs {
		unassigned[i] = struct{}{}
	}

	// Seed every vehicle once, per init_strategy, before the global loop —
	// an empty route offers no interior insertion positions to score
	// against, so seeding keeps the global comparison meaningful from the
	// first iteration.
	for vehicleRank := range in.Vehicles {
		if len(unassigned) == 0 {
			break
		}
		v := in.Vehicles[vehicleRank]
		r := sol.Routes[vehicleRank]
		candidates := sortedKeys(unassigned)
		if seedRank, ok := pickSeed(in, v, candidates, h.Params.Init); ok && feasibleAt(in, r, seedRank, 0) {
			if err := r.Add(seedRank, 0); err != nil {
				return nil, err
			}
			delete(unassigned, seedRank)
		}
	}

	for len(unassigned) > 0 {
		bestVehicle, bestJob, bestPos := -1, -1, -1
		bestScore := 0.0
		found := false

		for vehicleRank := range in.Vehicles {
			v := in.Vehicles[vehicleRank]
			r := sol.Routes[vehicleRank]

			for rank := range unassigned {
				pos, best, second, feasible, secondOk := bestTwoInsertions(in, v, r, rank)
				if !feasible {
					continue
				}
				score := regretScore(best, second, secondOk, h.Params.Regret)

				better := !found || score < bestScore
				tie := found && score == bestScore &&
					lexLess(vehicleRank, rank, pos, bestVehicle, bestJob, bestPos)

				if better || tie {
					found = true
					bestScore = score
					bestVehicle = vehicleRank
					bestJob = rank
					bestPos = pos
				}
			}
		}

		if !found {
			break
		}

		if err := sol.Routes[bestVehicle].Add(bestJob, bestPos); err != nil {
			return nil, err
		}
		delete(unassigned, bestJob)
	}

	sol.Unassigned = sortedKeys(unassigned)

	return sol, nil
}

func lexLess(v1, j1, p1, v2, j2, p2 int) bool {
	if v1 != v2 {
		return v1 < v2
	}
	if j1 != j2 {
		return j1 < j2
	}

	return p1 < p2
}
