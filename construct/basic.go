package construct

import (
	"sort"

	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/route"
)

// BasicHeuristic fills one vehicle at a time: pick a vehicle per
// sort_strategy, seed it if empty, then repeatedly insert the
// highest-regret-scoring still-feasible unassigned job at its cheapest
// position until nothing more fits, before moving to the next vehicle
// (spec §4.5, "Algorithm (Basic)").
type BasicHeuristic struct {
	Params ParamPoint
}

// Run executes the heuristic against in, returning one route per vehicle
// (unused vehicles get an empty route) and the jobs nothing could place.
func (h BasicHeuristic) Run(in *model.Input) (*Solution, error) {
	vehicleOrder := sortedVehicleRanks(in, h.Params.Sort)

	sol := newEmptySolution(in)

	unassigned := make(map[int]struct{}, len(in.Jobs))
	for i := range in.Jobs {
		unassigned[i] = struct{}{}
	}

	for _, vehicleRank := range vehicleOrder {
		v := in.Vehicles[vehicleRank]
		r := sol.Routes[vehicleRank]

		if r.Len() == 0 && len(unassigned) > 0 {
			candidates := sortedKeys(unassigned)
			if seedRank, ok := pickSeed(in, v, candidates, h.Params.Init); ok && feasibleAt(in, r, seedRank, 0) {
				if err := r.Add(seedRank, 0); err != nil {
					return nil, err
				}
				delete(unassigned, seedRank)
			}
		}

		for {
			jobRank, pos, ok := bestRegretJob(in, v, r, unassigned, h.Params.Regret)
			if !ok {
				break
			}
			if err := r.Add(jobRank, pos); err != nil {
				return nil, err
			}
			delete(unassigned, jobRank)
		}
	}

	sol.Unassigned = sortedKeys(unassigned)

	return sol, nil
}

// bestRegretJob scans every still-unassigned job, scores it by regret
// against its two best insertion positions on r, and returns the
// lowest-scoring (most urgent) job along with its best position. Ties are
// broken by lowest job rank for determinism.
func bestRegretJob(in *model.Input, v model.Vehicle, r route.CapacityOracle, unassigned map[int]struct{}, regret float64) (jobRank, pos int, ok bool) {
	bestScore := false
	var bestVal float64
	bestJob, bestPos := -1, -1

	for rank := range unassigned {
		p, best, second, feasible, secondOk := bestTwoInsertions(in, v, r, rank)
		if !feasible {
			continue
		}
		score := regretScore(best, second, secondOk, regret)
		if !bestScore || score < bestVal || (score == bestVal && rank < bestJob) {
			bestScore = true
			bestVal = score
			bestJob = rank
			bestPos = p
		}
	}

	if bestJob < 0 {
		return 0, 0, false
	}

	return bestJob, bestPos, true
}

func newEmptySolution(in *model.Input) *Solution {
	routes := make([]route.CapacityOracle, len(in.Vehicles))
	for i := range in.Vehicles {
		routes[i] = newRoute(in, i)
	}

	return &Solution{Routes: routes}
}

func sortedVehicleRanks(in *model.Input, sortBy SortStrategy) []int {
	ranks := make([]int, len(in.Vehicles))
	for i := range ranks {
		ranks[i] = i
	}

	if sortBy == SortCost {
		sort.SliceStable(ranks, func(i, j int) bool {
			return in.Vehicles[ranks[i]].FixedCost < in.Vehicles[ranks[j]].FixedCost
		})
	}

	return ranks
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
