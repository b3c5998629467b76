package construct

import "github.com/routekit/vrpkit/model"

// Heuristic builds an initial Solution for a problem instance. BasicHeuristic
// and DynamicHeuristic are the two families spec §4.5 describes; TSPFast is
// the single-vehicle, no-window, no-capacity-limit fast path.
type Heuristic interface {
	Run(in *model.Input) (*Solution, error)
}

var (
	_ Heuristic = BasicHeuristic{}
	_ Heuristic = DynamicHeuristic{}
	_ Heuristic = TSPFast{}
)
