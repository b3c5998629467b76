package neighborhood

import (
	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/route"
)

// Move is a candidate mutation: Gain is the cost of the current
// configuration minus the cost after the move (positive means improving).
// Apply commits it; callers must not call Apply on an infeasible move.
type Move struct {
	Gain     float64
	Feasible bool
	Operator string
	Apply    func() error
}

// Operator searches one or two routes for its best applicable move.
// Implementations never mutate routes themselves — only the returned Move's
// Apply does that, matching spec §4.6's "expose (gain, feasible) without
// mutating state".
type Operator interface {
	Name() string
	// FindBest scans all applicable tuples across the given routes (and,
	// for inter-route operators, all route pairs) and returns the best
	// positive-gain feasible move found, or ok=false if none improves.
	FindBest(in *model.Input, vehicles []model.Vehicle, routes []route.CapacityOracle) (Move, bool)
}

// CanonicalOrder is the fixed operator scan order the local-search driver
// uses for its round-robin and for tie-breaking between equal-gain moves
// from different operators (spec §4.7: "ties broken deterministically by
// operator order, then by tuple indices").
func CanonicalOrder() []Operator {
	return []Operator{
		TwoOpt{},
		OrOpt{},
		RelocateIntra{},
		RelocateInter{},
		CrossExchange{},
	}
}
