// Package localsearch implements the best-improvement round-robin driver
// that mutates a vector of routes to a local optimum under the operator
// library in package neighborhood (spec §4.7).
package localsearch

import (
	"time"

	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/neighborhood"
	"github.com/routekit/vrpkit/route"
)

// Driver runs the local-search loop: one outer round scans the operators in
// their canonical order and, for each, applies its single best positive-gain
// move (if any) before moving to the next operator — so an operator later in
// the order sees the routes as left by the ones before it within the same
// round. Depth bounds how many consecutive outer rounds may pass without any
// operator improving before the loop declares a local optimum.
type Driver struct {
	Depth int
}

// Run mutates routes in place until no operator in the canonical order finds
// a positive-gain move for Depth consecutive rounds, or deadline fires
// (checked once per outer round, per spec §5's cancellation policy). A zero
// deadline means no time limit.
func (d Driver) Run(in *model.Input, vehicles []model.Vehicle, routes []route.CapacityOracle, deadline time.Time) {
	ops := neighborhood.CanonicalOrder()
	depth := d.Depth
	if depth < 1 {
		depth = 1
	}

	stale := 0
	for stale < depth {
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return
		}

		roundImproved := false
		for _, op := range ops {
			move, ok := op.FindBest(in, vehicles, routes)
			if !ok || !move.Feasible || move.Gain <= 0 {
				continue
			}
			if err := move.Apply(); err != nil {
				continue
			}
			roundImproved = true
		}

		if roundImproved {
			stale = 0
		} else {
			stale++
		}
	}
}
