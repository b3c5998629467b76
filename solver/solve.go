// Package solver implements the search orchestrator (spec §4.8): run N
// parameter points across bounded worker concurrency, deduplicate identical
// heuristic outcomes before paying for local search, and return the best
// result under SolutionIndicators' lexicographic order.
package solver

import (
	"context"
	"sync"
	"time"

	"github.com/routekit/vrpkit/construct"
	"github.com/routekit/vrpkit/localsearch"
	"github.com/routekit/vrpkit/metrics"
	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/route"
	"github.com/routekit/vrpkit/telemetry"
	"golang.org/x/sync/errgroup"
)

// outcome is one search's result before the join barrier picks a winner.
type outcome struct {
	indicators SolutionIndicators
	routes     []route.CapacityOracle
	unassigned []int
}

// Solve runs up to opts.NBSearches independent searches — each a
// constructive heuristic followed by a local-search pass — over bounded
// concurrency, and returns the best result (spec §4.8's "Result
// selection"). Fan-out uses errgroup.SetLimit as a bounded worker pool,
// functionally equivalent to spec §5's literal "distribute indices by i mod
// nb_threads" scheduling without committing to a fixed static partition.
func Solve(ctx context.Context, in *model.Input, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	params := opts.HeuristicParams
	if len(params) == 0 {
		params = construct.DefaultParams(hasTimeWindows(in))
	}
	if len(params) == 0 {
		return nil, ErrNoParameterPoints
	}

	nbSearches := opts.NBSearches
	if nbSearches > len(params) {
		nbSearches = len(params)
	}

	started := time.Now()
	deadline := started.Add(opts.Timeout)
	defer func() { metrics.SearchDurationSeconds.Observe(time.Since(started).Seconds()) }()

	outcomes := make([]*outcome, nbSearches)

	var mu sync.Mutex
	seen := make(map[SolutionIndicators]struct{})

	log := opts.Logger
	log.Info("solve started", "searches", nbSearches, "threads", opts.NBThreads)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.NBThreads)

	for i := 0; i < nbSearches; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			o, err := runSearch(in, params[i], opts.Depth, deadline, &mu, seen, log, i)
			if err != nil {
				return err
			}
			outcomes[i] = o

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := pickBest(outcomes)
	if best == nil {
		return nil, ErrNoParameterPoints
	}

	log.Info("solve finished", "assigned", best.indicators.AssignedJobs, "cost", best.indicators.Cost, "vehicles", best.indicators.UsedVehicles)
	metrics.JobsAssignedTotal.Add(float64(best.indicators.AssignedJobs))
	metrics.JobsUnassignedTotal.Add(float64(len(best.unassigned)))
	metrics.VehiclesUsed.Set(float64(best.indicators.UsedVehicles))

	return buildResult(in, best.routes, best.unassigned, best.indicators)
}

// runSearch executes one (heuristic, local-search) pass: the heuristic's
// SolutionIndicators are checked against the shared dedup set before paying
// for local search (spec §4.8's "if an earlier search already produced an
// identical indicator tuple, skip local search").
func runSearch(in *model.Input, param construct.ParamPoint, depth int, deadline time.Time, mu *sync.Mutex, seen map[SolutionIndicators]struct{}, log *telemetry.Logger, index int) (*outcome, error) {
	h := heuristicFor(param)

	sol, err := h.Run(in)
	if err != nil {
		return nil, err
	}

	ind, err := computeIndicators(in, sol.Routes, sol.Unassigned)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	_, duplicate := seen[ind]
	if !duplicate {
		seen[ind] = struct{}{}
	}
	mu.Unlock()

	if duplicate {
		log.Debug("search skipped local search, duplicate indicators", "index", index)
		metrics.SearchesTotal.WithLabelValues("duplicate").Inc()
	} else {
		d := localsearch.Driver{Depth: depth}
		d.Run(in, in.Vehicles, sol.Routes, deadline)

		ind, err = computeIndicators(in, sol.Routes, sol.Unassigned)
		if err != nil {
			return nil, err
		}
		metrics.SearchesTotal.WithLabelValues("local-search").Inc()
	}

	return &outcome{indicators: ind, routes: sol.Routes, unassigned: sol.Unassigned}, nil
}

func pickBest(outcomes []*outcome) *outcome {
	var best *outcome
	for _, o := range outcomes {
		if o == nil {
			continue
		}
		if best == nil || Less(o.indicators, best.indicators) {
			best = o
		}
	}

	return best
}

func heuristicFor(p construct.ParamPoint) construct.Heuristic {
	if p.Dynamic {
		return construct.DynamicHeuristic{Params: p}
	}

	return construct.BasicHeuristic{Params: p}
}

func hasTimeWindows(in *model.Input) bool {
	for _, j := range in.Jobs {
		if len(j.Windows) > 0 {
			return true
		}
	}

	return false
}
