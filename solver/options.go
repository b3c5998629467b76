package solver

import (
	"time"

	"github.com/routekit/vrpkit/construct"
	"github.com/routekit/vrpkit/telemetry"
)

// Options configures one Solve call (spec §6's "Configuration options
// recognized by solve").
type Options struct {
	// NBSearches is how many parameter points to try; capped to
	// len(HeuristicParams) (or len(construct.DefaultParams(...)) when
	// HeuristicParams is nil).
	NBSearches int
	// Depth bounds the local-search driver's outer-loop repeats without
	// improvement.
	Depth int
	// NBThreads bounds worker concurrency.
	NBThreads int
	// Timeout is the wall-clock budget for the whole Solve call; each
	// search's local-search driver is handed the resulting deadline.
	Timeout time.Duration
	// HeuristicParams overrides the curated default parameter list. Nil
	// means "use construct.DefaultParams, keyed on whether any job in the
	// input carries time windows".
	HeuristicParams []construct.ParamPoint
	// Logger receives an Info line when Solve starts and when it finishes,
	// and a Debug line for each search that skips local search as a
	// duplicate. Nil gets a no-op logger.
	Logger *telemetry.Logger
}

// withDefaults fills in any zero-valued field with its floor, mirroring
// spec §6's "(>= 1)" constraints on every one of these options.
func (o Options) withDefaults() Options {
	if o.NBSearches < 1 {
		o.NBSearches = 1
	}
	if o.Depth < 1 {
		o.Depth = 1
	}
	if o.NBThreads < 1 {
		o.NBThreads = 1
	}
	if o.Timeout <= 0 {
		o.Timeout = time.Minute
	}
	if o.Logger == nil {
		o.Logger = telemetry.NewNoop()
	}

	return o
}
