package route

import (
	"math"

	"github.com/routekit/vrpkit/model"
)

// TWRoute extends RawRoute with a time-window profile: per-stop earliest
// service start and latest feasible arrival times, honoring multiple time windows per job and
// accumulating waiting time when a vehicle arrives before a window opens.
type TWRoute struct {
	RawRoute

	vehicleType string

	earliest []int64 // length len(sequence); service start at each stop, after any waiting
	latest   []int64 // length len(sequence); latest feasible arrival time
	waiting  []int64 // length len(sequence); time spent idle before service

	infeasible bool // true when no forward/backward sweep satisfies every window
}

// NewTWRoute returns an empty TWRoute for the given vehicle.
func NewTWRoute(input *model.Input, vehicleRank int) *TWRoute {
	v := input.Vehicles[vehicleRank]
	r := &TWRoute{vehicleType: v.VehicleType}
	r.input = input
	r.vehicleRank = vehicleRank
	r.rebuildTW()

	return r
}

// Add, Remove, Replace and Clear shadow RawRoute's versions so that the
// time-window sweep is refreshed alongside the capacity profile — RawRoute's
// own rebuild only recomputes the capacity arrays.

func (r *TWRoute) Add(jobRank, position int) error {
	if err := r.RawRoute.Add(jobRank, position); err != nil {
		return err
	}
	r.rebuildTW()

	return nil
}

func (r *TWRoute) Remove(first, count int) error {
	if err := r.RawRoute.Remove(first, count); err != nil {
		return err
	}
	r.rebuildTW()

	return nil
}

func (r *TWRoute) Replace(firstRank, lastRank int, newSubsequence []int) error {
	if err := r.RawRoute.Replace(firstRank, lastRank, newSubsequence); err != nil {
		return err
	}
	r.rebuildTW()

	return nil
}

func (r *TWRoute) Clear() {
	r.RawRoute.Clear()
	r.rebuildTW()
}

// Feasible reports whether the route currently respects both capacity and
// every job's time window.
func (r *TWRoute) Feasible() bool {
	return r.RawRoute.Feasible() && !r.infeasible
}

func (r *TWRoute) matrix() (interface {
	Duration(from, to int) int64
}, bool) {
	p, ok := r.input.Matrix(r.vehicleType)

	return p, ok
}

// rebuildTW recomputes the capacity profile (via RawRoute.rebuild) and the
// time-window sweeps. It is called after every mutation, mirroring the
// single-rebuild discipline of RawRoute.
func (r *TWRoute) rebuildTW() {
	r.rebuild()

	n := len(r.sequence)
	r.earliest = make([]int64, n)
	r.latest = make([]int64, n)
	r.waiting = make([]int64, n)
	r.infeasible = false

	matrix, ok := r.matrix()
	if !ok || n == 0 {
		return
	}

	vehicle := r.input.Vehicles[r.vehicleRank]

	startLoc := 0
	if vehicle.Start != nil {
		startLoc = *vehicle.Start
	}

	t := vehicle.Window.Start
	fromLoc := startLoc
	for i, jobRank := range r.sequence {
		job := r.input.Jobs[jobRank]
		travel := matrix.Duration(fromLoc, job.Location)
		arrival := t + travel

		start, ok := windowStartAfter(job.Windows, arrival)
		if !ok {
			r.infeasible = true
		}

		r.earliest[i] = start
		r.waiting[i] = start - arrival
		if r.waiting[i] < 0 {
			r.waiting[i] = 0
		}

		t = start + job.Service
		fromLoc = job.Location
	}

	t = vehicle.Window.End
	toLoc := 0
	if vehicle.End != nil {
		toLoc = *vehicle.End
	} else if n > 0 {
		toLoc = r.input.Jobs[r.sequence[n-1]].Location
	}

	for i := n - 1; i >= 0; i-- {
		job := r.input.Jobs[r.sequence[i]]
		travel := matrix.Duration(job.Location, toLoc)
		deadline := t - travel

		end, ok := windowEndBefore(job.Windows, deadline)
		if !ok {
			r.infeasible = true
		}

		r.latest[i] = end - job.Service
		t = end - job.Service
		toLoc = job.Location
	}
}

// windowStartAfter returns the earliest feasible service start at or after
// arrival across every window in windows (windows need not be sorted), and
// false if arrival is past every window's end.
func windowStartAfter(windows []model.TimeWindow, arrival int64) (int64, bool) {
	if len(windows) == 0 {
		return arrival, true
	}

	best := int64(math.MaxInt64)
	found := false
	for _, w := range windows {
		if w.End < arrival {
			continue
		}
		start := arrival
		if w.Start > start {
			start = w.Start
		}
		if !found || start < best {
			best = start
			found = true
		}
	}

	if !found {
		return arrival, false
	}

	return best, true
}

// windowEndBefore returns the latest feasible service completion at or
// before deadline across every window, and false if deadline is before
// every window's start.
func windowEndBefore(windows []model.TimeWindow, deadline int64) (int64, bool) {
	if len(windows) == 0 {
		return deadline, true
	}

	best := int64(math.MinInt64)
	found := false
	for _, w := range windows {
		if w.Start > deadline {
			continue
		}
		end := deadline
		if w.End < end {
			end = w.End
		}
		if !found || end > best {
			best = end
			found = true
		}
	}

	if !found {
		return deadline, false
	}

	return best, true
}

// Earliest returns the earliest feasible service start at sequence position
// pos (the arrival time, or the window opening if the vehicle waits).
func (r *TWRoute) Earliest(pos int) int64 {
	if pos < 0 || pos >= len(r.earliest) {
		panic(ErrRankOutOfRange)
	}

	return r.earliest[pos]
}

// Latest returns the latest feasible arrival time at sequence position pos.
func (r *TWRoute) Latest(pos int) int64 {
	if pos < 0 || pos >= len(r.latest) {
		panic(ErrRankOutOfRange)
	}

	return r.latest[pos]
}

// TotalWaiting sums the idle time accumulated across every stop on the route.
func (r *TWRoute) TotalWaiting() int64 {
	var total int64
	for _, w := range r.waiting {
		total += w
	}

	return total
}

// IsValidAdditionForTW reports whether inserting jobRank at sequence
// position rank keeps every window on the route feasible. It re-derives a
// hypothetical sweep rather than mutating the receiver.
func (r *TWRoute) IsValidAdditionForTW(jobRank, rank int) bool {
	return r.IsValidAdditionForTWRange([]int{jobRank}, rank, rank)
}

// IsValidAdditionForTWRange reports whether splicing jobRanks in as a
// contiguous block replacing [firstRank, lastRank) keeps every window
// feasible. It checks windows only; the capacity profile is left to the
// caller's own capacity check.
func (r *TWRoute) IsValidAdditionForTWRange(jobRanks []int, firstRank, lastRank int) bool {
	return r.simulateWindowFeasible(jobRanks, firstRank, lastRank)
}

// IsValidAdditionForTWWithoutMaxLoad runs the same windows-only simulation
// as IsValidAdditionForTWRange and returns the same result; it is a
// separate entry point for callers that have already checked capacity.
func (r *TWRoute) IsValidAdditionForTWWithoutMaxLoad(jobRanks []int, firstRank, lastRank int) bool {
	return r.simulateWindowFeasible(jobRanks, firstRank, lastRank)
}

func (r *TWRoute) simulateWindowFeasible(jobRanks []int, firstRank, lastRank int) bool {
	if firstRank < 0 || lastRank > len(r.sequence) || firstRank > lastRank {
		panic(ErrRankOutOfRange)
	}

	matrix, ok := r.matrix()
	if !ok {
		return true
	}

	vehicle := r.input.Vehicles[r.vehicleRank]

	fromLoc := 0
	if vehicle.Start != nil {
		fromLoc = *vehicle.Start
	}
	t := vehicle.Window.Start

	if firstRank > 0 {
		fromLoc = r.input.Jobs[r.sequence[firstRank-1]].Location
		t = r.earliest[firstRank-1] + r.input.Jobs[r.sequence[firstRank-1]].Service
	}

	for _, jobRank := range jobRanks {
		job := r.input.Jobs[jobRank]
		arrival := t + matrix.Duration(fromLoc, job.Location)

		start, ok := windowStartAfter(job.Windows, arrival)
		if !ok {
			return false
		}

		t = start + job.Service
		fromLoc = job.Location
	}

	if lastRank < len(r.sequence) {
		nextJob := r.input.Jobs[r.sequence[lastRank]]
		arrival := t + matrix.Duration(fromLoc, nextJob.Location)
		if arrival > r.latest[lastRank] {
			return false
		}
	} else if vehicle.End != nil {
		arrival := t + matrix.Duration(fromLoc, *vehicle.End)
		if arrival > vehicle.Window.End {
			return false
		}
	}

	return true
}

var _ CapacityOracle = (*TWRoute)(nil)
var _ WindowOracle = (*TWRoute)(nil)
