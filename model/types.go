// Package model defines the immutable problem description consumed by the
// route-mutation core: Job, Vehicle, Input, and the builder that assembles
// them. Input is read-only after InputBuilder.Finalize, per spec: exactly
// one process-wide owner during a solve, shared read-only across searches.
package model

import (
	"github.com/routekit/vrpkit/amount"
)

// JobType is a closed tagged sum: a job is either a stand-alone stop
// (Single), or one half of a pickup/delivery pair whose load travels
// together along the route.
type JobType int

const (
	// Single is a stand-alone stop contributing both pickup and delivery
	// components at the same position.
	Single JobType = iota
	// Pickup is the first half of a pickup/delivery pair.
	Pickup
	// Delivery is the second half of a pickup/delivery pair.
	Delivery
)

// String returns the lowercase tag name, useful in logs and error messages.
func (t JobType) String() string {
	switch t {
	case Single:
		return "single"
	case Pickup:
		return "pickup"
	case Delivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// TimeWindow is a closed [Start, End] interval (both ends inclusive) during which a job may be
// serviced, or during which a vehicle may operate. Units are caller-defined,
// opaque, monotonic (matching distmatrix.Provider.Duration).
type TimeWindow struct {
	Start int64
	End   int64
}

// Job describes one task: a location to visit, optional service duration,
// optional pickup/delivery demand, optional time windows, a skill
// requirement, a priority, and a type tag.
//
// PairID links a Pickup job to its Delivery counterpart (and vice versa);
// it is empty for Single jobs. Input.Finalize enforces that every paired
// job has exactly one partner of the opposite type sharing the same PairID
// — the same-route/before constraint those pairs are subject to is enforced
// by route.RawRoute and the neighborhood operators, not here.
type Job struct {
	ID       string
	Rank     int
	Location int
	Service  int64
	Pickup   amount.Amount
	Delivery amount.Amount
	Windows  []TimeWindow
	Skills   map[string]struct{}
	Priority int
	Type     JobType
	PairID   string
}

// HasSkill reports whether the job requires the given skill.
func (j Job) HasSkill(skill string) bool {
	_, ok := j.Skills[skill]

	return ok
}

// Vehicle describes one fleet resource: optional start/end locations,
// capacity, skill set, operating time window, cost parameters, and a type
// tag used to select which distmatrix.Provider applies to it.
type Vehicle struct {
	ID              string
	Rank            int
	Start           *int // nil means "no fixed start location"
	End             *int // nil means "no fixed end location"
	Capacity        amount.Amount
	Skills          map[string]struct{}
	Window          TimeWindow
	FixedCost       float64
	PerDistanceCost float64
	PerDurationCost float64
	VehicleType     string
}

// HasSkill reports whether the vehicle offers the given skill.
func (v Vehicle) HasSkill(skill string) bool {
	_, ok := v.Skills[skill]

	return ok
}

// StepKind is a closed tagged sum identifying a position within a route:
// the start depot, a job, or the end depot.
type StepKind int

const (
	StepStart StepKind = iota
	StepJob
	StepEnd
)

// Step is one position in a solved route.
type Step struct {
	Kind          StepKind
	JobRank       int // valid only when Kind == StepJob
	Location      int
	ArrivalTime   int64
	DepartureTime int64
}

// RouteResult is the solved route for one used vehicle: an ordered list of
// Steps plus aggregated cost/duration/distance/service.
type RouteResult struct {
	VehicleRank int
	Steps       []Step
	Cost        float64
	Duration    int64
	Distance    float64
	Service     int64
}
