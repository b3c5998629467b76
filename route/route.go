// Package route implements the route-mutation core: RawRoute (capacity
// profile) and TWRoute (capacity + time-window profile), the incrementally
// maintained per-route data structures that the neighborhood operators
// mutate and query. This is the hard engineering the rest of the solver is
// built around (spec §1/§2).
//
// Checked vs. unchecked path: feasibility queries (the Is* methods) never
// mutate and report infeasibility as false; Add/Remove/Replace assume the
// caller has already checked feasibility and do not re-validate it. An
// out-of-range rank passed to a query (or to JobAt) is a programmer bug and
// panics with ErrRankOutOfRange; the mutations return ErrRankOutOfRange
// instead.
package route

import (
	"errors"

	"github.com/routekit/vrpkit/amount"
	"github.com/routekit/vrpkit/model"
)

// ErrRankOutOfRange is a usage error: a rank argument did not satisfy
// 0 <= rank <= len(sequence) (for insertion points) or the narrower
// 0 <= rank < len(sequence) (for existing positions).
var ErrRankOutOfRange = errors.New("route: rank out of range")

// CapacityOracle is the capability every route offers: feasibility queries
// and mutations over the capacity profile. RawRoute satisfies it directly;
// TWRoute satisfies it by embedding RawRoute. localsearch and neighborhood
// are written against this interface (and WindowOracle), never against a
// concrete type, so the hot path never type-switches on route kind (spec §9).
type CapacityOracle interface {
	Len() int
	Sequence() []int
	JobAt(pos int) int
	IsValidAdditionForCapacity(pickup, delivery amount.Amount, rank int) bool
	IsValidAdditionForCapacityMargins(pickup, delivery amount.Amount, firstRank, lastRank int) bool
	IsValidAdditionForCapacityInclusion(delivery amount.Amount, jobRanks []int, firstRank, lastRank int) bool
	Add(jobRank, position int) error
	Remove(first, count int) error
	Replace(firstRank, lastRank int, newSubsequence []int) error
	Clear()
	VehicleRank() int
	// Feasible reports whether the route, as it currently stands, respects
	// capacity everywhere. Used by neighborhood operators that build a
	// hypothetical route via Replace (which does not itself re-validate
	// feasibility, by contract) and need a whole-route check afterward
	// rather than a single insertion-point check.
	Feasible() bool
}

// WindowOracle extends CapacityOracle with time-window feasibility. Only
// TWRoute satisfies it.
type WindowOracle interface {
	CapacityOracle
	IsValidAdditionForTW(jobRank, rank int) bool
	IsValidAdditionForTWRange(jobRanks []int, firstRank, lastRank int) bool
	IsValidAdditionForTWWithoutMaxLoad(jobRanks []int, firstRank, lastRank int) bool
	Earliest(pos int) int64
	Latest(pos int) int64
	TotalWaiting() int64
}

// RawRoute is the capacity-profile route state for CVRP/pure-TSP problems:
// no time windows, only the load profile described in spec §3.
type RawRoute struct {
	input       *model.Input
	vehicleRank int

	sequence []int

	fwdPickups    []amount.Amount
	fwdDeliveries []amount.Amount
	pdLoads       []amount.Amount
	nbPickups     []int
	nbDeliveries  []int

	bwdPickups    []amount.Amount
	bwdDeliveries []amount.Amount

	currentLoads []amount.Amount // length len(sequence)+2
	fwdPeaks     []amount.Amount // length len(sequence)+2
	bwdPeaks     []amount.Amount // length len(sequence)+2

	deliveryMargin amount.Amount
	pickupMargin   amount.Amount
}

// NewRawRoute returns an empty RawRoute for the given vehicle.
func NewRawRoute(input *model.Input, vehicleRank int) *RawRoute {
	r := &RawRoute{input: input, vehicleRank: vehicleRank}
	r.rebuild()

	return r
}

// VehicleRank returns the rank of the vehicle this route belongs to.
func (r *RawRoute) VehicleRank() int { return r.vehicleRank }

// Len returns the number of jobs currently on the route.
func (r *RawRoute) Len() int { return len(r.sequence) }

// Sequence returns the route's job ranks in visiting order. Callers must
// treat the returned slice as read-only.
func (r *RawRoute) Sequence() []int { return r.sequence }

// JobAt returns the job rank at sequence position pos.
func (r *RawRoute) JobAt(pos int) int {
	if pos < 0 || pos >= len(r.sequence) {
		panic(ErrRankOutOfRange)
	}

	return r.sequence[pos]
}

func (r *RawRoute) capacity() amount.Amount {
	return r.input.GetVehicleCapacity(r.vehicleRank)
}
