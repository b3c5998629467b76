package route

import (
	"github.com/routekit/vrpkit/amount"
	"github.com/routekit/vrpkit/model"
)

// IsValidAdditionForCapacity reports whether a single job contributing
// pickup/delivery could be inserted at the given rank without violating
// capacity anywhere on the resulting route. rank is the insertion index into
// the current (pre-insertion) sequence: 0 means "before the first stop", n
// means "after the last stop".
//
// Inserting the job pushes delivery onto every stop up to and including the
// insertion point (the vehicle must already carry it when it leaves the
// depot) and pushes pickup onto every stop from the insertion point onward
// (the vehicle carries it for the remainder of the route once picked up).
// fwd_peaks[rank] is the worst-case prefix load before the insertion point
// and bwd_peaks[rank] the worst-case suffix load from it onward — the
// peak-based capacity oracle of spec §4.2, using `rank` on both sides as
// specified.
func (r *RawRoute) IsValidAdditionForCapacity(pickup, delivery amount.Amount, rank int) bool {
	if rank < 0 || rank > len(r.sequence) {
		panic(ErrRankOutOfRange)
	}

	capacity := r.capacity()

	prefixPeak := mustAdd(r.fwdPeaks[rank], delivery)
	if ok, err := amount.LessOrEqual(prefixPeak, capacity); err != nil || !ok {
		return false
	}

	suffixPeak := mustAdd(r.bwdPeaks[rank], pickup)
	ok, err := amount.LessOrEqual(suffixPeak, capacity)

	return err == nil && ok
}

// Feasible reports whether the route's capacity profile currently respects
// the vehicle's capacity at every step.
func (r *RawRoute) Feasible() bool {
	capacity := r.capacity()
	n := len(r.sequence)
	ok, err := amount.LessOrEqual(r.fwdPeaks[n+1], capacity)

	return err == nil && ok
}

// IsValidAdditionForCapacityMargins tests replacing the half-open range
// [firstRank, lastRank) with a single job of the given pickup/delivery,
// accounting for the deliveries and pickups removed along with the range
// (spec §4.2): accept iff
//
//	fwd_peaks[firstRank] + delivery <= capacity + replaced_deliveries
//	bwd_peaks[lastRank]  + pickup   <= capacity + replaced_pickups
func (r *RawRoute) IsValidAdditionForCapacityMargins(pickup, delivery amount.Amount, firstRank, lastRank int) bool {
	if firstRank < 0 || lastRank > len(r.sequence) || firstRank > lastRank {
		panic(ErrRankOutOfRange)
	}

	capacity := r.capacity()

	allowedDelivery := mustAdd(capacity, r.replacedDeliveries(firstRank, lastRank))
	lhsDelivery := mustAdd(r.fwdPeaks[firstRank], delivery)
	if ok, err := amount.LessOrEqual(lhsDelivery, allowedDelivery); err != nil || !ok {
		return false
	}

	allowedPickup := mustAdd(capacity, r.replacedPickups(firstRank, lastRank))
	lhsPickup := mustAdd(r.bwdPeaks[lastRank], pickup)
	if ok, err := amount.LessOrEqual(lhsPickup, allowedPickup); err != nil || !ok {
		return false
	}

	return true
}

// replacedDeliveries is the delivery demand currently carried across the
// [firstRank, lastRank) slice that a range-insertion would displace, per
// spec §4.2's index-shifted formula relating it to bwd_deliveries.
func (r *RawRoute) replacedDeliveries(firstRank, lastRank int) amount.Amount {
	if lastRank == 0 {
		return amount.New(r.input.AmountDims)
	}

	var before amount.Amount
	if firstRank == 0 {
		before = r.currentLoads[0]
	} else {
		before = r.bwdDeliveries[firstRank-1]
	}

	return mustSubClamped(before, r.bwdDeliveries[lastRank-1])
}

// replacedPickups is the pickup demand currently carried across
// [firstRank, lastRank) that a range-insertion would displace, derived from
// fwd_pickups per spec §4.2.
func (r *RawRoute) replacedPickups(firstRank, lastRank int) amount.Amount {
	if lastRank == 0 {
		return amount.New(r.input.AmountDims)
	}

	var before amount.Amount
	if firstRank == 0 {
		before = amount.New(r.input.AmountDims)
	} else {
		before = r.fwdPickups[firstRank-1]
	}

	return mustSubClamped(r.fwdPickups[lastRank-1], before)
}

// IsValidAdditionForCapacityInclusion checks whether the given job ranks,
// spliced in as a contiguous block replacing [firstRank, lastRank), would fit
// by walking the hypothetical resulting load profile directly rather than
// consulting the peak arrays. It is the fallback used when the inserted
// block carries its own internal pickup/delivery structure (e.g. a
// pickup/delivery pair moved together as a unit), which the margins test
// cannot express as a single (pickup, delivery) pair.
//
// This is a deliberate, documented resolution of the family's
// least-specified member: no reference implementation was available to
// consult, so the walk below reuses the same per-stop load recurrence
// rebuild uses, run over the spliced sequence without committing it.
func (r *RawRoute) IsValidAdditionForCapacityInclusion(delivery amount.Amount, jobRanks []int, firstRank, lastRank int) bool {
	if firstRank < 0 || lastRank > len(r.sequence) || firstRank > lastRank {
		panic(ErrRankOutOfRange)
	}

	capacity := r.capacity()

	// Load the vehicle carries just before firstRank in the current route
	// (already including the running pickup/delivery-pair load), plus the
	// extra delivery demand the whole inserted block adds to every stop up
	// to and including its own span.
	load := r.currentLoads[firstRank]
	load = mustAdd(load, delivery)

	for _, jobRank := range jobRanks {
		job := r.input.Jobs[jobRank]

		step := mustAdd(load, r.input.GetJobPickup(jobRank))
		step = mustSub(step, r.input.GetJobDelivery(jobRank))

		switch job.Type {
		case model.Pickup:
			step = mustAdd(step, r.input.PDAmount(jobRank))
		case model.Delivery:
			step = mustSub(step, r.input.PDAmount(jobRank))
		}

		if ok, err := amount.LessOrEqual(step, capacity); err != nil || !ok {
			return false
		}
		load = step
	}

	// The tail (lastRank..end) still carries whatever pickups it carried
	// before, unaffected by the splice's own pickups (those are already
	// folded into `load` above); it is affected by the block's added
	// delivery demand, which must also clear capacity against the tail's
	// own peak.
	tailPeak := r.bwdPeaks[lastRank]
	finalTail := mustAdd(tailPeak, delivery)

	ok, err := amount.LessOrEqual(finalTail, capacity)

	return err == nil && ok
}
