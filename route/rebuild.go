package route

import (
	"github.com/routekit/vrpkit/amount"
	"github.com/routekit/vrpkit/model"
)

// rebuild recomputes every derived array from r.sequence. It is the single
// routine Add/Remove/Replace/Clear call after mutating r.sequence — spec §4.2
// asks for exactly one rebuild routine shared by every mutation rather than
// bespoke incremental patching per operator, trading a little CPU for a much
// smaller surface to get wrong.
//
// current_loads[0] is the load the vehicle leaves the depot with: the sum of
// every Single job's delivery demand on the route (the vehicle must already
// be carrying everything it will drop off). current_loads[k] for k in
// [1,n] is the load just after visiting sequence[k-1]: deliveries made so
// far are subtracted, pickups made so far (including the running
// pickup/delivery pair load, pd_loads) are added back in.
// current_loads[n+1] duplicates current_loads[n] (load on the way back to
// the depot, unchanged since nothing is picked up or dropped after the last
// stop). fwd_peaks[s] is the componentwise running max of current_loads[0..s];
// bwd_peaks[s] is the componentwise running max of current_loads[s..n+1].
func (r *RawRoute) rebuild() {
	n := len(r.sequence)
	dims := r.input.AmountDims
	zero := amount.New(dims)

	r.fwdPickups = make([]amount.Amount, n)
	r.fwdDeliveries = make([]amount.Amount, n)
	r.pdLoads = make([]amount.Amount, n)
	r.nbPickups = make([]int, n)
	r.nbDeliveries = make([]int, n)
	r.bwdPickups = make([]amount.Amount, n)
	r.bwdDeliveries = make([]amount.Amount, n)

	runningPickup := zero
	runningDelivery := zero
	runningPD := zero
	nbP, nbD := 0, 0

	for i, jobRank := range r.sequence {
		job := r.input.Jobs[jobRank]

		runningPickup = mustAdd(runningPickup, r.input.GetJobPickup(jobRank))
		runningDelivery = mustAdd(runningDelivery, r.input.GetJobDelivery(jobRank))

		switch job.Type {
		case model.Pickup:
			runningPD = mustAdd(runningPD, r.input.PDAmount(jobRank))
			nbP++
		case model.Delivery:
			runningPD = mustSub(runningPD, r.input.PDAmount(jobRank))
			nbD++
		}

		r.fwdPickups[i] = runningPickup
		r.fwdDeliveries[i] = runningDelivery
		r.pdLoads[i] = runningPD
		r.nbPickups[i] = nbP
		r.nbDeliveries[i] = nbD
	}

	bp, bd := zero, zero
	for i := n - 1; i >= 0; i-- {
		jobRank := r.sequence[i]
		r.bwdPickups[i] = bp
		r.bwdDeliveries[i] = bd
		bp = mustAdd(bp, r.input.GetJobPickup(jobRank))
		bd = mustAdd(bd, r.input.GetJobDelivery(jobRank))
	}

	totalDeliveries := zero
	if n > 0 {
		totalDeliveries = r.fwdDeliveries[n-1]
	}

	loads := make([]amount.Amount, n+2)
	loads[0] = totalDeliveries
	for k := 1; k <= n; k++ {
		load := mustAdd(r.fwdPickups[k-1], r.pdLoads[k-1])
		load = mustAdd(load, totalDeliveries)
		load = mustSub(load, r.fwdDeliveries[k-1])
		loads[k] = load
	}
	if n > 0 {
		loads[n+1] = loads[n]
	} else {
		loads[1] = loads[0]
	}
	r.currentLoads = loads

	r.fwdPeaks = make([]amount.Amount, n+2)
	r.fwdPeaks[0] = loads[0]
	for s := 1; s < n+2; s++ {
		r.fwdPeaks[s] = mustMax(r.fwdPeaks[s-1], loads[s])
	}

	r.bwdPeaks = make([]amount.Amount, n+2)
	r.bwdPeaks[n+1] = loads[n+1]
	for s := n; s >= 0; s-- {
		r.bwdPeaks[s] = mustMax(loads[s], r.bwdPeaks[s+1])
	}

	// delivery_margin/pickup_margin are the route's headroom summary
	// statistics (spec §3), distinct from the precise peaks+replaced test
	// IsValidAdditionForCapacityMargins performs: delivery_margin measures
	// slack at the depot-departure load, pickup_margin slack against the
	// total pickups carried by the time the vehicle returns.
	capacity := r.capacity()
	r.deliveryMargin = mustSubClamped(capacity, loads[0])
	totalPickups := zero
	if n > 0 {
		totalPickups = r.fwdPickups[n-1]
	}
	r.pickupMargin = mustSubClamped(capacity, totalPickups)
}

func mustAdd(a, b amount.Amount) amount.Amount {
	out, err := amount.Add(a, b)
	if err != nil {
		panic(err)
	}

	return out
}

func mustSub(a, b amount.Amount) amount.Amount {
	out, err := amount.Sub(a, b)
	if err != nil {
		panic(err)
	}

	return out
}

func mustMax(a, b amount.Amount) amount.Amount {
	out, err := amount.Max(a, b)
	if err != nil {
		panic(err)
	}

	return out
}

// mustSubClamped is amount.Sub with componentwise clamping at zero: margins
// are a best-effort headroom bound, never themselves a source of a negative-
// result panic when a route is already at or over its nominal peak.
func mustSubClamped(a, b amount.Amount) amount.Amount {
	out := make(amount.Amount, len(a))
	for i := range a {
		v := a[i] - b[i]
		if v < 0 {
			v = 0
		}
		out[i] = v
	}

	return out
}
