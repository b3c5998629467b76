package model

import (
	"github.com/routekit/vrpkit/amount"
	"github.com/routekit/vrpkit/distmatrix"
)

// Input is the immutable problem description: jobs, vehicles, and a
// per-vehicle-type distance-matrix lookup. Construct one via
// NewInputBuilder; once Finalize succeeds, Input must never be mutated —
// it is shared read-only across every concurrent search (spec §5).
type Input struct {
	Jobs       []Job
	Vehicles   []Vehicle
	AmountDims int
	ZeroAmount amount.Amount

	matrices map[string]distmatrix.Provider
	// pairPartner[rank] is the rank of the opposite-type job sharing the
	// same PairID, for Pickup/Delivery jobs only.
	pairPartner map[int]int
}

// Matrix returns the distance-matrix provider registered for vehicleType,
// or false if none was registered.
func (in *Input) Matrix(vehicleType string) (distmatrix.Provider, bool) {
	p, ok := in.matrices[vehicleType]

	return p, ok
}

// GetJobPickup returns the Single-job pickup-amount contribution of the job
// at rank (zero for Pickup/Delivery jobs — their shared load is tracked
// separately via PDAmount and route.pd_loads, not fwd_pickups).
func (in *Input) GetJobPickup(rank int) amount.Amount {
	mustJobRank(in, rank)
	j := in.Jobs[rank]
	if j.Type != Single {
		return in.ZeroAmount
	}

	return j.Pickup
}

// GetJobDelivery returns the Single-job delivery-amount contribution of the
// job at rank (zero for Pickup/Delivery jobs).
func (in *Input) GetJobDelivery(rank int) amount.Amount {
	mustJobRank(in, rank)
	j := in.Jobs[rank]
	if j.Type != Single {
		return in.ZeroAmount
	}

	return j.Delivery
}

// PDAmount returns the shared pair load carried by a Pickup or Delivery job
// between its two positions on a route (added to pd_loads at the Pickup
// position, removed at the Delivery position). Zero for Single jobs.
func (in *Input) PDAmount(rank int) amount.Amount {
	mustJobRank(in, rank)
	j := in.Jobs[rank]
	switch j.Type {
	case Pickup:
		return j.Pickup
	case Delivery:
		return j.Delivery
	default:
		return in.ZeroAmount
	}
}

// GetVehicleCapacity returns the capacity Amount of the vehicle at rank.
func (in *Input) GetVehicleCapacity(rank int) amount.Amount {
	mustVehicleRank(in, rank)

	return in.Vehicles[rank].Capacity
}

// PairPartner returns the rank of the job paired with the Pickup/Delivery
// job at rank, and whether one exists. Always false for Single jobs.
func (in *Input) PairPartner(rank int) (int, bool) {
	mustJobRank(in, rank)
	p, ok := in.pairPartner[rank]

	return p, ok
}
