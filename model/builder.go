package model

import (
	"github.com/google/uuid"
	"github.com/routekit/vrpkit/amount"
	"github.com/routekit/vrpkit/distmatrix"
)

// InputBuilder assembles a problem description incrementally, mirroring the
// package's builder-style construction surface (spec §6): add jobs, add
// vehicles, set per-vehicle-type matrices, finalize. Validation errors
// surface only at Finalize, never from the individual Add* calls, so
// callers can add jobs and vehicles in any order regardless of forward
// references between them.
type InputBuilder struct {
	dims     int
	jobs     []Job
	vehicles []Vehicle
	matrices map[string]distmatrix.Provider
}

// NewInputBuilder starts a builder for a problem with the given number of
// capacity dimensions (amountDims > 0).
func NewInputBuilder(amountDims int) *InputBuilder {
	return &InputBuilder{
		dims:     amountDims,
		matrices: make(map[string]distmatrix.Provider),
	}
}

// AddJob appends a job, assigning it a rank and, if ID is empty, a
// synthesized UUID. Returns the assigned rank.
func (b *InputBuilder) AddJob(j Job) int {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	j.Rank = len(b.jobs)
	b.jobs = append(b.jobs, j)

	return j.Rank
}

// AddVehicle appends a vehicle, assigning it a rank and, if ID is empty, a
// synthesized UUID. Returns the assigned rank.
func (b *InputBuilder) AddVehicle(v Vehicle) int {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	v.Rank = len(b.vehicles)
	b.vehicles = append(b.vehicles, v)

	return v.Rank
}

// SetMatrix registers the distance-matrix provider used by every vehicle
// whose VehicleType equals vehicleType.
func (b *InputBuilder) SetMatrix(vehicleType string, p distmatrix.Provider) {
	b.matrices[vehicleType] = p
}

// Finalize validates the accumulated jobs/vehicles/matrices and, on
// success, returns an immutable Input. Validation errors (spec §7):
// amount-size mismatch, job referencing an unknown location, vehicle
// capacity shorter than the problem's amount dimension, empty job list,
// and (supplemented) an unpaired Pickup/Delivery job.
func (b *InputBuilder) Finalize() (*Input, error) {
	if len(b.jobs) == 0 {
		return nil, ErrEmptyJobs
	}
	if len(b.vehicles) == 0 {
		return nil, ErrEmptyVehicles
	}

	zero := amount.New(b.dims)

	for _, j := range b.jobs {
		if j.Pickup != nil && j.Pickup.Dims() != b.dims {
			return nil, ErrAmountDimensionMismatch
		}
		if j.Delivery != nil && j.Delivery.Dims() != b.dims {
			return nil, ErrAmountDimensionMismatch
		}
		if err := b.checkLocation(j.Location); err != nil {
			return nil, err
		}
	}

	for _, v := range b.vehicles {
		if v.Capacity == nil || v.Capacity.Dims() != b.dims {
			return nil, ErrAmountDimensionMismatch
		}
		if _, ok := b.matrices[v.VehicleType]; !ok {
			return nil, ErrNoMatrixForVehicleType
		}
		if v.Start != nil {
			if err := b.checkLocation(*v.Start); err != nil {
				return nil, err
			}
		}
		if v.End != nil {
			if err := b.checkLocation(*v.End); err != nil {
				return nil, err
			}
		}
	}

	pairPartner, err := resolvePairs(b.jobs)
	if err != nil {
		return nil, err
	}

	matrices := make(map[string]distmatrix.Provider, len(b.matrices))
	for k, v := range b.matrices {
		matrices[k] = v
	}

	return &Input{
		Jobs:        append([]Job(nil), b.jobs...),
		Vehicles:    append([]Vehicle(nil), b.vehicles...),
		AmountDims:  b.dims,
		ZeroAmount:  zero,
		matrices:    matrices,
		pairPartner: pairPartner,
	}, nil
}

// checkLocation bounds-checks a location index against every registered
// matrix's Size(); a builder with no matrix registered via SetMatrix skips
// the upper-bound check, and Finalize then fails with
// ErrNoMatrixForVehicleType in its vehicle loop.
func (b *InputBuilder) checkLocation(loc int) error {
	if loc < 0 {
		return ErrUnknownLocation
	}
	for _, p := range b.matrices {
		if loc >= p.Size() {
			return ErrUnknownLocation
		}
	}

	return nil
}

// amountsEqual reports whether two Amounts carry the same componentwise
// value; a paired Pickup and Delivery job must share this invariant so the
// route package's running pd_loads returns to zero once both ends of the
// pair have been visited.
func amountsEqual(a, b amount.Amount) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// resolvePairs validates that every Pickup/Delivery job's PairID resolves
// to exactly one partner job of the opposite type, and returns the
// rank-to-rank partner mapping consulted by route.RawRoute's PD constraint.
func resolvePairs(jobs []Job) (map[int]int, error) {
	byPairID := make(map[string][]int, len(jobs))
	for _, j := range jobs {
		if j.Type == Pickup || j.Type == Delivery {
			byPairID[j.PairID] = append(byPairID[j.PairID], j.Rank)
		}
	}

	partner := make(map[int]int, len(jobs))
	for id, ranks := range byPairID {
		if id == "" || len(ranks) != 2 {
			return nil, ErrUnpairedJob
		}
		a, b := ranks[0], ranks[1]
		if jobs[a].Type == jobs[b].Type {
			return nil, ErrUnpairedJob
		}

		pickupJob, deliveryJob := jobs[a], jobs[b]
		if pickupJob.Type == Delivery {
			pickupJob, deliveryJob = deliveryJob, pickupJob
		}
		if !amountsEqual(pickupJob.Pickup, deliveryJob.Delivery) {
			return nil, ErrUnpairedJob
		}

		partner[a] = b
		partner[b] = a
	}

	return partner, nil
}
