package model

import "errors"

// Validation errors surface synchronously from InputBuilder.Finalize; they
// mean the problem description itself is ill-formed, not that a solution
// could not be found (infeasibility is represented by the unassigned list,
// never by an error — see solver.Result).
var (
	// ErrEmptyJobs indicates the builder was asked to finalize with no jobs.
	ErrEmptyJobs = errors.New("model: no jobs to schedule")

	// ErrEmptyVehicles indicates the builder was asked to finalize with no vehicles.
	ErrEmptyVehicles = errors.New("model: no vehicles in fleet")

	// ErrAmountDimensionMismatch indicates a Job or Vehicle Amount does not
	// share the problem's declared capacity-dimension count.
	ErrAmountDimensionMismatch = errors.New("model: amount dimension mismatch")

	// ErrUnknownLocation indicates a Job or Vehicle references a location
	// index outside any configured distance-matrix provider's range.
	ErrUnknownLocation = errors.New("model: location index out of range")

	// ErrNoMatrixForVehicleType indicates a vehicle's type has no matrix
	// registered via InputBuilder.SetMatrix.
	ErrNoMatrixForVehicleType = errors.New("model: no distance matrix for vehicle type")

	// ErrUnpairedJob indicates a Pickup or Delivery job's PairID does not
	// resolve to exactly one partner job of the opposite type.
	ErrUnpairedJob = errors.New("model: pickup/delivery job has no matching pair")
)

// Usage errors are programmer-bug-class assertion failures: callers passed
// an out-of-range rank to an accessor. The engine is not required to
// recover from these; they panic rather than return an error, matching the
// route package's "checked vs. unchecked path separated by contract"
// discipline (spec §4.2/§9) — Input accessors are the unchecked side here,
// since every rank they receive should already have been validated against
// len(Jobs)/len(Vehicles) by the caller.
func mustJobRank(in *Input, rank int) {
	if rank < 0 || rank >= len(in.Jobs) {
		panic("model: job rank out of range")
	}
}

func mustVehicleRank(in *Input, rank int) {
	if rank < 0 || rank >= len(in.Vehicles) {
		panic("model: vehicle rank out of range")
	}
}
