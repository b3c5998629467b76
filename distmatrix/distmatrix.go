// Package distmatrix defines the distance-matrix provider contract consumed
// by model.Input (spec §6: size/distance/duration/cost) and a concrete Dense
// implementation, built the way the teacher's own dense-matrix type is: flat
// row-major storage with bounds-checked setters.
//
// One Provider exists per vehicle type; Input indexes lookups by vehicle
// type, not by a single global matrix.
package distmatrix

import "errors"

// ErrInvalidSize is returned by constructors when size <= 0.
var ErrInvalidSize = errors.New("distmatrix: size must be positive")

// ErrIndexOutOfRange is returned by Dense's Set* methods on an out-of-bounds
// index.
var ErrIndexOutOfRange = errors.New("distmatrix: index out of range")

// ErrDimensionMismatch reports row/column data whose length does not match
// the declared size. No function in this package returns it.
var ErrDimensionMismatch = errors.New("distmatrix: dimension mismatch")

// Provider is the external distance-matrix contract. Distance is typically
// the raw geometric/road distance, Duration the opaque monotonic travel
// time, and Cost the (possibly different) currency-scaled edge cost used by
// the objective; a provider is free to make Cost a linear function of
// Distance and Duration, or something else entirely.
type Provider interface {
	// Size returns the number of locations this provider knows about.
	Size() int
	// Distance returns the travel distance from location `from` to `to`.
	Distance(from, to int) float64
	// Duration returns the travel duration from `from` to `to`.
	Duration(from, to int) int64
	// Cost returns the edge cost from `from` to `to`.
	Cost(from, to int) float64
}
