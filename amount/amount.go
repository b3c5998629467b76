// Package amount provides a fixed-length, non-negative integer vector type
// used throughout the solver to represent multi-dimensional demand and
// vehicle capacity (e.g. weight, volume, pallet count as independent
// dimensions of a single quantity).
//
// Design goals:
//   - Determinism: pure integer arithmetic, no floating point drift.
//   - Fail-fast: dimension mismatches are sentinel errors, never silent
//     truncation or padding.
//   - Zero surprises: Sub is only ever defined where the result would be
//     non-negative; callers that cannot guarantee this must check Sub's
//     error return rather than relying on saturation.
package amount

import "errors"

// ErrDimensionMismatch is returned whenever two Amount values of different
// lengths are combined, or a caller requests a length-mismatched compare.
var ErrDimensionMismatch = errors.New("amount: dimension mismatch")

// ErrNegativeResult is returned by Sub when the componentwise subtraction
// would produce a negative entry; callers of Sub are expected to have
// already checked feasibility (e.g. via LessOrEqual) by contract.
var ErrNegativeResult = errors.New("amount: subtraction would be negative")

// Amount is a fixed-length vector of non-negative integers. All Amount
// values that participate together in one model.Input share the same
// length (the problem's capacity-dimension count); mixing lengths across
// two different problems is a programmer error and surfaces as
// ErrDimensionMismatch rather than being silently coerced.
type Amount []int64

// New returns a zero-valued Amount of the given dimension.
func New(dims int) Amount {
	return make(Amount, dims)
}

// Clone returns an independent copy of a.
func (a Amount) Clone() Amount {
	out := make(Amount, len(a))
	copy(out, a)
	return out
}

// Dims reports the number of capacity dimensions.
func (a Amount) Dims() int { return len(a) }

// IsZero reports whether every dimension is zero.
func (a Amount) IsZero() bool {
	for _, v := range a {
		if v != 0 {
			return false
		}
	}
	return true
}

// Add returns a+b componentwise. Both operands must share the same
// dimension; ErrDimensionMismatch otherwise.
func Add(a, b Amount) (Amount, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}
	out := make(Amount, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out, nil
}

// Sub returns a-b componentwise. The result is only defined when every
// dimension of the result is non-negative (i.e. b <= a); callers in the
// capacity layer (route package) guarantee this by having already checked
// feasibility, so Sub returns ErrNegativeResult rather than clamping when
// that invariant is violated — clamping would silently mask a logic bug.
func Sub(a, b Amount) (Amount, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}
	out := make(Amount, len(a))
	for i := range a {
		v := a[i] - b[i]
		if v < 0 {
			return nil, ErrNegativeResult
		}
		out[i] = v
	}
	return out, nil
}

// LessOrEqual reports whether a[i] <= b[i] for every dimension i.
// Both operands must share the same dimension; ErrDimensionMismatch
// otherwise.
func LessOrEqual(a, b Amount) (bool, error) {
	if len(a) != len(b) {
		return false, ErrDimensionMismatch
	}
	for i := range a {
		if a[i] > b[i] {
			return false, nil
		}
	}
	return true, nil
}

// Max returns the componentwise maximum of a and b.
func Max(a, b Amount) (Amount, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}
	out := make(Amount, len(a))
	for i := range a {
		if a[i] > b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out, nil
}
