package eval

import "errors"

// ErrNoMatrixForVehicle indicates the vehicle's VehicleType has no
// distance-matrix provider registered on the Input.
var ErrNoMatrixForVehicle = errors.New("eval: no distance matrix for vehicle type")

// ErrLocationOutOfRange indicates an edge endpoint fell outside the
// provider's [0, Size()) range.
var ErrLocationOutOfRange = errors.New("eval: location index out of range")

// ErrServiceLengthMismatch indicates RouteEval was called with a
// serviceTimes slice whose length does not match locations.
var ErrServiceLengthMismatch = errors.New("eval: service-time slice length mismatch")
