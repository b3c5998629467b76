package solver

import "errors"

// ErrNoMatrixForVehicle mirrors eval.ErrNoMatrixForVehicle; kept as its own
// sentinel so callers depending only on package solver don't need to import
// eval to recognize it.
var ErrNoMatrixForVehicle = errors.New("solver: no matrix registered for vehicle type")

// ErrNoParameterPoints is returned when Solve is given zero heuristic
// parameter points and the input carries no default set either (should not
// happen in practice — construct.DefaultParams is never empty).
var ErrNoParameterPoints = errors.New("solver: no heuristic parameter points to try")
