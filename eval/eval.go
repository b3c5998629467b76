// Package eval turns a (vehicle, from, to) triple into an Eval{Cost,
// Duration, Distance}, and sums per-edge Evals plus per-job service time and
// a vehicle's fixed cost into a whole-route Eval (spec §4.4).
package eval

import "github.com/routekit/vrpkit/model"

// Eval is the evaluated cost/duration/distance of one edge, or of an entire
// route once summed by RouteEval.
type Eval struct {
	Cost     float64
	Duration int64
	Distance float64
}

// Add returns the componentwise sum of e and other.
func (e Eval) Add(other Eval) Eval {
	return Eval{
		Cost:     e.Cost + other.Cost,
		Duration: e.Duration + other.Duration,
		Distance: e.Distance + other.Distance,
	}
}

// EdgeEval evaluates the single edge from location `from` to location `to`
// for the given vehicle, consulting the vehicle's own distance-matrix
// provider and applying its per-distance/per-duration cost parameters on
// top of the provider's own Cost() (the provider's Cost is the travel cost;
// FixedCost is added once per route, not per edge, by RouteEval).
func EdgeEval(in *model.Input, vehicle model.Vehicle, from, to int) (Eval, error) {
	matrix, ok := in.Matrix(vehicle.VehicleType)
	if !ok {
		return Eval{}, ErrNoMatrixForVehicle
	}
	if from < 0 || from >= matrix.Size() || to < 0 || to >= matrix.Size() {
		return Eval{}, ErrLocationOutOfRange
	}

	distance := matrix.Distance(from, to)
	duration := matrix.Duration(from, to)
	cost := matrix.Cost(from, to) + vehicle.PerDistanceCost*distance + float64(duration)*vehicle.PerDurationCost

	return Eval{Cost: cost, Duration: duration, Distance: distance}, nil
}

// RouteEval evaluates an entire ordered sequence of locations (depot start,
// job stops, depot end) for the given vehicle: the sum of every edge's
// EdgeEval, plus each stop's service time folded into Duration, plus the
// vehicle's FixedCost once if the route visits at least one job.
func RouteEval(in *model.Input, vehicle model.Vehicle, locations []int, serviceTimes []int64) (Eval, error) {
	if len(locations) < 2 {
		return Eval{}, nil
	}
	if len(serviceTimes) != len(locations) {
		return Eval{}, ErrServiceLengthMismatch
	}

	total := Eval{}
	for i := 0; i+1 < len(locations); i++ {
		e, err := EdgeEval(in, vehicle, locations[i], locations[i+1])
		if err != nil {
			return Eval{}, err
		}
		total = total.Add(e)
	}

	for _, s := range serviceTimes {
		total.Duration += s
	}

	if len(locations) > 2 {
		total.Cost += vehicle.FixedCost
	}

	return total, nil
}
