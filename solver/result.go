package solver

import (
	"github.com/routekit/vrpkit/eval"
	"github.com/routekit/vrpkit/model"
	"github.com/routekit/vrpkit/route"
)

// Result is the final output of a Solve call (spec §6): one RouteResult per
// used vehicle, the jobs nothing could place, and a summary indicator tuple.
type Result struct {
	Routes     []model.RouteResult
	Unassigned []int
	Summary    SolutionIndicators
}

// buildRouteResult materializes a route.CapacityOracle into the ordered
// Step list and aggregated metrics spec §6 requires for output. For a
// WindowOracle route, each job's service start is its Earliest(pos) (which
// already folds in any accumulated waiting); for a plain RawRoute, arrival
// and service start coincide since no window can force a wait.
func buildRouteResult(in *model.Input, v model.Vehicle, r route.CapacityOracle) (model.RouteResult, error) {
	n := r.Len()

	matrix, ok := in.Matrix(v.VehicleType)
	if !ok {
		return model.RouteResult{}, ErrNoMatrixForVehicle
	}

	startLoc := 0
	if v.Start != nil {
		startLoc = *v.Start
	}
	endLoc := startLoc
	if v.End != nil {
		endLoc = *v.End
	} else if n > 0 {
		endLoc = in.Jobs[r.JobAt(n-1)].Location
	}

	wo, isTW := r.(route.WindowOracle)

	locs := make([]int, 0, n+2)
	services := make([]int64, 0, n+2)
	steps := make([]model.Step, 0, n+2)

	t := v.Window.Start
	locs = append(locs, startLoc)
	services = append(services, 0)
	steps = append(steps, model.Step{Kind: model.StepStart, Location: startLoc, ArrivalTime: t, DepartureTime: t})

	fromLoc := startLoc
	var totalService int64
	for i := 0; i < n; i++ {
		jobRank := r.JobAt(i)
		job := in.Jobs[jobRank]

		arrival := t + matrix.Duration(fromLoc, job.Location)

		serviceStart := arrival
		if isTW {
			serviceStart = wo.Earliest(i)
		}
		departure := serviceStart + job.Service

		steps = append(steps, model.Step{
			Kind:          model.StepJob,
			JobRank:       jobRank,
			Location:      job.Location,
			ArrivalTime:   arrival,
			DepartureTime: departure,
		})
		locs = append(locs, job.Location)
		services = append(services, job.Service)
		totalService += job.Service

		t = departure
		fromLoc = job.Location
	}

	endArrival := t + matrix.Duration(fromLoc, endLoc)
	steps = append(steps, model.Step{Kind: model.StepEnd, Location: endLoc, ArrivalTime: endArrival, DepartureTime: endArrival})
	locs = append(locs, endLoc)
	services = append(services, 0)

	e, err := eval.RouteEval(in, v, locs, services)
	if err != nil {
		return model.RouteResult{}, err
	}

	return model.RouteResult{
		VehicleRank: v.Rank,
		Steps:       steps,
		Cost:        e.Cost,
		Duration:    e.Duration,
		Distance:    e.Distance,
		Service:     totalService,
	}, nil
}

// buildResult converts a solution's routes into the final Result, skipping
// vehicles that were never used (empty routes produce no RouteResult).
func buildResult(in *model.Input, routes []route.CapacityOracle, unassigned []int, summary SolutionIndicators) (*Result, error) {
	out := &Result{Unassigned: unassigned, Summary: summary}

	for i, r := range routes {
		if r.Len() == 0 {
			continue
		}

		rr, err := buildRouteResult(in, in.Vehicles[i], r)
		if err != nil {
			return nil, err
		}
		out.Routes = append(out.Routes, rr)
	}

	return out, nil
}
