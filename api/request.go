package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/routekit/vrpkit/amount"
	"github.com/routekit/vrpkit/distmatrix"
	"github.com/routekit/vrpkit/model"
)

// SolveRequest is the wire shape for POST /solve: a planar Euclidean
// problem description, mirroring the scenario fixtures spec.md §8 walks
// through. Locations are addressed by index into Points.
type SolveRequest struct {
	AmountDims int                `json:"amount_dims"`
	Points     []distmatrix.Point `json:"points"`
	Jobs       []JobRequest       `json:"jobs"`
	Vehicles   []VehicleRequest   `json:"vehicles"`
	NBSearches int                `json:"nb_searches,omitempty"`
	Depth      int                `json:"depth,omitempty"`
	NBThreads  int                `json:"nb_threads,omitempty"`
	TimeoutMS  int64              `json:"timeout_ms,omitempty"`
}

type JobRequest struct {
	ID       string           `json:"id"`
	Location int              `json:"location"`
	Service  int64            `json:"service,omitempty"`
	Pickup   amount.Amount    `json:"pickup,omitempty"`
	Delivery amount.Amount    `json:"delivery,omitempty"`
	Windows  []model.TimeWindow `json:"windows,omitempty"`
	Skills   []string         `json:"skills,omitempty"`
	Priority int              `json:"priority,omitempty"`
	Type     string           `json:"type,omitempty"` // "single" (default), "pickup", "delivery"
	PairID   string           `json:"pair_id,omitempty"`
}

type VehicleRequest struct {
	ID              string         `json:"id"`
	Start           *int           `json:"start,omitempty"`
	End             *int           `json:"end,omitempty"`
	Capacity        amount.Amount  `json:"capacity,omitempty"`
	Skills          []string       `json:"skills,omitempty"`
	Window          model.TimeWindow `json:"window"`
	FixedCost       float64        `json:"fixed_cost,omitempty"`
	PerDistanceCost float64        `json:"per_distance_cost,omitempty"`
	PerDurationCost float64        `json:"per_duration_cost,omitempty"`
	VehicleType     string         `json:"vehicle_type,omitempty"`
}

func jobType(tag string) model.JobType {
	switch tag {
	case "pickup":
		return model.Pickup
	case "delivery":
		return model.Delivery
	default:
		return model.Single
	}
}

func skillSet(skills []string) map[string]struct{} {
	if len(skills) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		out[s] = struct{}{}
	}
	return out
}

// BuildInput turns a SolveRequest into a model.Input, building a single
// Euclidean distance matrix shared by every vehicle type present in the
// request (spec §8's scenarios never mix vehicle types with distinct
// matrices; deployments that need per-type matrices call model.InputBuilder
// directly instead of going through this HTTP layer).
func BuildInput(req SolveRequest) (*model.Input, error) {
	matrix, err := distmatrix.Euclidean(req.Points, distmatrix.DefaultCostModel())
	if err != nil {
		return nil, fmt.Errorf("api: build matrix: %w", err)
	}

	b := model.NewInputBuilder(req.AmountDims)

	vehicleTypes := make(map[string]struct{})
	for _, v := range req.Vehicles {
		vt := v.VehicleType
		if vt == "" {
			vt = "default"
		}
		vehicleTypes[vt] = struct{}{}

		b.AddVehicle(model.Vehicle{
			ID:              v.ID,
			Start:           v.Start,
			End:             v.End,
			Capacity:        v.Capacity,
			Skills:          skillSet(v.Skills),
			Window:          v.Window,
			FixedCost:       v.FixedCost,
			PerDistanceCost: v.PerDistanceCost,
			PerDurationCost: v.PerDurationCost,
			VehicleType:     vt,
		})
	}

	for _, j := range req.Jobs {
		b.AddJob(model.Job{
			ID:       j.ID,
			Location: j.Location,
			Service:  j.Service,
			Pickup:   j.Pickup,
			Delivery: j.Delivery,
			Windows:  j.Windows,
			Skills:   skillSet(j.Skills),
			Priority: j.Priority,
			Type:     jobType(j.Type),
			PairID:   j.PairID,
		})
	}

	for vt := range vehicleTypes {
		b.SetMatrix(vt, matrix)
	}

	return b.Finalize()
}

// Fingerprint derives a stable cache/dedup key from the request body: the
// same JSON bytes always hash to the same key, so two byte-identical
// requests collapse to one Solve call regardless of arrival order.
func Fingerprint(req SolveRequest) (string, error) {
	normalized, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(normalized)
	return hex.EncodeToString(sum[:]), nil
}
