package distmatrix

import "math"

// Point is a planar coordinate used by Euclidean.
type Point struct {
	X, Y float64
}

// GeoPoint is a (latitude, longitude) pair in degrees, used by Haversine.
type GeoPoint struct {
	Lat, Lon float64
}

// CostModel turns a raw distance into cost and duration for one unit of
// travel speed. Callers who need currency-scaled costs or a travel speed
// other than 1 unit/sec pass their own CostModel; DefaultCostModel treats
// distance as both the cost and the duration (1 distance unit == 1 time
// unit), which is adequate for the Euclidean/Haversine end-to-end scenarios.
type CostModel func(distance float64) (cost float64, duration int64)

// DefaultCostModel returns a CostModel where cost == distance and duration
// is the distance rounded to the nearest integer unit.
func DefaultCostModel() CostModel {
	return func(distance float64) (float64, int64) {
		return distance, int64(math.Round(distance))
	}
}

// Euclidean builds a Dense over a set of planar points, using straight-line
// distance and the given CostModel for cost/duration derivation.
func Euclidean(points []Point, model CostModel) (*Dense, error) {
	if model == nil {
		model = DefaultCostModel()
	}
	d, err := NewDense(len(points))
	if err != nil {
		return nil, err
	}
	for i, pi := range points {
		for j, pj := range points {
			dx := pi.X - pj.X
			dy := pi.Y - pj.Y
			dist := math.Sqrt(dx*dx + dy*dy)
			cost, dur := model(dist)
			_ = d.SetDistance(i, j, dist)
			_ = d.SetCost(i, j, cost)
			_ = d.SetDuration(i, j, dur)
		}
	}

	return d, nil
}

// earthRadiusMeters is the mean Earth radius used by Haversine.
const earthRadiusMeters = 6371000.0

// Haversine builds a Dense over a set of geographic points, using the
// great-circle (haversine) distance in meters.
func Haversine(points []GeoPoint, model CostModel) (*Dense, error) {
	if model == nil {
		model = DefaultCostModel()
	}
	d, err := NewDense(len(points))
	if err != nil {
		return nil, err
	}
	for i, pi := range points {
		for j, pj := range points {
			dist := haversineMeters(pi, pj)
			cost, dur := model(dist)
			_ = d.SetDistance(i, j, dist)
			_ = d.SetCost(i, j, cost)
			_ = d.SetDuration(i, j, dur)
		}
	}

	return d, nil
}

func haversineMeters(a, b GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}
