package distmatrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"
)

// FromNetwork builds a Dense all-pairs distance matrix over a sparse,
// weighted road-network-style graph by running a single-source Dijkstra
// sweep from each location in order. locationIDs fixes the index-to-vertex
// mapping: location i in the resulting Dense is vertex locationIDs[i].
//
// The graph's edge weights are treated as distance; cost and duration are
// derived from distance via model (nil selects DefaultCostModel).
func FromNetwork(g *core.Graph, locationIDs []string, model CostModel) (*Dense, error) {
	if model == nil {
		model = DefaultCostModel()
	}
	d, err := NewDense(len(locationIDs))
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(locationIDs))
	for i, id := range locationIDs {
		index[id] = i
	}

	for i, src := range locationIDs {
		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		if err != nil {
			return nil, fmt.Errorf("distmatrix: shortest paths from %q: %w", src, err)
		}
		for j, dst := range locationIDs {
			if i == j {
				continue
			}
			raw, reachable := dist[dst]
			travel := float64(raw)
			if !reachable || raw == math.MaxInt64 {
				travel = math.Inf(1)
			}
			cost, dur := model(travel)
			_ = d.SetDistance(i, j, travel)
			_ = d.SetCost(i, j, cost)
			_ = d.SetDuration(i, j, dur)
		}
	}

	return d, nil
}
