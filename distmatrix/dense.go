package distmatrix

// Dense is a concrete, row-major Provider backed by three parallel flat
// grids (distance, duration, cost), one per (from, to) pair. Mirrors the
// teacher's own dense-matrix storage shape: data[i*n+j]. The Set* methods
// bounds-check both indices; the getters index the flat grid directly.
type Dense struct {
	n        int
	distance []float64
	duration []int64
	cost     []float64
}

// NewDense allocates an n×n Dense with every entry zeroed. Use Set* to
// populate it, or one of the builder functions (Euclidean, Haversine,
// FromNetwork) to construct a populated Dense directly.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}

	return &Dense{
		n:        n,
		distance: make([]float64, n*n),
		duration: make([]int64, n*n),
		cost:     make([]float64, n*n),
	}, nil
}

// Size returns n.
func (d *Dense) Size() int { return d.n }

// Distance returns the stored distance from `from` to `to`.
func (d *Dense) Distance(from, to int) float64 { return d.distance[d.index(from, to)] }

// Duration returns the stored duration from `from` to `to`.
func (d *Dense) Duration(from, to int) int64 { return d.duration[d.index(from, to)] }

// Cost returns the stored cost from `from` to `to`.
func (d *Dense) Cost(from, to int) float64 { return d.cost[d.index(from, to)] }

// SetDistance sets the distance from `from` to `to`. Returns
// ErrIndexOutOfRange if either index is out of [0, Size()).
func (d *Dense) SetDistance(from, to int, v float64) error {
	if !d.inBounds(from, to) {
		return ErrIndexOutOfRange
	}
	d.distance[d.index(from, to)] = v

	return nil
}

// SetDuration sets the duration from `from` to `to`.
func (d *Dense) SetDuration(from, to int, v int64) error {
	if !d.inBounds(from, to) {
		return ErrIndexOutOfRange
	}
	d.duration[d.index(from, to)] = v

	return nil
}

// SetCost sets the cost from `from` to `to`.
func (d *Dense) SetCost(from, to int, v float64) error {
	if !d.inBounds(from, to) {
		return ErrIndexOutOfRange
	}
	d.cost[d.index(from, to)] = v

	return nil
}

func (d *Dense) inBounds(from, to int) bool {
	return from >= 0 && from < d.n && to >= 0 && to < d.n
}

func (d *Dense) index(from, to int) int { return from*d.n + to }

var _ Provider = (*Dense)(nil)
