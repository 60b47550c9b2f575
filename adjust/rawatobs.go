package adjust

import "fmt"

// RawAtObs samples the raw field in the neighbourhood of the observation
// points. The neighbour lookup runs once at construction; repeated calls for
// new time steps only aggregate.
type RawAtObs struct {
	neighbours [][]neighbour
	stat       Stat
}

// NewRawAtObs resolves the nnear nearest raw samples per observation point.
// nnear is clamped to the number of raw points.
func NewRawAtObs(obsCoords, rawCoords [][]float64, nnear int, stat Stat) (*RawAtObs, error) {
	if nnear < 1 {
		return nil, fmt.Errorf("adjust: neighbour count must be >= 1: got %d", nnear)
	}
	if !stat.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStat, int(stat))
	}
	tree, dims, err := planTree(rawCoords)
	if err != nil {
		return nil, err
	}

	nnear = min(nnear, len(rawCoords))
	r := &RawAtObs{
		neighbours: make([][]neighbour, len(obsCoords)),
		stat:       stat,
	}
	for i, q := range obsCoords {
		if len(q) != dims {
			return nil, fmt.Errorf("adjust: observation coordinate %d has %d dimensions, want %d", i, len(q), dims)
		}
		r.neighbours[i] = nearest(tree, q, nnear)
	}
	return r, nil
}

// Values returns the aggregated raw value at each observation point. obs is
// only consulted by [StatBest]; for the other aggregations it may be nil.
func (r *RawAtObs) Values(raw, obs []float64) ([]float64, error) {
	if obs != nil && len(obs) != len(r.neighbours) {
		return nil, fmt.Errorf("adjust: got %d observations for %d observation points", len(obs), len(r.neighbours))
	}

	out := make([]float64, len(r.neighbours))
	values := make([]float64, 0, 16)
	for i, hood := range r.neighbours {
		values = values[:0]
		for _, nb := range hood {
			values = append(values, raw[nb.idx])
		}
		at := 0.0
		if obs != nil {
			at = obs[i]
		}
		out[i] = r.stat.aggregate(at, values)
	}
	return out, nil
}
