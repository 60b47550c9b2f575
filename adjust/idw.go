package adjust

import (
	"fmt"
	"math"
)

// IDW interpolates point values onto a target grid by inverse distance
// weighting over the nnearest source points. Neighbour lookup runs once at
// construction; [IDW.Interpolate] is cheap per time step.
type IDW struct {
	neighbours [][]neighbour
	power      float64
	srcLen     int
}

// NewIDW prepares interpolation from the src coordinates onto the trg
// coordinates. nnearest is clamped to the number of source points; power is
// the inverse-distance exponent (2 is the conventional choice).
func NewIDW(src, trg [][]float64, nnearest int, power float64) (*IDW, error) {
	if nnearest < 1 {
		return nil, fmt.Errorf("adjust: idw neighbour count must be >= 1: got %d", nnearest)
	}
	if power <= 0 {
		return nil, fmt.Errorf("adjust: idw power must be > 0: got %g", power)
	}
	tree, dims, err := planTree(src)
	if err != nil {
		return nil, err
	}

	nnearest = min(nnearest, len(src))
	ip := &IDW{
		neighbours: make([][]neighbour, len(trg)),
		power:      power,
		srcLen:     len(src),
	}
	for i, q := range trg {
		if len(q) != dims {
			return nil, fmt.Errorf("adjust: target coordinate %d has %d dimensions, want %d", i, len(q), dims)
		}
		ip.neighbours[i] = nearest(tree, q, nnearest)
	}
	return ip, nil
}

// Interpolate maps the source values onto the target grid. A target that
// coincides with a source point takes that source value directly.
func (ip *IDW) Interpolate(values []float64) ([]float64, error) {
	if len(values) != ip.srcLen {
		return nil, fmt.Errorf("adjust: got %d values for %d source points", len(values), ip.srcLen)
	}
	out := make([]float64, len(ip.neighbours))
	for i, hood := range ip.neighbours {
		out[i] = ip.at(hood, values)
	}
	return out, nil
}

func (ip *IDW) at(hood []neighbour, values []float64) float64 {
	var weightSum, valueSum float64
	for _, nb := range hood {
		if nb.dist == 0 {
			return values[nb.idx]
		}
		// nb.dist is squared Euclidean distance.
		w := 1 / math.Pow(math.Sqrt(nb.dist), ip.power)
		weightSum += w
		valueSum += w * values[nb.idx]
	}
	if weightSum == 0 {
		return math.NaN()
	}
	return valueSum / weightSum
}
