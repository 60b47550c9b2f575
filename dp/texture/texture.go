// Package texture computes the spatial texture of polarimetric radar fields.
//
// Texture is the root-mean-square difference between a sample and its eight
// grid neighbours (Gourley et al., 2007): small over smooth meteorological
// echo, large over clutter and noise. It is computed on raw or corrected
// fields alike and feeds external echo classifiers; it is not part of the
// PhiDP reconstruction pipeline.
package texture

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-polar/dp/scan"
)

// ErrNeedTwoAxes is returned when the input has fewer than two axes; the
// neighbourhood spans the azimuth and range axes.
var ErrNeedTwoAxes = fmt.Errorf("texture: input must have at least two axes")

// Compute returns the texture field of s, shaped like s. The last axis is
// range, the second-to-last azimuth; any further leading axes are treated as
// independent sweeps.
//
// The azimuth axis is closed (a PPI scan wraps around), so azimuth
// neighbours wrap. Range neighbours beyond the beam ends do not exist and
// are treated as invalid. Invalid neighbours contribute nothing to the sum
// and are excluded from the divisor; a sample with an invalid centre, or
// with no valid neighbour at all, has invalid texture.
func Compute(s *scan.Scan) (*scan.Scan, error) {
	shape := s.Shape()
	if len(shape) < 2 {
		return nil, fmt.Errorf("%w: got shape %v", ErrNeedTwoAxes, shape)
	}
	gates := shape[len(shape)-1]
	azimuths := shape[len(shape)-2]
	sweeps := s.Beams() / azimuths

	out := scan.New(shape...)
	data := s.Data()
	res := out.Data()

	block := azimuths * gates
	for sweep := range sweeps {
		base := sweep * block
		for az := range azimuths {
			up := ((az-1+azimuths)%azimuths)*gates + base
			row := az*gates + base
			down := ((az+1)%azimuths)*gates + base
			for r := range gates {
				res[row+r] = sample(data, up, row, down, r, gates)
			}
		}
	}
	return out, nil
}

// sample computes the texture of one gate from its 3x3 neighbourhood. up,
// row and down are the base offsets of the three azimuth rows involved.
func sample(data []float64, up, row, down, r, gates int) float64 {
	centre := data[row+r]
	if math.IsNaN(centre) {
		return math.NaN()
	}

	var sum float64
	var count int
	for _, rowBase := range [3]int{up, row, down} {
		for dr := -1; dr <= 1; dr++ {
			if rowBase == row && dr == 0 {
				continue // the centre is not its own neighbour
			}
			rr := r + dr
			if rr < 0 || rr >= gates {
				continue // no gate beyond the beam ends
			}
			v := data[rowBase+rr]
			if math.IsNaN(v) {
				continue
			}
			d := centre - v
			sum += d * d
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}
	return math.Sqrt(sum / float64(count))
}
