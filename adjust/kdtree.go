package adjust

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// gridPoint is a coordinate pair with its index into the original point set,
// so nearest-neighbour results can be mapped back to data values.
type gridPoint struct {
	coords []float64
	idx    int
}

func (p gridPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(gridPoint)
	return p.coords[d] - q.coords[d]
}

func (p gridPoint) Dims() int { return len(p.coords) }

func (p gridPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(gridPoint)
	var sum float64
	for i, v := range p.coords {
		d := v - q.coords[i]
		sum += d * d
	}
	return sum
}

type gridPoints []gridPoint

func (p gridPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p gridPoints) Len() int                      { return len(p) }
func (p gridPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}
func (p gridPoints) Pivot(d kdtree.Dim) int {
	return plane{Dim: d, gridPoints: p}.Pivot()
}

// plane sorts gridPoints along a single dimension for tree construction.
type plane struct {
	kdtree.Dim
	gridPoints
}

func (p plane) Less(i, j int) bool {
	return p.gridPoints[i].coords[p.Dim] < p.gridPoints[j].coords[p.Dim]
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.gridPoints = p.gridPoints[start:end]
	return p
}
func (p plane) Swap(i, j int) {
	p.gridPoints[i], p.gridPoints[j] = p.gridPoints[j], p.gridPoints[i]
}

// neighbour is one nearest-neighbour hit: the index of the source point and
// the squared Euclidean distance to the query.
type neighbour struct {
	idx  int
	dist float64
}

// planTree builds a kd-tree over coords and validates dimensionality.
func planTree(coords [][]float64) (*kdtree.Tree, int, error) {
	if len(coords) == 0 {
		return nil, 0, fmt.Errorf("adjust: coordinate set must not be empty")
	}
	dims := len(coords[0])
	if dims == 0 {
		return nil, 0, fmt.Errorf("adjust: coordinates must have at least one dimension")
	}
	pts := make(gridPoints, len(coords))
	for i, c := range coords {
		if len(c) != dims {
			return nil, 0, fmt.Errorf("adjust: coordinate %d has %d dimensions, want %d", i, len(c), dims)
		}
		pts[i] = gridPoint{coords: c, idx: i}
	}
	return kdtree.New(pts, false), dims, nil
}

// nearest returns the up-to-k nearest source points for the query q.
func nearest(tree *kdtree.Tree, q []float64, k int) []neighbour {
	keep := kdtree.NewNKeeper(k)
	tree.NearestSet(keep, gridPoint{coords: q, idx: -1})

	hits := make([]neighbour, 0, k)
	for _, c := range keep.Heap {
		p, ok := c.Comparable.(gridPoint)
		if !ok {
			continue // unfilled placeholder when the tree holds fewer than k points
		}
		hits = append(hits, neighbour{idx: p.idx, dist: c.Dist})
	}
	return hits
}
