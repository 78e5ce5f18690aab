// Package cluster holds the density-clustering primitive behind the eps
// sweep. The algorithm is kept behind an interface so the sweep can be
// driven by a test double.
package cluster

// Point is one 2-D embedding coordinate.
type Point struct {
	X float64
	Y float64
}

// Noise is the label given to points that end up in no density-connected
// group. Real clusters are numbered from 1.
const Noise = 0

// Clusterer assigns one cluster label per point. The returned slice is
// parallel to points.
type Clusterer interface {
	Cluster(points []Point, eps float64, minPts int) []int
}

// ClustererFunc adapts a plain function to the Clusterer interface.
type ClustererFunc func(points []Point, eps float64, minPts int) []int

func (f ClustererFunc) Cluster(points []Point, eps float64, minPts int) []int {
	return f(points, eps, minPts)
}
