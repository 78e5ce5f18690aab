package cluster

import "math"

// DBSCAN is a plain Euclidean DBSCAN over 2-D points. Region queries are
// linear scans, which is fine for the point counts a refinement run sees
// (hundreds to low thousands).
type DBSCAN struct{}

const unvisited = -1

func (DBSCAN) Cluster(points []Point, eps float64, minPts int) []int {

	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = unvisited
	}

	current := Noise
	for i := range points {
		if labels[i] != unvisited {
			continue
		}

		neighbors := regionQuery(points, i, eps)
		if len(neighbors) < minPts {
			labels[i] = Noise
			continue
		}

		current++
		labels[i] = current

		// Grow the cluster from the seed set. Noise points reachable from a
		// core point become border points of this cluster.
		for k := 0; k < len(neighbors); k++ {
			j := neighbors[k]
			if labels[j] == Noise {
				labels[j] = current
			}
			if labels[j] != unvisited {
				continue
			}
			labels[j] = current
			more := regionQuery(points, j, eps)
			if len(more) >= minPts {
				neighbors = append(neighbors, more...)
			}
		}
	}

	return labels
}

// regionQuery returns the indices of every point within eps of points[i],
// including i itself (minPts counts the point like the R dbscan does).
func regionQuery(points []Point, i int, eps float64) []int {
	var neighbors []int
	p := points[i]
	for j, q := range points {
		dx := p.X - q.X
		dy := p.Y - q.Y
		if math.Sqrt(dx*dx+dy*dy) <= eps {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}
