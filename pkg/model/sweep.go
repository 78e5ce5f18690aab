package model

import (
	"fmt"

	"github.com/yumyai/rebin/pkg/cluster"
)

// Sweep reruns the clusterer at increasing eps values until everything
// collapses into a single group (noise counts as a group of its own), and
// returns every assignment tried, in eps order. Small eps values
// over-fragment a diffuse embedding, so the caller gets the whole
// granularity range to score.
//
// maxRounds bounds the loop against a clusterer that never collapses; hitting
// the bound is an error, not a truncated result.
func Sweep(c cluster.Clusterer, points []cluster.Point, start, step float64, minPts, maxRounds int) ([]Assignment, error) {

	if len(points) == 0 {
		return nil, fmt.Errorf("sweep: no points to cluster")
	}

	var assignments []Assignment
	for round := 0; ; round++ {
		if round >= maxRounds {
			return nil, fmt.Errorf("sweep: clustering never collapsed to one group after %d rounds", maxRounds)
		}

		eps := start + step*float64(round)
		labels := c.Cluster(points, eps, minPts)
		assignments = append(assignments, Assignment{Eps: eps, Labels: labels})

		if distinctLabels(labels) <= 1 {
			return assignments, nil
		}
	}
}

func distinctLabels(labels []int) int {
	distinct := make(map[int]struct{})
	for _, label := range labels {
		distinct[label] = struct{}{}
	}
	return len(distinct)
}
