package model

import "fmt"

// Expected single-copy marker gene counts per microbial domain.
const (
	expectedMarkersBacteria = 139
	expectedMarkersArchaea  = 162
)

// ExpectedMarkers returns the single-copy marker count for a domain.
// Unknown domains are rejected rather than silently treated as bacteria.
func ExpectedMarkers(domain string) (int, error) {
	switch domain {
	case "bacteria":
		return expectedMarkersBacteria, nil
	case "archaea":
		return expectedMarkersArchaea, nil
	}
	return 0, fmt.Errorf("unknown domain %q (want bacteria or archaea)", domain)
}

// ScoreClusters computes completeness and purity for every cluster label in
// the assignment, noise included. Completeness counts distinct markers seen
// across the cluster, purity counts markers seen exactly once, both as a
// percentage of the expected single-copy count.
func ScoreClusters(records []ContigRecord, a Assignment, profile MarkerProfile, expected int) map[int]Quality {

	markerTotals := make(map[int]map[string]int)

	for i, rec := range records {
		label := a.Labels[i]
		totals, ok := markerTotals[label]
		if !ok {
			totals = make(map[string]int)
			markerTotals[label] = totals
		}
		for marker, n := range profile[rec.Contig] {
			totals[marker] += n
		}
	}

	qualities := make(map[int]Quality, len(markerTotals))
	for label, totals := range markerTotals {
		unique := 0
		for _, n := range totals {
			if n == 1 {
				unique++
			}
		}
		qualities[label] = Quality{
			Completeness: float64(len(totals)) / float64(expected) * 100,
			Purity:       float64(unique) / float64(expected) * 100,
		}
	}

	return qualities
}
