package model

import "fmt"

// MarkerRow is one parsed row of the marker table: a contig and the marker
// genes called on it. An empty Markers slice is the NA sentinel.
type MarkerRow struct {
	Contig  string
	Markers []string
}

// BuildMarkerProfile folds marker rows into per-contig marker counts. A
// marker listed twice for the same contig counts twice, which is what later
// drags purity down. Each contig may appear on at most one row.
func BuildMarkerProfile(rows []MarkerRow) (MarkerProfile, error) {

	profile := make(MarkerProfile)
	seen := make(map[string]bool, len(rows))

	for _, row := range rows {
		if seen[row.Contig] {
			return nil, fmt.Errorf("contig %s appears on more than one marker table row", row.Contig)
		}
		seen[row.Contig] = true

		if len(row.Markers) == 0 {
			continue
		}

		counts := make(map[string]int, len(row.Markers))
		for _, marker := range row.Markers {
			counts[marker]++
		}
		profile[row.Contig] = counts
	}

	return profile, nil
}
