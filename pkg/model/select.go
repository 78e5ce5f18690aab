package model

import "fmt"

// ScoredAssignment is one sweep round together with its marker-gene scores.
type ScoredAssignment struct {
	Assignment
	Qualities       map[int]Quality
	CompleteAndPure int
}

// ScoreSweep scores every assignment from a sweep. The output keeps the
// input order (ascending eps).
func ScoreSweep(records []ContigRecord, assignments []Assignment, profile MarkerProfile, expected int, completenessCutoff, purityCutoff float64) []ScoredAssignment {

	scored := make([]ScoredAssignment, 0, len(assignments))
	for _, a := range assignments {
		qualities := ScoreClusters(records, a, profile, expected)
		scored = append(scored, ScoredAssignment{
			Assignment:      a,
			Qualities:       qualities,
			CompleteAndPure: countCompleteAndPure(qualities, completenessCutoff, purityCutoff),
		})
	}
	return scored
}

// SelectBest picks the assignment with the most complete-and-pure clusters.
// Candidates are examined in slice order and only a strictly greater count
// displaces the leader, so with ascending eps values a tie goes to the
// smallest eps.
func SelectBest(scored []ScoredAssignment) (ScoredAssignment, error) {

	if len(scored) == 0 {
		return ScoredAssignment{}, fmt.Errorf("no assignments to select from")
	}

	best := scored[0]
	for _, s := range scored[1:] {
		if s.CompleteAndPure > best.CompleteAndPure {
			best = s
		}
	}
	return best, nil
}

// countCompleteAndPure counts clusters strictly above both cutoffs.
func countCompleteAndPure(qualities map[int]Quality, completenessCutoff, purityCutoff float64) int {
	n := 0
	for _, q := range qualities {
		if q.Completeness > completenessCutoff && q.Purity > purityCutoff {
			n++
		}
	}
	return n
}
