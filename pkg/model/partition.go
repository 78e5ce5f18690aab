package model

// Status strings written to the summary table and the run archive.
const (
	StatusCompleteAndPure    = "complete_and_pure"
	StatusIncompleteOrImpure = "incomplete_or_impure"
)

// StatusOf classifies one cluster against the cutoffs (strict comparisons).
func StatusOf(q Quality, completenessCutoff, purityCutoff float64) string {
	if q.Completeness > completenessCutoff && q.Purity > purityCutoff {
		return StatusCompleteAndPure
	}
	return StatusIncompleteOrImpure
}

// Partition is the split of the selected assignment into finished bins and
// contigs that need another refinement round. Row indices refer to the
// record slice the assignment was built over.
type Partition struct {
	Finished      map[int]bool // cluster labels passing both cutoffs
	FinishedRows  []int
	RemainingRows []int
}

// PartitionClusters classifies every cluster and splits the contig rows
// accordingly. Noise is not special-cased: label 0 is scored like any other
// label and lands wherever its scores put it.
func PartitionClusters(records []ContigRecord, a Assignment, qualities map[int]Quality, completenessCutoff, purityCutoff float64) Partition {

	finished := make(map[int]bool)
	for label, q := range qualities {
		if StatusOf(q, completenessCutoff, purityCutoff) == StatusCompleteAndPure {
			finished[label] = true
		}
	}

	p := Partition{Finished: finished}
	for i := range records {
		if finished[a.Labels[i]] {
			p.FinishedRows = append(p.FinishedRows, i)
		} else {
			p.RemainingRows = append(p.RemainingRows, i)
		}
	}
	return p
}

// GroupFinished buckets the finished rows by their cluster label, for
// per-bin FASTA output.
func (p Partition) GroupFinished(labels []int) map[int][]int {
	groups := make(map[int][]int, len(p.Finished))
	for _, i := range p.FinishedRows {
		groups[labels[i]] = append(groups[labels[i]], i)
	}
	return groups
}
