package model

import "sort"

// Summarize computes per-cluster size and composition statistics for the
// selected assignment. Every label present in the assignment gets an entry,
// noise included.
func Summarize(records []ContigRecord, a Assignment) map[int]Summary {

	byCluster := make(map[int][]ContigRecord)
	for i, rec := range records {
		byCluster[a.Labels[i]] = append(byCluster[a.Labels[i]], rec)
	}

	summaries := make(map[int]Summary, len(byCluster))
	for label, recs := range byCluster {

		size := 0
		lengths := make([]int, len(recs))
		for i, r := range recs {
			lengths[i] = r.Length
			size += r.Length
		}
		sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

		// N50: walking lengths longest-first, the first contig at which the
		// running total reaches half the cluster size.
		target := float64(size) / 2
		running := 0
		n50 := 0
		for _, l := range lengths {
			running += l
			if float64(running) >= target {
				n50 = l
				break
			}
		}

		var gc, cov float64
		for _, r := range recs {
			weight := float64(r.Length) / float64(size)
			gc += r.GC * weight
			cov += r.Cov * weight
		}

		summaries[label] = Summary{
			Size:          size,
			LongestContig: lengths[0],
			N50:           n50,
			NumberContigs: len(recs),
			GC:            gc,
			Cov:           cov,
		}
	}

	return summaries
}
