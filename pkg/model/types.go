package model

// ContigRecord is one typed row of the embedding table. Populated once at
// load time, read-only afterwards.
type ContigRecord struct {
	Contig string
	X      float64 // vizbin_x
	Y      float64 // vizbin_y
	Length int
	GC     float64
	Cov    float64
}

// MarkerProfile maps contig -> marker gene -> occurrence count. A contig
// missing from the profile simply has no markers.
type MarkerProfile map[string]map[string]int

// Assignment is the outcome of one sweep round: a cluster label for every
// contig record, in record order, plus the eps that produced it.
type Assignment struct {
	Eps    float64
	Labels []int
}

// Quality is the marker-gene score of one cluster. Both values are
// percentages of the expected single-copy count and may exceed 100 when a
// cluster carries more markers than one genome should.
type Quality struct {
	Completeness float64
	Purity       float64
}

// Summary holds the per-cluster statistics reported for the selected
// assignment.
type Summary struct {
	Size          int // sum of contig lengths
	LongestContig int
	N50           int
	NumberContigs int
	GC            float64 // length-weighted average
	Cov           float64 // length-weighted average
}
