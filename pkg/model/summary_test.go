package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Lengths [500,300,150,50]: the first contig alone reaches half of 1000, so
// N50 is 500.
func TestSummarizeN50FirstContig(t *testing.T) {

	records := []ContigRecord{
		{Contig: "C1", Length: 500, GC: 0.5, Cov: 10},
		{Contig: "C2", Length: 300, GC: 0.4, Cov: 20},
		{Contig: "C3", Length: 150, GC: 0.6, Cov: 30},
		{Contig: "C4", Length: 50, GC: 0.3, Cov: 40},
	}
	a := Assignment{Labels: []int{1, 1, 1, 1}}

	summaries := Summarize(records, a)
	require.Contains(t, summaries, 1)
	s := summaries[1]

	assert.Equal(t, 1000, s.Size)
	assert.Equal(t, 500, s.LongestContig)
	assert.Equal(t, 500, s.N50)
	assert.Equal(t, 4, s.NumberContigs)
}

// Equal lengths: half the total is reached at the second contig.
func TestSummarizeN50MidList(t *testing.T) {

	records := []ContigRecord{
		{Contig: "C1", Length: 100},
		{Contig: "C2", Length: 100},
		{Contig: "C3", Length: 100},
		{Contig: "C4", Length: 100},
	}
	a := Assignment{Labels: []int{1, 1, 1, 1}}

	s := Summarize(records, a)[1]
	assert.Equal(t, 100, s.N50)
	assert.Equal(t, 400, s.Size)
}

func TestSummarizeWeightedAverages(t *testing.T) {

	records := []ContigRecord{
		{Contig: "C1", Length: 750, GC: 0.4, Cov: 10},
		{Contig: "C2", Length: 250, GC: 0.8, Cov: 50},
	}
	a := Assignment{Labels: []int{1, 1}}

	s := Summarize(records, a)[1]
	assert.InDelta(t, 0.4*0.75+0.8*0.25, s.GC, 1e-9)
	assert.InDelta(t, 10*0.75+50*0.25, s.Cov, 1e-9)

	// Weights sum to one: a uniform input stays put.
	uniform := []ContigRecord{
		{Contig: "C1", Length: 123, GC: 0.42, Cov: 7},
		{Contig: "C2", Length: 77, GC: 0.42, Cov: 7},
		{Contig: "C3", Length: 999, GC: 0.42, Cov: 7},
	}
	u := Summarize(uniform, Assignment{Labels: []int{1, 1, 1}})[1]
	assert.InDelta(t, 0.42, u.GC, 1e-9)
	assert.InDelta(t, 7, u.Cov, 1e-9)
}

func TestSummarizePerCluster(t *testing.T) {

	records := []ContigRecord{
		{Contig: "C1", Length: 500},
		{Contig: "C2", Length: 300},
		{Contig: "C3", Length: 200},
	}
	a := Assignment{Labels: []int{1, 2, 2}}

	summaries := Summarize(records, a)
	require.Len(t, summaries, 2)
	assert.Equal(t, 500, summaries[1].Size)
	assert.Equal(t, 1, summaries[1].NumberContigs)
	assert.Equal(t, 500, summaries[2].Size)
	assert.Equal(t, 300, summaries[2].LongestContig)
	assert.Equal(t, 300, summaries[2].N50)
}

func TestSummarizeIdempotent(t *testing.T) {

	records := []ContigRecord{
		{Contig: "C1", Length: 500, GC: 0.5, Cov: 3},
		{Contig: "C2", Length: 300, GC: 0.6, Cov: 4},
	}
	a := Assignment{Labels: []int{0, 1}}

	assert.Equal(t, Summarize(records, a), Summarize(records, a))
}
