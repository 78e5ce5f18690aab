package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedMarkers(t *testing.T) {

	n, err := ExpectedMarkers("bacteria")
	require.NoError(t, err)
	assert.Equal(t, 139, n)

	n, err = ExpectedMarkers("archaea")
	require.NoError(t, err)
	assert.Equal(t, 162, n)

	_, err = ExpectedMarkers("eukaryote")
	assert.Error(t, err)
}

// The worked example: one cluster holding C1 (PF01 twice) and C2 (PF02).
// Two distinct markers, one of them unique.
func TestScoreClustersWorkedExample(t *testing.T) {

	records := []ContigRecord{
		{Contig: "C1", Length: 1000},
		{Contig: "C2", Length: 1000},
	}
	profile := MarkerProfile{
		"C1": {"PF01": 2},
		"C2": {"PF02": 1},
	}
	a := Assignment{Eps: 0.3, Labels: []int{1, 1}}

	qualities := ScoreClusters(records, a, profile, 139)
	require.Contains(t, qualities, 1)

	q := qualities[1]
	assert.InDelta(t, 2.0/139*100, q.Completeness, 1e-9)
	assert.InDelta(t, 1.0/139*100, q.Purity, 1e-9)
}

func TestScoreClustersNoMarkers(t *testing.T) {

	records := []ContigRecord{
		{Contig: "C1", Length: 500},
		{Contig: "C2", Length: 500},
	}
	a := Assignment{Labels: []int{0, 1}}

	// Empty profile: every cluster still scored, at zero.
	qualities := ScoreClusters(records, a, MarkerProfile{}, 139)
	require.Len(t, qualities, 2)
	assert.Equal(t, Quality{}, qualities[0])
	assert.Equal(t, Quality{}, qualities[1])
}

// A marker split across two contigs of the same cluster sums to 2 and stops
// being unique; purity drops while completeness holds.
func TestScoreClustersDuplicationAcrossContigs(t *testing.T) {

	records := []ContigRecord{
		{Contig: "C1", Length: 100},
		{Contig: "C2", Length: 100},
	}
	profile := MarkerProfile{
		"C1": {"PF01": 1},
		"C2": {"PF01": 1},
	}
	a := Assignment{Labels: []int{1, 1}}

	q := ScoreClusters(records, a, profile, 139)[1]
	assert.InDelta(t, 1.0/139*100, q.Completeness, 1e-9)
	assert.InDelta(t, 0, q.Purity, 1e-9)
}

func TestScoreClustersCanExceedHundred(t *testing.T) {

	profile := make(MarkerProfile)
	counts := make(map[string]int)
	for i := 0; i < 200; i++ {
		counts[markerName(i)] = 1
	}
	profile["C1"] = counts

	records := []ContigRecord{{Contig: "C1", Length: 100}}
	q := ScoreClusters(records, Assignment{Labels: []int{1}}, profile, 139)[1]

	assert.Greater(t, q.Completeness, 100.0)
	assert.Greater(t, q.Purity, 100.0)
}

func TestScoreClustersUniqueNeverExceedsTotal(t *testing.T) {

	records := []ContigRecord{
		{Contig: "C1"}, {Contig: "C2"}, {Contig: "C3"},
	}
	profile := MarkerProfile{
		"C1": {"PF01": 2, "PF02": 1},
		"C2": {"PF02": 1, "PF03": 1},
		"C3": {"PF04": 1},
	}
	a := Assignment{Labels: []int{1, 1, 2}}

	for _, q := range ScoreClusters(records, a, profile, 139) {
		assert.GreaterOrEqual(t, q.Completeness, q.Purity)
		assert.GreaterOrEqual(t, q.Completeness, 0.0)
		assert.GreaterOrEqual(t, q.Purity, 0.0)
	}
}

// Scorer is a pure function of its inputs.
func TestScoreClustersIdempotent(t *testing.T) {

	records := []ContigRecord{{Contig: "C1"}, {Contig: "C2"}}
	profile := MarkerProfile{"C1": {"PF01": 1}, "C2": {"PF02": 1}}
	a := Assignment{Labels: []int{1, 0}}

	first := ScoreClusters(records, a, profile, 139)
	second := ScoreClusters(records, a, profile, 139)
	assert.Equal(t, first, second)
}

func markerName(i int) string {
	return "PF" + string(rune('A'+i/26)) + string(rune('A'+i%26))
}
