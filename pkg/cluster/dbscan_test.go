package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two tight triples far apart plus one stray point.
func testPoints() []Point {
	return []Point{
		{0, 0}, {0.1, 0}, {0, 0.1},
		{10, 10}, {10.1, 10}, {10, 10.1},
		{5, 5},
	}
}

func TestDBSCANSeparatesGroups(t *testing.T) {

	labels := DBSCAN{}.Cluster(testPoints(), 0.3, 3)
	require.Len(t, labels, 7)

	// Both triples clustered, under different labels.
	assert.Equal(t, labels[0], labels[1])
	assert.Equal(t, labels[0], labels[2])
	assert.Equal(t, labels[3], labels[4])
	assert.Equal(t, labels[3], labels[5])
	assert.NotEqual(t, labels[0], labels[3])
	assert.NotEqual(t, Noise, labels[0])
	assert.NotEqual(t, Noise, labels[3])

	// The stray point is noise.
	assert.Equal(t, Noise, labels[6])
}

func TestDBSCANLargeEpsCollapses(t *testing.T) {

	labels := DBSCAN{}.Cluster(testPoints(), 100, 3)
	for _, label := range labels {
		assert.Equal(t, labels[0], label)
	}
	assert.NotEqual(t, Noise, labels[0])
}

func TestDBSCANAllNoise(t *testing.T) {

	// minPts larger than any neighborhood.
	labels := DBSCAN{}.Cluster(testPoints(), 0.3, 5)
	for _, label := range labels {
		assert.Equal(t, Noise, label)
	}
}

func TestClustererFunc(t *testing.T) {

	fixed := ClustererFunc(func(points []Point, eps float64, minPts int) []int {
		return make([]int, len(points))
	})
	labels := fixed.Cluster(testPoints(), 0.5, 3)
	require.Len(t, labels, 7)
}
