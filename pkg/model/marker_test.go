package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMarkerProfile(t *testing.T) {

	rows := []MarkerRow{
		{Contig: "C1", Markers: []string{"PF01", "PF01", "PF02"}},
		{Contig: "C2", Markers: []string{"PF03"}},
		{Contig: "C3"}, // NA row
	}

	profile, err := BuildMarkerProfile(rows)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"PF01": 2, "PF02": 1}, profile["C1"])
	assert.Equal(t, map[string]int{"PF03": 1}, profile["C2"])

	// NA contributes nothing, same as an unknown contig.
	_, ok := profile["C3"]
	assert.False(t, ok)
}

func TestBuildMarkerProfileDuplicateContig(t *testing.T) {

	rows := []MarkerRow{
		{Contig: "C1", Markers: []string{"PF01"}},
		{Contig: "C1", Markers: []string{"PF02"}},
	}

	_, err := BuildMarkerProfile(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "C1")
}

func TestBuildMarkerProfileDuplicateNARow(t *testing.T) {

	rows := []MarkerRow{
		{Contig: "C1"},
		{Contig: "C1"},
	}

	_, err := BuildMarkerProfile(rows)
	require.Error(t, err)
}
