package dataset_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegrid/routegrid/dataset"
	"github.com/routegrid/routegrid/matrixcsv"
)

func TestCities_FixedList(t *testing.T) {
	cities := dataset.Cities()
	assert.Len(t, cities, 51)
	assert.Equal(t, "Delhi", cities[0])

	// Returned slice is a copy; mutating it must not leak back.
	cities[0] = "Mutated"
	assert.Equal(t, "Delhi", dataset.Cities()[0])
}

func TestDistanceMatrix_DeterministicPerSeed(t *testing.T) {
	first := dataset.DistanceMatrix(42)
	again := dataset.DistanceMatrix(42)
	assert.Equal(t, first, again)

	other := dataset.DistanceMatrix(7)
	assert.NotEqual(t, first, other)
}

func TestDistanceMatrix_SymmetricZeroDiagonal(t *testing.T) {
	m := dataset.DistanceMatrix(42)
	n := len(m)
	require.Equal(t, len(dataset.Cities()), n)

	for i := 0; i < n; i++ {
		assert.Zero(t, m[i][i])
		for j := i + 1; j < n; j++ {
			assert.Equal(t, m[i][j], m[j][i])
			assert.Positive(t, m[i][j])
		}
	}
}

func TestWriteCSV_RoundTripsThroughLoader(t *testing.T) {
	cities := dataset.Cities()
	matrix := dataset.DistanceMatrix(42)

	var buf bytes.Buffer
	require.NoError(t, dataset.WriteCSV(&buf, cities, matrix))

	m, err := matrixcsv.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, cities, m.Nodes())

	g, err := m.Graph()
	require.NoError(t, err)
	assert.Equal(t, 51, g.NodeCount())
	// Every off-diagonal cell is positive, so the graph is complete.
	assert.Equal(t, 51*50/2, g.EdgeCount())
}

func TestWriteCSV_ShapeMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := dataset.WriteCSV(&buf, []string{"A", "B"}, [][]int64{{0, 1}})
	assert.Error(t, err)
}
