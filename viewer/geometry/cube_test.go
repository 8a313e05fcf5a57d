package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeVertices(t *testing.T) {
	require.Len(t, CubeVertices, 24)

	// Every component sits on a face of the half-unit cube.
	for i, v := range CubeVertices {
		assert.Contains(t, []float32{-0.5, 0.5}, v, "component %d", i)
	}

	// All eight corners are distinct.
	seen := make(map[[3]float32]bool)
	for i := 0; i < 8; i++ {
		corner := [3]float32{CubeVertices[i*3], CubeVertices[i*3+1], CubeVertices[i*3+2]}
		assert.False(t, seen[corner], "corner %d duplicated", i)
		seen[corner] = true
	}
}

func TestCubeStripIndices(t *testing.T) {
	require.Len(t, CubeStripIndices, CubeIndexCount)

	visited := make(map[uint16]bool)
	for _, idx := range CubeStripIndices {
		assert.Less(t, idx, uint16(8))
		visited[idx] = true
	}
	// The strip touches every corner.
	assert.Len(t, visited, 8)

	// A 14-index strip yields 12 triangles, but degenerate ones collapse;
	// consecutive strip triples must never repeat a vertex, which would
	// drop a face.
	for i := 0; i+2 < len(CubeStripIndices); i++ {
		a, b, c := CubeStripIndices[i], CubeStripIndices[i+1], CubeStripIndices[i+2]
		assert.NotEqual(t, a, b, "triangle %d", i)
		assert.NotEqual(t, b, c, "triangle %d", i)
		assert.NotEqual(t, a, c, "triangle %d", i)
	}
}

func TestCubeByteViews(t *testing.T) {
	assert.Len(t, CubeVertexBytes(), 24*4)
	assert.Len(t, CubeIndexBytes(), 14*2)
}
