// Package geometry provides the proxy meshes rasterized to drive
// fragment-stage ray marching.
package geometry

import "github.com/Carmen-Shannon/volcast/common"

// CubeVertices are the eight corners of a unit cube centered at the
// origin, corner i at ((i&1, i>>1&1, i>>2&1) - 0.5), three float32
// components per vertex.
var CubeVertices = [24]float32{
	-0.5, -0.5, -0.5,
	0.5, -0.5, -0.5,
	-0.5, 0.5, -0.5,
	0.5, 0.5, -0.5,
	-0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
	-0.5, 0.5, 0.5,
	0.5, 0.5, 0.5,
}

// CubeStripIndices covers all six cube faces with a single 14-index
// triangle strip, avoiding an index-buffer restart.
var CubeStripIndices = [14]uint16{3, 2, 7, 6, 4, 2, 0, 3, 1, 7, 5, 4, 1, 0}

// CubeVertexBytes returns the cube vertex data as upload-ready bytes.
//
// Returns:
//   - []byte: the little-endian float32 vertex payload
func CubeVertexBytes() []byte {
	return common.SliceToBytes(CubeVertices[:])
}

// CubeIndexBytes returns the triangle-strip index data as upload-ready
// bytes.
//
// Returns:
//   - []byte: the little-endian uint16 index payload
func CubeIndexBytes() []byte {
	return common.SliceToBytes(CubeStripIndices[:])
}

// CubeIndexCount is the number of indices in the cube triangle strip.
const CubeIndexCount = 14
