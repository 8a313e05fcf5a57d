package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul4Identity(t *testing.T) {
	var id, m, out [16]float32
	Identity(id[:])
	for i := range m {
		m[i] = float32(i) * 0.5
	}

	Mul4(out[:], id[:], m[:])
	assert.Equal(t, m, out)

	Mul4(out[:], m[:], id[:])
	assert.Equal(t, m, out)
}

func TestLookAtEyeMapsToOrigin(t *testing.T) {
	var view [16]float32
	LookAt(view[:], 0, 0, 2, 0, 0, 0, 0, 1, 0)

	// The eye itself lands at the view-space origin.
	x, y, z, w := TransformPoint(view[:], 0, 0, 2)
	assert.InDelta(t, 0.0, x, 1e-5)
	assert.InDelta(t, 0.0, y, 1e-5)
	assert.InDelta(t, 0.0, z, 1e-5)
	assert.InDelta(t, 1.0, w, 1e-5)

	// The origin sits two units down the view -z axis.
	_, _, z, _ = TransformPoint(view[:], 0, 0, 0)
	assert.InDelta(t, -2.0, z, 1e-5)
}

// A camera two units back along +z with a 45 degree field of view must see
// the whole unit cube: every corner projects inside the clip volume, with
// depth in WebGPU's [0, 1] range.
func TestProjectionContainsUnitCube(t *testing.T) {
	var view, proj, projView [16]float32
	LookAt(view[:], 0, 0, 2, 0, 0, 0, 0, 1, 0)
	Perspective(proj[:], math32.Pi/4, 1.0, 0.05, 100.0)
	Mul4(projView[:], proj[:], view[:])

	for i := range 8 {
		cx := float32(i&1) - 0.5
		cy := float32(i>>1&1) - 0.5
		cz := float32(i>>2&1) - 0.5

		x, y, z, w := TransformPoint(projView[:], cx, cy, cz)
		require.Greater(t, w, float32(0), "corner %d behind the eye", i)

		ndcX, ndcY, ndcZ := x/w, y/w, z/w
		assert.GreaterOrEqual(t, ndcX, float32(-1), "corner %d x", i)
		assert.LessOrEqual(t, ndcX, float32(1), "corner %d x", i)
		assert.GreaterOrEqual(t, ndcY, float32(-1), "corner %d y", i)
		assert.LessOrEqual(t, ndcY, float32(1), "corner %d y", i)
		assert.GreaterOrEqual(t, ndcZ, float32(0), "corner %d z", i)
		assert.LessOrEqual(t, ndcZ, float32(1), "corner %d z", i)
	}
}

func TestSliceToBytes(t *testing.T) {
	floats := []float32{1.0, 2.0}
	b := SliceToBytes(floats)
	require.Len(t, b, 8)

	indices := []uint16{3, 2, 7}
	b = SliceToBytes(indices)
	require.Len(t, b, 6)
	assert.Equal(t, []byte{3, 0, 2, 0, 7, 0}, b)
}

func TestAlignUp(t *testing.T) {
	assert.Equal(t, uint32(256), AlignUp(1, 256))
	assert.Equal(t, uint32(256), AlignUp(256, 256))
	assert.Equal(t, uint32(512), AlignUp(257, 256))
	assert.Equal(t, uint32(0), AlignUp(0, 256))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, Coalesce(0, 0, 5, 7))
	assert.Equal(t, 0, Coalesce(0, 0))
	assert.Equal(t, "a", Coalesce("", "a"))
}
