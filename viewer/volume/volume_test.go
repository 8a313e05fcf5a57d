package volume

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/volcast/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDescriptor(w, h, d uint32) Descriptor {
	return Descriptor{
		Name:   "test",
		Width:  w,
		Height: h,
		Depth:  d,
		Voxels: make([]byte, int(w)*int(h)*int(d)),
	}
}

func TestDescriptorValidate(t *testing.T) {
	d := testDescriptor(4, 4, 4)
	assert.NoError(t, d.Validate())

	short := d
	short.Voxels = short.Voxels[:len(short.Voxels)-1]
	assert.Error(t, short.Validate())

	long := d
	long.Voxels = append(long.Voxels, 0)
	assert.Error(t, long.Validate())

	flat := d
	flat.Depth = 0
	flat.Voxels = nil
	assert.Error(t, flat.Validate())
}

func TestStagingPadsRows(t *testing.T) {
	d := testDescriptor(4, 3, 2)
	for i := range d.Voxels {
		d.Voxels[i] = byte(i + 1)
	}

	staging, err := d.Staging()
	require.NoError(t, err)

	assert.Equal(t, uint32(256), staging.BytesPerRow)
	assert.Len(t, staging.Voxels, 256*3*2)
	assert.Equal(t, uint32(4), staging.Width)
	assert.Equal(t, uint32(3), staging.Height)
	assert.Equal(t, uint32(2), staging.Depth)

	// Each padded row starts with the original row's voxels.
	for r := range 6 {
		row := staging.Voxels[r*256 : r*256+4]
		assert.Equal(t, d.Voxels[r*4:(r+1)*4], row)
		for _, pad := range staging.Voxels[r*256+4 : (r+1)*256] {
			assert.Zero(t, pad)
		}
	}
}

func TestStagingAlignedWidthNotCopied(t *testing.T) {
	d := testDescriptor(256, 2, 2)
	staging, err := d.Staging()
	require.NoError(t, err)

	assert.Equal(t, uint32(256), staging.BytesPerRow)
	// An already-aligned row size uploads the original payload directly.
	assert.Same(t, &d.Voxels[0], &staging.Voxels[0])
}

func TestStagingRejectsMismatchedPayload(t *testing.T) {
	d := testDescriptor(4, 4, 4)
	d.Voxels = d.Voxels[:10]

	_, err := d.Staging()
	require.Error(t, err)
	var resErr *common.ResourceError
	assert.ErrorAs(t, err, &resErr)
}

func TestGradientsPaddedToWords(t *testing.T) {
	s := NewStore(WithResolution(8), WithSynthesisWorkers(1))
	// Odd-sized volumes still produce a whole number of 32-bit words.
	require.NoError(t, s.Register(Descriptor{
		Name: "odd", Width: 3, Height: 3, Depth: 3,
		Voxels: make([]byte, 27),
	}))

	g, err := s.Gradients("odd")
	require.NoError(t, err)
	assert.Equal(t, 28, len(g))
	assert.Zero(t, len(g)%4)
}

func TestGradientResponseAtBoundary(t *testing.T) {
	// A half-filled volume has its only gradient response at the material
	// boundary plane.
	d := Descriptor{Name: "step", Width: 8, Height: 8, Depth: 8, Voxels: make([]byte, 512)}
	for z := range 8 {
		for y := range 8 {
			for x := range 8 {
				if x >= 4 {
					d.Voxels[x+y*8+z*64] = 255
				}
			}
		}
	}

	dst := make([]byte, 64)
	gradientSlice(&d, 4, dst)

	// Interior of each half is flat.
	assert.Zero(t, dst[0+0*8])
	assert.Zero(t, dst[7+0*8])
	// Either side of the step sees the jump.
	assert.NotZero(t, dst[3+0*8])
	assert.NotZero(t, dst[4+0*8])
}

func TestStoreBuiltins(t *testing.T) {
	s := NewStore(WithResolution(8), WithSynthesisWorkers(2))

	assert.Equal(t, []string{"sphere", "blob", "noise"}, s.Names())

	for _, name := range s.Names() {
		d, err := s.Get(name)
		require.NoError(t, err)
		assert.NoError(t, d.Validate())
		assert.Equal(t, uint32(8), d.Width)
	}
}

func TestStoreSphereShell(t *testing.T) {
	s := NewStore(WithResolution(32), WithSynthesisWorkers(2))
	d, err := s.Get("sphere")
	require.NoError(t, err)

	// The shell peaks near radius 0.35 from the center and is hollow both
	// at the center and in the far corner.
	center := d.voxel(16, 16, 16)
	shell := d.voxel(16+11, 16, 16)
	corner := d.voxel(0, 0, 0)
	assert.Greater(t, shell, center)
	assert.Greater(t, shell, corner)
	assert.Greater(t, int(shell), 128)
}

func TestStoreUnknownName(t *testing.T) {
	s := NewStore(WithResolution(8), WithSynthesisWorkers(1))

	_, err := s.Get("missing")
	var assetErr *common.AssetError
	require.ErrorAs(t, err, &assetErr)
	assert.Equal(t, "volume", assetErr.Kind)
	assert.Equal(t, "missing", assetErr.Name)

	_, err = s.Gradients("missing")
	assert.ErrorAs(t, err, &assetErr)
}

func TestStoreRegisterRejectsInvalid(t *testing.T) {
	s := NewStore(WithResolution(8), WithSynthesisWorkers(1))

	err := s.Register(Descriptor{Name: "bad", Width: 2, Height: 2, Depth: 2, Voxels: nil})
	var resErr *common.ResourceError
	assert.ErrorAs(t, err, &resErr)

	// Re-registering an existing name replaces it without duplicating the
	// name list.
	require.NoError(t, s.Register(testDescriptor(4, 4, 4)))
	require.NoError(t, s.Register(testDescriptor(4, 4, 4)))
	assert.Equal(t, []string{"sphere", "blob", "noise", "test"}, s.Names())
}

func TestLoadRaw(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "head.raw")
	require.NoError(t, os.WriteFile(path, make([]byte, 4*4*2), 0o644))

	d, err := LoadRaw(path, 4, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, "head", d.Name)
	assert.NoError(t, d.Validate())

	_, err = LoadRaw(path, 4, 4, 4)
	var assetErr *common.AssetError
	assert.ErrorAs(t, err, &assetErr)

	_, err = LoadRaw(filepath.Join(dir, "missing.raw"), 4, 4, 2)
	assert.ErrorAs(t, err, &assetErr)
}
