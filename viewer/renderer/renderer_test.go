package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeBindGroupLayoutsOrsVisibility(t *testing.T) {
	vertex := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 0, Visibility: wgpu.ShaderStageVertex, Buffer: wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform}},
		}},
	}
	fragment := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 0, Visibility: wgpu.ShaderStageFragment, Buffer: wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: wgpu.ShaderStageFragment, Texture: wgpu.TextureBindingLayout{ViewDimension: wgpu.TextureViewDimension3D}},
		}},
	}

	merged := mergeBindGroupLayouts(vertex, fragment)
	require.Len(t, merged, 1)
	entries := merged[0].Entries
	require.Len(t, entries, 2)

	// Entries come back sorted by binding index.
	assert.Equal(t, uint32(0), entries[0].Binding)
	assert.Equal(t, uint32(1), entries[1].Binding)

	// The shared uniform binding is visible to both stages.
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, entries[0].Visibility)
	assert.Equal(t, wgpu.ShaderStageFragment, entries[1].Visibility)
}

// Builder options apply directly to the renderer before the backend is
// constructed, so a caller-assembled option slice configures everything.
func TestBuilderOptions(t *testing.T) {
	r := &renderer{}

	WithForceSoftwareRenderer(true)(r)
	assert.True(t, r.forceFallbackAdapter)

	WithForceSoftwareRenderer(false)(r)
	assert.False(t, r.forceFallbackAdapter)

	WithPresentMode(PresentModeUncapped)(r)
	require.NotNil(t, r.pendingPresentMode)
	assert.Equal(t, PresentModeUncapped, *r.pendingPresentMode)

	WithClearColor(0.1, 0.2, 0.3, 1.0)(r)
	require.NotNil(t, r.pendingClearColor)
	assert.Equal(t, [4]float64{0.1, 0.2, 0.3, 1.0}, *r.pendingClearColor)
}

func TestMergeBindGroupLayoutsDisjointGroups(t *testing.T) {
	vertex := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Entries: []wgpu.BindGroupLayoutEntry{{Binding: 0, Visibility: wgpu.ShaderStageVertex}}},
	}
	fragment := map[int]wgpu.BindGroupLayoutDescriptor{
		1: {Entries: []wgpu.BindGroupLayoutEntry{{Binding: 0, Visibility: wgpu.ShaderStageFragment}}},
	}

	merged := mergeBindGroupLayouts(vertex, fragment)
	require.Len(t, merged, 2)
	assert.Equal(t, wgpu.ShaderStageVertex, merged[0].Entries[0].Visibility)
	assert.Equal(t, wgpu.ShaderStageFragment, merged[1].Entries[0].Visibility)
}
