package shader

import (
	"strings"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSource = `
@vertex
fn vs_entry(@location(0) p: vec3<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(p, 1.0);
}

@fragment
fn fs_entry() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0);
}
`

func TestScanEntryPoint(t *testing.T) {
	vs := NewShader("test_vs", ShaderTypeVertex, testSource)
	assert.Equal(t, "vs_entry", vs.EntryPoint())

	fs := NewShader("test_fs", ShaderTypeFragment, testSource)
	assert.Equal(t, "fs_entry", fs.EntryPoint())
}

func TestExplicitEntryPointWins(t *testing.T) {
	s := NewShader("test", ShaderTypeVertex, testSource, WithEntryPoint("custom_main"))
	assert.Equal(t, "custom_main", s.EntryPoint())
}

func TestVolumeShaderEntryPoints(t *testing.T) {
	vs := VolumeVertexShader()
	assert.Equal(t, VolumeVertexShaderKey, vs.Key())
	assert.Equal(t, "vs_main", vs.EntryPoint())
	require.Len(t, vs.VertexLayouts(), 1)
	assert.Equal(t, uint64(12), vs.VertexLayouts()[0].ArrayStride)

	fs := VolumeFragmentShader()
	assert.Equal(t, VolumeFragmentShaderKey, fs.Key())
	assert.Equal(t, "fs_main", fs.EntryPoint())
}

// The fixed resource layout: uniform, 3-D texture, 2-D texture, sampler,
// and storage buffer on bindings 0 through 4.
func TestVolumeBindGroupLayout(t *testing.T) {
	desc := VolumeBindGroupLayoutDescriptor()
	require.Len(t, desc.Entries, 5)

	byBinding := make(map[uint32]wgpu.BindGroupLayoutEntry)
	for _, e := range desc.Entries {
		byBinding[e.Binding] = e
	}

	uniform := byBinding[BindingViewParams]
	assert.Equal(t, wgpu.BufferBindingTypeUniform, uniform.Buffer.Type)
	assert.Equal(t, uint64(80), uniform.Buffer.MinBindingSize)

	vol := byBinding[BindingVolume]
	assert.Equal(t, wgpu.TextureViewDimension3D, vol.Texture.ViewDimension)

	cm := byBinding[BindingColormap]
	assert.Equal(t, wgpu.TextureViewDimension2D, cm.Texture.ViewDimension)

	smp := byBinding[BindingSampler]
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, smp.Sampler.Type)

	grad := byBinding[BindingGradients]
	assert.Equal(t, wgpu.BufferBindingTypeReadOnlyStorage, grad.Buffer.Type)
}

// The embedded WGSL must declare the same bindings the layout descriptor
// promises.
func TestVolumeSourceDeclaresBindings(t *testing.T) {
	src := VolumeFragmentShader().Source()
	for _, decl := range []string{
		"@binding(0)",
		"@binding(1)",
		"@binding(2)",
		"@binding(3)",
		"@binding(4)",
		"fn vs_main",
		"fn fs_main",
		"intersect_box",
	} {
		assert.True(t, strings.Contains(src, decl), "missing %s", decl)
	}
}
