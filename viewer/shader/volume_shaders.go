package shader

import (
	_ "embed"

	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/volume.wgsl
var volumeShaderSource string

// Binding slot indices for the volume ray casting bind group (group 0).
// The layout is fixed for the lifetime of the process; swapping datasets or
// colormaps replaces the resources bound at these slots, never the layout.
const (
	// BindingViewParams is the per-frame view parameter uniform buffer.
	BindingViewParams = 0
	// BindingVolume is the 3-D density texture.
	BindingVolume = 1
	// BindingColormap is the 1-row 2-D transfer function texture.
	BindingColormap = 2
	// BindingSampler is the shared linear-filtering sampler.
	BindingSampler = 3
	// BindingGradients is the packed gradient magnitude storage buffer.
	BindingGradients = 4
)

// VolumeVertexShaderKey and VolumeFragmentShaderKey identify the ray casting
// shader stages in pipeline and shader caches.
const (
	VolumeVertexShaderKey   = "volume_vertex"
	VolumeFragmentShaderKey = "volume_fragment"
)

// VolumeBindGroupLayoutDescriptor returns the fixed bind group layout for the
// volume ray casting pipeline: view uniform, 3-D density texture, colormap
// texture, sampler, and gradient storage buffer.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the group 0 layout descriptor
func VolumeBindGroupLayoutDescriptor() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Volume Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    BindingViewParams,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: 80,
				},
			},
			{
				Binding:    BindingVolume,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension3D,
				},
			},
			{
				Binding:    BindingColormap,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    BindingSampler,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
			{
				Binding:    BindingGradients,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeReadOnlyStorage,
				},
			},
		},
	}
}

// VolumeVertexShader returns the vertex stage of the ray casting shader with
// its bind group layout and the position-only vertex buffer layout attached.
//
// Returns:
//   - Shader: the configured vertex shader
func VolumeVertexShader() Shader {
	return NewShader(VolumeVertexShaderKey, ShaderTypeVertex, volumeShaderSource,
		WithBindGroupLayoutDescriptor(0, VolumeBindGroupLayoutDescriptor()),
		WithVertexLayouts([]wgpu.VertexBufferLayout{
			{
				ArrayStride: 12, // 3 x float32 position
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{
						Format:         wgpu.VertexFormatFloat32x3,
						Offset:         0,
						ShaderLocation: 0,
					},
				},
			},
		}),
	)
}

// VolumeFragmentShader returns the fragment stage of the ray casting shader
// with its bind group layout attached.
//
// Returns:
//   - Shader: the configured fragment shader
func VolumeFragmentShader() Shader {
	return NewShader(VolumeFragmentShaderKey, ShaderTypeFragment, volumeShaderSource,
		WithBindGroupLayoutDescriptor(0, VolumeBindGroupLayoutDescriptor()),
	)
}
