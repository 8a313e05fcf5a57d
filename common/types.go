// package common contains common types that are used throughout this viewer. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Texture2DStagingData holds RGBA pixel data for a 2-D texture binding pending GPU upload.
// This is primarily used in the BindGroupProvider to stage colormap data before creating the GPU texture and bind group.
type Texture2DStagingData struct {
	// Pixels is the byte slice representing the actual pixel data for the texture. It should be in RGBA format, with 4 bytes per pixel.
	Pixels []byte
	// Width is the width of the texture in pixels. This is required to correctly create the GPU texture and interpret the pixel data.
	Width uint32
	// Height is the height of the texture in pixels. This is required to correctly create the GPU texture and interpret the pixel data.
	Height uint32
	// Format is the texture format to create. The zero value selects RGBA8Unorm.
	Format wgpu.TextureFormat
}

// Texture3DStagingData holds raw voxel data for a 3-D texture binding pending GPU upload.
// Rows must already be padded to the device's minimum bytes-per-row alignment; BytesPerRow
// records the padded stride so the upload layout matches the staged bytes exactly.
type Texture3DStagingData struct {
	// Voxels is the raw voxel payload, BytesPerRow*Height*Depth bytes, row-padded.
	Voxels []byte
	// Width, Height, Depth are the texture dimensions in texels.
	Width, Height, Depth uint32
	// BytesPerRow is the padded byte stride of one row of voxels.
	BytesPerRow uint32
	// Format is the per-voxel texture format. The zero value selects R8Unorm.
	Format wgpu.TextureFormat
}

// SamplerStagingData holds the configuration for a sampler binding pending GPU creation.
// This is primarily used in the BindGroupProvider to stage sampler data before creating the GPU sampler and bind group.
type SamplerStagingData struct {
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode for texture coordinates outside the [0, 1] range in each dimension (U, V, W).
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// LodMinClamp and LodMaxClamp specify the minimum and maximum level of detail (LOD) for mipmapping.
	LodMinClamp, LodMaxClamp float32
	// MaxAnisotropy specifies the maximum anisotropy level for anisotropic filtering.
	MaxAnisotropy uint16
}
