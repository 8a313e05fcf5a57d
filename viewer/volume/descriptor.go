package volume

import (
	"fmt"

	"github.com/Carmen-Shannon/volcast/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// textureRowAlignment is the device minimum bytes-per-row alignment for
// texture uploads required by WebGPU and D3D12.
const textureRowAlignment = 256

// Descriptor describes a 3-D scalar field pending GPU upload: a named,
// tightly packed single-channel 8-bit volume.
type Descriptor struct {
	// Name identifies the dataset in the Store and in UI selections.
	Name string
	// Width, Height, Depth are the volume dimensions in voxels.
	Width, Height, Depth uint32
	// Voxels is the tightly packed density payload, one byte per voxel in
	// x-major order (x fastest, then y, then z). Length must equal
	// Width*Height*Depth.
	Voxels []byte
}

// Validate checks the descriptor's dimensional invariants: all three
// dimensions positive and the payload length equal to the voxel count.
//
// Returns:
//   - error: a descriptive error if the descriptor is malformed, otherwise nil
func (d *Descriptor) Validate() error {
	if d.Width == 0 || d.Height == 0 || d.Depth == 0 {
		return fmt.Errorf("volume %q has non-positive dimensions %dx%dx%d", d.Name, d.Width, d.Height, d.Depth)
	}
	want := int(d.Width) * int(d.Height) * int(d.Depth)
	if len(d.Voxels) != want {
		return fmt.Errorf("volume %q payload is %d bytes, want %d (%dx%dx%d)", d.Name, len(d.Voxels), want, d.Width, d.Height, d.Depth)
	}
	return nil
}

// Staging validates the descriptor and produces row-padded upload data
// honoring the device's minimum bytes-per-row alignment. When the natural
// row size is already aligned the voxel slice is reused without copying.
// A malformed descriptor yields a ResourceError; the texture is never
// partially created.
//
// Returns:
//   - common.Texture3DStagingData: the padded voxel data ready for upload
//   - error: a ResourceError if the descriptor fails validation
func (d *Descriptor) Staging() (common.Texture3DStagingData, error) {
	if err := d.Validate(); err != nil {
		return common.Texture3DStagingData{}, &common.ResourceError{Op: "stage volume upload", Err: err}
	}

	bytesPerRow := common.AlignUp(d.Width, textureRowAlignment)
	voxels := d.Voxels
	if bytesPerRow != d.Width {
		rows := int(d.Height) * int(d.Depth)
		padded := make([]byte, int(bytesPerRow)*rows)
		for r := range rows {
			src := d.Voxels[r*int(d.Width) : (r+1)*int(d.Width)]
			copy(padded[r*int(bytesPerRow):], src)
		}
		voxels = padded
	}

	return common.Texture3DStagingData{
		Voxels:      voxels,
		Width:       d.Width,
		Height:      d.Height,
		Depth:       d.Depth,
		BytesPerRow: bytesPerRow,
		Format:      wgpu.TextureFormatR8Unorm,
	}, nil
}

// voxel returns the density byte at (x, y, z) with coordinates clamped to
// the volume bounds.
func (d *Descriptor) voxel(x, y, z int) byte {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if z < 0 {
		z = 0
	}
	if x >= int(d.Width) {
		x = int(d.Width) - 1
	}
	if y >= int(d.Height) {
		y = int(d.Height) - 1
	}
	if z >= int(d.Depth) {
		z = int(d.Depth) - 1
	}
	return d.Voxels[x+y*int(d.Width)+z*int(d.Width)*int(d.Height)]
}
