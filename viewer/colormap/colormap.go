// Package colormap provides the transfer-function lookup tables that map
// sampled density to color and opacity.
package colormap

import (
	"fmt"

	"github.com/Carmen-Shannon/volcast/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// Colormap is an N-by-1 RGBA transfer function. The red, green, and blue
// channels carry straight (non-premultiplied) color; the alpha channel
// carries opacity, applied during compositing.
type Colormap struct {
	// Name identifies the map in the Store and in UI selections.
	Name string
	// Width is the number of lookup texels.
	Width uint32
	// RGBA holds Width texels at four bytes each.
	RGBA []byte
}

// Validate checks that the map has at least two texels and a payload
// length matching its width.
//
// Returns:
//   - error: a descriptive error if the map is malformed, otherwise nil
func (c *Colormap) Validate() error {
	if c.Width < 2 {
		return fmt.Errorf("colormap %q has width %d, want at least 2", c.Name, c.Width)
	}
	if len(c.RGBA) != int(c.Width)*4 {
		return fmt.Errorf("colormap %q payload is %d bytes, want %d", c.Name, len(c.RGBA), c.Width*4)
	}
	return nil
}

// Staging validates the map and produces upload-ready 2-D texture data.
// The lookup table is stored linearly, not sRGB, since it is sampled as
// data rather than displayed directly.
//
// Returns:
//   - common.Texture2DStagingData: the upload data
//   - error: a ResourceError if the map fails validation
func (c *Colormap) Staging() (common.Texture2DStagingData, error) {
	if err := c.Validate(); err != nil {
		return common.Texture2DStagingData{}, &common.ResourceError{Op: "stage colormap upload", Err: err}
	}
	return common.Texture2DStagingData{
		Pixels: c.RGBA,
		Width:  c.Width,
		Height: 1,
		Format: wgpu.TextureFormatRGBA8Unorm,
	}, nil
}
