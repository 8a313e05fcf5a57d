package colormap

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/volcast/common"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// LoadImage reads a transfer function from an image file (PNG, JPEG, BMP,
// or TIFF), sampling the top row of pixels as the lookup table. Images
// whose top row is fully opaque get a linear opacity ramp substituted,
// since a colormap strip exported without alpha would otherwise render as
// a solid box.
//
// Parameters:
//   - path: the image file to read
//
// Returns:
//   - Colormap: the loaded map, named after the file
//   - error: an AssetError if the file cannot be read or decoded
func LoadImage(path string) (Colormap, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	f, err := os.Open(path)
	if err != nil {
		return Colormap{}, &common.AssetError{Kind: "colormap", Name: name, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Colormap{}, &common.AssetError{Kind: "colormap", Name: name, Err: err}
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	if width < 2 {
		return Colormap{}, &common.AssetError{Kind: "colormap", Name: name, Err: fmt.Errorf("image is %d pixels wide, want at least 2", width)}
	}

	rgba := make([]byte, width*4)
	opaque := true
	for x := range width {
		r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y).RGBA()
		rgba[x*4+0] = byte(r >> 8)
		rgba[x*4+1] = byte(g >> 8)
		rgba[x*4+2] = byte(b >> 8)
		rgba[x*4+3] = byte(a >> 8)
		if rgba[x*4+3] != 0xff {
			opaque = false
		}
	}
	if opaque {
		for x := range width {
			rgba[x*4+3] = byte(x * 255 / (width - 1))
		}
	}

	return Colormap{Name: name, Width: uint32(width), RGBA: rgba}, nil
}
