package volume

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/volcast/common"
)

// LoadRaw reads a headerless 8-bit density volume from disk. The caller
// supplies the dimensions since raw files carry none; the file length must
// match width*height*depth exactly.
//
// Parameters:
//   - path: the raw file to read
//   - width: the volume width in voxels
//   - height: the volume height in voxels
//   - depth: the volume depth in voxels
//
// Returns:
//   - Descriptor: the loaded dataset, named after the file
//   - error: an AssetError if the file cannot be read or its size disagrees with the dimensions
func LoadRaw(path string, width, height, depth uint32) (Descriptor, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	data, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, &common.AssetError{Kind: "volume", Name: name, Err: err}
	}

	d := Descriptor{Name: name, Width: width, Height: height, Depth: depth, Voxels: data}
	if err := d.Validate(); err != nil {
		return Descriptor{}, &common.AssetError{Kind: "volume", Name: name, Err: fmt.Errorf("raw volume size mismatch: %w", err)}
	}
	return d, nil
}
