package volume

import "github.com/chewxy/math32"

// gradientSlice fills dst with one gradient-magnitude byte per voxel of
// slice z, using central differences over the clamped density field. The
// magnitude is normalized against the largest possible central difference
// so the full byte range stays usable.
func gradientSlice(d *Descriptor, z int, dst []byte) {
	w, h := int(d.Width), int(d.Height)
	for y := range h {
		for x := range w {
			gx := float32(d.voxel(x+1, y, z)) - float32(d.voxel(x-1, y, z))
			gy := float32(d.voxel(x, y+1, z)) - float32(d.voxel(x, y-1, z))
			gz := float32(d.voxel(x, y, z+1)) - float32(d.voxel(x, y, z-1))
			mag := math32.Sqrt(gx*gx+gy*gy+gz*gz) / (2.0 * 255.0)
			if mag > 1.0 {
				mag = 1.0
			}
			dst[x+y*w] = byte(mag*255.0 + 0.5)
		}
	}
}

// padGradients rounds the gradient payload up to a whole number of 32-bit
// words so it can back a storage buffer declared as array<u32>.
func padGradients(data []byte) []byte {
	if rem := len(data) % 4; rem != 0 {
		data = append(data, make([]byte, 4-rem)...)
	}
	return data
}
