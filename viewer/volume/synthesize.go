package volume

import "github.com/chewxy/math32"

// densityFunc evaluates a procedural density in [0, 1] at normalized
// volume coordinates, each component in [0, 1].
type densityFunc func(x, y, z float32) float32

// synthesizeSlice rasterizes one z-slice of a procedural field into dst,
// one byte per voxel.
func synthesizeSlice(fn densityFunc, width, height, depth uint32, z int, dst []byte) {
	w, h := int(width), int(height)
	fz := (float32(z) + 0.5) / float32(depth)
	for y := range h {
		fy := (float32(y) + 0.5) / float32(height)
		for x := range w {
			fx := (float32(x) + 0.5) / float32(width)
			v := fn(fx, fy, fz)
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			dst[x+y*w] = byte(v*255.0 + 0.5)
		}
	}
}

// sphereDensity is a soft spherical shell centered in the volume, the
// classic smoke-test dataset for transfer functions.
func sphereDensity(x, y, z float32) float32 {
	dx, dy, dz := x-0.5, y-0.5, z-0.5
	r := math32.Sqrt(dx*dx + dy*dy + dz*dz)
	d := r - 0.35
	return math32.Exp(-(d * d) / (2.0 * 0.05 * 0.05))
}

// blobDensity sums a handful of gaussian blobs of varying size, giving a
// lumpy field with interior structure.
func blobDensity(x, y, z float32) float32 {
	type blob struct {
		cx, cy, cz, sigma, weight float32
	}
	blobs := []blob{
		{0.50, 0.50, 0.50, 0.18, 1.00},
		{0.30, 0.65, 0.40, 0.10, 0.80},
		{0.70, 0.35, 0.60, 0.12, 0.75},
		{0.55, 0.30, 0.30, 0.08, 0.60},
		{0.40, 0.45, 0.72, 0.09, 0.65},
	}
	var sum float32
	for _, b := range blobs {
		dx, dy, dz := x-b.cx, y-b.cy, z-b.cz
		sum += b.weight * math32.Exp(-(dx*dx+dy*dy+dz*dz)/(2.0*b.sigma*b.sigma))
	}
	return sum
}

// noiseDensity is deterministic trilinear value noise attenuated toward
// the volume boundary so the field fades out before the cube walls.
func noiseDensity(x, y, z float32) float32 {
	const freq = 6.0
	n := valueNoise(x*freq, y*freq, z*freq)
	n = 0.5*n + 0.35*valueNoise(x*freq*2.1+17.0, y*freq*2.1+17.0, z*freq*2.1+17.0)

	falloff := boundaryFalloff(x) * boundaryFalloff(y) * boundaryFalloff(z)
	return n * falloff
}

// boundaryFalloff ramps 0→1→0 near the edges of a normalized axis.
func boundaryFalloff(t float32) float32 {
	const margin = 0.15
	if t < margin {
		return t / margin
	}
	if t > 1.0-margin {
		return (1.0 - t) / margin
	}
	return 1.0
}

// valueNoise interpolates hashed lattice values with smoothstep weights.
func valueNoise(x, y, z float32) float32 {
	x0, y0, z0 := math32.Floor(x), math32.Floor(y), math32.Floor(z)
	fx, fy, fz := smooth(x-x0), smooth(y-y0), smooth(z-z0)
	ix, iy, iz := int32(x0), int32(y0), int32(z0)

	c000 := latticeHash(ix, iy, iz)
	c100 := latticeHash(ix+1, iy, iz)
	c010 := latticeHash(ix, iy+1, iz)
	c110 := latticeHash(ix+1, iy+1, iz)
	c001 := latticeHash(ix, iy, iz+1)
	c101 := latticeHash(ix+1, iy, iz+1)
	c011 := latticeHash(ix, iy+1, iz+1)
	c111 := latticeHash(ix+1, iy+1, iz+1)

	x00 := lerp(c000, c100, fx)
	x10 := lerp(c010, c110, fx)
	x01 := lerp(c001, c101, fx)
	x11 := lerp(c011, c111, fx)
	y0v := lerp(x00, x10, fy)
	y1v := lerp(x01, x11, fy)
	return lerp(y0v, y1v, fz)
}

func smooth(t float32) float32 {
	return t * t * (3.0 - 2.0*t)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// latticeHash maps integer lattice coordinates to a deterministic value
// in [0, 1] via integer bit mixing.
func latticeHash(x, y, z int32) float32 {
	h := uint32(x)*0x8da6b343 + uint32(y)*0xd8163841 + uint32(z)*0xcb1ab31f
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return float32(h&0xffffff) / float32(0x1000000)
}
