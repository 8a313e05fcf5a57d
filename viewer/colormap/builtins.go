package colormap

// builtinWidth is the lookup resolution for the generated maps.
const builtinWidth = 256

// anchor is a control point along the normalized density axis.
type anchor struct {
	t       float32
	r, g, b float32
}

// rampColormap interpolates control points into a lookup table, pairing
// the color ramp with a linear opacity ramp so zero density is fully
// transparent and full density fully opaque.
func rampColormap(name string, anchors []anchor) Colormap {
	rgba := make([]byte, builtinWidth*4)
	for i := range builtinWidth {
		t := float32(i) / float32(builtinWidth-1)

		hi := 1
		for hi < len(anchors)-1 && anchors[hi].t < t {
			hi++
		}
		lo := hi - 1
		span := anchors[hi].t - anchors[lo].t
		var f float32
		if span > 0 {
			f = (t - anchors[lo].t) / span
		}

		r := anchors[lo].r + (anchors[hi].r-anchors[lo].r)*f
		g := anchors[lo].g + (anchors[hi].g-anchors[lo].g)*f
		b := anchors[lo].b + (anchors[hi].b-anchors[lo].b)*f
		rgba[i*4+0] = byte(r*255.0 + 0.5)
		rgba[i*4+1] = byte(g*255.0 + 0.5)
		rgba[i*4+2] = byte(b*255.0 + 0.5)
		rgba[i*4+3] = byte(t*255.0 + 0.5)
	}
	return Colormap{Name: name, Width: builtinWidth, RGBA: rgba}
}

func grayscaleColormap() Colormap {
	return rampColormap("grayscale", []anchor{
		{0.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.0},
	})
}

func viridisColormap() Colormap {
	return rampColormap("viridis", []anchor{
		{0.00, 0.267, 0.005, 0.329},
		{0.25, 0.229, 0.322, 0.546},
		{0.50, 0.128, 0.567, 0.551},
		{0.75, 0.369, 0.789, 0.383},
		{1.00, 0.993, 0.906, 0.144},
	})
}

func fireColormap() Colormap {
	return rampColormap("fire", []anchor{
		{0.00, 0.0, 0.0, 0.0},
		{0.33, 0.9, 0.0, 0.0},
		{0.66, 1.0, 0.7, 0.0},
		{1.00, 1.0, 1.0, 1.0},
	})
}

// twoColorColormap is the simplest possible transfer function: a straight
// blend between two hues with the shared linear opacity ramp, useful for
// sanity-checking compositing.
func twoColorColormap() Colormap {
	return rampColormap("two-color", []anchor{
		{0.0, 0.231, 0.298, 0.752},
		{1.0, 0.865, 0.580, 0.125},
	})
}

func coolWarmColormap() Colormap {
	return rampColormap("cool-warm", []anchor{
		{0.0, 0.230, 0.299, 0.754},
		{0.5, 0.865, 0.865, 0.865},
		{1.0, 0.706, 0.016, 0.150},
	})
}
