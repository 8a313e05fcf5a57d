package colormap

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/volcast/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreBuiltins(t *testing.T) {
	s := NewStore()
	assert.Equal(t, []string{"grayscale", "viridis", "fire", "cool-warm", "two-color"}, s.Names())

	for _, name := range s.Names() {
		c, err := s.Get(name)
		require.NoError(t, err)
		assert.NoError(t, c.Validate())
		assert.Equal(t, uint32(256), c.Width)
	}
}

func TestStoreUnknownName(t *testing.T) {
	s := NewStore()
	_, err := s.Get("plasma")
	var assetErr *common.AssetError
	require.ErrorAs(t, err, &assetErr)
	assert.Equal(t, "colormap", assetErr.Kind)
	assert.Equal(t, "plasma", assetErr.Name)
}

// Every built-in map ramps opacity from fully transparent at zero density
// to fully opaque at full density, so empty space never occludes.
func TestBuiltinAlphaRamp(t *testing.T) {
	s := NewStore()
	for _, name := range s.Names() {
		c, err := s.Get(name)
		require.NoError(t, err)

		first := c.RGBA[3]
		last := c.RGBA[len(c.RGBA)-1]
		assert.Zero(t, first, "%s start alpha", name)
		assert.Equal(t, byte(255), last, "%s end alpha", name)

		mid := c.RGBA[(int(c.Width)/2)*4+3]
		assert.Greater(t, mid, first, "%s mid alpha", name)
		assert.Less(t, mid, last, "%s mid alpha", name)
	}
}

func TestGrayscaleEndpoints(t *testing.T) {
	s := NewStore()
	c, err := s.Get("grayscale")
	require.NoError(t, err)

	assert.Equal(t, []byte{0, 0, 0}, c.RGBA[0:3])
	end := len(c.RGBA) - 4
	assert.Equal(t, []byte{255, 255, 255}, c.RGBA[end:end+3])
}

func TestStagingShape(t *testing.T) {
	s := NewStore()
	c, err := s.Get("viridis")
	require.NoError(t, err)

	staging, err := c.Staging()
	require.NoError(t, err)
	assert.Equal(t, uint32(256), staging.Width)
	assert.Equal(t, uint32(1), staging.Height)
	assert.Len(t, staging.Pixels, 256*4)
}

func TestValidateRejectsMalformed(t *testing.T) {
	narrow := Colormap{Name: "narrow", Width: 1, RGBA: make([]byte, 4)}
	assert.Error(t, narrow.Validate())

	short := Colormap{Name: "short", Width: 8, RGBA: make([]byte, 8)}
	assert.Error(t, short.Validate())

	_, err := short.Staging()
	var resErr *common.ResourceError
	assert.ErrorAs(t, err, &resErr)
}

func TestRegister(t *testing.T) {
	s := NewStore()
	rgba := make([]byte, 16*4)
	require.NoError(t, s.Register(Colormap{Name: "custom", Width: 16, RGBA: rgba}))

	c, err := s.Get("custom")
	require.NoError(t, err)
	assert.Equal(t, uint32(16), c.Width)

	err = s.Register(Colormap{Name: "bad", Width: 16, RGBA: nil})
	var resErr *common.ResourceError
	assert.ErrorAs(t, err, &resErr)
}

func TestLoadImageSubstitutesAlphaRamp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strip.png")

	img := image.NewRGBA(image.Rect(0, 0, 8, 1))
	for x := range 8 {
		img.Pix[x*4+0] = byte(x * 32)
		img.Pix[x*4+3] = 0xff
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	c, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, "strip", c.Name)
	assert.Equal(t, uint32(8), c.Width)
	assert.NoError(t, c.Validate())

	// The fully opaque source row gets a linear opacity ramp.
	assert.Zero(t, c.RGBA[3])
	assert.Equal(t, byte(255), c.RGBA[7*4+3])
}

func TestLoadImageMissingFile(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "absent.png"))
	var assetErr *common.AssetError
	require.ErrorAs(t, err, &assetErr)
	assert.Equal(t, "colormap", assetErr.Kind)
}
