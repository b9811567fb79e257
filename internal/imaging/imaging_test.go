package imaging

import (
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPix(width, height int) []byte {
	pix := make([]byte, width*height*3)
	rand.New(rand.NewSource(7)).Read(pix)
	return pix
}

func TestCodecs_RoundTrip(t *testing.T) {
	const width, height = 37, 11 // odd width exercises BMP row padding
	pix := randomPix(width, height)

	for _, ext := range Formats() {
		codec, ok := ForExt(ext)
		require.True(t, ok, ext)

		path := filepath.Join(t.TempDir(), "frame_0."+codec.Ext())
		require.NoError(t, codec.Encode(path, pix, width, height), ext)

		got, err := codec.Decode(path)
		require.NoError(t, err, ext)
		assert.Equal(t, pix, got, "%s: pixel bytes changed across encode/decode", ext)
	}
}

func TestToImage_ChannelOrder(t *testing.T) {
	img, err := ToImage([]byte{0x01, 0x02, 0x03}, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{R: 0x03, G: 0x02, B: 0x01, A: 0xFF}, img.RGBAAt(0, 0))
}

func TestToImage_SizeMismatch(t *testing.T) {
	assert := assert.New(t)

	_, err := ToImage(make([]byte, 5), 1, 2)
	assert.Error(err)
	_, err = ToImage(nil, 0, 0)
	assert.Error(err)
}

func TestFromImage_Generic(t *testing.T) {
	// Gray goes through the At() fallback.
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: 9})
	img.SetGray(1, 0, color.Gray{Y: 200})

	assert.Equal(t, []byte{9, 9, 9, 200, 200, 200}, FromImage(img))
}

func TestPNG_DecodeForeign(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x_0.png")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0644))

	_, err := (PNG{}).Decode(path)
	assert.Error(t, err)
}

func TestPNG_WritesRGB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x_0.png")
	require.NoError(t, (PNG{}).Encode(path, randomPix(4, 4), 4, 4))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(color.RGBAModel, cfg.ColorModel)
	assert.Equal(4, cfg.Width)
	assert.Equal(4, cfg.Height)
}

func TestForExt(t *testing.T) {
	assert := assert.New(t)
	for _, ext := range []string{"png", "PNG", ".png", "bmp", "Bmp"} {
		assert.True(Known(ext), ext)
	}
	assert.False(Known("jpg"), "lossy formats must not be known")
	assert.False(Known(""))
}
