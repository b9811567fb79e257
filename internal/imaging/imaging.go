// Package imaging writes frames to lossless raster files and reads them back.
//
// A frame is CHANNELS bytes per pixel, row-major, in B,G,R order. On disk the
// bytes land in the image's R,G,B channels swapped accordingly, alpha opaque.
package imaging

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/faanross/simulacra_png/internal/layout"
)

// Codec is a lossless raster format.
type Codec interface {
	// Ext is the file extension without dot, lower case.
	Ext() string
	Encode(path string, pix []byte, width, height int) error
	Decode(path string) ([]byte, error)
}

var codecs = map[string]Codec{
	"png": PNG{},
	"bmp": BMP{},
}

// ForExt returns the codec registered for ext, case-insensitive.
func ForExt(ext string) (Codec, bool) {
	c, ok := codecs[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return c, ok
}

// Known reports whether ext has a codec.
func Known(ext string) bool {
	_, ok := ForExt(ext)
	return ok
}

// Formats lists registered extensions.
func Formats() []string {
	out := make([]string, 0, len(codecs))
	for ext := range codecs {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// ToImage lays a frame buffer out as an opaque RGBA image.
func ToImage(pix []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	pixels := width * height
	if len(pix) != pixels*layout.CHANNELS {
		return nil, fmt.Errorf("buffer of %d bytes does not match %dx%d", len(pix), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	dst := img.Pix
	for p := 0; p < pixels; p++ {
		s, d := p*layout.CHANNELS, p*4
		dst[d] = pix[s+2]
		dst[d+1] = pix[s+1]
		dst[d+2] = pix[s]
		dst[d+3] = 0xFF
	}
	return img, nil
}

// FromImage flattens img back into a frame buffer.
func FromImage(img image.Image) []byte {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	out := make([]byte, width*height*layout.CHANNELS)

	switch m := img.(type) {
	case *image.RGBA:
		copyRows(out, m.Pix, m.Stride, width, height)
	case *image.NRGBA:
		copyRows(out, m.Pix, m.Stride, width, height)
	default:
		i := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, _ := img.At(x, y).RGBA()
				out[i] = uint8(bl >> 8)
				out[i+1] = uint8(g >> 8)
				out[i+2] = uint8(r >> 8)
				i += layout.CHANNELS
			}
		}
	}
	return out
}

func copyRows(out, src []byte, stride, width, height int) {
	i := 0
	for y := 0; y < height; y++ {
		row := src[y*stride : y*stride+width*4]
		for x := 0; x < width; x++ {
			out[i] = row[x*4+2]
			out[i+1] = row[x*4+1]
			out[i+2] = row[x*4]
			i += layout.CHANNELS
		}
	}
}
