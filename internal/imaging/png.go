package imaging

import (
	"bufio"
	"fmt"
	"image/png"
	"os"
)

// PNG writes uncompressed PNG files. Zlib stored blocks keep encoding fast on
// frames that are mostly incompressible file data.
type PNG struct{}

func (PNG) Ext() string { return "png" }

func (PNG) Encode(path string, pix []byte, width, height int) error {
	img, err := ToImage(pix, width, height)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create image: %w", err)
	}
	w := bufio.NewWriter(file)

	enc := png.Encoder{CompressionLevel: png.NoCompression}
	if err := enc.Encode(w, img); err != nil {
		file.Close()
		return fmt.Errorf("PNG encoding failed: %w", err)
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("PNG flush failed: %w", err)
	}
	return file.Close()
}

func (PNG) Decode(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening image: %w", err)
	}
	defer file.Close()

	img, err := png.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("error decoding PNG: %w", err)
	}
	return FromImage(img), nil
}
