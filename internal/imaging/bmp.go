package imaging

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/image/bmp"
)

// BMP writes 24-bit uncompressed bitmaps.
type BMP struct{}

func (BMP) Ext() string { return "bmp" }

func (BMP) Encode(path string, pix []byte, width, height int) error {
	img, err := ToImage(pix, width, height)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create image: %w", err)
	}
	w := bufio.NewWriter(file)

	if err := bmp.Encode(w, img); err != nil {
		file.Close()
		return fmt.Errorf("BMP encoding failed: %w", err)
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("BMP flush failed: %w", err)
	}
	return file.Close()
}

func (BMP) Decode(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening image: %w", err)
	}
	defer file.Close()

	img, err := bmp.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("error decoding BMP: %w", err)
	}
	return FromImage(img), nil
}
