package pdfium

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// SavePNG writes the bitmap to a PNG file. The bitmap must be in a format
// Image supports (FormatBGRA) and must not carry stride padding.
func (b *Bitmap) SavePNG(path string) error {
	img, err := b.Image()
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, img)
}

// SaveBMP writes the bitmap to a BMP file under the same constraints as
// SavePNG.
func (b *Bitmap) SaveBMP(path string) error {
	img, err := b.Image()
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return bmp.Encode(f, img)
}

// Save picks the encoder from the file extension: .bmp writes BMP,
// everything else PNG.
func (b *Bitmap) Save(path string) error {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return b.SaveBMP(path)
	}
	return b.SavePNG(path)
}
