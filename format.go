package pdfium

// Format identifies the channel layout of a Bitmap. The values match
// PDFium's FPDFBitmap_* constants and are passed through to the native
// create call unchanged.
type Format int

const (
	// FormatGray is 8-bit grayscale, one byte per pixel.
	FormatGray Format = 1

	// FormatBGR is 24-bit color, three bytes per pixel.
	FormatBGR Format = 2

	// FormatBGRx is 32-bit color with the high byte unused.
	FormatBGRx Format = 3

	// FormatBGRA is 32-bit color with alpha. This is the only format
	// RGBABytes can normalize.
	FormatBGRA Format = 4

	// FormatBGRAPremul is 32-bit color with premultiplied alpha.
	FormatBGRAPremul Format = 5
)

// BytesPerPixel returns the pixel size of the format in bytes.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatGray:
		return 1
	case FormatBGR:
		return 3
	case FormatBGRx, FormatBGRA, FormatBGRAPremul:
		return 4
	default:
		return 0
	}
}

func (f Format) String() string {
	switch f {
	case FormatGray:
		return "Gray"
	case FormatBGR:
		return "BGR"
	case FormatBGRx:
		return "BGRx"
	case FormatBGRA:
		return "BGRA"
	case FormatBGRAPremul:
		return "BGRA-premultiplied"
	default:
		return "unknown"
	}
}
