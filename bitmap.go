package pdfium

import (
	"fmt"
	"image"
	"runtime"
	"sync/atomic"
	"unsafe"
)

// Bitmap is a rectangular pixel buffer allocated and owned by the native
// library. Pixels are laid out row by row with Stride bytes per scanline;
// the stride may exceed width times bytes-per-pixel.
//
// A Bitmap must be released with Close. A finalizer backstops forgotten
// Close calls, but relying on it delays the release of native memory
// indefinitely.
type Bitmap struct {
	h      Handle[bitmapKind]
	lib    *Library
	width  int
	height int
	stride int
	format Format
	closed atomic.Bool
}

// NewBitmap allocates a bitmap of the given size and format through the
// process-wide library guard. See [Library.NewBitmap].
func NewBitmap(width, height int, format Format) (*Bitmap, error) {
	l, err := Instance()
	if err != nil {
		return nil, err
	}
	return l.NewBitmap(width, height, format)
}

// NewBitmap allocates a native bitmap. Width and height are stored as
// given; validating them is the caller's job (the render resolver rejects
// non-positive dimensions before they reach here). The pixel contents are
// uninitialized: fill or clear the bitmap before reading it back.
func (l *Library) NewBitmap(width, height int, format Format) (*Bitmap, error) {
	ptr := l.cat.CreateBitmap(width, height, format)
	h, err := newHandle[bitmapKind](ptr)
	if err != nil {
		return nil, err
	}
	b := &Bitmap{
		h:      h,
		lib:    l,
		width:  width,
		height: height,
		stride: l.cat.BitmapStride(h.Raw()),
		format: format,
	}
	runtime.SetFinalizer(b, finalizeBitmap)
	Logger().Debug("pdfium: bitmap created",
		"width", width, "height", height, "format", format.String(), "stride", b.stride)
	return b, nil
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Stride returns the number of bytes per scanline.
func (b *Bitmap) Stride() int { return b.stride }

// Format returns the pixel format of the bitmap.
func (b *Bitmap) Format() Format { return b.format }

// Fill overwrites the full bitmap rectangle with the given color. It does
// not blend with existing content.
func (b *Bitmap) Fill(c Color) {
	b.lib.cat.FillRect(b.h.Raw(), 0, 0, b.width, b.height, c.ARGB())
}

// RawBytes returns a view over the native pixel memory, stride*height bytes
// long. The view is valid only while both the bitmap and the given library
// guard are alive; tying it to the guard argument rather than to the bitmap
// alone makes a teardown ordering bug loud instead of a silent dangling
// read. A nil or shut-down guard is a programming error and panics.
func (b *Bitmap) RawBytes(lib *Library) []byte {
	if !lib.alive() {
		panic("pdfium: RawBytes requires a live library guard")
	}
	buf := lib.cat.BitmapBuffer(b.h.Raw())
	return unsafe.Slice((*byte)(unsafe.Pointer(buf)), b.stride*b.height)
}

// RGBABytes returns an independently allocated copy of the pixel data in
// canonical RGBA byte order. Only FormatBGRA can be normalized; every other
// format yields an UnsupportedFormatError. The copy covers the full native
// buffer including any stride padding, so its length is stride*height.
func (b *Bitmap) RGBABytes() ([]byte, error) {
	if b.format != FormatBGRA {
		return nil, &UnsupportedFormatError{Format: b.format}
	}

	raw := b.RawBytes(b.lib)
	if len(raw)%4 != 0 {
		// A BGRA buffer whose length is not a multiple of 4 means the
		// native stride bookkeeping is corrupt; truncating would hide it.
		panic(fmt.Sprintf("pdfium: BGRA buffer length %d is not a multiple of 4", len(raw)))
	}

	out := make([]byte, len(raw))
	for i := 0; i < len(raw); i += 4 {
		out[i+0] = raw[i+2]
		out[i+1] = raw[i+1]
		out[i+2] = raw[i+0]
		out[i+3] = raw[i+3]
	}
	return out, nil
}

// Image builds an owned image.RGBA from the normalized pixel data. It fails
// with ErrImageSize when the byte count does not match width*height*4,
// which happens when the native stride carries row padding.
func (b *Bitmap) Image() (*image.RGBA, error) {
	px, err := b.RGBABytes()
	if err != nil {
		return nil, err
	}
	if len(px) != b.width*b.height*4 {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d", ErrImageSize, len(px), b.width, b.height)
	}
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, px)
	return img, nil
}

// Close releases the native bitmap. It is idempotent; only the first call
// reaches the native destructor. The destructor is issued even for bitmaps
// backed by externally supplied memory, where it is a documented no-op on
// the pixel data but still releases native-side bookkeeping.
func (b *Bitmap) Close() {
	if b.closed.Swap(true) {
		return
	}
	runtime.SetFinalizer(b, nil)
	b.lib.cat.DestroyBitmap(b.h.Raw())
}

func finalizeBitmap(b *Bitmap) {
	if b.closed.Load() {
		return
	}
	Logger().Warn("pdfium: bitmap reclaimed by finalizer without Close",
		"width", b.width, "height", b.height)
	if b.lib.alive() {
		b.Close()
	}
}
