package pdfium

import (
	"unsafe"

	"github.com/gopdfium/pdfium/internal/nativelib"
)

// Catalog is the flat surface of native entry points the package calls.
// The production implementation forwards to the dynamically loaded PDFium
// library; tests substitute a mock via WithCatalog.
//
// Create calls signal failure by returning a null pointer; every such
// pointer goes straight into newHandle, which turns null into a typed
// error. Destroy calls take ownership of their pointer and must be issued
// exactly once per created resource.
type Catalog interface {
	// InitLibrary and DestroyLibrary bracket the native library lifetime.
	InitLibrary()
	DestroyLibrary()

	// LoadDocument opens a document from a file path. Null on failure;
	// LastError then reports the cause.
	LoadDocument(path, password string) uintptr
	// LoadMemDocument opens a document from an in-memory buffer. The
	// buffer must stay alive until the document is closed.
	LoadMemDocument(data []byte, password string) uintptr
	CloseDocument(doc uintptr)
	// LastError reports the cause of the most recent failed document open.
	LastError() uint32
	PageCount(doc uintptr) int
	LoadPage(doc uintptr, index int) uintptr
	ClosePage(page uintptr)
	// PageSize returns the page dimensions in points.
	PageSize(page uintptr) (width, height float64)
	// MetaText returns a document metadata value as raw UTF-16LE bytes,
	// including the terminator, or nil when the tag is absent.
	MetaText(doc uintptr, tag string) []byte

	CreateBitmap(width, height int, format Format) uintptr
	DestroyBitmap(bitmap uintptr)
	// BitmapBuffer returns the address of the first scanline.
	BitmapBuffer(bitmap uintptr) uintptr
	// BitmapStride returns the number of bytes per scanline, which may
	// exceed width times bytes-per-pixel.
	BitmapStride(bitmap uintptr) int
	FillRect(bitmap uintptr, left, top, width, height int, color uint32)
	// RenderPage rasterizes the page into the bitmap through the given
	// page-to-device transform, clipped to clip (device pixels). It has no
	// failure mode once given valid handles.
	RenderPage(bitmap, page uintptr, transform Matrix, clip Rect, flags RenderFlags)
}

// fsMatrix mirrors PDFium's FS_MATRIX. The transform it encodes is
// x' = a*x + c*y + e, y' = b*x + d*y + f.
type fsMatrix struct {
	a, b, c, d, e, f float32
}

// fsRectF mirrors PDFium's FS_RECTF.
type fsRectF struct {
	left, top, right, bottom float32
}

// nativeCatalog adapts the registered native functions to the Catalog
// interface, converting between package types and PDFium's wire layout.
type nativeCatalog struct {
	f *nativelib.Funcs
}

var _ Catalog = (*nativeCatalog)(nil)

func (c *nativeCatalog) InitLibrary()    { c.f.InitLibrary() }
func (c *nativeCatalog) DestroyLibrary() { c.f.DestroyLibrary() }

func (c *nativeCatalog) LoadDocument(path, password string) uintptr {
	return c.f.LoadDocument(path, password)
}

func (c *nativeCatalog) LoadMemDocument(data []byte, password string) uintptr {
	if len(data) == 0 {
		return 0
	}
	return c.f.LoadMemDocument(unsafe.Pointer(&data[0]), len(data), password)
}

func (c *nativeCatalog) CloseDocument(doc uintptr) { c.f.CloseDocument(doc) }
func (c *nativeCatalog) LastError() uint32         { return c.f.GetLastError() }

func (c *nativeCatalog) PageCount(doc uintptr) int {
	return int(c.f.GetPageCount(doc))
}

func (c *nativeCatalog) LoadPage(doc uintptr, index int) uintptr {
	return c.f.LoadPage(doc, int32(index))
}

func (c *nativeCatalog) ClosePage(page uintptr) { c.f.ClosePage(page) }

func (c *nativeCatalog) PageSize(page uintptr) (float64, float64) {
	return float64(c.f.GetPageWidthF(page)), float64(c.f.GetPageHeightF(page))
}

func (c *nativeCatalog) MetaText(doc uintptr, tag string) []byte {
	n := c.f.GetMetaText(doc, tag, nil, 0)
	if n <= 2 { // empty value: terminator only
		return nil
	}
	buf := make([]byte, n)
	c.f.GetMetaText(doc, tag, unsafe.Pointer(&buf[0]), n)
	return buf
}

func (c *nativeCatalog) CreateBitmap(width, height int, format Format) uintptr {
	return c.f.BitmapCreateEx(int32(width), int32(height), int32(format), nil, 0)
}

func (c *nativeCatalog) DestroyBitmap(bitmap uintptr) { c.f.BitmapDestroy(bitmap) }

func (c *nativeCatalog) BitmapBuffer(bitmap uintptr) uintptr {
	return c.f.BitmapGetBuffer(bitmap)
}

func (c *nativeCatalog) BitmapStride(bitmap uintptr) int {
	return int(c.f.BitmapGetStride(bitmap))
}

func (c *nativeCatalog) FillRect(bitmap uintptr, left, top, width, height int, color uint32) {
	c.f.BitmapFillRect(bitmap, int32(left), int32(top), int32(width), int32(height), color)
}

func (c *nativeCatalog) RenderPage(bitmap, page uintptr, transform Matrix, clip Rect, flags RenderFlags) {
	m := fsMatrix{
		a: float32(transform.A),
		b: float32(transform.D),
		c: float32(transform.B),
		d: float32(transform.E),
		e: float32(transform.C),
		f: float32(transform.F),
	}
	r := fsRectF{
		left:   float32(clip.Left),
		top:    float32(clip.Top),
		right:  float32(clip.Right),
		bottom: float32(clip.Bottom),
	}
	c.f.RenderPageBitmapWithMatrix(bitmap, page, unsafe.Pointer(&m), unsafe.Pointer(&r), int32(flags))
}
