package pdfium

import (
	"testing"
	"unsafe"
)

// mockCatalog is an in-memory stand-in for the native call catalog. It
// backs bitmaps with Go-allocated buffers, counts create/destroy calls per
// resource kind, and records render invocations.
type mockCatalog struct {
	nextHandle uintptr

	initCalls    int
	destroyCalls int

	// bitmap state
	bitmaps        map[uintptr]*mockBitmap
	bitmapCreates  int
	bitmapDestroys int
	failNextCreate bool
	padStride      int // extra bytes appended to every scanline

	// document/page state
	doc          *mockDoc
	docHandle    uintptr
	docCloses    int
	pageCloses   int
	lastErrorVal uint32

	renders []renderCall
}

type mockBitmap struct {
	data          []byte
	width, height int
	stride        int
	format        Format
	destroyed     bool
}

type mockDoc struct {
	pageWidth, pageHeight float64
	pageCount             int
	meta                  map[string][]byte
}

type renderCall struct {
	bitmap, page uintptr
	matrix       Matrix
	clip         Rect
	flags        RenderFlags
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{
		nextHandle: 0x1000,
		bitmaps:    make(map[uintptr]*mockBitmap),
	}
}

func (m *mockCatalog) handle() uintptr {
	m.nextHandle++
	return m.nextHandle
}

func (m *mockCatalog) InitLibrary()    { m.initCalls++ }
func (m *mockCatalog) DestroyLibrary() { m.destroyCalls++ }

func (m *mockCatalog) LoadDocument(path, password string) uintptr {
	if m.doc == nil {
		return 0
	}
	m.docHandle = m.handle()
	return m.docHandle
}

func (m *mockCatalog) LoadMemDocument(data []byte, password string) uintptr {
	return m.LoadDocument("<memory>", password)
}

func (m *mockCatalog) CloseDocument(doc uintptr) { m.docCloses++ }
func (m *mockCatalog) LastError() uint32         { return m.lastErrorVal }

func (m *mockCatalog) PageCount(doc uintptr) int { return m.doc.pageCount }

func (m *mockCatalog) LoadPage(doc uintptr, index int) uintptr {
	if m.doc == nil || index < 0 || index >= m.doc.pageCount {
		return 0
	}
	return m.handle()
}

func (m *mockCatalog) ClosePage(page uintptr) { m.pageCloses++ }

func (m *mockCatalog) PageSize(page uintptr) (float64, float64) {
	return m.doc.pageWidth, m.doc.pageHeight
}

func (m *mockCatalog) MetaText(doc uintptr, tag string) []byte {
	if m.doc == nil {
		return nil
	}
	return m.doc.meta[tag]
}

func (m *mockCatalog) CreateBitmap(width, height int, format Format) uintptr {
	if m.failNextCreate {
		m.failNextCreate = false
		return 0
	}
	m.bitmapCreates++
	stride := width*format.BytesPerPixel() + m.padStride
	h := m.handle()
	m.bitmaps[h] = &mockBitmap{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}
	return h
}

func (m *mockCatalog) DestroyBitmap(bitmap uintptr) {
	m.bitmapDestroys++
	if b, ok := m.bitmaps[bitmap]; ok {
		b.destroyed = true
	}
}

func (m *mockCatalog) BitmapBuffer(bitmap uintptr) uintptr {
	b := m.bitmaps[bitmap]
	return uintptr(unsafe.Pointer(&b.data[0]))
}

func (m *mockCatalog) BitmapStride(bitmap uintptr) int {
	return m.bitmaps[bitmap].stride
}

func (m *mockCatalog) FillRect(bitmap uintptr, left, top, width, height int, color uint32) {
	b := m.bitmaps[bitmap]
	if b.format.BytesPerPixel() != 4 {
		return
	}
	a := uint8(color >> 24)
	r := uint8(color >> 16)
	g := uint8(color >> 8)
	bb := uint8(color)
	for y := top; y < top+height; y++ {
		row := b.data[y*b.stride:]
		for x := left; x < left+width; x++ {
			i := x * 4
			row[i+0] = bb
			row[i+1] = g
			row[i+2] = r
			row[i+3] = a
		}
	}
}

func (m *mockCatalog) RenderPage(bitmap, page uintptr, transform Matrix, clip Rect, flags RenderFlags) {
	m.renders = append(m.renders, renderCall{
		bitmap: bitmap,
		page:   page,
		matrix: transform,
		clip:   clip,
		flags:  flags,
	})
}

var _ Catalog = (*mockCatalog)(nil)

// resetGuard clears the process-wide singleton between tests.
func resetGuard() {
	guardMu.Lock()
	guard = nil
	guardShutDown = false
	guardMu.Unlock()
}

// initTestLibrary installs a fresh mock catalog behind the guard. Tests
// touching the guard must not run in parallel.
func initTestLibrary(t *testing.T) (*Library, *mockCatalog) {
	t.Helper()
	resetGuard()
	cat := newMockCatalog()
	if err := Init(WithCatalog(cat)); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	t.Cleanup(resetGuard)
	return MustInstance(), cat
}

// utf16le encodes s as UTF-16LE with a trailing NUL, the layout PDFium
// uses for metadata values.
func utf16le(s string) []byte {
	out := make([]byte, 0, 2*len(s)+2)
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8)) // BMP-only test strings
	}
	return append(out, 0, 0)
}
