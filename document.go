package pdfium

import (
	"bytes"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/text/encoding/unicode"
)

// Document is an open PDF document. It owns a native document handle and
// must be released with Close after all pages loaded from it are closed.
type Document struct {
	h      Handle[documentKind]
	lib    *Library
	closed atomic.Bool

	// data keeps an in-memory source alive for the lifetime of the native
	// document, which reads from it lazily.
	data []byte
}

// OpenDocument opens a document from a file path through the process-wide
// guard. See [Library.OpenDocument].
func OpenDocument(path, password string) (*Document, error) {
	l, err := Instance()
	if err != nil {
		return nil, err
	}
	return l.OpenDocument(path, password)
}

// OpenDocument opens a document from a file path. Pass an empty password
// for unencrypted documents.
func (l *Library) OpenDocument(path, password string) (*Document, error) {
	ptr := l.cat.LoadDocument(path, password)
	return l.wrapDocument(ptr, nil, path)
}

// OpenDocumentBytes opens a document from an in-memory buffer. The document
// keeps a reference to data until Close; the caller must not modify it.
func (l *Library) OpenDocumentBytes(data []byte, password string) (*Document, error) {
	ptr := l.cat.LoadMemDocument(data, password)
	return l.wrapDocument(ptr, data, "<memory>")
}

func (l *Library) wrapDocument(ptr uintptr, data []byte, source string) (*Document, error) {
	h, err := newHandle[documentKind](ptr)
	if err != nil {
		return nil, fmt.Errorf("pdfium: open %s: %s: %w", source, openErrorString(l.cat.LastError()), err)
	}
	d := &Document{h: h, lib: l, data: data}
	runtime.SetFinalizer(d, finalizeDocument)
	Logger().Debug("pdfium: document opened", "source", source)
	return d, nil
}

// openErrorString maps FPDF_GetLastError codes to messages.
func openErrorString(code uint32) string {
	switch code {
	case 0:
		return "no error reported"
	case 1:
		return "unknown error"
	case 2:
		return "file not found or could not be opened"
	case 3:
		return "file is not a PDF or is corrupted"
	case 4:
		return "password required or incorrect password"
	case 5:
		return "unsupported security scheme"
	case 6:
		return "page not found or content error"
	default:
		return fmt.Sprintf("error code %d", code)
	}
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.lib.cat.PageCount(d.h.Raw())
}

// Page loads the page with the given zero-based index. The returned page
// must be closed before the document.
func (d *Document) Page(index int) (*Page, error) {
	ptr := d.lib.cat.LoadPage(d.h.Raw(), index)
	h, err := newHandle[pageKind](ptr)
	if err != nil {
		return nil, fmt.Errorf("pdfium: load page %d: %w", index, err)
	}
	p := &Page{h: h, lib: d.lib, index: index}
	runtime.SetFinalizer(p, finalizePage)
	return p, nil
}

// Metadata returns a document information value such as "Title", "Author",
// "Subject", "Creator" or "Producer". PDFium hands the value back as
// UTF-16LE; it is decoded here. Absent tags yield the empty string.
func (d *Document) Metadata(tag string) string {
	raw := d.lib.cat.MetaText(d.h.Raw(), tag)
	if len(raw) == 0 {
		return ""
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	decoded, err := dec.Bytes(raw)
	if err != nil {
		return ""
	}
	return string(bytes.TrimRight(decoded, "\x00"))
}

// Close releases the native document. Idempotent.
func (d *Document) Close() {
	if d.closed.Swap(true) {
		return
	}
	runtime.SetFinalizer(d, nil)
	d.lib.cat.CloseDocument(d.h.Raw())
	d.data = nil
}

func finalizeDocument(d *Document) {
	if d.closed.Load() {
		return
	}
	Logger().Warn("pdfium: document reclaimed by finalizer without Close")
	if d.lib.alive() {
		d.Close()
	}
}
