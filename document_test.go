package pdfium

import (
	"errors"
	"strings"
	"testing"
)

func TestOpenDocumentFailure(t *testing.T) {
	lib, cat := initTestLibrary(t)
	cat.doc = nil // every open returns a null handle
	cat.lastErrorVal = 4

	_, err := lib.OpenDocument("missing.pdf", "")
	var nullErr *NullHandleError
	if !errors.As(err, &nullErr) {
		t.Fatalf("OpenDocument() = %v, want wrapped *NullHandleError", err)
	}
	if nullErr.Kind != "document" {
		t.Errorf("Kind = %q, want %q", nullErr.Kind, "document")
	}
	if !strings.Contains(err.Error(), "password") {
		t.Errorf("error %q does not surface the native error cause", err.Error())
	}
}

func TestDocumentPagesAndMetadata(t *testing.T) {
	lib, cat := initTestLibrary(t)
	cat.doc = &mockDoc{
		pageWidth:  500,
		pageHeight: 1000,
		pageCount:  3,
		meta: map[string][]byte{
			"Title": utf16le("Quarterly Report"),
		},
	}

	doc, err := lib.OpenDocument("report.pdf", "")
	if err != nil {
		t.Fatalf("OpenDocument() = %v", err)
	}
	defer doc.Close()

	if got := doc.PageCount(); got != 3 {
		t.Errorf("PageCount() = %d, want 3", got)
	}
	if got := doc.Metadata("Title"); got != "Quarterly Report" {
		t.Errorf("Metadata(Title) = %q, want %q", got, "Quarterly Report")
	}
	if got := doc.Metadata("Author"); got != "" {
		t.Errorf("Metadata(Author) = %q, want empty", got)
	}

	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1) = %v", err)
	}
	defer page.Close()
	if page.Index() != 1 {
		t.Errorf("Index() = %d, want 1", page.Index())
	}

	if _, err := doc.Page(7); err == nil {
		t.Error("Page(7) out of range = nil error, want NullHandleError")
	}
}

func TestDocumentCloseExactlyOnce(t *testing.T) {
	lib, cat := initTestLibrary(t)
	cat.doc = &mockDoc{pageCount: 1, pageWidth: 10, pageHeight: 10}

	doc, err := lib.OpenDocument("a.pdf", "")
	if err != nil {
		t.Fatalf("OpenDocument() = %v", err)
	}
	page, err := doc.Page(0)
	if err != nil {
		t.Fatalf("Page(0) = %v", err)
	}

	page.Close()
	page.Close()
	doc.Close()
	doc.Close()

	if cat.pageCloses != 1 {
		t.Errorf("ClosePage called %d times, want 1", cat.pageCloses)
	}
	if cat.docCloses != 1 {
		t.Errorf("CloseDocument called %d times, want 1", cat.docCloses)
	}
}
