// Package pdfium is a memory-safe core for rendering PDF pages through the
// PDFium native library.
//
// # Overview
//
// PDFium exposes its surface through opaque pointers and manual memory
// management. This package wraps the parts where safety actually has to be
// engineered: non-null ownership handles with exactly-once teardown, a
// process-wide guard around the loaded library, a pixel buffer with a
// canonical RGBA read-back path, and a resolver that turns a partial render
// configuration into a concrete output size and transform.
//
// The native library is loaded at runtime with purego; no cgo toolchain is
// needed, only a PDFium shared library on the system (see
// PDFIUM_LIBRARY_PATH).
//
// # Quick Start
//
//	import "github.com/gopdfium/pdfium"
//
//	if err := pdfium.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	defer pdfium.Shutdown()
//
//	doc, err := pdfium.OpenDocument("report.pdf", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer doc.Close()
//
//	page, err := doc.Page(0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer page.Close()
//
//	bmp, err := page.Render(pdfium.NewRenderConfig().Height(1080))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bmp.Close()
//
//	if err := bmp.SavePNG("page.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The package is organized around four pieces:
//   - Handle: generic non-null ownership wrapper, one marker kind per resource
//   - Library: process-wide guard with Instance (fallible) and MustInstance accessors
//   - Bitmap: native pixel buffer with raw view and normalized RGBA copy
//   - RenderConfig / RenderPlan: pure resolution of size and transform
//
// The loading glue lives in internal/nativelib.
//
// # Concurrency
//
// PDFium is not safe for concurrent use on a shared set of resources, and
// this package deliberately adds no locking around native calls; partial
// locking here would only hide the constraint. Serialize all calls that
// touch the same document tree, or confine PDFium work to one goroutine.
// The guard's own lifecycle (Init, Instance, Shutdown) and SetLogger are
// safe for concurrent use.
package pdfium

// Version is the current version of the library.
const Version = "0.1.0"
