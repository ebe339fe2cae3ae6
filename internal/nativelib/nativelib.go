// Package nativelib loads the PDFium shared library at runtime and
// registers the entry points the pdfium package calls. Loading goes through
// purego, so no cgo toolchain is required; the library only needs to be
// present on the system at run time.
package nativelib

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/ebitengine/purego"
)

// EnvLibraryPath names the environment variable consulted when no explicit
// library path is given.
const EnvLibraryPath = "PDFIUM_LIBRARY_PATH"

// Funcs holds the registered native entry points. All fields are populated
// by Load; a partially populated Funcs is never returned.
type Funcs struct {
	InitLibrary    func()
	DestroyLibrary func()

	LoadDocument    func(path, password string) uintptr
	LoadMemDocument func(data unsafe.Pointer, size int, password string) uintptr
	CloseDocument   func(doc uintptr)
	GetLastError    func() uint32
	GetPageCount    func(doc uintptr) int32
	LoadPage        func(doc uintptr, index int32) uintptr
	ClosePage       func(page uintptr)
	GetPageWidthF   func(page uintptr) float32
	GetPageHeightF  func(page uintptr) float32
	GetMetaText     func(doc uintptr, tag string, buffer unsafe.Pointer, buflen uint64) uint64

	BitmapCreateEx  func(width, height, format int32, firstScan unsafe.Pointer, stride int32) uintptr
	BitmapDestroy   func(bitmap uintptr)
	BitmapGetBuffer func(bitmap uintptr) uintptr
	BitmapGetStride func(bitmap uintptr) int32
	BitmapFillRect  func(bitmap uintptr, left, top, width, height int32, color uint32)

	RenderPageBitmapWithMatrix func(bitmap, page uintptr, matrix, clipping unsafe.Pointer, flags int32)
}

// Load opens the PDFium shared library and registers every entry point in
// Funcs. The library is located, in order, from the explicit path argument,
// the PDFIUM_LIBRARY_PATH environment variable, and the platform's
// conventional library names.
func Load(path string) (*Funcs, error) {
	candidates := candidatePaths(path)

	var (
		handle  uintptr
		lastErr error
	)
	for _, name := range candidates {
		h, err := openLibrary(name)
		if err == nil && h != 0 {
			handle = h
			break
		}
		lastErr = err
	}
	if handle == 0 {
		return nil, fmt.Errorf("nativelib: cannot open pdfium library (tried %v): %w", candidates, lastErr)
	}

	f := new(Funcs)
	if err := registerAll(f, handle); err != nil {
		return nil, err
	}
	return f, nil
}

func candidatePaths(path string) []string {
	if path != "" {
		return []string{path}
	}
	if env := os.Getenv(EnvLibraryPath); env != "" {
		return []string{env}
	}
	return defaultLibraryNames
}

// registerAll binds every field of Funcs to its native symbol. purego
// panics on a missing symbol (a mismatched PDFium build); the panic is
// converted back into an error so Load stays fallible.
func registerAll(f *Funcs, lib uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("nativelib: register symbols: %v", r)
		}
	}()

	purego.RegisterLibFunc(&f.InitLibrary, lib, "FPDF_InitLibrary")
	purego.RegisterLibFunc(&f.DestroyLibrary, lib, "FPDF_DestroyLibrary")

	purego.RegisterLibFunc(&f.LoadDocument, lib, "FPDF_LoadDocument")
	purego.RegisterLibFunc(&f.LoadMemDocument, lib, "FPDF_LoadMemDocument")
	purego.RegisterLibFunc(&f.CloseDocument, lib, "FPDF_CloseDocument")
	purego.RegisterLibFunc(&f.GetLastError, lib, "FPDF_GetLastError")
	purego.RegisterLibFunc(&f.GetPageCount, lib, "FPDF_GetPageCount")
	purego.RegisterLibFunc(&f.LoadPage, lib, "FPDF_LoadPage")
	purego.RegisterLibFunc(&f.ClosePage, lib, "FPDF_ClosePage")
	purego.RegisterLibFunc(&f.GetPageWidthF, lib, "FPDF_GetPageWidthF")
	purego.RegisterLibFunc(&f.GetPageHeightF, lib, "FPDF_GetPageHeightF")
	purego.RegisterLibFunc(&f.GetMetaText, lib, "FPDF_GetMetaText")

	purego.RegisterLibFunc(&f.BitmapCreateEx, lib, "FPDFBitmap_CreateEx")
	purego.RegisterLibFunc(&f.BitmapDestroy, lib, "FPDFBitmap_Destroy")
	purego.RegisterLibFunc(&f.BitmapGetBuffer, lib, "FPDFBitmap_GetBuffer")
	purego.RegisterLibFunc(&f.BitmapGetStride, lib, "FPDFBitmap_GetStride")
	purego.RegisterLibFunc(&f.BitmapFillRect, lib, "FPDFBitmap_FillRect")

	purego.RegisterLibFunc(&f.RenderPageBitmapWithMatrix, lib, "FPDF_RenderPageBitmapWithMatrix")

	return nil
}
