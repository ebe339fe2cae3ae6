//go:build linux

package nativelib

// Conventional sonames for a system or bundled PDFium build.
var defaultLibraryNames = []string{"libpdfium.so", "libpdfium.so.1"}
