//go:build darwin

package nativelib

var defaultLibraryNames = []string{"libpdfium.dylib"}
