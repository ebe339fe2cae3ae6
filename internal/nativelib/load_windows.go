//go:build windows

package nativelib

import "golang.org/x/sys/windows"

var defaultLibraryNames = []string{"pdfium.dll"}

func openLibrary(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	return uintptr(h), err
}
