package pdfium

import (
	"errors"
	"fmt"
)

// Common errors returned by the library guard and the rendering pipeline.
var (
	// ErrNotInitialized is returned by Instance when Init has not been
	// called yet. Recoverable: call Init first.
	ErrNotInitialized = errors.New("pdfium: library not initialized (call Init first)")

	// ErrShutDown is returned by Instance after an explicit Shutdown.
	// Kept distinct from ErrNotInitialized so a teardown ordering bug is
	// not misreported as a missing Init.
	ErrShutDown = errors.New("pdfium: library has been shut down")

	// ErrInvalidRenderConfig is the base error for every render
	// configuration rejected by RenderConfig.Resolve. The wrapped message
	// names the specific violated rule.
	ErrInvalidRenderConfig = errors.New("pdfium: invalid render configuration")

	// ErrImageSize is returned by Bitmap.Image when the normalized pixel
	// data does not match width*height*4 bytes. This usually means the
	// native buffer carries row padding (stride > width*4).
	ErrImageSize = errors.New("pdfium: pixel data does not match image dimensions")
)

// NullHandleError reports that a native create call signaled failure by
// returning a null pointer. The failed resource kind is included for
// diagnostics.
type NullHandleError struct {
	Kind string
}

func (e *NullHandleError) Error() string {
	return fmt.Sprintf("pdfium: native call returned a null %s handle", e.Kind)
}

// UnsupportedFormatError reports that a pixel normalization was requested
// for a bitmap format outside the supported set. Callers can fall back to
// RawBytes or recreate the bitmap as FormatBGRA.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("pdfium: unsupported image format %s", e.Format)
}

// configErrorf wraps ErrInvalidRenderConfig with a rule-specific message.
// Each validation rule produces its own message; callers match on the
// message text, so the phrasing is part of the contract.
func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRenderConfig, fmt.Sprintf(format, args...))
}
