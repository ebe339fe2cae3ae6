package pdfium

// Native resources are manipulated through opaque pointers that PDFium
// allocates and frees. Handle wraps one such pointer and rules out the two
// classic failure modes at the type level: a null pointer escaping into a
// "valid" resource, and handles of different resource kinds being mixed up.
//
// A Handle never frees anything itself. The owning resource type (Document,
// Page, Bitmap) calls the kind-specific destroy entry point exactly once in
// its Close method; Handle only guarantees that what it holds is non-null.

// handleKind is the marker constraint for Handle type parameters. Each
// resource kind provides a zero-size marker type so a Handle[pageKind]
// cannot be passed where a Handle[bitmapKind] is expected.
type handleKind interface {
	kindName() string
}

type documentKind struct{}

func (documentKind) kindName() string { return "document" }

type pageKind struct{}

func (pageKind) kindName() string { return "page" }

type bitmapKind struct{}

func (bitmapKind) kindName() string { return "bitmap" }

// Handle is a non-null opaque pointer to a native resource of kind K.
// The zero value is invalid; handles are only produced by newHandle.
type Handle[K handleKind] struct {
	ptr uintptr
}

// newHandle wraps a pointer freshly returned by a native create call.
// It fails with NullHandleError iff the pointer is null, which is how
// PDFium create calls signal failure. It never fails otherwise and has no
// side effects beyond wrapping.
func newHandle[K handleKind](ptr uintptr) (Handle[K], error) {
	if ptr == 0 {
		var k K
		return Handle[K]{}, &NullHandleError{Kind: k.kindName()}
	}
	return Handle[K]{ptr: ptr}, nil
}

// Raw returns the underlying pointer for passing to a native call that does
// not take ownership. The handle remains the owner.
func (h Handle[K]) Raw() uintptr { return h.ptr }
