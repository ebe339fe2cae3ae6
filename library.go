package pdfium

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopdfium/pdfium/internal/nativelib"
)

// Library is the process-wide guard in front of the native PDFium library.
// Every resource constructor routes its native pointer through the guard's
// call catalog, so a live resource implies an initialized library.
//
// Library adds no locking around native calls. PDFium itself is not safe
// for concurrent use on a shared set of resources; callers that render from
// multiple goroutines must serialize access themselves. The guard's own
// state transitions (Init, Shutdown, Instance) are safe for concurrent use.
type Library struct {
	cat    Catalog
	closed atomic.Bool
}

var (
	guardMu       sync.Mutex
	guard         *Library
	guardShutDown bool
)

// Option configures Init.
type Option func(*initOptions)

type initOptions struct {
	libraryPath string
	catalog     Catalog
}

// WithLibraryPath sets an explicit path to the PDFium shared library.
// Without it, Init honors the PDFIUM_LIBRARY_PATH environment variable and
// then falls back to the platform's conventional library names.
func WithLibraryPath(path string) Option {
	return func(o *initOptions) {
		o.libraryPath = path
	}
}

// WithCatalog substitutes a custom call catalog instead of loading the
// native library. Used by tests and by embedders that provide their own
// PDFium build.
func WithCatalog(c Catalog) Option {
	return func(o *initOptions) {
		o.catalog = c
	}
}

// Init loads the native library and initializes it. It is idempotent: once
// the guard is initialized, further calls are no-ops returning nil, and the
// options they carry are ignored. After Shutdown, Init may be called again
// to reinitialize.
func Init(opts ...Option) error {
	var o initOptions
	for _, opt := range opts {
		opt(&o)
	}

	guardMu.Lock()
	defer guardMu.Unlock()

	if guard != nil {
		return nil
	}

	cat := o.catalog
	if cat == nil {
		funcs, err := nativelib.Load(o.libraryPath)
		if err != nil {
			return fmt.Errorf("pdfium: load native library: %w", err)
		}
		cat = &nativeCatalog{f: funcs}
	}

	cat.InitLibrary()
	guard = &Library{cat: cat}
	guardShutDown = false
	Logger().Info("pdfium: native library initialized")
	return nil
}

// Instance returns the initialized guard, or ErrNotInitialized before the
// first Init, or ErrShutDown after Shutdown. It never panics.
func Instance() (*Library, error) {
	guardMu.Lock()
	defer guardMu.Unlock()

	if guard == nil {
		if guardShutDown {
			return nil, ErrShutDown
		}
		return nil, ErrNotInitialized
	}
	return guard, nil
}

// MustInstance returns the initialized guard or panics. It is meant for
// call sites that are only reachable after a resource already exists, where
// an uninitialized library is a programming error rather than a condition
// to handle.
func MustInstance() *Library {
	l, err := Instance()
	if err != nil {
		panic(err)
	}
	return l
}

// Shutdown releases the native library. All documents, pages and bitmaps
// must be closed first; a resource outliving its guard reads freed native
// state. Shutdown is a no-op when the guard is not initialized.
func Shutdown() {
	guardMu.Lock()
	defer guardMu.Unlock()

	if guard == nil {
		return
	}
	guard.closed.Store(true)
	guard.cat.DestroyLibrary()
	guard = nil
	guardShutDown = true
	Logger().Info("pdfium: native library shut down")
}

// alive reports whether the guard still fronts a loaded library.
func (l *Library) alive() bool {
	return l != nil && !l.closed.Load()
}
