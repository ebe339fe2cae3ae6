package pdfium

import (
	"runtime"
	"sync/atomic"
)

// Page is a loaded page of an open Document. It owns a native page handle
// and must be closed before the document it came from.
type Page struct {
	h      Handle[pageKind]
	lib    *Library
	index  int
	closed atomic.Bool
}

// Index returns the zero-based page index within its document.
func (p *Page) Index() int { return p.index }

// Boundary returns the page's default boundary rectangle in points,
// anchored at the origin. It implements [PageBoundary] for the render
// resolver.
func (p *Page) Boundary() Rect {
	w, h := p.lib.cat.PageSize(p.h.Raw())
	return RectWH(w, h)
}

// Render rasterizes the page according to cfg: the config is resolved
// against the page boundary, a bitmap of the resolved size is allocated,
// filled with the background color unless disabled, and painted by the
// native rasterizer. The caller owns the returned bitmap and must close it.
func (p *Page) Render(cfg *RenderConfig) (*Bitmap, error) {
	plan, err := cfg.Resolve(p)
	if err != nil {
		return nil, err
	}

	bmp, err := p.lib.NewBitmap(plan.Width, plan.Height, cfg.format)
	if err != nil {
		return nil, err
	}

	if cfg.hasBackground {
		bmp.Fill(cfg.background)
	}

	clip := cfg.clip
	if !cfg.hasClip {
		clip = RectWH(float64(plan.Width), float64(plan.Height))
	}
	p.lib.cat.RenderPage(bmp.h.Raw(), p.h.Raw(), plan.Matrix, clip, cfg.flags)
	return bmp, nil
}

// Close releases the native page. Idempotent.
func (p *Page) Close() {
	if p.closed.Swap(true) {
		return
	}
	runtime.SetFinalizer(p, nil)
	p.lib.cat.ClosePage(p.h.Raw())
}

func finalizePage(p *Page) {
	if p.closed.Load() {
		return
	}
	Logger().Warn("pdfium: page reclaimed by finalizer without Close", "index", p.index)
	if p.lib.alive() {
		p.Close()
	}
}
