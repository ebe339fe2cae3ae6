package pdfium

import "math"

// RenderFlags select optional rasterizer behavior. The values match
// PDFium's FPDF_* render flags and are passed through unchanged.
type RenderFlags int

const (
	// RenderAnnotations includes annotation content in the output.
	RenderAnnotations RenderFlags = 0x01

	// RenderLCDText optimizes text for LCD subpixel layouts.
	RenderLCDText RenderFlags = 0x02

	// RenderNoNativeText disables platform text rendering.
	RenderNoNativeText RenderFlags = 0x04

	// RenderGrayscale renders in grayscale regardless of bitmap format.
	RenderGrayscale RenderFlags = 0x08

	// RenderLimitedImageCache caps the rasterizer's image cache.
	RenderLimitedImageCache RenderFlags = 0x200

	// RenderForceHalftone forces halftone for image stretching.
	RenderForceHalftone RenderFlags = 0x400

	// RenderForPrinting renders with print-oriented fidelity.
	RenderForPrinting RenderFlags = 0x800

	// RenderNoSmoothText disables text anti-aliasing.
	RenderNoSmoothText RenderFlags = 0x1000

	// RenderNoSmoothImage disables image anti-aliasing.
	RenderNoSmoothImage RenderFlags = 0x2000

	// RenderNoSmoothPath disables path anti-aliasing.
	RenderNoSmoothPath RenderFlags = 0x4000
)

// PageBoundary supplies the default page boundary rectangle, in points,
// that the resolver scales against when only one output dimension is given.
// Page implements it; tests substitute fixed rectangles.
type PageBoundary interface {
	Boundary() Rect
}

// RenderConfig describes how a page should be rasterized. The builder
// methods accept any combination; consistency is checked by Resolve, which
// reports the first violated rule as an ErrInvalidRenderConfig. The zero
// config (via NewRenderConfig) renders BGRA with a white background and no
// flags.
//
// RenderConfig is a plain value with no resource ownership; copies are
// independent.
type RenderConfig struct {
	width, height       int
	hasWidth, hasHeight bool

	format Format

	background    Color
	hasBackground bool

	flags RenderFlags

	scale    float64
	hasScale bool

	panX, panY float64
	hasPan     bool

	matrix    Matrix
	hasMatrix bool

	clip    Rect
	hasClip bool
}

// NewRenderConfig returns a config with the defaults: BGRA output, white
// background, no render flags, and nothing else set.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		format:        FormatBGRA,
		background:    White,
		hasBackground: true,
	}
}

// Width sets the target width in pixels.
func (c *RenderConfig) Width(w int) *RenderConfig {
	c.width, c.hasWidth = w, true
	return c
}

// Height sets the target height in pixels.
func (c *RenderConfig) Height(h int) *RenderConfig {
	c.height, c.hasHeight = h, true
	return c
}

// Format sets the pixel format of the output bitmap.
func (c *RenderConfig) Format(f Format) *RenderConfig {
	c.format = f
	return c
}

// Background sets the color the bitmap is filled with before rendering.
func (c *RenderConfig) Background(col Color) *RenderConfig {
	c.background, c.hasBackground = col, true
	return c
}

// NoBackground leaves the bitmap unfilled before rendering.
func (c *RenderConfig) NoBackground() *RenderConfig {
	c.hasBackground = false
	return c
}

// Flags sets the render option flags.
func (c *RenderConfig) Flags(f RenderFlags) *RenderConfig {
	c.flags = f
	return c
}

// Scale sets a uniform page-to-device scale factor. Mutually exclusive
// with Matrix.
//
// Known sharp edge: when width, height and scale are all set, no
// consistency check is performed between the scale and the width/height
// ratio; the dimensions pass through verbatim and the caller owns any
// cropping or letterboxing that results.
func (c *RenderConfig) Scale(s float64) *RenderConfig {
	c.scale, c.hasScale = s, true
	return c
}

// Pan sets a translation, in device pixels, applied after scaling.
// Mutually exclusive with Matrix.
func (c *RenderConfig) Pan(x, y float64) *RenderConfig {
	c.panX, c.panY, c.hasPan = x, y, true
	return c
}

// Matrix sets an explicit page-to-device transform. Mutually exclusive
// with Scale and Pan.
func (c *RenderConfig) Matrix(m Matrix) *RenderConfig {
	c.matrix, c.hasMatrix = m, true
	return c
}

// Clip sets the device-space clip rectangle. Without it, rendering clips to
// the full bitmap.
func (c *RenderConfig) Clip(r Rect) *RenderConfig {
	c.clip, c.hasClip = r, true
	return c
}

// RenderPlan is the resolver output: a concrete bitmap size and the
// page-to-device transform to rasterize with. It is produced once per
// Resolve call and consumed immediately by the rendering step.
type RenderPlan struct {
	Width  int
	Height int
	Matrix Matrix
}

// Resolve validates the configuration and computes the output size and
// transform against the page boundary. It is a pure function of the config
// and one boundary read: resolving an unmodified config twice yields
// identical plans.
//
// Validation rules, each with its own diagnostic:
//  1. at least one of width and height must be set
//  2. width and height, when set, must be greater than 0
//  3. scale, when set, must be greater than 0 and finite
//  4. matrix and scale are mutually exclusive
//  5. matrix and pan are mutually exclusive
//  6. when both width and height are set, exactly one of matrix or scale
//     must be set as well
//
// When only one dimension is set, the other is derived from the page
// boundary; the derived dimension is truncated toward zero, not rounded.
// In that case the scale is always the derived one, and an explicit Scale
// does not enter the computation.
func (c *RenderConfig) Resolve(page PageBoundary) (RenderPlan, error) {
	if err := c.validate(); err != nil {
		return RenderPlan{}, err
	}

	if c.hasWidth && c.hasHeight {
		m := c.matrix
		if !c.hasMatrix {
			m = c.scaleMatrix(c.scale)
		}
		return RenderPlan{Width: c.width, Height: c.height, Matrix: m}, nil
	}

	boundary := page.Boundary()
	var (
		scale         float64
		width, height int
	)
	if c.hasHeight {
		scale = float64(c.height) / boundary.Height()
		width = int(boundary.Width() * scale)
		height = c.height
	} else {
		scale = float64(c.width) / boundary.Width()
		width = c.width
		height = int(boundary.Height() * scale)
	}
	return RenderPlan{Width: width, Height: height, Matrix: c.scaleMatrix(scale)}, nil
}

// scaleMatrix builds a uniform scale with the optional pan as translation.
func (c *RenderConfig) scaleMatrix(s float64) Matrix {
	m := Scale(s, s)
	if c.hasPan {
		m.C = c.panX
		m.F = c.panY
	}
	return m
}

func (c *RenderConfig) validate() error {
	if !c.hasWidth && !c.hasHeight {
		return configErrorf("width or height must be set")
	}
	if c.hasWidth && c.width <= 0 {
		return configErrorf("width must be greater than 0, got %d", c.width)
	}
	if c.hasHeight && c.height <= 0 {
		return configErrorf("height must be greater than 0, got %d", c.height)
	}
	if c.hasScale {
		if math.IsNaN(c.scale) || math.IsInf(c.scale, 0) || c.scale <= 0 {
			return configErrorf("scale must be finite and greater than 0, got %v", c.scale)
		}
	}
	if c.hasMatrix && c.hasScale {
		return configErrorf("matrix and scale are mutually exclusive")
	}
	if c.hasMatrix && c.hasPan {
		return configErrorf("matrix and pan are mutually exclusive")
	}
	if c.hasWidth && c.hasHeight && !c.hasMatrix && !c.hasScale {
		return configErrorf("either matrix or scale must be set when both width and height are given")
	}
	return nil
}
