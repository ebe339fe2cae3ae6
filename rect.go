package pdfium

// Rect is an axis-aligned rectangle. Page boundaries are expressed in
// points with the origin at the top-left after PDFium's device-space flip;
// clip rectangles are expressed in device pixels.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectWH creates a rectangle anchored at the origin with the given size.
func RectWH(width, height float64) Rect {
	return Rect{Right: width, Bottom: height}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }
