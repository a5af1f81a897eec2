package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in points.
type Offset struct {
	X float64
	Y float64
}

// Translate returns the offset moved by (dx, dy).
func (o Offset) Translate(dx, dy float64) Offset {
	return Offset{X: o.X + dx, Y: o.Y + dy}
}

// Size represents width and height dimensions in points.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromSize returns a rect with origin (0, 0) and the given size.
func RectFromSize(size Size) Rect {
	return RectFromLTWH(0, 0, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// WithOrigin returns the rect moved so its top-left corner is at (x, y).
func (r Rect) WithOrigin(x, y float64) Rect {
	return RectFromLTWH(x, y, r.Width(), r.Height())
}

// WithSize returns the rect resized from its top-left corner.
func (r Rect) WithSize(width, height float64) Rect {
	return RectFromLTWH(r.Left, r.Top, width, height)
}

// Inset shrinks the rect by dx on the left and right and dy on the top and
// bottom. Insets larger than half a dimension collapse that dimension to zero
// around the center instead of inverting the rect.
func (r Rect) Inset(dx, dy float64) Rect {
	out := Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right - dx,
		Bottom: r.Bottom - dy,
	}
	if out.Right < out.Left {
		c := (r.Left + r.Right) * 0.5
		out.Left, out.Right = c, c
	}
	if out.Bottom < out.Top {
		c := (r.Top + r.Bottom) * 0.5
		out.Top, out.Bottom = c, c
	}
	return out
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Radius represents corner radii for rounded rectangles.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// RRect represents a rounded rectangle with a uniform corner radius.
type RRect struct {
	Rect   Rect
	Radius Radius
}

// RRectFromRectAndRadius creates a rounded rectangle. Radii are clamped to
// half of the corresponding rect dimension and never go negative.
func RRectFromRectAndRadius(rect Rect, radius Radius) RRect {
	maxX := math.Max(rect.Width()*0.5, 0)
	maxY := math.Max(rect.Height()*0.5, 0)
	return RRect{
		Rect: rect,
		Radius: Radius{
			X: math.Max(0, math.Min(radius.X, maxX)),
			Y: math.Max(0, math.Min(radius.Y, maxY)),
		},
	}
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// SnapToPixel rounds v to the nearest multiple of 1/scale, the device pixel
// grid for a display with the given scale factor. A non-positive or NaN scale
// leaves v unchanged.
func SnapToPixel(v, scale float64) float64 {
	if !(scale > 0) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*scale) / scale
}

// CeilToPixel rounds v up to the device pixel grid for scale.
func CeilToPixel(v, scale float64) float64 {
	if !(scale > 0) || math.IsInf(v, 0) {
		return v
	}
	return math.Ceil(v*scale-epsilon) / scale
}

// FloorToPixel rounds v down to the device pixel grid for scale.
func FloorToPixel(v, scale float64) float64 {
	if !(scale > 0) || math.IsInf(v, 0) {
		return v
	}
	return math.Floor(v*scale+epsilon) / scale
}

// SnapRect snaps origin and size of r independently to the device pixel grid.
func SnapRect(r Rect, scale float64) Rect {
	return RectFromLTWH(
		SnapToPixel(r.Left, scale),
		SnapToPixel(r.Top, scale),
		SnapToPixel(r.Width(), scale),
		SnapToPixel(r.Height(), scale),
	)
}

// IsPixelAligned reports whether v lies on the device pixel grid for scale.
func IsPixelAligned(v, scale float64) bool {
	if !(scale > 0) {
		return true
	}
	p := v * scale
	return math.Abs(p-math.Round(p)) <= epsilon
}
