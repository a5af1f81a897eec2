package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape on the canvas.
//
// A zero-value Paint fills with a transparent color and draws nothing.
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Color       Color
	Gradient    *LinearGradient // If set, overrides Color for the fill
	Style       PaintStyle      // Fill or stroke
	StrokeWidth float64         // Width of stroke in points
	Alpha       float64         // Overall opacity 0.0-1.0
}

// DefaultPaint returns a basic opaque white fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		Alpha:       1.0,
	}
}

// IsVisible reports whether drawing with the paint could change any pixel.
func (p Paint) IsVisible() bool {
	if p.Alpha <= 0 {
		return false
	}
	if p.Style == PaintStyleStroke && p.StrokeWidth <= 0 {
		return false
	}
	if p.Gradient != nil {
		return p.Gradient.IsValid()
	}
	return p.Color.Alpha() > 0
}
