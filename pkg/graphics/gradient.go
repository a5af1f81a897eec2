package graphics

import "math"

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines an axial gradient between two points in the local
// coordinate space of the shape it fills.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *LinearGradient {
	return &LinearGradient{
		Start: start,
		End:   end,
		Stops: cloneGradientStops(stops),
	}
}

// IsValid reports whether the gradient has usable stops.
func (g *LinearGradient) IsValid() bool {
	if g == nil || len(g.Stops) < 2 {
		return false
	}
	for _, stop := range g.Stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the gradient.
func (g *LinearGradient) Clone() *LinearGradient {
	if g == nil {
		return nil
	}
	return NewLinearGradient(g.Start, g.End, g.Stops)
}

// ColorAt evaluates the gradient at point p. Points before the start or
// past the end take the first or last stop color.
func (g *LinearGradient) ColorAt(p Offset) Color {
	if g == nil || len(g.Stops) == 0 {
		return ColorTransparent
	}
	dx, dy := g.End.X-g.Start.X, g.End.Y-g.Start.Y
	lengthSq := dx*dx + dy*dy
	t := 0.0
	if lengthSq > 0 {
		t = ((p.X-g.Start.X)*dx + (p.Y-g.Start.Y)*dy) / lengthSq
	}
	return g.colorAtPosition(t)
}

func (g *LinearGradient) colorAtPosition(t float64) Color {
	stops := g.Stops
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span <= 0 {
			return b.Color
		}
		return mixColor(a.Color, b.Color, (t-a.Position)/span)
	}
	return last.Color
}

// mixColor linearly blends two colors channel by channel.
func mixColor(a, b Color, t float64) Color {
	ar, ag, ab, aa := a.RGBAF()
	br, bg, bb, ba := b.RGBAF()
	ch := func(x, y float64) uint8 {
		return uint8(math.Round((x + (y-x)*t) * maxByte))
	}
	return RGBA8(ch(ar, br), ch(ag, bg), ch(ab, bb), ch(aa, ba))
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
