package graphics

// BoxShadow defines a drop shadow cast by a shape or text.
//
// BlurRadius controls softness; zero draws a hard-edged copy of the shape
// moved by Offset.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64
	Opacity    float64 // multiplies Color's alpha; 0 disables the shadow
}

// NewBoxShadow creates a fully opaque shadow with the given parameters.
func NewBoxShadow(color Color, offset Offset, blurRadius float64) *BoxShadow {
	return &BoxShadow{
		Color:      color,
		Offset:     offset,
		BlurRadius: blurRadius,
		Opacity:    1,
	}
}

// Sigma returns the gaussian sigma equivalent of BlurRadius.
// Returns 0 if BlurRadius is zero or negative.
func (s BoxShadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// EffectiveColor returns Color with Opacity applied.
func (s BoxShadow) EffectiveColor() Color {
	return s.Color.ScaleAlpha(s.Opacity)
}

// IsVisible reports whether the shadow would draw anything.
func (s *BoxShadow) IsVisible() bool {
	return s != nil && s.Opacity > 0 && s.Color.Alpha() > 0
}
