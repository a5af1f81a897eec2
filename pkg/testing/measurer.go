package testing

import (
	"unicode/utf8"

	"github.com/go-drift/badgeview/pkg/graphics"
)

// FixedMeasurer is a graphics.TextMeasurer with a constant advance per rune
// and a constant line height, independent of the font.
type FixedMeasurer struct {
	Advance float64
	Height  float64
	// Err, when set, is returned from every call.
	Err error
}

// NewFixedMeasurer returns a measurer with the given advance and line height.
func NewFixedMeasurer(advance, lineHeight float64) *FixedMeasurer {
	return &FixedMeasurer{Advance: advance, Height: lineHeight}
}

// MeasureText returns runes*Advance by the line height.
func (m *FixedMeasurer) MeasureText(text string, _ graphics.Font) (graphics.Size, error) {
	if m.Err != nil {
		return graphics.Size{}, m.Err
	}
	return graphics.Size{
		Width:  float64(utf8.RuneCountInString(text)) * m.Advance,
		Height: m.Height,
	}, nil
}

// LineHeight returns Height.
func (m *FixedMeasurer) LineHeight(graphics.Font) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Height, nil
}
