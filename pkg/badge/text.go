package badge

import "fmt"

// TextState classifies the most recent text change.
type TextState int

const (
	// TextStable means no text change has happened yet.
	TextStable TextState = iota
	// TextShrinkingOrEqual means the new text was no wider than the text it
	// replaced, so it was swapped in without animation.
	TextShrinkingOrEqual
	// TextGrowing means the new text was wider. The frame grew immediately
	// and the glyph swap may have been animated.
	TextGrowing
)

func (s TextState) String() string {
	switch s {
	case TextStable:
		return "stable"
	case TextShrinkingOrEqual:
		return "shrinking_or_equal"
	case TextGrowing:
		return "growing"
	default:
		return fmt.Sprintf("TextState(%d)", int(s))
	}
}

// classifyTextChange compares padded widths of the displayed and new text.
func classifyTextChange(oldWidth, newWidth float64) TextState {
	if newWidth <= oldWidth {
		return TextShrinkingOrEqual
	}
	return TextGrowing
}
