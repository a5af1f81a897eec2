package badge

import (
	"fmt"
	"strings"
)

// HorizontalAlignment places the badge along the parent's x axis.
//
// Aligned badges straddle their anchor: a right aligned badge is centered on
// the parent's right edge, half inside and half outside.
type HorizontalAlignment int

const (
	// HorizontalNone leaves the frame's x origin alone.
	HorizontalNone HorizontalAlignment = iota
	// HorizontalLeft centers the badge on the parent's left edge.
	HorizontalLeft
	// HorizontalCenter centers the badge on the parent's vertical midline.
	HorizontalCenter
	// HorizontalRight centers the badge on the parent's right edge.
	HorizontalRight
)

func (a HorizontalAlignment) String() string {
	switch a {
	case HorizontalNone:
		return "none"
	case HorizontalLeft:
		return "left"
	case HorizontalCenter:
		return "center"
	case HorizontalRight:
		return "right"
	default:
		return fmt.Sprintf("HorizontalAlignment(%d)", int(a))
	}
}

// needsParent reports whether resolving the origin reads the parent's width.
func (a HorizontalAlignment) needsParent() bool {
	return a == HorizontalCenter || a == HorizontalRight
}

// ParseHorizontalAlignment parses the names printed by String.
func ParseHorizontalAlignment(s string) (HorizontalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return HorizontalNone, nil
	case "left":
		return HorizontalLeft, nil
	case "center", "centre":
		return HorizontalCenter, nil
	case "right":
		return HorizontalRight, nil
	default:
		return HorizontalNone, fmt.Errorf("unknown horizontal alignment %q", s)
	}
}

// VerticalAlignment places the badge along the parent's y axis.
type VerticalAlignment int

const (
	// VerticalNone leaves the frame's y origin alone.
	VerticalNone VerticalAlignment = iota
	// VerticalTop centers the badge on the parent's top edge.
	VerticalTop
	// VerticalMiddle centers the badge on the parent's horizontal midline.
	VerticalMiddle
	// VerticalBottom centers the badge on the parent's bottom edge.
	VerticalBottom
)

func (a VerticalAlignment) String() string {
	switch a {
	case VerticalNone:
		return "none"
	case VerticalTop:
		return "top"
	case VerticalMiddle:
		return "middle"
	case VerticalBottom:
		return "bottom"
	default:
		return fmt.Sprintf("VerticalAlignment(%d)", int(a))
	}
}

func (a VerticalAlignment) needsParent() bool {
	return a == VerticalMiddle || a == VerticalBottom
}

// ParseVerticalAlignment parses the names printed by String.
func ParseVerticalAlignment(s string) (VerticalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return VerticalNone, nil
	case "top":
		return VerticalTop, nil
	case "middle":
		return VerticalMiddle, nil
	case "bottom":
		return VerticalBottom, nil
	default:
		return VerticalNone, fmt.Errorf("unknown vertical alignment %q", s)
	}
}
