package badge

import (
	"fmt"
	"slices"
	"time"

	"github.com/go-drift/badgeview/pkg/animation"
)

// Property names a layer attribute a Transition animates.
type Property int

const (
	// PropertyPath is a layer's shape path (the mask path for the gloss).
	PropertyPath Property = iota
	// PropertyContents is a text layer's glyphs.
	PropertyContents
)

func (p Property) String() string {
	switch p {
	case PropertyPath:
		return "path"
	case PropertyContents:
		return "contents"
	default:
		return fmt.Sprintf("Property(%d)", int(p))
	}
}

// Easing names accepted by animation.CurveByName.
const (
	EasingLinear    = "linear"
	EasingEaseInOut = "ease-in-out"
)

// Transition tells the renderer how to move from the previously committed
// value of some layer properties to the new one.
type Transition struct {
	Duration   time.Duration
	Easing     string
	Properties []Property
}

// IsInstant reports whether the change should apply without animation.
func (t Transition) IsInstant() bool {
	return t.Duration <= 0
}

// Curve resolves Easing, falling back to linear for unknown names.
func (t Transition) Curve() animation.Curve {
	c, err := animation.CurveByName(t.Easing)
	if err != nil {
		return animation.LinearCurve
	}
	return c
}

// Affects reports whether p is one of the transition's properties.
func (t Transition) Affects(p Property) bool {
	return slices.Contains(t.Properties, p)
}

// LayerTransition binds a Transition to one layer of a commit.
type LayerTransition struct {
	Layer      LayerName
	Transition Transition
}

func pathTransition(d time.Duration) Transition {
	return Transition{Duration: d, Easing: EasingLinear, Properties: []Property{PropertyPath}}
}

func contentsTransition(d time.Duration) Transition {
	return Transition{Duration: d, Easing: EasingEaseInOut, Properties: []Property{PropertyContents}}
}
