package badge

import "github.com/go-drift/badgeview/pkg/graphics"

// Parent is the view a badge aligns against. Only its bounds are read, once
// per layout pass.
type Parent interface {
	Bounds() graphics.Rect
}

// StaticParent is a Parent with fixed bounds.
type StaticParent graphics.Rect

// Bounds returns the rect.
func (p StaticParent) Bounds() graphics.Rect { return graphics.Rect(p) }

// ParentOfSize returns a StaticParent with origin (0, 0).
func ParentOfSize(width, height float64) StaticParent {
	return StaticParent(graphics.RectFromLTWH(0, 0, width, height))
}

// Commit is a snapshot of everything a renderer needs to present the badge.
// Layers are copies, back to front. Transitions describe how the renderer
// should move from the previous commit to this one; layers and properties
// without a transition change instantly.
type Commit struct {
	Seq         uint64
	Frame       graphics.Rect
	Hidden      bool
	Scale       float64
	Layers      []Layer
	Transitions []LayerTransition
}

// Layer returns the committed layer with the given name.
func (c Commit) Layer(name LayerName) (Layer, bool) {
	for _, l := range c.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// TransitionFor returns the transition for property p of a layer.
func (c Commit) TransitionFor(name LayerName, p Property) (Transition, bool) {
	for _, lt := range c.Transitions {
		if lt.Layer == name && lt.Transition.Affects(p) {
			return lt.Transition, true
		}
	}
	return Transition{}, false
}

// Renderer presents commits. Commit is called synchronously from the setter
// that produced the change.
type Renderer interface {
	Commit(c Commit)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Commit)

// Commit calls f(c).
func (f RendererFunc) Commit(c Commit) { f(c) }

type nopRenderer struct{}

func (nopRenderer) Commit(Commit) {}

// Option configures a BadgeView at construction.
type Option func(*BadgeView)

// WithScale sets the device pixel scale used for snapping.
func WithScale(scale float64) Option {
	return func(b *BadgeView) { b.scale = sanitizeScale(scale) }
}

// WithMeasurer replaces the default font-backed text measurer.
func WithMeasurer(m graphics.TextMeasurer) Option {
	return func(b *BadgeView) {
		if m != nil {
			b.measurer = m
		}
	}
}

// WithRenderer sets the renderer commits are delivered to.
func WithRenderer(r Renderer) Option {
	return func(b *BadgeView) {
		if r != nil {
			b.renderer = r
		}
	}
}

// WithParent attaches the badge to p before the first layout.
func WithParent(p Parent) Option {
	return func(b *BadgeView) { b.parent = p }
}

func sanitizeScale(scale float64) float64 {
	if !(scale > 0) {
		return 1
	}
	return scale
}
