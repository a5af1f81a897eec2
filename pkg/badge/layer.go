package badge

import (
	"slices"

	"github.com/go-drift/badgeview/pkg/graphics"
)

// LayerName identifies one of the badge's drawable layers.
type LayerName string

const (
	LayerBackground LayerName = "background"
	LayerBorder     LayerName = "border"
	LayerText       LayerName = "text"
	LayerGloss      LayerName = "gloss"
)

// Layer is the drawable state of one layer, in badge coordinates.
//
// Shape layers fill Path with Fill (or Gradient) and stroke it with Stroke
// at LineWidth. The gloss layer fills its Gradient clipped to Path, which is
// the inset mask. The text layer draws Text centered in Frame, truncated at
// the end when it does not fit.
type Layer struct {
	Name      LayerName
	Frame     graphics.Rect
	Path      *graphics.Path
	Fill      graphics.Color
	Stroke    graphics.Color
	LineWidth float64
	Gradient  *graphics.LinearGradient
	Shadow    *graphics.BoxShadow

	Text      string
	TextColor graphics.Color
	Font      graphics.Font
}

// Clone returns a deep copy.
func (l *Layer) Clone() Layer {
	out := *l
	out.Path = l.Path.Clone()
	out.Gradient = l.Gradient.Clone()
	if l.Shadow != nil {
		s := *l.Shadow
		out.Shadow = &s
	}
	return out
}

// layerStack is the ordered list of attached layers, back to front.
type layerStack struct {
	layers []*Layer
}

func (s *layerStack) attach(l *Layer) {
	if s.index(l.Name) >= 0 {
		return
	}
	s.layers = append(s.layers, l)
}

func (s *layerStack) detach(name LayerName) {
	if i := s.index(name); i >= 0 {
		s.layers = slices.Delete(s.layers, i, i+1)
	}
}

func (s *layerStack) index(name LayerName) int {
	return slices.IndexFunc(s.layers, func(l *Layer) bool { return l.Name == name })
}

func (s *layerStack) contains(name LayerName) bool {
	return s.index(name) >= 0
}

func (s *layerStack) names() []LayerName {
	out := make([]LayerName, len(s.layers))
	for i, l := range s.layers {
		out[i] = l.Name
	}
	return out
}

func (s *layerStack) snapshot() []Layer {
	out := make([]Layer, len(s.layers))
	for i, l := range s.layers {
		out[i] = l.Clone()
	}
	return out
}
