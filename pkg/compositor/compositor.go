// Package compositor presents badge commits. It keeps the layers a badge
// last committed, plays the transitions attached to each commit with
// animation controllers, and paints the presented state to a
// graphics.Canvas.
//
// Controllers advance when the host calls animation.StepTickers once per
// frame. A Compositor is not safe for concurrent use; commit, step and paint
// from the same goroutine.
package compositor

import (
	"math"

	"github.com/go-drift/badgeview/pkg/badge"
	"github.com/go-drift/badgeview/pkg/errors"
	"github.com/go-drift/badgeview/pkg/graphics"
)

// TextLayouter shapes text for drawing. graphics.FontManager implements it.
type TextLayouter interface {
	LayoutText(text string, f graphics.Font, color graphics.Color) (*graphics.TextLayout, error)
}

// Compositor is a badge.Renderer that animates between commits.
type Compositor struct {
	fonts  TextLayouter
	frame  graphics.Rect
	hidden bool
	scale  float64
	seq    uint64

	layers   map[badge.LayerName]*presentedLayer
	order    []badge.LayerName
	disposed bool
}

var _ badge.Renderer = (*Compositor)(nil)

// New returns an empty compositor. A nil fonts uses the shared font manager.
func New(fonts TextLayouter) *Compositor {
	if fonts == nil {
		fonts = graphics.DefaultFontManager()
	}
	return &Compositor{
		fonts:  fonts,
		scale:  1,
		layers: make(map[badge.LayerName]*presentedLayer),
	}
}

// Commit implements badge.Renderer. Frame, visibility and paint attributes
// apply immediately. Path and text changes follow the commit's transitions.
func (c *Compositor) Commit(commit badge.Commit) {
	if c.disposed {
		return
	}
	defer errors.Recover("compositor.Commit")

	c.frame = commit.Frame
	c.hidden = commit.Hidden
	c.scale = commit.Scale
	c.seq = commit.Seq

	seen := make(map[badge.LayerName]bool, len(commit.Layers))
	c.order = c.order[:0]
	for _, l := range commit.Layers {
		seen[l.Name] = true
		c.order = append(c.order, l.Name)

		p, ok := c.layers[l.Name]
		if !ok {
			p = &presentedLayer{}
			c.layers[l.Name] = p
			p.set(l, c.layoutText(l))
			continue
		}
		var pathTr, contentsTr *badge.Transition
		if tr, ok := commit.TransitionFor(l.Name, badge.PropertyPath); ok && !tr.IsInstant() {
			pathTr = &tr
		}
		if tr, ok := commit.TransitionFor(l.Name, badge.PropertyContents); ok && !tr.IsInstant() {
			contentsTr = &tr
		}
		p.update(l, c.layoutText(l), pathTr, contentsTr)
	}

	for name, p := range c.layers {
		if !seen[name] {
			p.dispose()
			delete(c.layers, name)
		}
	}
}

// layoutText shapes the text layer, truncating it at the end with an
// ellipsis when it is wider than the layer frame.
func (c *Compositor) layoutText(l badge.Layer) *graphics.TextLayout {
	if l.Name != badge.LayerText {
		return nil
	}
	tl, err := c.fonts.LayoutText(l.Text, l.Font, l.TextColor)
	if err == nil && tl.Size.Width > l.Frame.Width() {
		text := graphics.TruncateEnd(l.Text, l.Frame.Width(), func(s string) float64 {
			m, err := c.fonts.LayoutText(s, l.Font, l.TextColor)
			if err != nil {
				return math.Inf(1)
			}
			return m.Size.Width
		})
		tl, err = c.fonts.LayoutText(text, l.Font, l.TextColor)
	}
	if err != nil {
		errors.Report(&errors.BadgeError{
			Op:   "compositor.Commit",
			Kind: errors.KindFont,
			Err:  err,
		})
		return nil
	}
	tl.Shadow = l.Shadow
	return tl
}

// Frame returns the last committed frame.
func (c *Compositor) Frame() graphics.Rect {
	return c.frame
}

// Hidden reports whether the last commit hid the badge.
func (c *Compositor) Hidden() bool {
	return c.hidden
}

// Scale returns the device scale of the last commit.
func (c *Compositor) Scale() float64 {
	return c.scale
}

// Seq returns the sequence number of the last commit.
func (c *Compositor) Seq() uint64 {
	return c.seq
}

// Layers returns the presented layer names, back to front.
func (c *Compositor) Layers() []badge.LayerName {
	out := make([]badge.LayerName, len(c.order))
	copy(out, c.order)
	return out
}

// PresentedPath returns the path currently shown for a layer, mid-animation
// if a path transition is running.
func (c *Compositor) PresentedPath(name badge.LayerName) *graphics.Path {
	p, ok := c.layers[name]
	if !ok {
		return nil
	}
	return p.currentPath()
}

// TextOpacity returns the opacity of the incoming and outgoing text during
// a crossfade. Outside a crossfade it returns 1 and 0.
func (c *Compositor) TextOpacity() (incoming, outgoing float64) {
	p, ok := c.layers[badge.LayerText]
	if !ok {
		return 0, 0
	}
	v := p.fadeProgress()
	return v, 1 - v
}

// IsAnimating reports whether any transition is still running.
func (c *Compositor) IsAnimating() bool {
	for _, p := range c.layers {
		if p.isAnimating() {
			return true
		}
	}
	return false
}

// Dispose stops every running transition. Later commits are ignored.
func (c *Compositor) Dispose() {
	for _, p := range c.layers {
		p.dispose()
	}
	c.disposed = true
}

// Paint draws the presented badge in parent coordinates.
func (c *Compositor) Paint(canvas graphics.Canvas) {
	defer errors.Recover("compositor.Paint")
	if c.hidden || len(c.order) == 0 {
		return
	}
	canvas.Save()
	canvas.Translate(c.frame.Left, c.frame.Top)
	for _, name := range c.order {
		if p, ok := c.layers[name]; ok {
			p.paint(canvas)
		}
	}
	canvas.Restore()
}

// Record paints the presented badge into a display list sized to the
// frame, in badge coordinates.
func (c *Compositor) Record() *graphics.DisplayList {
	rec := &graphics.PictureRecorder{}
	canvas := rec.BeginRecording(c.frame.Size())
	canvas.Translate(-c.frame.Left, -c.frame.Top)
	c.Paint(canvas)
	return rec.EndRecording()
}
