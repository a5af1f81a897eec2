package compositor

import (
	"github.com/go-drift/badgeview/pkg/animation"
	"github.com/go-drift/badgeview/pkg/badge"
	"github.com/go-drift/badgeview/pkg/graphics"
)

// presentedLayer is the on-screen state of one badge layer.
type presentedLayer struct {
	model badge.Layer
	text  *graphics.TextLayout

	pathTween *animation.Tween[*graphics.Path]
	pathAnim  *animation.AnimationController

	outgoing *graphics.TextLayout
	fadeAnim *animation.AnimationController
}

// set replaces the presented state without animation.
func (p *presentedLayer) set(l badge.Layer, text *graphics.TextLayout) {
	p.stopPath()
	p.stopFade()
	p.model = l
	p.text = text
}

// update moves to l, starting the given transitions. A running path
// animation is retargeted from the path currently on screen.
func (p *presentedLayer) update(l badge.Layer, text *graphics.TextLayout, pathTr, contentsTr *badge.Transition) {
	from := p.currentPath()
	prevText := p.text
	p.model = l
	p.text = text

	switch {
	case pathTr == nil || from.IsEmpty() || from.Equal(l.Path):
		p.stopPath()
	default:
		p.pathTween = animation.TweenPath(from, l.Path)
		p.pathAnim = restart(p.pathAnim, *pathTr)
	}

	if contentsTr != nil && prevText != nil && text != nil && prevText.Text != text.Text {
		p.outgoing = prevText
		p.fadeAnim = restart(p.fadeAnim, *contentsTr)
	} else if contentsTr == nil {
		p.stopFade()
	}
}

// restart reuses or creates a controller and runs it forward from zero.
func restart(c *animation.AnimationController, tr badge.Transition) *animation.AnimationController {
	if c == nil {
		c = animation.NewAnimationController(tr.Duration)
	}
	c.Duration = tr.Duration
	c.Curve = tr.Curve()
	c.Reset()
	c.Forward()
	return c
}

func (p *presentedLayer) currentPath() *graphics.Path {
	if p.pathAnim != nil && p.pathAnim.IsAnimating() {
		return p.pathTween.Transform(p.pathAnim)
	}
	return p.model.Path
}

func (p *presentedLayer) fadeProgress() float64 {
	if p.fadeAnim != nil && p.fadeAnim.IsAnimating() {
		return p.fadeAnim.Value
	}
	return 1
}

func (p *presentedLayer) isAnimating() bool {
	return (p.pathAnim != nil && p.pathAnim.IsAnimating()) ||
		(p.fadeAnim != nil && p.fadeAnim.IsAnimating())
}

func (p *presentedLayer) stopPath() {
	if p.pathAnim != nil {
		p.pathAnim.Stop()
	}
	p.pathTween = nil
}

func (p *presentedLayer) stopFade() {
	if p.fadeAnim != nil {
		p.fadeAnim.Stop()
	}
	p.outgoing = nil
}

func (p *presentedLayer) dispose() {
	if p.pathAnim != nil {
		p.pathAnim.Dispose()
	}
	if p.fadeAnim != nil {
		p.fadeAnim.Dispose()
	}
	p.pathAnim, p.fadeAnim = nil, nil
	p.pathTween, p.outgoing = nil, nil
}

func (p *presentedLayer) paint(canvas graphics.Canvas) {
	path := p.currentPath()
	l := p.model
	switch l.Name {
	case badge.LayerBackground:
		if path.IsEmpty() {
			return
		}
		if l.Shadow.IsVisible() {
			canvas.DrawPathShadow(path, 0, *l.Shadow)
		}
		canvas.DrawPath(path, graphics.Paint{Color: l.Fill, Style: graphics.PaintStyleFill, Alpha: 1})

	case badge.LayerBorder:
		if path.IsEmpty() || l.LineWidth <= 0 {
			return
		}
		if l.Shadow.IsVisible() {
			canvas.DrawPathShadow(path, l.LineWidth, *l.Shadow)
		}
		canvas.DrawPath(path, graphics.Paint{
			Color:       l.Stroke,
			Style:       graphics.PaintStyleStroke,
			StrokeWidth: l.LineWidth,
			Alpha:       1,
		})

	case badge.LayerGloss:
		if path.IsEmpty() || !l.Gradient.IsValid() {
			return
		}
		canvas.DrawPath(path, graphics.Paint{Gradient: l.Gradient, Style: graphics.PaintStyleFill, Alpha: 1})

	case badge.LayerText:
		p.paintText(canvas)
	}
}

func (p *presentedLayer) paintText(canvas graphics.Canvas) {
	frame := p.model.Frame
	v := p.fadeProgress()
	if v >= 1 || p.outgoing == nil {
		drawCentered(canvas, p.text, frame)
		return
	}
	canvas.SaveLayerAlpha(frame, 1-v)
	drawCentered(canvas, p.outgoing, frame)
	canvas.Restore()
	canvas.SaveLayerAlpha(frame, v)
	drawCentered(canvas, p.text, frame)
	canvas.Restore()
}

// drawCentered draws tl horizontally centered in frame, top aligned.
func drawCentered(canvas graphics.Canvas, tl *graphics.TextLayout, frame graphics.Rect) {
	if tl == nil || tl.Text == "" {
		return
	}
	x := frame.Left + (frame.Width()-tl.Size.Width)/2
	canvas.DrawText(tl, graphics.Offset{X: x, Y: frame.Top})
}
