package cli

import (
	stderrors "errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-drift/badgeview/pkg/badge"
	"github.com/go-drift/badgeview/pkg/compositor"
	"github.com/go-drift/badgeview/pkg/graphics"
	"github.com/go-drift/badgeview/pkg/raster"
	"github.com/go-drift/badgeview/pkg/style"
)

var errInvalidSize = stderrors.New("invalid size")

// sceneOpts are the flags shared by every command.
type sceneOpts struct {
	stylePath   string
	scale       float64
	parent      string
	parentColor string
	margin      float64
}

// scene is a badge wired to a compositor, optionally inside a parent rect.
type scene struct {
	badge       *badge.BadgeView
	comp        *compositor.Compositor
	parent      *graphics.Rect
	parentColor graphics.Color
	scale       float64
	margin      float64
}

func newScene(opts sceneOpts) (*scene, error) {
	if opts.scale <= 0 || math.IsNaN(opts.scale) {
		return nil, fmt.Errorf("scale must be positive, got %v", opts.scale)
	}
	s := &scene{scale: opts.scale, margin: max(opts.margin, 0)}

	var err error
	if s.parentColor, err = graphics.ParseHex(opts.parentColor); err != nil {
		return nil, fmt.Errorf("parent color: %w", err)
	}

	s.comp = compositor.New(nil)
	bopts := []badge.Option{badge.WithScale(opts.scale), badge.WithRenderer(s.comp)}
	if opts.parent != "" {
		size, err := parseSize(opts.parent)
		if err != nil {
			s.comp.Dispose()
			return nil, err
		}
		r := graphics.RectFromLTWH(0, 0, size.Width, size.Height)
		s.parent = &r
		bopts = append(bopts, badge.WithParent(badge.StaticParent(r)))
	}
	s.badge = badge.New(graphics.RectFromLTWH(0, 0, 0, 24), bopts...)

	if opts.stylePath != "" {
		doc, err := style.Load(opts.stylePath)
		if err != nil {
			s.Close()
			return nil, err
		}
		if err := doc.Apply(s.badge); err != nil {
			s.Close()
			return nil, fmt.Errorf("apply %s: %w", opts.stylePath, err)
		}
	}

	// Without a parent there is nothing to align against; draw at the origin.
	if s.parent == nil {
		s.badge.SetHorizontalAlignment(badge.HorizontalNone)
		s.badge.SetVerticalAlignment(badge.VerticalNone)
		f := s.badge.Frame()
		s.badge.SetFrame(graphics.RectFromLTWH(0, 0, f.Width(), f.Height()))
	}
	return s, nil
}

// setTextInstantly changes the text without animating, keeping the badge's
// animation setting for later changes.
func (s *scene) setTextInstantly(text string) {
	animate := s.badge.AnimateChanges()
	s.badge.SetAnimateChanges(false)
	s.badge.SetText(text)
	s.badge.SetAnimateChanges(animate)
}

// bounds returns the area covering the parent and every given badge frame,
// grown by the margin.
func (s *scene) bounds(frames ...graphics.Rect) graphics.Rect {
	var r graphics.Rect
	switch {
	case s.parent != nil:
		r = *s.parent
	case len(frames) > 0:
		r = frames[0]
	}
	for _, f := range frames {
		r = r.Union(f)
	}
	return r.Inset(-s.margin, -s.margin)
}

// draw paints the scene into a new canvas covering bounds.
func (s *scene) draw(bounds graphics.Rect) *raster.Canvas {
	w := int(math.Ceil(bounds.Width() * s.scale))
	h := int(math.Ceil(bounds.Height() * s.scale))
	c := raster.New(w, h)
	c.Scale(s.scale, s.scale)
	c.Translate(-bounds.Left, -bounds.Top)
	if s.parent != nil {
		c.DrawPath(
			graphics.NewRRectPath(graphics.RRectFromRectAndRadius(*s.parent, graphics.CircularRadius(0))),
			graphics.Paint{Color: s.parentColor, Style: graphics.PaintStyleFill, Alpha: 1},
		)
	}
	s.comp.Paint(c)
	return c
}

// Close stops the compositor's animations.
func (s *scene) Close() {
	s.badge.Dispose()
	s.comp.Dispose()
}

// parseSize parses "WxH" with positive dimensions.
func parseSize(s string) (graphics.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return graphics.Size{}, fmt.Errorf("%w %q: want WxH", errInvalidSize, s)
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return graphics.Size{}, fmt.Errorf("%w %q: %w", errInvalidSize, s, err)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil {
		return graphics.Size{}, fmt.Errorf("%w %q: %w", errInvalidSize, s, err)
	}
	if width <= 0 || height <= 0 {
		return graphics.Size{}, fmt.Errorf("%w %q: dimensions must be positive", errInvalidSize, s)
	}
	return graphics.Size{Width: width, Height: height}, nil
}
