// Package raster implements graphics.Canvas in software, drawing into an
// *image.RGBA with golang.org/x/image/vector for coverage and
// golang.org/x/image/font for glyphs.
//
// The canvas supports translation and axis-aligned scaling, which is all a
// badge needs: the compositor translates to the badge origin and the host
// scales by the device pixel ratio.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/go-drift/badgeview/pkg/graphics"
	"golang.org/x/image/vector"
)

// curveSegments is the number of line segments a curve is flattened into
// when stroking.
const curveSegments = 16

// Canvas rasterizes drawing commands into an RGBA image.
type Canvas struct {
	base   *image.RGBA
	target *image.RGBA
	xf     transform
	stack  []saveEntry
	fonts  *graphics.FontManager
	size   graphics.Size
}

var _ graphics.Canvas = (*Canvas)(nil)

// transform maps local points to device pixels: dev = local*s + t.
type transform struct {
	sx, sy float64
	tx, ty float64
}

func (m transform) apply(x, y float64) (float64, float64) {
	return x*m.sx + m.tx, y*m.sy + m.ty
}

func (m transform) invert(x, y float64) (float64, float64) {
	return (x - m.tx) / m.sx, (y - m.ty) / m.sy
}

type saveEntry struct {
	xf     transform
	layer  *image.RGBA
	parent *image.RGBA
	alpha  float64
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithFonts sets the font manager used by DrawText. Faces are shared, so
// canvases drawing text on different goroutines need their own manager.
func WithFonts(m *graphics.FontManager) Option {
	return func(c *Canvas) { c.fonts = m }
}

// New returns a transparent canvas of width by height pixels.
func New(width, height int, opts ...Option) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	c := &Canvas{
		base:   img,
		target: img,
		xf:     transform{sx: 1, sy: 1},
		size:   graphics.Size{Width: float64(width), Height: float64(height)},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fonts == nil {
		c.fonts = graphics.DefaultFontManager()
	}
	return c
}

// Image returns the rendered image. Layers still open are not included.
func (c *Canvas) Image() *image.RGBA {
	return c.base
}

func (c *Canvas) Size() graphics.Size {
	return c.size
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, saveEntry{xf: c.xf})
}

// SaveLayerAlpha redirects drawing into a transparent layer that Restore
// composites with the given opacity. Bounds are not used to clip.
func (c *Canvas) SaveLayerAlpha(_ graphics.Rect, alpha float64) {
	layer := image.NewRGBA(c.base.Bounds())
	c.stack = append(c.stack, saveEntry{
		xf:     c.xf,
		layer:  layer,
		parent: c.target,
		alpha:  math.Max(0, math.Min(1, alpha)),
	})
	c.target = layer
}

// Restore pops the last Save or SaveLayerAlpha. Unbalanced calls are
// ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	e := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.xf = e.xf
	if e.layer == nil {
		return
	}
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(e.alpha * 255))})
	draw.DrawMask(e.parent, e.parent.Bounds(), e.layer, image.Point{}, mask, image.Point{}, draw.Over)
	c.target = e.parent
}

func (c *Canvas) Translate(dx, dy float64) {
	c.xf.tx += dx * c.xf.sx
	c.xf.ty += dy * c.xf.sy
}

func (c *Canvas) Scale(sx, sy float64) {
	c.xf.sx *= sx
	c.xf.sy *= sy
}

// Clear replaces every pixel of the current target with color.
func (c *Canvas) Clear(col graphics.Color) {
	draw.Draw(c.target, c.target.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

// DrawPath fills or strokes path. Strokes use butt-joined segments, with
// curves flattened.
func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	if path.IsEmpty() || !paint.IsVisible() {
		return
	}
	z := c.rasterizer()
	if paint.Style == graphics.PaintStyleStroke {
		c.addStroke(z, path, paint.StrokeWidth)
	} else {
		c.addFill(z, path, 0, 0)
	}
	z.Draw(c.target, c.target.Bounds(), c.source(paint), image.Point{})
}

// DrawPathShadow draws a blurred copy of the path's coverage, moved by the
// shadow offset, in the shadow color.
func (c *Canvas) DrawPathShadow(path *graphics.Path, strokeWidth float64, shadow graphics.BoxShadow) {
	if path.IsEmpty() || !shadow.IsVisible() {
		return
	}
	z := c.rasterizer()
	if strokeWidth > 0 {
		c.addStroke(z, path.Translate(shadow.Offset.X, shadow.Offset.Y), strokeWidth)
	} else {
		c.addFill(z, path, shadow.Offset.X, shadow.Offset.Y)
	}
	mask := image.NewAlpha(c.target.Bounds())
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	c.compositeShadow(mask, shadow)
}

func (c *Canvas) compositeShadow(mask *image.Alpha, shadow graphics.BoxShadow) {
	blurAlpha(mask, shadow.Sigma()*math.Abs(c.xf.sx))
	src := image.NewUniform(shadow.EffectiveColor().NRGBA())
	draw.DrawMask(c.target, c.target.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

func (c *Canvas) rasterizer() *vector.Rasterizer {
	b := c.target.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

// addFill adds every subpath of path, moved by (dx, dy) in local space.
func (c *Canvas) addFill(z *vector.Rasterizer, path *graphics.Path, dx, dy float64) {
	pt := func(x, y float64) (float32, float32) {
		px, py := c.xf.apply(x+dx, y+dy)
		return float32(px), float32(py)
	}
	open := false
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(a[0], a[1]))
			open = true
		case graphics.PathOpLineTo:
			z.LineTo(pt(a[0], a[1]))
		case graphics.PathOpQuadTo:
			bx, by := pt(a[0], a[1])
			cx, cy := pt(a[2], a[3])
			z.QuadTo(bx, by, cx, cy)
		case graphics.PathOpCubicTo:
			bx, by := pt(a[0], a[1])
			cx, cy := pt(a[2], a[3])
			ex, ey := pt(a[4], a[5])
			z.CubeTo(bx, by, cx, cy, ex, ey)
		case graphics.PathOpClose:
			if open {
				z.ClosePath()
				open = false
			}
		}
	}
	if open {
		z.ClosePath()
	}
}

// addStroke adds one quad per flattened segment. Every quad winds the same
// way, so overlaps at the joints accumulate instead of cancelling.
func (c *Canvas) addStroke(z *vector.Rasterizer, path *graphics.Path, width float64) {
	half := width / 2
	for _, poly := range flatten(path) {
		for i := 0; i+1 < len(poly); i++ {
			p0, p1 := poly[i], poly[i+1]
			dx, dy := p1.X-p0.X, p1.Y-p0.Y
			l := math.Hypot(dx, dy)
			if l == 0 {
				continue
			}
			nx, ny := -dy/l*half, dx/l*half
			c.quad(z,
				graphics.Offset{X: p0.X + nx, Y: p0.Y + ny},
				graphics.Offset{X: p1.X + nx, Y: p1.Y + ny},
				graphics.Offset{X: p1.X - nx, Y: p1.Y - ny},
				graphics.Offset{X: p0.X - nx, Y: p0.Y - ny},
			)
		}
	}
}

func (c *Canvas) quad(z *vector.Rasterizer, pts ...graphics.Offset) {
	for i, p := range pts {
		x, y := c.xf.apply(p.X, p.Y)
		if i == 0 {
			z.MoveTo(float32(x), float32(y))
		} else {
			z.LineTo(float32(x), float32(y))
		}
	}
	z.ClosePath()
}

// flatten converts path into polylines in local coordinates. Closed
// subpaths end on their first point.
func flatten(path *graphics.Path) [][]graphics.Offset {
	var (
		out   [][]graphics.Offset
		cur   []graphics.Offset
		start graphics.Offset
	)
	last := func() graphics.Offset { return cur[len(cur)-1] }
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			flush()
			start = graphics.Offset{X: a[0], Y: a[1]}
			cur = []graphics.Offset{start}
		case graphics.PathOpLineTo:
			if len(cur) == 0 {
				cur = []graphics.Offset{start}
			}
			cur = append(cur, graphics.Offset{X: a[0], Y: a[1]})
		case graphics.PathOpQuadTo:
			if len(cur) == 0 {
				cur = []graphics.Offset{start}
			}
			p0 := last()
			for i := 1; i <= curveSegments; i++ {
				t := float64(i) / curveSegments
				u := 1 - t
				cur = append(cur, graphics.Offset{
					X: u*u*p0.X + 2*u*t*a[0] + t*t*a[2],
					Y: u*u*p0.Y + 2*u*t*a[1] + t*t*a[3],
				})
			}
		case graphics.PathOpCubicTo:
			if len(cur) == 0 {
				cur = []graphics.Offset{start}
			}
			p0 := last()
			for i := 1; i <= curveSegments; i++ {
				t := float64(i) / curveSegments
				u := 1 - t
				cur = append(cur, graphics.Offset{
					X: u*u*u*p0.X + 3*u*u*t*a[0] + 3*u*t*t*a[2] + t*t*t*a[4],
					Y: u*u*u*p0.Y + 3*u*u*t*a[1] + 3*u*t*t*a[3] + t*t*t*a[5],
				})
			}
		case graphics.PathOpClose:
			if len(cur) > 0 {
				cur = append(cur, start)
			}
			flush()
		}
	}
	flush()
	return out
}

// source returns the image a paint draws with, in device space.
func (c *Canvas) source(paint graphics.Paint) image.Image {
	if paint.Gradient != nil {
		return &gradientImage{g: paint.Gradient, xf: c.xf, alpha: paint.Alpha, bounds: c.target.Bounds()}
	}
	return image.NewUniform(paint.Color.ScaleAlpha(paint.Alpha).NRGBA())
}

// gradientImage evaluates a linear gradient at each device pixel center.
type gradientImage struct {
	g      *graphics.LinearGradient
	xf     transform
	alpha  float64
	bounds image.Rectangle
}

func (g *gradientImage) ColorModel() color.Model { return color.NRGBAModel }

func (g *gradientImage) Bounds() image.Rectangle { return g.bounds }

func (g *gradientImage) At(x, y int) color.Color {
	lx, ly := g.xf.invert(float64(x)+0.5, float64(y)+0.5)
	return g.g.ColorAt(graphics.Offset{X: lx, Y: ly}).ScaleAlpha(g.alpha).NRGBA()
}
