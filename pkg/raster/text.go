package raster

import (
	"image"
	"image/draw"
	"math"

	"github.com/go-drift/badgeview/pkg/errors"
	"github.com/go-drift/badgeview/pkg/graphics"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawText draws layout with its top-left corner at position. Glyphs are
// rendered from a face sized for the current scale so they stay sharp on
// high density canvases.
func (c *Canvas) DrawText(layout *graphics.TextLayout, position graphics.Offset) {
	if layout == nil || layout.Text == "" {
		return
	}
	f := layout.Font
	f.Size = layout.Font.Size * math.Abs(c.xf.sy)
	if f.Size <= 0 {
		return
	}
	face, err := c.fonts.Face(f)
	if err != nil {
		errors.Report(&errors.BadgeError{
			Op:   "raster.DrawText",
			Kind: errors.KindFont,
			Err:  err,
		})
		return
	}

	if layout.Shadow.IsVisible() {
		shadow := *layout.Shadow
		mask := image.NewAlpha(c.target.Bounds())
		at := position.Translate(shadow.Offset.X, shadow.Offset.Y)
		c.drawGlyphs(mask, image.Opaque, face, layout, at)
		c.compositeShadow(mask, shadow)
	}
	c.drawGlyphs(c.target, image.NewUniform(layout.Color.NRGBA()), face, layout, position)
}

func (c *Canvas) drawGlyphs(dst draw.Image, src image.Image, face font.Face, layout *graphics.TextLayout, position graphics.Offset) {
	x, y := c.xf.apply(position.X, position.Y+layout.Ascent)
	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(layout.Text)
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
