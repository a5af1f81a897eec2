package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/badgeview/pkg/graphics"
)

// DisplayOp is a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializingCanvas implements graphics.Canvas by recording DisplayOps.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

// RecordOps runs paint against a recording canvas of the given size and
// returns the operations it issued.
func RecordOps(size graphics.Size, paint func(graphics.Canvas)) []DisplayOp {
	c := &serializingCanvas{size: size}
	paint(c)
	return c.ops
}

func (c *serializingCanvas) add(op string, kvs ...any) {
	var params map[string]any
	if len(kvs) > 0 {
		params = sortedMap(kvs...)
	}
	c.ops = append(c.ops, DisplayOp{Op: op, Params: params})
}

func (c *serializingCanvas) Save() { c.add("save") }

func (c *serializingCanvas) SaveLayerAlpha(bounds graphics.Rect, alpha float64) {
	c.add("saveLayerAlpha", "bounds", serializeRect(bounds), "alpha", round2(alpha))
}

func (c *serializingCanvas) Restore() { c.add("restore") }

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.add("translate", "dx", round2(dx), "dy", round2(dy))
}

func (c *serializingCanvas) Scale(sx, sy float64) {
	c.add("scale", "sx", round2(sx), "sy", round2(sy))
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.add("clear", "color", serializeColor(color))
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	kvs := []any{
		"bounds", serializeRect(path.Bounds()),
		"style", paint.Style.String(),
		"alpha", round2(paint.Alpha),
	}
	if paint.Gradient != nil {
		kvs = append(kvs, "gradient", len(paint.Gradient.Stops))
	} else {
		kvs = append(kvs, "color", serializeColor(paint.Color))
	}
	if paint.Style == graphics.PaintStyleStroke {
		kvs = append(kvs, "strokeWidth", round2(paint.StrokeWidth))
	}
	c.add("drawPath", kvs...)
}

func (c *serializingCanvas) DrawPathShadow(path *graphics.Path, strokeWidth float64, shadow graphics.BoxShadow) {
	c.add("drawPathShadow",
		"bounds", serializeRect(path.Bounds()),
		"strokeWidth", round2(strokeWidth),
		"color", serializeColor(shadow.EffectiveColor()),
		"dx", round2(shadow.Offset.X),
		"dy", round2(shadow.Offset.Y),
		"blur", round2(shadow.BlurRadius),
	)
}

func (c *serializingCanvas) DrawText(layout *graphics.TextLayout, position graphics.Offset) {
	if layout == nil {
		return
	}
	kvs := []any{
		"text", layout.Text,
		"x", round2(position.X),
		"y", round2(position.Y),
		"color", serializeColor(layout.Color),
		"font", layout.Font.String(),
	}
	if layout.Shadow != nil {
		kvs = append(kvs, "shadow", serializeColor(layout.Shadow.EffectiveColor()))
	}
	c.add("drawText", kvs...)
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// serializeDisplayList replays a DisplayList through the serializing canvas.
func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	return RecordOps(dl.Size(), dl.Paint)
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds to 2 decimal places.
func round2(f float64) float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return math.Round(f*100) / 100
}

// sortedMap builds a map from alternating key-value pairs. encoding/json
// writes map keys sorted, which keeps snapshots stable.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
