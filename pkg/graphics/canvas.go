package graphics

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform state.
	Save()

	// SaveLayerAlpha saves a new layer with the given opacity (0.0 to 1.0).
	// All drawing until the matching Restore() call will be composited with this opacity.
	SaveLayerAlpha(bounds Rect, alpha float64)

	// Restore pops the most recent transform state or layer.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawPath fills or strokes a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawPathShadow draws the shadow a filled (or, with strokeWidth > 0,
	// stroked) path would cast.
	DrawPathShadow(path *Path, strokeWidth float64, shadow BoxShadow)

	// DrawText draws a measured single line with its top-left corner at
	// position. The layout's Shadow, when set, is drawn first.
	DrawText(layout *TextLayout, position Offset)

	// Size returns the size of the canvas in points.
	Size() Size
}
