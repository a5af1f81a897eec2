package graphics

// OpKind names a recorded drawing operation.
type OpKind string

const (
	OpSave           OpKind = "save"
	OpSaveLayerAlpha OpKind = "saveLayerAlpha"
	OpRestore        OpKind = "restore"
	OpTranslate      OpKind = "translate"
	OpScale          OpKind = "scale"
	OpClear          OpKind = "clear"
	OpDrawPath       OpKind = "drawPath"
	OpDrawPathShadow OpKind = "drawPathShadow"
	OpDrawText       OpKind = "drawText"
)

type recordedOp struct {
	kind   OpKind
	replay func(Canvas)
}

// DisplayList is an immutable list of drawing operations that can be
// replayed onto any Canvas. Its saves and restores are balanced.
type DisplayList struct {
	ops  []recordedOp
	size Size
}

// Paint replays the list onto canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.replay(canvas)
	}
}

// Size returns the size the list was recorded at.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Kinds lists the operations in order.
func (d *DisplayList) Kinds() []OpKind {
	kinds := make([]OpKind, len(d.ops))
	for i, op := range d.ops {
		kinds[i] = op.kind
	}
	return kinds
}

// PictureRecorder records a Canvas session into a DisplayList. A recorder
// can be reused; each BeginRecording starts from an empty list.
type PictureRecorder struct {
	canvas *recordingCanvas
	size   Size
}

// BeginRecording returns a canvas whose calls are recorded until
// EndRecording.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.size = size
	r.canvas = &recordingCanvas{size: size}
	return r.canvas
}

// EndRecording returns the recorded list, closing any saves left open. The
// canvas returned by BeginRecording stops recording.
func (r *PictureRecorder) EndRecording() *DisplayList {
	c := r.canvas
	if c == nil {
		return &DisplayList{size: r.size}
	}
	r.canvas = nil
	for ; c.depth > 0; c.depth-- {
		c.ops = append(c.ops, recordedOp{OpRestore, Canvas.Restore})
	}
	c.done = true
	return &DisplayList{ops: c.ops, size: r.size}
}

type recordingCanvas struct {
	ops   []recordedOp
	depth int
	done  bool
	size  Size
}

func (c *recordingCanvas) add(kind OpKind, replay func(Canvas)) {
	if c.done {
		return
	}
	c.ops = append(c.ops, recordedOp{kind, replay})
}

func (c *recordingCanvas) Save() {
	c.depth++
	c.add(OpSave, Canvas.Save)
}

func (c *recordingCanvas) SaveLayerAlpha(bounds Rect, alpha float64) {
	c.depth++
	c.add(OpSaveLayerAlpha, func(t Canvas) { t.SaveLayerAlpha(bounds, alpha) })
}

// Restore without a matching save is dropped.
func (c *recordingCanvas) Restore() {
	if c.depth == 0 {
		return
	}
	c.depth--
	c.add(OpRestore, Canvas.Restore)
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.add(OpTranslate, func(t Canvas) { t.Translate(dx, dy) })
}

func (c *recordingCanvas) Scale(sx, sy float64) {
	c.add(OpScale, func(t Canvas) { t.Scale(sx, sy) })
}

func (c *recordingCanvas) Clear(color Color) {
	c.add(OpClear, func(t Canvas) { t.Clear(color) })
}

// Paths and gradients are cloned so the caller may reuse them.
func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	path = path.Clone()
	paint.Gradient = paint.Gradient.Clone()
	c.add(OpDrawPath, func(t Canvas) { t.DrawPath(path, paint) })
}

func (c *recordingCanvas) DrawPathShadow(path *Path, strokeWidth float64, shadow BoxShadow) {
	path = path.Clone()
	c.add(OpDrawPathShadow, func(t Canvas) { t.DrawPathShadow(path, strokeWidth, shadow) })
}

func (c *recordingCanvas) DrawText(layout *TextLayout, position Offset) {
	if layout == nil {
		return
	}
	copied := *layout
	c.add(OpDrawText, func(t Canvas) { t.DrawText(&copied, position) })
}

func (c *recordingCanvas) Size() Size {
	return c.size
}
