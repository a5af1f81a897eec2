package graphics

import "testing"

type countingCanvas struct {
	last    *Path
	paths   int
	shadows int
	texts   int
	depth   int
	size    Size
}

func (c *countingCanvas) Save() { c.depth++ }
func (c *countingCanvas) SaveLayerAlpha(Rect, float64) { c.depth++ }
func (c *countingCanvas) Restore() { c.depth-- }
func (c *countingCanvas) Translate(float64, float64) {}
func (c *countingCanvas) Scale(float64, float64) {}
func (c *countingCanvas) Clear(Color) {}
func (c *countingCanvas) DrawPath(p *Path, _ Paint) {
	c.paths++
	c.last = p
}
func (c *countingCanvas) DrawPathShadow(*Path, float64, BoxShadow) { c.shadows++ }
func (c *countingCanvas) DrawText(*TextLayout, Offset) { c.texts++ }
func (c *countingCanvas) Size() Size { return c.size }

func TestPictureRecorder_Replay(t *testing.T) {
	var rec PictureRecorder
	canvas := rec.BeginRecording(Size{Width: 40, Height: 24})
	path := NewRRectPath(RRectFromRectAndRadius(RectFromLTWH(0, 0, 40, 24), CircularRadius(12)))

	canvas.Save()
	canvas.DrawPathShadow(path, 0, BoxShadow{Color: ColorBlack, Opacity: 0.5})
	canvas.DrawPath(path, DefaultPaint())
	canvas.DrawText(&TextLayout{Text: "1"}, Offset{})
	canvas.DrawText(nil, Offset{})
	canvas.Restore()

	list := rec.EndRecording()
	if list.Len() != 5 {
		t.Fatalf("expected 5 ops, got %d", list.Len())
	}
	if list.Size() != (Size{Width: 40, Height: 24}) {
		t.Errorf("unexpected size %v", list.Size())
	}

	var target countingCanvas
	list.Paint(&target)
	if target.paths != 1 || target.shadows != 1 || target.texts != 1 || target.depth != 0 {
		t.Errorf("unexpected replay %+v", target)
	}
}

func TestPictureRecorder_ClonesPaths(t *testing.T) {
	var rec PictureRecorder
	canvas := rec.BeginRecording(Size{Width: 10, Height: 10})
	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(5, 5)
	canvas.DrawPath(path, DefaultPaint())
	path.Commands[1].Args[0] = 99

	var target countingCanvas
	rec.EndRecording().Paint(&target)
	if target.last.Commands[1].Args[0] != 5 {
		t.Error("recording should not observe later path mutation")
	}
}

func TestPictureRecorder_EndWithoutBegin(t *testing.T) {
	var rec PictureRecorder
	if rec.EndRecording().Len() != 0 {
		t.Error("expected empty display list")
	}
}

func TestPictureRecorder_BalancesSaves(t *testing.T) {
	var rec PictureRecorder
	canvas := rec.BeginRecording(Size{Width: 10, Height: 10})
	canvas.Restore()
	canvas.Save()
	canvas.SaveLayerAlpha(RectFromLTWH(0, 0, 10, 10), 0.5)
	canvas.Clear(ColorRed)

	list := rec.EndRecording()
	want := []OpKind{OpSave, OpSaveLayerAlpha, OpClear, OpRestore, OpRestore}
	got := list.Kinds()
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", got, want)
		}
	}

	canvas.Clear(ColorBlue)
	if list.Len() != len(want) {
		t.Error("canvas kept recording after EndRecording")
	}
	var target countingCanvas
	list.Paint(&target)
	if target.depth != 0 {
		t.Errorf("replay depth = %d", target.depth)
	}
}
