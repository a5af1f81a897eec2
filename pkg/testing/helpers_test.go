package testing

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/badgeview/pkg/animation"
	"github.com/go-drift/badgeview/pkg/badge"
	"github.com/go-drift/badgeview/pkg/errors"
	"github.com/go-drift/badgeview/pkg/graphics"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	if elapsed := clk.Now().Sub(start); elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_DrivesControllers(t *testing.T) {
	clk := InstallFakeClock(t)

	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()
	c.Forward()

	clk.Step(50 * time.Millisecond)
	if c.Value != 0.5 {
		t.Errorf("value after half the duration = %v, want 0.5", c.Value)
	}
	clk.StepFrames(3, 20*time.Millisecond)
	if c.Value != 1 || c.Status() != animation.AnimationCompleted {
		t.Errorf("value = %v status = %s, want completed at 1", c.Value, c.Status())
	}
	if c.IsAnimating() {
		t.Error("controller should have stopped")
	}
}

func TestInstallFakeClock_Restores(t *testing.T) {
	var clk *FakeClock
	t.Run("installed", func(t *testing.T) {
		clk = InstallFakeClock(t)
		if !animation.Now().Equal(clk.Now()) {
			t.Error("animation clock should read the fake time")
		}
	})
	if animation.Now().Equal(clk.Now()) {
		t.Error("fake clock still installed after the subtest")
	}
}

func TestFixedMeasurer(t *testing.T) {
	m := NewFixedMeasurer(7, 17)
	size, err := m.MeasureText("héllo", graphics.DefaultFont())
	if err != nil {
		t.Fatal(err)
	}
	if size.Width != 35 || size.Height != 17 {
		t.Errorf("size = %+v, want 35x17", size)
	}

	m.Err = stderrors.New("no font")
	if _, err := m.MeasureText("x", graphics.DefaultFont()); err == nil {
		t.Error("expected the configured error")
	}
	if _, err := m.LineHeight(graphics.DefaultFont()); err == nil {
		t.Error("expected the configured error")
	}
}

func TestRecordingRenderer(t *testing.T) {
	rec := &RecordingRenderer{}
	if rec.Last().Seq != 0 {
		t.Error("empty recorder should return the zero commit")
	}
	b := badge.New(graphics.RectFromLTWH(0, 0, 0, 24),
		badge.WithMeasurer(NewFixedMeasurer(8, 19)),
		badge.WithParent(badge.ParentOfSize(100, 100)),
		badge.WithRenderer(rec),
	)
	b.SetText("3")
	if rec.Len() != 2 {
		t.Fatalf("commits = %d, want 2", rec.Len())
	}
	commits := rec.Commits()
	if commits[0].Seq >= commits[1].Seq {
		t.Error("commit sequence should increase")
	}
	rec.Reset()
	if rec.Len() != 0 {
		t.Error("Reset should drop commits")
	}
}

func TestErrorRecorder(t *testing.T) {
	rec := InstallErrorRecorder(t)
	errors.Report(&errors.BadgeError{Op: "a", Kind: errors.KindFont, Err: stderrors.New("x")})
	errors.Report(&errors.BadgeError{Op: "b", Kind: errors.KindPrecondition, Err: errors.ErrNoParent})
	errors.Report(&errors.BadgeError{Op: "c", Kind: errors.KindFont, Err: stderrors.New("y")})
	errors.ReportPanic(&errors.PanicError{Op: "d", Value: "boom"})

	if len(rec.Errors()) != 3 {
		t.Errorf("errors = %d, want 3", len(rec.Errors()))
	}
	if rec.Count(errors.KindFont) != 2 || rec.Count(errors.KindPrecondition) != 1 {
		t.Error("unexpected kind counts")
	}
	if len(rec.Panics()) != 1 {
		t.Errorf("panics = %d, want 1", len(rec.Panics()))
	}
}

func TestRecordOps(t *testing.T) {
	path := graphics.NewRRectPath(graphics.RRectFromRectAndRadius(
		graphics.RectFromLTWH(0, 0, 30, 20), graphics.CircularRadius(10)))
	ops := RecordOps(graphics.Size{Width: 30, Height: 20}, func(c graphics.Canvas) {
		c.Save()
		c.Translate(1.234, 2)
		c.DrawPath(path, graphics.Paint{Color: graphics.ColorRed, Alpha: 1})
		c.SaveLayerAlpha(graphics.RectFromLTWH(0, 0, 30, 20), 0.5)
		c.DrawText(&graphics.TextLayout{Text: "4", Font: graphics.DefaultFont(), Color: graphics.ColorWhite}, graphics.Offset{X: 11, Y: 0.5})
		c.DrawText(nil, graphics.Offset{})
		c.Restore()
		c.Restore()
	})

	want := []string{"save", "translate", "drawPath", "saveLayerAlpha", "drawText", "restore", "restore"}
	if len(ops) != len(want) {
		t.Fatalf("ops = %d, want %d", len(ops), len(want))
	}
	for i, op := range ops {
		if op.Op != want[i] {
			t.Errorf("op %d = %s, want %s", i, op.Op, want[i])
		}
	}
	if ops[1].Params["dx"] != 1.23 {
		t.Errorf("translate dx = %v, want rounded 1.23", ops[1].Params["dx"])
	}
	if ops[2].Params["color"] != "0xFFFF0000" || ops[2].Params["style"] != "fill" {
		t.Errorf("drawPath params = %v", ops[2].Params)
	}
	if ops[4].Params["text"] != "4" {
		t.Errorf("drawText params = %v", ops[4].Params)
	}
}

func TestDisplayListSnapshot(t *testing.T) {
	rec := &graphics.PictureRecorder{}
	c := rec.BeginRecording(graphics.Size{Width: 10, Height: 10})
	c.Clear(graphics.ColorBlack)
	c.Scale(2, 2)
	dl := rec.EndRecording()

	snap := (&Snapshot{}).WithDisplayList(dl)
	if len(snap.DisplayOps) != 2 || snap.DisplayOps[0].Op != "clear" || snap.DisplayOps[1].Op != "scale" {
		t.Errorf("ops = %+v", snap.DisplayOps)
	}
}

func newSnapshotBadge(text string) badge.Commit {
	rec := &RecordingRenderer{}
	b := badge.New(graphics.RectFromLTWH(0, 0, 0, 24),
		badge.WithMeasurer(NewFixedMeasurer(8, 19)),
		badge.WithParent(badge.ParentOfSize(100, 100)),
		badge.WithRenderer(rec),
	)
	b.SetBorderWidth(2)
	b.SetShowGloss(true)
	b.SetText(text)
	return rec.Last()
}

func TestCaptureSnapshot(t *testing.T) {
	snap := CaptureSnapshot(newSnapshotBadge("100"))

	if snap.Frame != [4]float64{82, -12, 36, 24} {
		t.Errorf("frame = %v", snap.Frame)
	}
	names := make([]string, len(snap.Layers))
	for i, l := range snap.Layers {
		names[i] = l.Name
	}
	if got := strings.Join(names, ","); got != "background,border,text,gloss" {
		t.Errorf("layers = %s", got)
	}
	if snap.Layers[2].Properties["text"] != "100" {
		t.Errorf("text props = %v", snap.Layers[2].Properties)
	}
	if snap.Layers[1].Properties["lineWidth"] != 2.0 {
		t.Errorf("border props = %v", snap.Layers[1].Properties)
	}

	var contents *TransitionNode
	for i := range snap.Transitions {
		if snap.Transitions[i].Layer == "text" {
			contents = &snap.Transitions[i]
		}
	}
	if contents == nil || contents.DurationMS != 200 || contents.Easing != "ease-in-out" || contents.Properties[0] != "contents" {
		t.Errorf("text transition = %+v", contents)
	}
}

func TestSnapshotDiff(t *testing.T) {
	a := CaptureSnapshot(newSnapshotBadge("1"))
	b := CaptureSnapshot(newSnapshotBadge("1"))
	if diff := a.Diff(b); diff != "" {
		t.Errorf("identical snapshots differ:\n%s", diff)
	}

	c := CaptureSnapshot(newSnapshotBadge("22"))
	diff := c.Diff(a)
	if diff == "" {
		t.Fatal("expected a diff")
	}
	if !strings.Contains(diff, `"text": "1"`) || !strings.Contains(diff, `"text": "22"`) {
		t.Errorf("diff missing the text change:\n%s", diff)
	}
}

type fakeT struct {
	name   string
	errors []string
	fatal  bool
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return f.name }

func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatal = true
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func TestMatchesFile(t *testing.T) {
	t.Setenv(updateEnv, "")
	path := filepath.Join(t.TempDir(), "golden", "badge.json")
	snap := CaptureSnapshot(newSnapshotBadge("7"))

	missing := &fakeT{name: "TestMissing"}
	snap.MatchesFile(missing, path)
	if !missing.fatal || !strings.Contains(missing.errors[0], "snapshot file missing") {
		t.Errorf("missing file: %+v", missing)
	}

	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}
	ok := &fakeT{name: "TestOK"}
	snap.MatchesFile(ok, path)
	if len(ok.errors) != 0 {
		t.Errorf("round trip should match: %v", ok.errors)
	}

	changed := &fakeT{name: "TestChanged"}
	CaptureSnapshot(newSnapshotBadge("77")).MatchesFile(changed, path)
	if len(changed.errors) != 1 || changed.fatal || !strings.Contains(changed.errors[0], "snapshot mismatch") {
		t.Errorf("changed snapshot: %+v", changed)
	}

	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	corrupt := &fakeT{name: "TestCorrupt"}
	snap.MatchesFile(corrupt, path)
	if !corrupt.fatal || !strings.Contains(corrupt.errors[0], "invalid snapshot JSON") {
		t.Errorf("corrupt file: %+v", corrupt)
	}
}

func TestMatchesFile_Update(t *testing.T) {
	t.Setenv(updateEnv, "1")
	path := filepath.Join(t.TempDir(), "badge.json")
	snap := CaptureSnapshot(newSnapshotBadge("9"))

	ft := &fakeT{name: "TestUpdate"}
	snap.MatchesFile(ft, path)
	if len(ft.errors) != 0 {
		t.Fatalf("update mode reported: %v", ft.errors)
	}
	loaded, err := loadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := snap.Diff(loaded); diff != "" {
		t.Errorf("written snapshot differs:\n%s", diff)
	}
}
