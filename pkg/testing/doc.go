// Package testing provides helpers for testing badges and the code that
// renders them.
//
// # Deterministic text
//
// [FixedMeasurer] gives every rune the same advance, so expected widths can
// be computed by hand:
//
//	m := badgetest.NewFixedMeasurer(8, 19)
//	b := badge.New(graphics.RectFromLTWH(0, 0, 0, 24), badge.WithMeasurer(m))
//
// # Capturing commits
//
// [RecordingRenderer] keeps every commit a badge produces:
//
//	rec := &badgetest.RecordingRenderer{}
//	b := badge.New(frame, badge.WithRenderer(rec))
//	b.SetText("100")
//	last := rec.Last()
//
// # Animation time
//
// [FakeClock] replaces the animation clock for the duration of a test, and
// Step advances it and fires every active ticker:
//
//	clk := badgetest.InstallFakeClock(t)
//	clk.Step(100 * time.Millisecond)
//
// # Snapshots
//
// [CaptureSnapshot] serializes a commit and, optionally, the drawing
// operations a painter issues, so two states can be compared with Diff or
// against a golden file with MatchesFile.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import badgetest "github.com/go-drift/badgeview/pkg/testing"
package testing
