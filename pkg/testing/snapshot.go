package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/badgeview/pkg/badge"
	"github.com/go-drift/badgeview/pkg/graphics"
)

// updateEnv names the environment variable that makes MatchesFile rewrite
// golden files instead of comparing.
const updateEnv = "BADGE_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is a serializable view of a commit and, optionally, the drawing
// operations it painted.
type Snapshot struct {
	Frame       [4]float64       `json:"frame"`
	Hidden      bool             `json:"hidden,omitempty"`
	Layers      []LayerNode      `json:"layers"`
	Transitions []TransitionNode `json:"transitions,omitempty"`
	DisplayOps  []DisplayOp      `json:"displayOps,omitempty"`
}

// LayerNode is one serialized layer.
type LayerNode struct {
	Name       string         `json:"name"`
	Frame      [4]float64     `json:"frame"`
	Properties map[string]any `json:"props,omitempty"`
}

// TransitionNode is one serialized layer transition.
type TransitionNode struct {
	Layer      string   `json:"layer"`
	DurationMS int64    `json:"durationMs"`
	Easing     string   `json:"easing"`
	Properties []string `json:"properties"`
}

// CaptureSnapshot serializes a commit.
func CaptureSnapshot(c badge.Commit) *Snapshot {
	snap := &Snapshot{
		Frame:  serializeFrame(c.Frame),
		Hidden: c.Hidden,
	}
	for _, l := range c.Layers {
		snap.Layers = append(snap.Layers, LayerNode{
			Name:       string(l.Name),
			Frame:      serializeFrame(l.Frame),
			Properties: layerProperties(l),
		})
	}
	for _, lt := range c.Transitions {
		node := TransitionNode{
			Layer:      string(lt.Layer),
			DurationMS: lt.Transition.Duration.Milliseconds(),
			Easing:     lt.Transition.Easing,
		}
		for _, p := range lt.Transition.Properties {
			node.Properties = append(node.Properties, p.String())
		}
		snap.Transitions = append(snap.Transitions, node)
	}
	return snap
}

// WithOps attaches drawing operations to the snapshot and returns it.
func (s *Snapshot) WithOps(ops []DisplayOp) *Snapshot {
	s.DisplayOps = ops
	return s
}

// WithDisplayList attaches the operations recorded in dl.
func (s *Snapshot) WithDisplayList(dl *graphics.DisplayList) *Snapshot {
	return s.WithOps(serializeDisplayList(dl))
}

func layerProperties(l badge.Layer) map[string]any {
	props := make(map[string]any)
	switch l.Name {
	case badge.LayerBackground:
		props["fill"] = serializeColor(l.Fill)
	case badge.LayerBorder:
		props["stroke"] = serializeColor(l.Stroke)
		props["lineWidth"] = round2(l.LineWidth)
	case badge.LayerText:
		props["text"] = l.Text
		props["color"] = serializeColor(l.TextColor)
		props["font"] = l.Font.String()
	case badge.LayerGloss:
		if l.Gradient != nil {
			props["gradientStops"] = len(l.Gradient.Stops)
		}
	}
	if !l.Path.IsEmpty() {
		props["path"] = serializeRect(l.Path.Bounds())
	}
	if l.Shadow != nil {
		props["shadow"] = serializeColor(l.Shadow.EffectiveColor())
	}
	return props
}

func serializeFrame(r graphics.Rect) [4]float64 {
	return [4]float64{round2(r.Left), round2(r.Top), round2(r.Width()), round2(r.Height())}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When BADGE_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(updateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, updateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, updateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between other (expected) and s (actual), or ""
// when they serialize identically.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lineDiff lists differing lines position by position.
func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")
	n := max(len(expectedLines), len(actualLines))
	for i := range n {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}
