package style_test

import (
	stderrors "errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/badgeview/pkg/badge"
	"github.com/go-drift/badgeview/pkg/graphics"
	"github.com/go-drift/badgeview/pkg/style"
	badgetest "github.com/go-drift/badgeview/pkg/testing"
)

const fullStyle = `
version: "1.0"
height: 30
font: {family: Go Bold, size: 13}
textColor: "#000000"
backgroundColor: "#0A84FF"
border: {color: "#80FFFFFF", width: 2}
cornerRadius: 6
gloss: true
shadow:
  color: "#000000"
  offset: [0, 2]
  radius: 3
  text: true
  border: true
  badge: true
alignment: {horizontal: left, vertical: bottom, shift: [-2, 2], textShift: [0, 1]}
width: {min: 40, max: 90}
pixelPerfect: false
animation: {enabled: false, duration: 350ms}
hidesWhenZero: false
`

func newBadge() (*badge.BadgeView, *badgetest.RecordingRenderer) {
	rec := &badgetest.RecordingRenderer{}
	b := badge.New(graphics.RectFromLTWH(0, 0, 0, 24),
		badge.WithMeasurer(badgetest.NewFixedMeasurer(8, 19)),
		badge.WithRenderer(rec),
		badge.WithParent(badge.ParentOfSize(200, 100)),
	)
	return b, rec
}

func TestParseAndApply(t *testing.T) {
	doc, err := style.Parse([]byte(fullStyle))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, _ := newBadge()
	if err := doc.Apply(b); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if got := b.Frame().Height(); got != 30 {
		t.Errorf("height = %v, want 30", got)
	}
	if got := b.Font(); got != (graphics.Font{Family: "Go Bold", Size: 13}) {
		t.Errorf("font = %+v", got)
	}
	if b.TextColor() != graphics.ColorBlack {
		t.Errorf("text color = %v", b.TextColor())
	}
	if got := b.BadgeBackgroundColor().Hex(); got != "#0A84FF" {
		t.Errorf("background = %s", got)
	}
	if got := b.BorderColor().Hex(); got != "#80FFFFFF" {
		t.Errorf("border color = %s", got)
	}
	if b.BorderWidth() != 2 {
		t.Errorf("border width = %v", b.BorderWidth())
	}
	if b.IsCornerRadiusAuto() || b.CornerRadius() != 6 {
		t.Errorf("corner radius = %v auto=%v", b.CornerRadius(), b.IsCornerRadiusAuto())
	}
	if !b.ShowGloss() {
		t.Error("gloss not shown")
	}
	if b.ShadowOffset() != (graphics.Offset{Y: 2}) || b.ShadowRadius() != 3 {
		t.Errorf("shadow offset=%v radius=%v", b.ShadowOffset(), b.ShadowRadius())
	}
	if !b.ShadowText() || !b.ShadowBorder() || !b.ShadowBadge() {
		t.Error("shadow toggles not applied")
	}
	if b.HorizontalAlignment() != badge.HorizontalLeft || b.VerticalAlignment() != badge.VerticalBottom {
		t.Errorf("alignment = %v/%v", b.HorizontalAlignment(), b.VerticalAlignment())
	}
	if b.AlignmentShift() != (graphics.Offset{X: -2, Y: 2}) || b.TextAlignmentShift() != (graphics.Offset{Y: 1}) {
		t.Errorf("shifts = %v %v", b.AlignmentShift(), b.TextAlignmentShift())
	}
	if b.MinimumWidth() != 40 || b.MaximumWidth() != 90 {
		t.Errorf("width limits = %v..%v", b.MinimumWidth(), b.MaximumWidth())
	}
	if b.PixelPerfectText() || b.AnimateChanges() || b.HidesWhenZero() {
		t.Error("boolean flags not applied")
	}
	if b.AnimationDuration() != 350*time.Millisecond {
		t.Errorf("duration = %v", b.AnimationDuration())
	}
}

func TestApplyLeavesUnsetFields(t *testing.T) {
	b, _ := newBadge()
	b.SetBorderWidth(3)
	b.SetCornerRadius(5)

	doc, err := style.Parse([]byte("version: \"1\"\nbackgroundColor: \"#00FF00\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Apply(b); err != nil {
		t.Fatal(err)
	}
	if b.BadgeBackgroundColor() != graphics.ColorGreen {
		t.Errorf("background = %s", b.BadgeBackgroundColor().Hex())
	}
	if b.BorderWidth() != 3 || b.CornerRadius() != 5 {
		t.Errorf("unset fields changed: border=%v radius=%v", b.BorderWidth(), b.CornerRadius())
	}
	if b.HorizontalAlignment() != badge.HorizontalRight {
		t.Errorf("alignment changed to %v", b.HorizontalAlignment())
	}
}

func TestApplyAnimationPolicyFirst(t *testing.T) {
	b, rec := newBadge()
	doc, err := style.Parse([]byte(`
version: "1"
width: {min: 60}
animation: {enabled: false}
`))
	if err != nil {
		t.Fatal(err)
	}
	rec.Reset()
	if err := doc.Apply(b); err != nil {
		t.Fatal(err)
	}
	if rec.Len() == 0 {
		t.Fatal("no commit")
	}
	for _, c := range rec.Commits() {
		for _, lt := range c.Transitions {
			if !lt.Transition.IsInstant() {
				t.Errorf("%s animated with animations disabled", lt.Layer)
			}
		}
	}
	if got := b.Frame().Width(); got != 60 {
		t.Errorf("width = %v, want 60", got)
	}
}

func TestCornerRadiusAuto(t *testing.T) {
	doc, err := style.Parse([]byte("version: \"1\"\ncornerRadius: Auto\nheight: 40\n"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.CornerRadius == nil || !doc.CornerRadius.Auto {
		t.Fatalf("cornerRadius = %+v, want auto", doc.CornerRadius)
	}
	b, _ := newBadge()
	if err := doc.Apply(b); err != nil {
		t.Fatal(err)
	}
	if !b.IsCornerRadiusAuto() || b.CornerRadius() != 20 {
		t.Errorf("radius = %v auto=%v, want 20 auto", b.CornerRadius(), b.IsCornerRadiusAuto())
	}
}

func TestMaximumWidthNone(t *testing.T) {
	b, _ := newBadge()
	b.SetMaximumWidth(50)

	doc, err := style.Parse([]byte("version: \"1\"\nwidth: {max: none}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Apply(b); err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(b.MaximumWidth(), 1) {
		t.Errorf("max width = %v, want unbounded", b.MaximumWidth())
	}
}

func TestVersionGate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"short", `version: "1"`, nil},
		{"prefixed", `version: v1.0.0`, nil},
		{"older patch", `version: "1.0"`, nil},
		{"empty document", ``, style.ErrMissingVersion},
		{"no version", `gloss: true`, style.ErrMissingVersion},
		{"not semver", `version: banana`, style.ErrInvalidVersion},
		{"next major", `version: "2"`, style.ErrUnsupportedVersion},
		{"pre-release major", `version: "0.9"`, style.ErrUnsupportedVersion},
		{"newer minor", `version: "1.1"`, style.ErrUnsupportedVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := style.Parse([]byte(tt.input))
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !stderrors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"color", "version: \"1\"\ntextColor: \"#12\"\n"},
		{"shift", "version: \"1\"\nalignment: {shift: [1, 2, 3]}\n"},
		{"alignment", "version: \"1\"\nalignment: {horizontal: sideways}\n"},
		{"radius", "version: \"1\"\ncornerRadius: -1\n"},
		{"duration", "version: \"1\"\nanimation: {duration: soon}\n"},
		{"negative duration", "version: \"1\"\nanimation: {duration: -1s}\n"},
		{"height", "version: \"1\"\nheight: 0\n"},
		{"border", "version: \"1\"\nborder: {width: -2}\n"},
		{"limit", "version: \"1\"\nwidth: {max: wide}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := style.Parse([]byte(tt.input))
			if !stderrors.Is(err, style.ErrInvalidValue) {
				t.Fatalf("err = %v, want ErrInvalidValue", err)
			}
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := style.Parse([]byte("version: \"1\"\nglos: true\n"))
	if err == nil || !strings.Contains(err.Error(), "glos") {
		t.Fatalf("err = %v, want an unknown field error", err)
	}
}

func TestFromBadgeRoundTrip(t *testing.T) {
	src, _ := newBadge()
	src.SetBorderWidth(1.5)
	src.SetShowGloss(true)
	src.SetAlignmentShift(graphics.Offset{X: 3, Y: -1})
	src.SetAnimationDuration(120 * time.Millisecond)

	want := style.FromBadge(src)
	data, err := style.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, s := range []string{"cornerRadius: auto", "max: none", "duration: 120ms", "shift: [3, -1]"} {
		if !strings.Contains(text, s) {
			t.Errorf("marshalled style missing %q:\n%s", s, text)
		}
	}

	doc, err := style.Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal(doc)): %v\n%s", err, text)
	}
	dst, _ := newBadge()
	if err := doc.Apply(dst); err != nil {
		t.Fatal(err)
	}
	if got := style.FromBadge(dst); !reflect.DeepEqual(got, want) {
		t.Errorf("round trip changed the style:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "badge.yaml")
	if err := os.WriteFile(path, []byte(fullStyle), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := style.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Gloss == nil || !*doc.Gloss {
		t.Error("gloss not loaded")
	}

	if _, err := style.Load(filepath.Join(dir, "missing.yaml")); !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not exist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte(`version: "3"`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = style.Load(bad)
	if !stderrors.Is(err, style.ErrUnsupportedVersion) || !strings.Contains(err.Error(), bad) {
		t.Errorf("err = %v, want unsupported version naming the file", err)
	}
}
