package animation

import (
	"math"
	"testing"

	"github.com/go-drift/badgeview/pkg/graphics"
)

func TestCurves_Endpoints(t *testing.T) {
	curves := map[string]Curve{
		"linear":      LinearCurve,
		"ease-in":     EaseIn,
		"ease-out":    EaseOut,
		"ease-in-out": EaseInOut,
	}
	for name, curve := range curves {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %v", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %v", name, got)
		}
	}
}

func TestEaseInOut_Shape(t *testing.T) {
	if got := EaseInOut(0.5); math.Abs(got-0.5) > 1e-4 {
		t.Errorf("EaseInOut(0.5) = %v, want 0.5", got)
	}
	if got := EaseInOut(0.1); got >= 0.1 {
		t.Errorf("EaseInOut should start slow, got %v at 0.1", got)
	}
	if got := EaseInOut(0.9); got <= 0.9 {
		t.Errorf("EaseInOut should end slow, got %v at 0.9", got)
	}
	prev := 0.0
	for i := 1; i <= 20; i++ {
		v := EaseInOut(float64(i) / 20)
		if v < prev {
			t.Fatalf("EaseInOut not monotonic at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestCurveByName(t *testing.T) {
	for _, name := range []string{"linear", "EASE_IN", " ease-out ", "ease-in-out", ""} {
		if _, err := CurveByName(name); err != nil {
			t.Errorf("CurveByName(%q) error: %v", name, err)
		}
	}
	if _, err := CurveByName("bounce"); err == nil {
		t.Error("expected error for unknown curve")
	}
}

func TestLerpColor(t *testing.T) {
	a := graphics.RGBA8(0, 0, 0, 0)
	b := graphics.RGBA8(255, 255, 255, 255)
	if LerpColor(a, b, 0) != a || LerpColor(a, b, 1) != b {
		t.Error("endpoints should reproduce inputs")
	}
	if got := LerpColor(a, b, 0.5); got != graphics.RGBA8(128, 128, 128, 128) {
		t.Errorf("midpoint = %s", got.Hex())
	}
}

func TestLerpRect(t *testing.T) {
	got := TweenRect(graphics.RectFromLTWH(0, 0, 24, 24), graphics.RectFromLTWH(10, 0, 40, 24)).Evaluate(0.5)
	want := graphics.RectFromLTWH(5, 0, 32, 24)
	if got != want {
		t.Errorf("LerpRect = %v, want %v", got, want)
	}
}

func TestTweenPath(t *testing.T) {
	a := graphics.NewRRectPath(graphics.RRectFromRectAndRadius(graphics.RectFromLTWH(0, 0, 24, 24), graphics.CircularRadius(12)))
	b := graphics.NewRRectPath(graphics.RRectFromRectAndRadius(graphics.RectFromLTWH(0, 0, 40, 24), graphics.CircularRadius(12)))
	tw := TweenPath(a, b)
	if !tw.Evaluate(1).Equal(b) {
		t.Error("t=1 should reproduce the end path")
	}
	if w := tw.Evaluate(0.5).Bounds().Width(); math.Abs(w-32) > 1e-9 {
		t.Errorf("midpoint width = %v, want 32", w)
	}
}

func TestTween_NilLerp(t *testing.T) {
	tw := &Tween[int]{Begin: 1, End: 2}
	if tw.Evaluate(0) != 2 {
		t.Error("nil Lerp should yield End")
	}
}
