package animation

import (
	"math"

	"github.com/go-drift/badgeview/pkg/graphics"
)

// Tween maps controller progress onto a value between Begin and End.
type Tween[T any] struct {
	Begin T
	End   T
	// Lerp interpolates between a and b at t. A nil Lerp always yields End.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the value at progress t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform evaluates the tween at the controller's current value.
func (tw *Tween[T]) Transform(c *AnimationController) T {
	return tw.Evaluate(c.Value)
}

// LerpFloat64 interpolates two numbers.
func LerpFloat64(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset interpolates two offsets component-wise.
func LerpOffset(a, b graphics.Offset, t float64) graphics.Offset {
	return graphics.Offset{X: LerpFloat64(a.X, b.X, t), Y: LerpFloat64(a.Y, b.Y, t)}
}

// LerpRect interpolates each edge of two rects.
func LerpRect(a, b graphics.Rect, t float64) graphics.Rect {
	return graphics.Rect{
		Left:   LerpFloat64(a.Left, b.Left, t),
		Top:    LerpFloat64(a.Top, b.Top, t),
		Right:  LerpFloat64(a.Right, b.Right, t),
		Bottom: LerpFloat64(a.Bottom, b.Bottom, t),
	}
}

// LerpColor interpolates each ARGB channel, rounding to the nearest byte.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	channel := func(shift uint) uint8 {
		x := float64(uint8(a >> shift))
		y := float64(uint8(b >> shift))
		return uint8(math.Round(LerpFloat64(x, y, t)))
	}
	return graphics.RGBA8(channel(16), channel(8), channel(0), channel(24))
}

// TweenFloat64 returns a number tween.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenRect returns a rect tween.
func TweenRect(begin, end graphics.Rect) *Tween[graphics.Rect] {
	return &Tween[graphics.Rect]{Begin: begin, End: end, Lerp: LerpRect}
}

// TweenColor returns a color tween.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{Begin: begin, End: end, Lerp: LerpColor}
}

// TweenPath returns a tween over two paths with the same command layout.
// Incompatible paths snap to End.
func TweenPath(begin, end *graphics.Path) *Tween[*graphics.Path] {
	return &Tween[*graphics.Path]{
		Begin: begin,
		End:   end,
		Lerp: func(a, b *graphics.Path, t float64) *graphics.Path {
			p, _ := graphics.LerpPath(a, b, t)
			return p
		},
	}
}
