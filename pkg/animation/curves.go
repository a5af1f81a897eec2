package animation

import (
	"fmt"
	"math"
	"strings"
)

// Curve maps linear progress in [0, 1] to eased progress. Curves return 0 at
// 0 and 1 at 1.
type Curve func(t float64) float64

// LinearCurve leaves progress unchanged.
func LinearCurve(t float64) float64 {
	return t
}

// EaseIn starts slowly.
var EaseIn Curve = CubicBezier(0.42, 0, 1, 1)

// EaseOut ends slowly.
var EaseOut Curve = CubicBezier(0, 0, 0.58, 1)

// EaseInOut starts and ends slowly. It is the curve platform view animations
// use when none is specified.
var EaseInOut Curve = CubicBezier(0.42, 0, 0.58, 1)

// CurveByName resolves "linear", "ease-in", "ease-out" and "ease-in-out".
// Matching ignores case and accepts underscores for dashes.
func CurveByName(name string) (Curve, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-") {
	case "linear":
		return LinearCurve, nil
	case "ease-in":
		return EaseIn, nil
	case "ease-out":
		return EaseOut, nil
	case "ease-in-out", "":
		return EaseInOut, nil
	default:
		return nil, fmt.Errorf("unknown curve %q", name)
	}
}

// CubicBezier returns the timing curve through (0,0), (x1,y1), (x2,y2), (1,1),
// the same parameterization CSS and Core Animation use.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bezierComponent(y1, y2, solveBezierX(x1, x2, t))
	}
}

// solveBezierX finds the parameter u with x(u) == x. Newton steps first,
// bisection when the slope is too flat to trust.
func solveBezierX(x1, x2, x float64) float64 {
	const tolerance = 1e-7
	u := x
	for range 8 {
		err := bezierComponent(x1, x2, u) - x
		if math.Abs(err) < tolerance {
			return u
		}
		slope := bezierSlope(x1, x2, u)
		if math.Abs(slope) < tolerance {
			break
		}
		u -= err / slope
	}

	lo, hi := 0.0, 1.0
	u = math.Max(lo, math.Min(hi, u))
	for range 30 {
		err := bezierComponent(x1, x2, u) - x
		if math.Abs(err) < tolerance {
			break
		}
		if err > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return u
}

func bezierComponent(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*p1 + 3*inv*u*u*p2 + u*u*u
}

func bezierSlope(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*p1 + 6*inv*u*(p2-p1) + 3*u*u*(1-p2)
}
