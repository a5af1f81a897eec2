package badge

import (
	stderrors "errors"
	"math"

	"github.com/go-drift/badgeview/pkg/errors"
	"github.com/go-drift/badgeview/pkg/graphics"
)

// paddingRatio is the horizontal padding on each side of the text, as a
// fraction of the font's point size.
const paddingRatio = 0.375

// LayoutInput is everything the layout engine reads.
type LayoutInput struct {
	Text     string
	Font     graphics.Font
	Measurer graphics.TextMeasurer

	// Frame is the current frame. Its height is kept, its origin is kept on
	// axes whose alignment is none.
	Frame graphics.Rect
	// Parent is the parent's bounds. Nil when the badge is detached.
	Parent *graphics.Rect

	Horizontal         HorizontalAlignment
	Vertical           VerticalAlignment
	AlignmentShift     graphics.Offset
	TextAlignmentShift graphics.Offset

	// With PixelPerfect the width limits are rounded inward to the pixel
	// grid, the minimum up and the maximum down.
	MinimumWidth float64
	// MaximumWidth of zero means unbounded.
	MaximumWidth float64
	PixelPerfect bool
	Scale        float64

	// CornerRadius is used as is unless AutoCornerRadius is set, in which
	// case the radius becomes half the computed height.
	CornerRadius     float64
	AutoCornerRadius bool
	BorderWidth      float64
}

// Geometry is the output of a layout pass. Frame is in parent coordinates,
// everything else in the badge's own coordinates.
type Geometry struct {
	Frame         graphics.Rect
	Bounds        graphics.Rect
	TextFrame     graphics.Rect
	CornerRadius  float64
	ShapePath     *graphics.Path
	GlossMaskPath *graphics.Path
	LineHeight    float64
	// ContentWidth is the padded text width before clamping.
	ContentWidth float64
}

// Clone returns a copy that shares no paths with g.
func (g Geometry) Clone() Geometry {
	g.ShapePath = g.ShapePath.Clone()
	g.GlossMaskPath = g.GlossMaskPath.Clone()
	return g
}

// Equal reports whether two geometries are identical, paths included.
func (g Geometry) Equal(other Geometry) bool {
	return g.Frame == other.Frame &&
		g.Bounds == other.Bounds &&
		g.TextFrame == other.TextFrame &&
		g.CornerRadius == other.CornerRadius &&
		g.LineHeight == other.LineHeight &&
		g.ContentWidth == other.ContentWidth &&
		g.ShapePath.Equal(other.ShapePath) &&
		g.GlossMaskPath.Equal(other.GlossMaskPath)
}

// ComputeLayout runs a layout pass. It always returns usable geometry; the
// error reports what had to be skipped, either ErrNoParent for an axis whose
// alignment needs the parent, or a measurement failure, in which case the
// text is treated as zero sized.
func ComputeLayout(in LayoutInput) (Geometry, error) {
	var errs []error
	scale := in.Scale
	if !(scale > 0) {
		scale = 1
	}

	width, err := PaddedTextWidth(in.Text, in.Font, in.Measurer, in.PixelPerfect, scale)
	if err != nil {
		errs = appendErr(errs, err)
	}
	lineHeight, err := lineHeightFor(in.Font, in.Measurer)
	if err != nil {
		errs = appendErr(errs, err)
	}
	contentWidth := width

	maxWidth := in.MaximumWidth
	if maxWidth <= 0 || math.IsNaN(maxWidth) {
		maxWidth = math.Inf(1)
	}
	minWidth := in.MinimumWidth
	if math.IsNaN(minWidth) {
		minWidth = 0
	}
	if in.PixelPerfect {
		minWidth = graphics.CeilToPixel(minWidth, scale)
		maxWidth = graphics.FloorToPixel(maxWidth, scale)
	}
	// Minimum wins when the limits conflict.
	width = math.Max(math.Min(width, maxWidth), minWidth)
	width = math.Max(width, 0)
	height := math.Max(in.Frame.Height(), 0)

	x, y := in.Frame.Left, in.Frame.Top
	if in.Horizontal.needsParent() && in.Parent == nil {
		errs = appendErr(errs, errors.ErrNoParent)
	} else {
		x = resolveX(in.Horizontal, x, width, in.Parent, in.AlignmentShift.X)
	}
	if in.Vertical.needsParent() && in.Parent == nil {
		errs = appendErr(errs, errors.ErrNoParent)
	} else {
		y = resolveY(in.Vertical, y, height, in.Parent, in.AlignmentShift.Y)
	}

	frame := graphics.RectFromLTWH(x, y, width, height)
	if in.PixelPerfect {
		frame = graphics.SnapRect(frame, scale)
	}
	bounds := graphics.RectFromSize(frame.Size())

	radius := in.CornerRadius
	if in.AutoCornerRadius {
		radius = frame.Height() / 2
	}

	centering := (frame.Height() - lineHeight) / 2
	if in.PixelPerfect {
		centering = graphics.SnapToPixel(centering, scale)
	}
	textFrame := graphics.RectFromLTWH(
		in.TextAlignmentShift.X,
		centering+in.TextAlignmentShift.Y,
		frame.Width(),
		lineHeight,
	)

	inset := math.Max(in.BorderWidth, 0) / 2
	geom := Geometry{
		Frame:        frame,
		Bounds:       bounds,
		TextFrame:    textFrame,
		CornerRadius: radius,
		ShapePath: graphics.NewRRectPath(
			graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(radius)),
		),
		GlossMaskPath: graphics.NewRRectPath(
			graphics.RRectFromRectAndRadius(bounds.Inset(inset, inset), graphics.CircularRadius(radius)),
		),
		LineHeight:   lineHeight,
		ContentWidth: contentWidth,
	}
	return geom, stderrors.Join(errs...)
}

func resolveX(a HorizontalAlignment, current, width float64, parent *graphics.Rect, shift float64) float64 {
	switch a {
	case HorizontalLeft:
		return 0 - width/2 + shift
	case HorizontalCenter:
		return parent.Width()/2 - width/2 + shift
	case HorizontalRight:
		return parent.Width() - width/2 + shift
	default:
		return current
	}
}

func resolveY(a VerticalAlignment, current, height float64, parent *graphics.Rect, shift float64) float64 {
	switch a {
	case VerticalTop:
		return 0 - height/2 + shift
	case VerticalMiddle:
		return parent.Height()/2 - height/2 + shift
	case VerticalBottom:
		return parent.Height() - height/2 + shift
	default:
		return current
	}
}

// PaddedTextWidth returns the single-line width of text plus the horizontal
// padding on both sides. With pixelPerfect the padding and the padded width
// are each snapped to the device pixel grid.
func PaddedTextWidth(text string, f graphics.Font, m graphics.TextMeasurer, pixelPerfect bool, scale float64) (float64, error) {
	padding := f.Size * paddingRatio
	if pixelPerfect {
		padding = graphics.SnapToPixel(padding, scale)
	}
	var (
		size graphics.Size
		err  error
	)
	if m != nil {
		size, err = m.MeasureText(text, f)
	} else {
		err = errNoMeasurer
	}
	if err != nil {
		size = graphics.Size{}
	}
	width := size.Width + padding*2
	if pixelPerfect {
		width = graphics.SnapToPixel(width, scale)
	}
	return width, err
}

func lineHeightFor(f graphics.Font, m graphics.TextMeasurer) (float64, error) {
	if m == nil {
		return f.Size, errNoMeasurer
	}
	h, err := m.LineHeight(f)
	if err != nil {
		return f.Size, err
	}
	return h, nil
}

var errNoMeasurer = stderrors.New("no text measurer")

func appendErr(errs []error, err error) []error {
	for _, e := range errs {
		if e == err {
			return errs
		}
	}
	return append(errs, err)
}
