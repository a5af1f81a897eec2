// Package badge implements a notification badge: a pill shaped overlay with
// centered text that positions itself against a parent view's edges.
//
// A [BadgeView] owns its configuration and an ordered stack of drawable
// layers (background, border, text, and an optional gloss on top). Each
// setter updates state and runs the smallest follow-up step it needs:
// recolor, reshadow, relayout, gloss attach or detach, or a visibility
// check. The resulting layer state is handed to a [Renderer] as a [Commit],
// together with [Transition] descriptors telling the renderer which changes
// to animate. The badge itself never animates or draws.
//
// Geometry comes from [ComputeLayout], a pure function of the badge's
// configuration, the parent's bounds, text metrics and the device scale.
//
// A BadgeView is not safe for concurrent use.
package badge

import (
	stderrors "errors"
	"math"
	"time"

	"github.com/go-drift/badgeview/pkg/errors"
	"github.com/go-drift/badgeview/pkg/graphics"
)

const (
	// defaultHeight replaces a zero initial frame height.
	defaultHeight = 24

	// DefaultAnimationDuration is the initial transition length.
	DefaultAnimationDuration = 200 * time.Millisecond
)

// Default appearance.
var (
	DefaultTextColor       = graphics.ColorWhite
	DefaultBackgroundColor = graphics.ColorRed
	DefaultBorderColor     = graphics.ColorWhite
	DefaultShadowColor     = graphics.White(0, 0.5)
	DefaultShadowOffset    = graphics.Offset{X: 1, Y: 1}
)

// DefaultShadowRadius is the initial shadow blur radius.
const DefaultShadowRadius = 1.0

// BadgeView is a badge overlay.
type BadgeView struct {
	frame     graphics.Rect
	text      string
	displayed string
	font      graphics.Font

	textColor       graphics.Color
	backgroundColor graphics.Color
	borderColor     graphics.Color
	borderWidth     float64
	cornerRadius    float64
	autoRadius      bool
	showGloss       bool

	shadowColor  graphics.Color
	shadowOffset graphics.Offset
	shadowRadius float64
	shadowText   bool
	shadowBorder bool
	shadowBadge  bool

	horizontal         HorizontalAlignment
	vertical           VerticalAlignment
	alignmentShift     graphics.Offset
	textAlignmentShift graphics.Offset

	minimumWidth float64
	maximumWidth float64
	pixelPerfect bool

	animateChanges    bool
	animationDuration time.Duration

	hidesWhenZero bool
	hidden        bool
	textState     TextState

	scale            float64
	measurer         graphics.TextMeasurer
	renderer         Renderer
	parent           Parent
	noParentReported bool

	geometry   Geometry
	background *Layer
	border     *Layer
	textLayer  *Layer
	gloss      *Layer
	stack      layerStack
	pending    []LayerTransition
	seq        uint64
	disposed   bool
}

// New creates a badge with the given initial frame. A zero frame height
// becomes 24. The minimum width starts equal to the height.
func New(frame graphics.Rect, opts ...Option) *BadgeView {
	b := &BadgeView{
		frame:             frame,
		font:              graphics.DefaultFont(),
		textColor:         DefaultTextColor,
		backgroundColor:   DefaultBackgroundColor,
		borderColor:       DefaultBorderColor,
		autoRadius:        true,
		shadowColor:       DefaultShadowColor,
		shadowOffset:      DefaultShadowOffset,
		shadowRadius:      DefaultShadowRadius,
		horizontal:        HorizontalRight,
		vertical:          VerticalTop,
		maximumWidth:      math.Inf(1),
		pixelPerfect:      true,
		animateChanges:    true,
		animationDuration: DefaultAnimationDuration,
		hidesWhenZero:     true,
		scale:             1,
		renderer:          nopRenderer{},
	}
	if m := graphics.DefaultFontManager(); m != nil {
		b.measurer = m
	}
	for _, opt := range opts {
		opt(b)
	}
	b.setup()
	return b
}

func (b *BadgeView) setup() {
	if b.frame.Height() == 0 {
		b.frame = b.frame.WithSize(b.frame.Width(), defaultHeight)
	}
	b.minimumWidth = b.frame.Height()
	b.cornerRadius = b.frame.Height() / 2

	b.background = &Layer{Name: LayerBackground, Fill: b.backgroundColor}
	b.border = &Layer{
		Name:      LayerBorder,
		Fill:      graphics.ColorTransparent,
		Stroke:    b.borderColor,
		LineWidth: b.borderWidth,
	}
	b.textLayer = &Layer{
		Name:      LayerText,
		TextColor: b.textColor,
		Font:      b.font,
	}
	b.gloss = &Layer{Name: LayerGloss, Fill: graphics.ColorTransparent}

	b.stack.attach(b.background)
	b.stack.attach(b.border)
	b.stack.attach(b.textLayer)
	b.applyShadows()

	// The first pass has no previous commit to animate from, and a badge is
	// usually created before it is attached to a parent.
	b.layout(false)
	b.pending = nil
	b.hidden = IsHidden(b.hidesWhenZero, b.text)
	b.commit()
}

// Dispose detaches the renderer and parent. Setters keep working but no
// longer commit.
func (b *BadgeView) Dispose() {
	b.disposed = true
	b.renderer = nopRenderer{}
	b.parent = nil
	b.pending = nil
}

// Layout runs a layout pass and commits the result. Call it when the
// parent's bounds change.
func (b *BadgeView) Layout() {
	b.layout(true)
	b.commit()
}

// SetText changes the text. A wider text grows the frame immediately and, if
// changes animate, commits the glyph swap with a contents transition. A text
// that is no wider is swapped in immediately. Shape paths follow the frame
// with a path transition in both directions.
func (b *BadgeView) SetText(text string) {
	oldWidth, oldErr := b.paddedWidth(b.displayed)
	newWidth, newErr := b.paddedWidth(text)
	b.text = text
	b.textState = classifyTextChange(oldWidth, newWidth)
	if b.textState == TextGrowing && b.animates() {
		b.queue(LayerText, contentsTransition(b.animationDuration))
	}
	b.displayed = text
	b.textLayer.Text = text
	b.layout(true)
	// The layout pass reports failures measuring the new text.
	if oldErr != nil && newErr == nil {
		errors.Report(&errors.BadgeError{
			Op:   "badge.SetText",
			Kind: errors.KindFont,
			Err:  oldErr,
		})
	}
	b.updateVisibility()
	b.commit()
}

// SetFont changes the font and relayouts.
func (b *BadgeView) SetFont(f graphics.Font) {
	b.font = f
	b.textLayer.Font = f
	b.layout(true)
	b.commit()
}

// SetTextColor recolors the text.
func (b *BadgeView) SetTextColor(c graphics.Color) {
	b.textColor = c
	b.textLayer.TextColor = c
	b.commit()
}

// SetBadgeBackgroundColor recolors the background fill.
func (b *BadgeView) SetBadgeBackgroundColor(c graphics.Color) {
	b.backgroundColor = c
	b.background.Fill = c
	b.commit()
}

// SetBorderColor recolors the border stroke.
func (b *BadgeView) SetBorderColor(c graphics.Color) {
	b.borderColor = c
	b.border.Stroke = c
	b.commit()
}

// SetBorderWidth changes the stroke width. Negative widths draw no border.
// The gloss mask is inset by half the width, so this relayouts.
func (b *BadgeView) SetBorderWidth(w float64) {
	b.borderWidth = math.Max(w, 0)
	b.border.LineWidth = b.borderWidth
	b.layout(true)
	b.commit()
}

// SetCornerRadius sets an explicit radius. The radius stops tracking half
// the height from then on.
func (b *BadgeView) SetCornerRadius(r float64) {
	b.autoRadius = false
	b.cornerRadius = math.Max(r, 0)
	b.layout(true)
	b.commit()
}

// SetShowGloss attaches or detaches the gloss layer.
func (b *BadgeView) SetShowGloss(show bool) {
	b.showGloss = show
	if show {
		b.stack.attach(b.gloss)
	} else {
		b.stack.detach(LayerGloss)
	}
	b.commit()
}

// SetShadowColor changes the shadow color of every shadowed layer.
func (b *BadgeView) SetShadowColor(c graphics.Color) {
	b.shadowColor = c
	b.applyShadows()
	b.commit()
}

// SetShadowOffset changes the shadow offset of every shadowed layer.
func (b *BadgeView) SetShadowOffset(o graphics.Offset) {
	b.shadowOffset = o
	b.applyShadows()
	b.commit()
}

// SetShadowRadius changes the shadow blur radius of every shadowed layer.
func (b *BadgeView) SetShadowRadius(r float64) {
	b.shadowRadius = math.Max(r, 0)
	b.applyShadows()
	b.commit()
}

// SetShadowText toggles the text shadow.
func (b *BadgeView) SetShadowText(on bool) {
	b.shadowText = on
	b.applyShadows()
	b.commit()
}

// SetShadowBorder toggles the border shadow.
func (b *BadgeView) SetShadowBorder(on bool) {
	b.shadowBorder = on
	b.applyShadows()
	b.commit()
}

// SetShadowBadge toggles the background shadow.
func (b *BadgeView) SetShadowBadge(on bool) {
	b.shadowBadge = on
	b.applyShadows()
	b.commit()
}

// SetHorizontalAlignment changes how the x origin is resolved.
func (b *BadgeView) SetHorizontalAlignment(a HorizontalAlignment) {
	b.horizontal = a
	b.layout(true)
	b.commit()
}

// SetVerticalAlignment changes how the y origin is resolved.
func (b *BadgeView) SetVerticalAlignment(a VerticalAlignment) {
	b.vertical = a
	b.layout(true)
	b.commit()
}

// SetAlignmentShift offsets the aligned origin.
func (b *BadgeView) SetAlignmentShift(shift graphics.Offset) {
	b.alignmentShift = shift
	b.layout(true)
	b.commit()
}

// SetTextAlignmentShift offsets the text inside the badge.
func (b *BadgeView) SetTextAlignmentShift(shift graphics.Offset) {
	b.textAlignmentShift = shift
	b.layout(true)
	b.commit()
}

// SetMinimumWidth changes the lower width limit. It takes precedence over
// the maximum when the two conflict.
func (b *BadgeView) SetMinimumWidth(w float64) {
	b.minimumWidth = w
	b.layout(true)
	b.commit()
}

// SetMaximumWidth changes the upper width limit. Values below the current
// height are raised to the height. NaN means unbounded.
func (b *BadgeView) SetMaximumWidth(w float64) {
	if math.IsNaN(w) {
		w = math.Inf(1)
	}
	b.maximumWidth = math.Max(w, b.frame.Height())
	b.layout(true)
	b.commit()
}

// SetPixelPerfectText toggles snapping to the device pixel grid.
func (b *BadgeView) SetPixelPerfectText(on bool) {
	b.pixelPerfect = on
	b.layout(true)
	b.commit()
}

// SetAnimateChanges toggles transitions for later changes.
func (b *BadgeView) SetAnimateChanges(on bool) {
	b.animateChanges = on
}

// SetAnimationDuration sets the length of later transitions. Non-positive
// durations make changes instant.
func (b *BadgeView) SetAnimationDuration(d time.Duration) {
	b.animationDuration = d
}

// SetHidesWhenZero toggles hiding for the text "0".
func (b *BadgeView) SetHidesWhenZero(on bool) {
	b.hidesWhenZero = on
	b.updateVisibility()
	b.commit()
}

// SetFrame replaces the frame. The width is recomputed and aligned axes are
// resolved again, so in practice this sets the height and, for unaligned
// axes, the origin. The maximum width is raised to the new height if needed.
func (b *BadgeView) SetFrame(frame graphics.Rect) {
	b.frame = frame
	if b.maximumWidth < frame.Height() {
		b.maximumWidth = frame.Height()
	}
	b.layout(true)
	b.commit()
}

// AttachTo sets the parent the badge aligns against and relayouts.
func (b *BadgeView) AttachTo(p Parent) {
	b.parent = p
	b.noParentReported = false
	b.layout(true)
	b.commit()
}

// Detach forgets the parent. The frame stays where it is.
func (b *BadgeView) Detach() {
	b.parent = nil
	b.noParentReported = false
}

// SetScale changes the device pixel scale and relayouts.
func (b *BadgeView) SetScale(scale float64) {
	b.scale = sanitizeScale(scale)
	b.layout(true)
	b.commit()
}

// SetRenderer replaces the renderer. Nil installs a no-op renderer. The new
// renderer immediately receives the current state.
func (b *BadgeView) SetRenderer(r Renderer) {
	if r == nil {
		r = nopRenderer{}
	}
	b.renderer = r
	b.commit()
}

// Frame returns the frame in parent coordinates.
func (b *BadgeView) Frame() graphics.Rect {
	return b.frame
}

func (b *BadgeView) Text() string {
	return b.text
}

func (b *BadgeView) Font() graphics.Font {
	return b.font
}

func (b *BadgeView) TextColor() graphics.Color {
	return b.textColor
}

func (b *BadgeView) BadgeBackgroundColor() graphics.Color {
	return b.backgroundColor
}

func (b *BadgeView) BorderColor() graphics.Color {
	return b.borderColor
}

func (b *BadgeView) BorderWidth() float64 {
	return b.borderWidth
}

func (b *BadgeView) CornerRadius() float64 {
	return b.cornerRadius
}

func (b *BadgeView) ShowGloss() bool {
	return b.showGloss
}

func (b *BadgeView) ShadowColor() graphics.Color {
	return b.shadowColor
}

func (b *BadgeView) ShadowOffset() graphics.Offset {
	return b.shadowOffset
}

func (b *BadgeView) ShadowRadius() float64 {
	return b.shadowRadius
}

func (b *BadgeView) ShadowText() bool {
	return b.shadowText
}

func (b *BadgeView) ShadowBorder() bool {
	return b.shadowBorder
}

func (b *BadgeView) ShadowBadge() bool {
	return b.shadowBadge
}

func (b *BadgeView) HorizontalAlignment() HorizontalAlignment {
	return b.horizontal
}

func (b *BadgeView) VerticalAlignment() VerticalAlignment {
	return b.vertical
}

func (b *BadgeView) AlignmentShift() graphics.Offset {
	return b.alignmentShift
}

func (b *BadgeView) TextAlignmentShift() graphics.Offset {
	return b.textAlignmentShift
}

func (b *BadgeView) MinimumWidth() float64 {
	return b.minimumWidth
}

func (b *BadgeView) MaximumWidth() float64 {
	return b.maximumWidth
}

func (b *BadgeView) PixelPerfectText() bool {
	return b.pixelPerfect
}

func (b *BadgeView) AnimateChanges() bool {
	return b.animateChanges
}

func (b *BadgeView) AnimationDuration() time.Duration {
	return b.animationDuration
}

func (b *BadgeView) HidesWhenZero() bool {
	return b.hidesWhenZero
}

func (b *BadgeView) Scale() float64 {
	return b.scale
}

// IsCornerRadiusAuto reports whether the radius still tracks half the height.
func (b *BadgeView) IsCornerRadiusAuto() bool { return b.autoRadius }

// IsHidden reports whether the badge is hidden.
func (b *BadgeView) IsHidden() bool { return b.hidden }

// DisplayedText returns the text currently on the text layer.
func (b *BadgeView) DisplayedText() string { return b.displayed }

// TextState reports how the last text change was classified.
func (b *BadgeView) TextState() TextState { return b.textState }

// Parent returns the parent, or nil when detached.
func (b *BadgeView) Parent() Parent { return b.parent }

// Layers returns the attached layer names, back to front.
func (b *BadgeView) Layers() []LayerName { return b.stack.names() }

// Geometry returns a copy of the last layout result.
func (b *BadgeView) Geometry() Geometry { return b.geometry.Clone() }

// Snapshot returns the current state as a commit without transitions.
func (b *BadgeView) Snapshot() Commit {
	return Commit{
		Seq:    b.seq,
		Frame:  b.frame,
		Hidden: b.hidden,
		Scale:  b.scale,
		Layers: b.stack.snapshot(),
	}
}

func (b *BadgeView) animates() bool {
	return b.animateChanges && b.animationDuration > 0
}

func (b *BadgeView) layoutInput() LayoutInput {
	in := LayoutInput{
		Text:               b.text,
		Font:               b.font,
		Measurer:           b.measurer,
		Frame:              b.frame,
		Horizontal:         b.horizontal,
		Vertical:           b.vertical,
		AlignmentShift:     b.alignmentShift,
		TextAlignmentShift: b.textAlignmentShift,
		MinimumWidth:       b.minimumWidth,
		MaximumWidth:       b.maximumWidth,
		PixelPerfect:       b.pixelPerfect,
		Scale:              b.scale,
		CornerRadius:       b.cornerRadius,
		AutoCornerRadius:   b.autoRadius,
		BorderWidth:        b.borderWidth,
	}
	if b.parent != nil {
		bounds := b.parent.Bounds()
		in.Parent = &bounds
	}
	return in
}

// layout recomputes geometry and pushes it into the layers. Path changes are
// queued as transitions when changes animate.
func (b *BadgeView) layout(report bool) {
	geom, err := ComputeLayout(b.layoutInput())
	if err != nil {
		b.reportLayoutError(err, report)
	}

	prev := b.geometry
	b.geometry = geom
	b.frame = geom.Frame
	if b.autoRadius {
		b.cornerRadius = geom.CornerRadius
	}

	b.background.Frame = geom.Bounds
	b.background.Path = geom.ShapePath.Clone()
	b.border.Frame = geom.Bounds
	b.border.Path = geom.ShapePath.Clone()
	b.gloss.Frame = geom.Bounds
	b.gloss.Path = geom.GlossMaskPath.Clone()
	b.gloss.Gradient = glossGradient(geom.Bounds.Height())
	b.textLayer.Frame = geom.TextFrame

	if prev.ShapePath == nil || !b.animates() {
		return
	}
	if !prev.ShapePath.Equal(geom.ShapePath) {
		b.queue(LayerBackground, pathTransition(b.animationDuration))
		b.queue(LayerBorder, pathTransition(b.animationDuration))
	}
	if !prev.GlossMaskPath.Equal(geom.GlossMaskPath) && b.stack.contains(LayerGloss) {
		b.queue(LayerGloss, pathTransition(b.animationDuration))
	}
}

func (b *BadgeView) reportLayoutError(err error, report bool) {
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}
	for _, e := range errs {
		if stderrors.Is(e, errors.ErrNoParent) {
			if !report || b.noParentReported {
				continue
			}
			b.noParentReported = true
			errors.Report(&errors.BadgeError{
				Op:   "badge.Layout",
				Kind: errors.KindPrecondition,
				Err:  e,
			})
			continue
		}
		errors.Report(&errors.BadgeError{
			Op:   "badge.Layout",
			Kind: errors.KindFont,
			Err:  e,
		})
	}
}

func (b *BadgeView) paddedWidth(text string) (float64, error) {
	return PaddedTextWidth(text, b.font, b.measurer, b.pixelPerfect, b.scale)
}

func (b *BadgeView) updateVisibility() {
	b.hidden = IsHidden(b.hidesWhenZero, b.text)
}

func (b *BadgeView) applyShadows() {
	shadow := func(on bool) *graphics.BoxShadow {
		if !on {
			return nil
		}
		return &graphics.BoxShadow{
			Color:      b.shadowColor,
			Offset:     b.shadowOffset,
			BlurRadius: b.shadowRadius,
			Opacity:    1,
		}
	}
	b.background.Shadow = shadow(b.shadowBadge)
	b.border.Shadow = shadow(b.shadowBorder)
	b.textLayer.Shadow = shadow(b.shadowText)
}

// queue records a transition for the next commit, replacing an earlier one
// for the same layer and properties.
func (b *BadgeView) queue(layer LayerName, t Transition) {
	for i, lt := range b.pending {
		if lt.Layer == layer && len(lt.Transition.Properties) == len(t.Properties) && lt.Transition.Affects(t.Properties[0]) {
			b.pending[i].Transition = t
			return
		}
	}
	b.pending = append(b.pending, LayerTransition{Layer: layer, Transition: t})
}

func (b *BadgeView) commit() {
	if b.disposed {
		return
	}
	b.seq++
	c := b.Snapshot()
	c.Transitions = b.pending
	b.pending = nil
	b.renderer.Commit(c)
}

// glossGradient fades from 80% white at the top to clear at 60% of height.
func glossGradient(height float64) *graphics.LinearGradient {
	return graphics.NewLinearGradient(
		graphics.Offset{X: 0, Y: 0},
		graphics.Offset{X: 0, Y: 0.6 * height},
		[]graphics.GradientStop{
			{Position: 0, Color: graphics.White(1, 0.8)},
			{Position: 0.8, Color: graphics.White(1, 0.25)},
			{Position: 1, Color: graphics.White(1, 0)},
		},
	)
}
