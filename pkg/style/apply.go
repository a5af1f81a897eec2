package style

import (
	"time"

	"github.com/go-drift/badgeview/pkg/badge"
	"github.com/go-drift/badgeview/pkg/graphics"
)

// Apply validates d and pushes every set property into b through its
// setters. The animation policy is applied first so the remaining changes
// commit with it.
func (d *Document) Apply(b *badge.BadgeView) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if a := d.Animation; a != nil {
		if a.Enabled != nil {
			b.SetAnimateChanges(*a.Enabled)
		}
		if a.Duration != nil {
			b.SetAnimationDuration(time.Duration(*a.Duration))
		}
	}
	if d.Height != nil {
		f := b.Frame()
		b.SetFrame(graphics.RectFromLTWH(f.Left, f.Top, f.Width(), *d.Height))
	}
	if f := d.Font; f != nil {
		font := b.Font()
		if f.Family != "" {
			font.Family = f.Family
		}
		if f.Size > 0 {
			font.Size = f.Size
		}
		b.SetFont(font)
	}
	if d.TextColor != nil {
		b.SetTextColor(graphics.Color(*d.TextColor))
	}
	if d.BackgroundColor != nil {
		b.SetBadgeBackgroundColor(graphics.Color(*d.BackgroundColor))
	}
	if br := d.Border; br != nil {
		if br.Color != nil {
			b.SetBorderColor(graphics.Color(*br.Color))
		}
		if br.Width != nil {
			b.SetBorderWidth(*br.Width)
		}
	}
	if r := d.CornerRadius; r != nil && !r.Auto {
		b.SetCornerRadius(r.Value)
	}
	if d.Gloss != nil {
		b.SetShowGloss(*d.Gloss)
	}
	if s := d.Shadow; s != nil {
		if s.Color != nil {
			b.SetShadowColor(graphics.Color(*s.Color))
		}
		if s.Offset != nil {
			b.SetShadowOffset(graphics.Offset(*s.Offset))
		}
		if s.Radius != nil {
			b.SetShadowRadius(*s.Radius)
		}
		if s.Text != nil {
			b.SetShadowText(*s.Text)
		}
		if s.Border != nil {
			b.SetShadowBorder(*s.Border)
		}
		if s.Badge != nil {
			b.SetShadowBadge(*s.Badge)
		}
	}
	if a := d.Alignment; a != nil {
		if a.Horizontal != "" {
			h, _ := badge.ParseHorizontalAlignment(a.Horizontal)
			b.SetHorizontalAlignment(h)
		}
		if a.Vertical != "" {
			v, _ := badge.ParseVerticalAlignment(a.Vertical)
			b.SetVerticalAlignment(v)
		}
		if a.Shift != nil {
			b.SetAlignmentShift(graphics.Offset(*a.Shift))
		}
		if a.TextShift != nil {
			b.SetTextAlignmentShift(graphics.Offset(*a.TextShift))
		}
	}
	if w := d.Width; w != nil {
		if w.Min != nil {
			b.SetMinimumWidth(*w.Min)
		}
		if w.Max != nil {
			b.SetMaximumWidth(float64(*w.Max))
		}
	}
	if d.PixelPerfect != nil {
		b.SetPixelPerfectText(*d.PixelPerfect)
	}
	if d.HidesWhenZero != nil {
		b.SetHidesWhenZero(*d.HidesWhenZero)
	}
	return nil
}

// FromBadge captures b's current appearance as a complete document.
func FromBadge(b *badge.BadgeView) *Document {
	height := b.Frame().Height()
	font := b.Font()
	text, bg, border := Color(b.TextColor()), Color(b.BadgeBackgroundColor()), Color(b.BorderColor())
	borderWidth := b.BorderWidth()
	radius := CornerRadius{Auto: true}
	if !b.IsCornerRadiusAuto() {
		radius = CornerRadius{Value: b.CornerRadius()}
	}
	shadowColor := Color(b.ShadowColor())
	shadowOffset := Point(b.ShadowOffset())
	shadowRadius := b.ShadowRadius()
	shift, textShift := Point(b.AlignmentShift()), Point(b.TextAlignmentShift())
	minWidth := b.MinimumWidth()
	maxWidth := Limit(b.MaximumWidth())
	duration := Duration(b.AnimationDuration())

	return &Document{
		Version:         "1.0.0",
		Height:          &height,
		Font:            &Font{Family: font.Family, Size: font.Size},
		TextColor:       &text,
		BackgroundColor: &bg,
		Border:          &Border{Color: &border, Width: &borderWidth},
		CornerRadius:    &radius,
		Gloss:           ptr(b.ShowGloss()),
		Shadow: &Shadow{
			Color:  &shadowColor,
			Offset: &shadowOffset,
			Radius: &shadowRadius,
			Text:   ptr(b.ShadowText()),
			Border: ptr(b.ShadowBorder()),
			Badge:  ptr(b.ShadowBadge()),
		},
		Alignment: &Alignment{
			Horizontal: b.HorizontalAlignment().String(),
			Vertical:   b.VerticalAlignment().String(),
			Shift:      &shift,
			TextShift:  &textShift,
		},
		Width:         &Width{Min: &minWidth, Max: &maxWidth},
		PixelPerfect:  ptr(b.PixelPerfectText()),
		Animation:     &Animation{Enabled: ptr(b.AnimateChanges()), Duration: &duration},
		HidesWhenZero: ptr(b.HidesWhenZero()),
	}
}

func ptr[T any](v T) *T {
	return &v
}
