package graphics

import (
	stderrors "errors"
	"testing"
	"unicode/utf8"
)

func TestFontManager_MeasureText(t *testing.T) {
	m, err := NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager: %v", err)
	}
	f := DefaultFont()

	one, err := m.MeasureText("5", f)
	if err != nil {
		t.Fatalf("MeasureText: %v", err)
	}
	three, err := m.MeasureText("100", f)
	if err != nil {
		t.Fatalf("MeasureText: %v", err)
	}
	if one.Width <= 0 {
		t.Errorf("expected positive width, got %v", one.Width)
	}
	if three.Width <= one.Width {
		t.Errorf("expected %q wider than %q: %v <= %v", "100", "5", three.Width, one.Width)
	}
	if one.Height != three.Height {
		t.Errorf("line height should not depend on text: %v != %v", one.Height, three.Height)
	}

	empty, err := m.MeasureText("", f)
	if err != nil {
		t.Fatalf("MeasureText: %v", err)
	}
	if empty.Width != 0 {
		t.Errorf("empty text width = %v, want 0", empty.Width)
	}
}

func TestFontManager_LineHeightScalesWithSize(t *testing.T) {
	m := DefaultFontManager()
	if m == nil {
		t.Fatal("expected default font manager")
	}
	small, err := m.LineHeight(Font{Family: FamilyMedium, Size: 10})
	if err != nil {
		t.Fatalf("LineHeight: %v", err)
	}
	large, err := m.LineHeight(Font{Family: FamilyMedium, Size: 20})
	if err != nil {
		t.Fatalf("LineHeight: %v", err)
	}
	if small <= 10 || large <= small {
		t.Errorf("unexpected line heights %v and %v", small, large)
	}
}

func TestFontManager_UnknownFamily(t *testing.T) {
	m, err := NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager: %v", err)
	}
	_, err = m.MeasureText("1", Font{Family: "Nope", Size: 12})
	if !stderrors.Is(err, ErrFontNotFound) {
		t.Errorf("expected ErrFontNotFound, got %v", err)
	}
	if m.HasFamily("Nope") {
		t.Error("unexpected family registered")
	}
	if !m.HasFamily(FamilyBold) {
		t.Error("bundled bold family missing")
	}
}

func TestFontManager_RegisterInvalid(t *testing.T) {
	m, err := NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager: %v", err)
	}
	if err := m.RegisterFont("Broken", []byte("not a font")); err == nil {
		t.Error("expected parse error")
	}
	if err := m.RegisterFont("", nil); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestFontManager_LayoutText(t *testing.T) {
	m, err := NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager: %v", err)
	}
	layout, err := m.LayoutText("42", DefaultFont(), ColorWhite)
	if err != nil {
		t.Fatalf("LayoutText: %v", err)
	}
	if layout.Ascent <= 0 || layout.Descent <= 0 {
		t.Errorf("expected positive metrics, got ascent %v descent %v", layout.Ascent, layout.Descent)
	}
	if layout.LineHeight < layout.Ascent {
		t.Errorf("line height %v below ascent %v", layout.LineHeight, layout.Ascent)
	}
	if layout.Color != ColorWhite || layout.Text != "42" {
		t.Errorf("unexpected layout %+v", layout)
	}
}

func TestTruncateEnd(t *testing.T) {
	measure := func(s string) float64 { return float64(utf8.RuneCountInString(s)) * 10 }

	if got := TruncateEnd("99", 40, measure); got != "99" {
		t.Errorf("fitting text changed: %q", got)
	}
	if got := TruncateEnd("12345", 40, measure); got != "123…" {
		t.Errorf("TruncateEnd = %q, want %q", got, "123…")
	}
	if got := TruncateEnd("12345", 5, measure); got != "" {
		t.Errorf("TruncateEnd = %q, want empty", got)
	}
	if got := TruncateEnd("12345", 10, measure); got != "…" {
		t.Errorf("TruncateEnd = %q, want ellipsis", got)
	}
}

func TestFont_String(t *testing.T) {
	if got := DefaultFont().String(); got != "Go Medium 16pt" {
		t.Errorf("DefaultFont().String() = %q", got)
	}
}
