package graphics

import (
	stderrors "errors"
	"fmt"
	"math"
	"sync"
	"unicode/utf8"

	"github.com/go-drift/badgeview/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16

	// fontDPI makes one font unit equal one point.
	fontDPI = 72

	// ellipsis terminates truncated text.
	ellipsis = "…"
)

// Bundled font family names.
const (
	FamilyRegular = "Go"
	FamilyMedium  = "Go Medium"
	FamilyBold    = "Go Bold"
)

// ErrFontNotFound is returned when a font family has not been registered.
var ErrFontNotFound = stderrors.New("font not registered")

// Font identifies a registered family at a point size.
type Font struct {
	Family string
	Size   float64
}

// DefaultFont returns the medium weight bundled family at 16pt.
func DefaultFont() Font {
	return Font{Family: FamilyMedium, Size: defaultFontSize}
}

// String returns "family size" for logs and inspection output.
func (f Font) String() string {
	return fmt.Sprintf("%s %gpt", f.Family, f.Size)
}

// TextMeasurer measures single-line text.
type TextMeasurer interface {
	// MeasureText returns the advance width of text and the font's line
	// height. Text is never wrapped.
	MeasureText(text string, f Font) (Size, error)
	// LineHeight returns ascent + descent + leading for f.
	LineHeight(f Font) (float64, error)
}

// TextLayout contains measured single-line text ready to draw.
type TextLayout struct {
	Text       string
	Font       Font
	Color      Color
	Size       Size
	Ascent     float64
	Descent    float64
	LineHeight float64
	Shadow     *BoxShadow
}

// FontManager resolves registered TrueType/OpenType families into faces and
// measures text with them. It is safe for concurrent use.
type FontManager struct {
	mu          sync.Mutex
	fonts       map[string]*opentype.Font
	faces       map[faceKey]font.Face
	defaultName string
}

type faceKey struct {
	family string
	size   float64
}

var (
	defaultFontManager     *FontManager
	defaultFontManagerErr  error
	defaultFontManagerOnce sync.Once
)

// NewFontManager creates a font manager with the bundled Go fonts registered.
func NewFontManager() (*FontManager, error) {
	manager := &FontManager{
		fonts:       make(map[string]*opentype.Font),
		faces:       make(map[faceKey]font.Face),
		defaultName: FamilyMedium,
	}
	bundled := []struct {
		name string
		data []byte
	}{
		{FamilyRegular, goregular.TTF},
		{FamilyMedium, gomedium.TTF},
		{FamilyBold, gobold.TTF},
	}
	for _, b := range bundled {
		if err := manager.RegisterFont(b.name, b.data); err != nil {
			return nil, err
		}
	}
	return manager, nil
}

// DefaultFontManagerErr returns a shared font manager with the bundled fonts.
func DefaultFontManagerErr() (*FontManager, error) {
	defaultFontManagerOnce.Do(func() {
		manager, err := NewFontManager()
		if err != nil {
			defaultFontManagerErr = err
			errors.Report(&errors.BadgeError{
				Op:   "graphics.DefaultFontManager",
				Kind: errors.KindFont,
				Err:  err,
			})
			return
		}
		defaultFontManager = manager
	})
	return defaultFontManager, defaultFontManagerErr
}

// DefaultFontManager returns the shared font manager, or nil if the bundled
// fonts failed to load.
func DefaultFontManager() *FontManager {
	manager, _ := DefaultFontManagerErr()
	return manager
}

// RegisterFont registers a font family from TrueType or OpenType data.
// Registering an existing name replaces it.
func (m *FontManager) RegisterFont(name string, data []byte) error {
	if name == "" {
		return stderrors.New("font name required")
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fonts[name] = parsed
	for key, face := range m.faces {
		if key.family == name {
			_ = face.Close()
			delete(m.faces, key)
		}
	}
	return nil
}

// HasFamily reports whether name has been registered.
func (m *FontManager) HasFamily(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.fonts[name]
	return ok
}

// Face resolves a cached face for f. The returned face must only be used
// while holding no other FontManager call, since faces are not safe for
// concurrent use; prefer the measuring methods.
func (m *FontManager) Face(f Font) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.faceLocked(f)
}

func (m *FontManager) faceLocked(f Font) (font.Face, error) {
	family := f.Family
	if family == "" {
		family = m.defaultName
	}
	size := f.Size
	if size <= 0 {
		size = defaultFontSize
	}
	key := faceKey{family: family, size: size}
	if face, ok := m.faces[key]; ok {
		return face, nil
	}
	parsed, ok := m.fonts[family]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, family)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face %s: %w", f, err)
	}
	m.faces[key] = face
	return face, nil
}

// MeasureText implements TextMeasurer.
func (m *FontManager) MeasureText(text string, f Font) (Size, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	face, err := m.faceLocked(f)
	if err != nil {
		return Size{}, err
	}
	width := fixedToFloat(font.MeasureString(face, text))
	return Size{Width: width, Height: fixedToFloat(face.Metrics().Height)}, nil
}

// LineHeight implements TextMeasurer.
func (m *FontManager) LineHeight(f Font) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	face, err := m.faceLocked(f)
	if err != nil {
		return 0, err
	}
	return fixedToFloat(face.Metrics().Height), nil
}

// LayoutText measures text for drawing with the given color.
func (m *FontManager) LayoutText(text string, f Font, color Color) (*TextLayout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	face, err := m.faceLocked(f)
	if err != nil {
		return nil, err
	}
	metrics := face.Metrics()
	lineHeight := fixedToFloat(metrics.Height)
	return &TextLayout{
		Text:       text,
		Font:       f,
		Color:      color,
		Size:       Size{Width: fixedToFloat(font.MeasureString(face, text)), Height: lineHeight},
		Ascent:     fixedToFloat(metrics.Ascent),
		Descent:    fixedToFloat(metrics.Descent),
		LineHeight: lineHeight,
	}, nil
}

// TruncateEnd shortens text so that it fits in maxWidth, replacing the
// removed tail with an ellipsis. Text that already fits is returned as is.
func TruncateEnd(text string, maxWidth float64, measure func(string) float64) string {
	if measure(text) <= maxWidth {
		return text
	}
	if measure(ellipsis) > maxWidth {
		return ""
	}
	cut := len(text)
	for cut > 0 {
		_, size := utf8.DecodeLastRuneInString(text[:cut])
		cut -= size
		candidate := text[:cut] + ellipsis
		if measure(candidate) <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return math.Round(float64(v)/64*1e4) / 1e4
}
