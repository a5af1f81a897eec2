// Package style reads badge appearance from YAML documents.
//
// A document lists only the properties it changes; everything left out keeps
// the badge's current value. Example:
//
//	version: "1"
//	font: {family: Go Bold, size: 13}
//	backgroundColor: "#0A84FF"
//	border: {color: "#FFFFFF", width: 2}
//	cornerRadius: auto
//	gloss: true
//	alignment: {horizontal: right, vertical: top, shift: [-2, 2]}
//	width: {min: 20, max: 60}
//	animation: {enabled: true, duration: 250ms}
package style

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/go-drift/badgeview/pkg/badge"
	"github.com/go-drift/badgeview/pkg/graphics"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the newest document version this package reads.
const SupportedVersion = "v1.0.0"

var (
	// ErrMissingVersion is returned for documents without a version.
	ErrMissingVersion = stderrors.New("style: missing version")
	// ErrInvalidVersion is returned when the version is not semantic.
	ErrInvalidVersion = stderrors.New("style: invalid version")
	// ErrUnsupportedVersion is returned for other majors or newer minors.
	ErrUnsupportedVersion = stderrors.New("style: unsupported version")
	// ErrInvalidValue is returned for values outside their domain.
	ErrInvalidValue = stderrors.New("style: invalid value")
)

// Document is a parsed style. Nil fields are left unchanged by Apply.
type Document struct {
	Version         string        `yaml:"version"`
	Height          *float64      `yaml:"height,omitempty"`
	Font            *Font         `yaml:"font,omitempty"`
	TextColor       *Color        `yaml:"textColor,omitempty"`
	BackgroundColor *Color        `yaml:"backgroundColor,omitempty"`
	Border          *Border       `yaml:"border,omitempty"`
	CornerRadius    *CornerRadius `yaml:"cornerRadius,omitempty"`
	Gloss           *bool         `yaml:"gloss,omitempty"`
	Shadow          *Shadow       `yaml:"shadow,omitempty"`
	Alignment       *Alignment    `yaml:"alignment,omitempty"`
	Width           *Width        `yaml:"width,omitempty"`
	PixelPerfect    *bool         `yaml:"pixelPerfect,omitempty"`
	Animation       *Animation    `yaml:"animation,omitempty"`
	HidesWhenZero   *bool         `yaml:"hidesWhenZero,omitempty"`
}

type Font struct {
	Family string  `yaml:"family,omitempty"`
	Size   float64 `yaml:"size,omitempty"`
}

type Border struct {
	Color *Color   `yaml:"color,omitempty"`
	Width *float64 `yaml:"width,omitempty"`
}

type Shadow struct {
	Color  *Color   `yaml:"color,omitempty"`
	Offset *Point   `yaml:"offset,omitempty"`
	Radius *float64 `yaml:"radius,omitempty"`
	Text   *bool    `yaml:"text,omitempty"`
	Border *bool    `yaml:"border,omitempty"`
	Badge  *bool    `yaml:"badge,omitempty"`
}

type Alignment struct {
	Horizontal string `yaml:"horizontal,omitempty"`
	Vertical   string `yaml:"vertical,omitempty"`
	Shift      *Point `yaml:"shift,omitempty"`
	TextShift  *Point `yaml:"textShift,omitempty"`
}

type Width struct {
	Min *float64 `yaml:"min,omitempty"`
	// Max of "none" removes the limit.
	Max *Limit `yaml:"max,omitempty"`
}

type Animation struct {
	Enabled  *bool     `yaml:"enabled,omitempty"`
	Duration *Duration `yaml:"duration,omitempty"`
}

// Color is a graphics.Color written as "#RRGGBB" or "#AARRGGBB".
type Color graphics.Color

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	v, err := graphics.ParseHex(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w: %w", node.Line, ErrInvalidValue, err)
	}
	*c = Color(v)
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return graphics.Color(c).Hex(), nil
}

// Point is an offset written as a two element sequence [x, y].
type Point graphics.Offset

func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	var xy []float64
	if err := node.Decode(&xy); err != nil || len(xy) != 2 {
		return fmt.Errorf("line %d: %w: want [x, y]", node.Line, ErrInvalidValue)
	}
	*p = Point{X: xy[0], Y: xy[1]}
	return nil
}

func (p Point) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []float64{p.X, p.Y} {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: formatFloat(v)})
	}
	return node, nil
}

// CornerRadius is either "auto" or a fixed radius.
type CornerRadius struct {
	Auto  bool
	Value float64
}

func (r *CornerRadius) UnmarshalYAML(node *yaml.Node) error {
	if strings.EqualFold(strings.TrimSpace(node.Value), "auto") {
		*r = CornerRadius{Auto: true}
		return nil
	}
	var v float64
	if err := node.Decode(&v); err != nil || v < 0 {
		return fmt.Errorf("line %d: %w: corner radius must be auto or a non-negative number", node.Line, ErrInvalidValue)
	}
	*r = CornerRadius{Value: v}
	return nil
}

func (r CornerRadius) MarshalYAML() (any, error) {
	if r.Auto {
		return "auto", nil
	}
	return r.Value, nil
}

// Limit is a width limit where "none" means unbounded.
type Limit float64

func (l *Limit) UnmarshalYAML(node *yaml.Node) error {
	if strings.EqualFold(strings.TrimSpace(node.Value), "none") {
		*l = Limit(math.Inf(1))
		return nil
	}
	var v float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("line %d: %w: width limit must be none or a number", node.Line, ErrInvalidValue)
	}
	*l = Limit(v)
	return nil
}

func (l Limit) MarshalYAML() (any, error) {
	if math.IsInf(float64(l), 1) {
		return "none", nil
	}
	return float64(l), nil
}

// Duration is a time.Duration written like "200ms" or "0.2s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	v, err := time.ParseDuration(strings.TrimSpace(node.Value))
	if err != nil {
		return fmt.Errorf("line %d: %w: %w", node.Line, ErrInvalidValue, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Parse decodes and validates a document. Unknown keys are errors.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one document from r.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, ErrMissingVersion
		}
		return nil, fmt.Errorf("parse style: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads a document from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Marshal encodes a document as YAML.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode style: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode style: %w", err)
	}
	return buf.Bytes(), nil
}

// CanonicalVersion returns the document version as "vMAJOR.MINOR.PATCH".
func CanonicalVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", ErrMissingVersion
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}
	return semver.Canonical(v), nil
}

// Validate checks the version gate and every value Apply would reject.
func (d *Document) Validate() error {
	v, err := CanonicalVersion(d.Version)
	if err != nil {
		return err
	}
	if semver.Major(v) != semver.Major(SupportedVersion) || semver.Compare(v, SupportedVersion) > 0 {
		return fmt.Errorf("%w: %s (this build reads up to %s)", ErrUnsupportedVersion, v, SupportedVersion)
	}

	var errs []error
	if d.Height != nil && *d.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: height must be positive", ErrInvalidValue))
	}
	if d.Font != nil && d.Font.Size < 0 {
		errs = append(errs, fmt.Errorf("%w: font size must not be negative", ErrInvalidValue))
	}
	if d.Border != nil && d.Border.Width != nil && *d.Border.Width < 0 {
		errs = append(errs, fmt.Errorf("%w: border width must not be negative", ErrInvalidValue))
	}
	if d.Shadow != nil && d.Shadow.Radius != nil && *d.Shadow.Radius < 0 {
		errs = append(errs, fmt.Errorf("%w: shadow radius must not be negative", ErrInvalidValue))
	}
	if a := d.Alignment; a != nil {
		if a.Horizontal != "" {
			if _, err := badge.ParseHorizontalAlignment(a.Horizontal); err != nil {
				errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidValue, err))
			}
		}
		if a.Vertical != "" {
			if _, err := badge.ParseVerticalAlignment(a.Vertical); err != nil {
				errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidValue, err))
			}
		}
	}
	if d.Animation != nil && d.Animation.Duration != nil && *d.Animation.Duration < 0 {
		errs = append(errs, fmt.Errorf("%w: animation duration must not be negative", ErrInvalidValue))
	}
	return stderrors.Join(errs...)
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
