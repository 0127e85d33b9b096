// Package style provides colors, text attributes, and mergeable styles
// for terminal content.
package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorKind distinguishes between color representations.
type ColorKind uint8

const (
	// ColorKindDefault is the terminal's default color (no color set).
	ColorKindDefault ColorKind = iota
	// ColorKindNamed is one of the 16 standard color names.
	ColorKindNamed
	// ColorKindANSI is a palette index (0-255).
	ColorKindANSI
	// ColorKindRGB is a true color (24-bit RGB).
	ColorKindRGB
)

// Color is an abstract color specification. The zero value is the
// terminal's default color. A Color says what the content wants;
// the term package decides what the terminal can actually show.
type Color struct {
	kind    ColorKind
	name    string // ColorKindNamed
	index   uint8  // ColorKindANSI
	r, g, b uint8  // ColorKindRGB
}

// DefaultColor returns the terminal's default color.
// Use this for transparent/inherited colors.
func DefaultColor() Color {
	return Color{}
}

// Named returns a color identified by one of the 16 standard names
// (e.g. "red", "bright_cyan"). Unrecognized names are carried as-is
// and resolve to the default color rather than failing.
func Named(name string) Color {
	return Color{kind: ColorKindNamed, name: NormalizeName(name)}
}

// ANSI returns a palette color by index (0-255).
func ANSI(index uint8) Color {
	return Color{kind: ColorKindANSI, index: index}
}

// RGB returns a true color from its components.
func RGB(r, g, b uint8) Color {
	return Color{kind: ColorKindRGB, r: r, g: g, b: b}
}

// ParseHex parses a hex color string ("#RRGGBB", "#RGB", with or
// without the leading '#') into an RGB color.
func ParseHex(hex string) (Color, error) {
	s := strings.TrimSpace(hex)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// Hex parses a hex color string, falling back to the default color
// when the input is malformed. Malformed content degrades, it never
// crashes the rendering path.
func Hex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		return DefaultColor()
	}
	return c
}

// NormalizeName canonicalizes a color name: lowercase, with spaces
// and dashes folded to underscores ("Bright Red" -> "bright_red").
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Kind returns the color's representation kind.
func (c Color) Kind() ColorKind {
	return c.kind
}

// IsDefault returns true if this is the default/transparent color.
func (c Color) IsDefault() bool {
	return c.kind == ColorKindDefault
}

// Name returns the color name for named colors, "" otherwise.
func (c Color) Name() string {
	return c.name
}

// Index returns the palette index for ANSI colors.
func (c Color) Index() uint8 {
	return c.index
}

// Values returns the red, green, and blue components of an RGB color.
func (c Color) Values() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Equals returns true if two colors are identical specifications.
func (c Color) Equals(other Color) bool {
	if c.kind != other.kind {
		return false
	}
	switch c.kind {
	case ColorKindDefault:
		return true
	case ColorKindNamed:
		return c.name == other.name
	case ColorKindANSI:
		return c.index == other.index
	default:
		return c.r == other.r && c.g == other.g && c.b == other.b
	}
}

// String returns a string representation of the color.
func (c Color) String() string {
	switch c.kind {
	case ColorKindDefault:
		return "default"
	case ColorKindNamed:
		return c.name
	case ColorKindANSI:
		return fmt.Sprintf("idx(%d)", c.index)
	default:
		return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
	}
}

// Lighten returns a lighter version of an RGB color.
// Amount should be 0.0 to 1.0. Non-RGB colors are returned unchanged.
func (c Color) Lighten(amount float64) Color {
	if c.kind != ColorKindRGB {
		return c
	}
	return c.Blend(RGB(255, 255, 255), amount)
}

// Darken returns a darker version of an RGB color.
// Amount should be 0.0 to 1.0. Non-RGB colors are returned unchanged.
func (c Color) Darken(amount float64) Color {
	if c.kind != ColorKindRGB {
		return c
	}
	return c.Blend(RGB(0, 0, 0), amount)
}

// Blend blends two RGB colors together in RGB space.
// Amount 0.0 = c, 1.0 = other. If either color is not RGB, the
// blend snaps to whichever side amount is closer to.
func (c Color) Blend(other Color, amount float64) Color {
	if c.kind != ColorKindRGB || other.kind != ColorKindRGB {
		if amount < 0.5 {
			return c
		}
		return other
	}
	c1 := colorful.Color{R: float64(c.r) / 255, G: float64(c.g) / 255, B: float64(c.b) / 255}
	c2 := colorful.Color{R: float64(other.r) / 255, G: float64(other.g) / 255, B: float64(other.b) / 255}
	r, g, b := c1.BlendRgb(c2, amount).Clamped().RGB255()
	return RGB(r, g, b)
}
