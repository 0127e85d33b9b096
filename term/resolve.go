package term

import (
	"fmt"

	"github.com/dshills/termgrid/style"
)

// ResolvedKind identifies what a color resolved to.
type ResolvedKind uint8

const (
	// ResolvedDefault is the terminal's default color.
	ResolvedDefault ResolvedKind = iota
	// ResolvedIndex is a palette index the terminal can display.
	ResolvedIndex
	// ResolvedRGB is a 24-bit color for true color terminals.
	ResolvedRGB
)

// ResolvedColor is a color expressed in terms a specific color depth
// can render. The zero value is the terminal default.
type ResolvedColor struct {
	Kind    ResolvedKind
	Index   uint8
	R, G, B uint8
}

// ResolveDefault returns the default resolved color.
func ResolveDefault() ResolvedColor {
	return ResolvedColor{}
}

// ResolveIndex returns a palette-index resolved color.
func ResolveIndex(idx uint8) ResolvedColor {
	return ResolvedColor{Kind: ResolvedIndex, Index: idx}
}

// ResolveRGB returns a true-color resolved color.
func ResolveRGB(r, g, b uint8) ResolvedColor {
	return ResolvedColor{Kind: ResolvedRGB, R: r, G: g, B: b}
}

// String returns a string representation of the resolved color.
func (c ResolvedColor) String() string {
	switch c.Kind {
	case ResolvedIndex:
		return fmt.Sprintf("idx(%d)", c.Index)
	case ResolvedRGB:
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	default:
		return "default"
	}
}

// Resolve downgrades an abstract color to what the given depth can
// display. Resolution is total: default passes through, everything
// maps to the default under NoColor, named colors go through the
// 16-entry name table, and out-of-gamut values project to the nearest
// reference palette entry.
func Resolve(depth ColorDepth, c style.Color) ResolvedColor {
	if c.IsDefault() || depth == NoColor {
		return ResolveDefault()
	}

	switch c.Kind() {
	case style.ColorKindNamed:
		idx, ok := colorNames[c.Name()]
		if !ok {
			// Unrecognized names degrade to the default color.
			return ResolveDefault()
		}
		return resolveIndex(depth, idx)
	case style.ColorKindANSI:
		return resolveIndex(depth, c.Index())
	case style.ColorKindRGB:
		r, g, b := c.Values()
		return resolveRGB(depth, r, g, b)
	default:
		return ResolveDefault()
	}
}

// resolveIndex maps a palette index to the given depth. Explicit
// indices pass through unchanged wherever the depth can show them.
func resolveIndex(depth ColorDepth, idx uint8) ResolvedColor {
	switch depth {
	case TrueColor, EightBit:
		return ResolveIndex(idx)
	case Standard:
		if idx < 16 {
			return ResolveIndex(idx)
		}
		r, g, b := indexRGB(idx)
		return ResolveIndex(RGBTo16(r, g, b))
	case Basic:
		if idx < 8 {
			return ResolveIndex(idx)
		}
		r, g, b := indexRGB(idx)
		return ResolveIndex(RGBTo8(r, g, b))
	default:
		return ResolveDefault()
	}
}

// resolveRGB maps a 24-bit color to the given depth.
func resolveRGB(depth ColorDepth, r, g, b uint8) ResolvedColor {
	switch depth {
	case TrueColor:
		return ResolveRGB(r, g, b)
	case EightBit:
		return ResolveIndex(RGBTo256(r, g, b))
	case Standard:
		return ResolveIndex(RGBTo16(r, g, b))
	case Basic:
		return ResolveIndex(RGBTo8(r, g, b))
	default:
		return ResolveDefault()
	}
}
