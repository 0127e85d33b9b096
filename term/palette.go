package term

// paletteColor is one reference palette entry.
type paletteColor struct {
	r, g, b uint8
}

// ansi16 maps palette indices 0-15 to the xterm system colors.
// Actual values vary by terminal; these are the reference triples the
// nearest-match projection is defined against.
var ansi16 = [16]paletteColor{
	{0, 0, 0},       // 0: black
	{128, 0, 0},     // 1: red
	{0, 128, 0},     // 2: green
	{128, 128, 0},   // 3: yellow
	{0, 0, 128},     // 4: blue
	{128, 0, 128},   // 5: magenta
	{0, 128, 128},   // 6: cyan
	{192, 192, 192}, // 7: white
	{128, 128, 128}, // 8: bright black
	{255, 0, 0},     // 9: bright red
	{0, 255, 0},     // 10: bright green
	{255, 255, 0},   // 11: bright yellow
	{0, 0, 255},     // 12: bright blue
	{255, 0, 255},   // 13: bright magenta
	{0, 255, 255},   // 14: bright cyan
	{255, 255, 255}, // 15: bright white
}

// colorNames maps the 16 standard color names to palette indices.
var colorNames = map[string]uint8{
	"black":          0,
	"red":            1,
	"green":          2,
	"yellow":         3,
	"blue":           4,
	"magenta":        5,
	"cyan":           6,
	"white":          7,
	"bright_black":   8,
	"gray":           8,
	"grey":           8,
	"bright_red":     9,
	"bright_green":   10,
	"bright_yellow":  11,
	"bright_blue":    12,
	"bright_magenta": 13,
	"bright_cyan":    14,
	"bright_white":   15,
}

// ansi256 is the full 256-entry reference palette: the 16 system
// colors, the 6x6x6 color cube (16-231), and the grayscale ramp
// (232-255).
var ansi256 = buildAnsi256()

func buildAnsi256() [256]paletteColor {
	var p [256]paletteColor
	copy(p[:16], ansi16[:])

	// 6x6x6 cube. Channel levels: 0, 95, 135, 175, 215, 255.
	level := func(v int) uint8 {
		if v == 0 {
			return 0
		}
		return uint8(55 + v*40)
	}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[16+36*r+6*g+b] = paletteColor{level(r), level(g), level(b)}
			}
		}
	}

	// Grayscale ramp: 8, 18, ..., 238.
	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		p[232+i] = paletteColor{v, v, v}
	}
	return p
}

// Channel weights for perceptual color distance. The eye is most
// sensitive to green, then red, then blue.
const (
	weightRed   = 0.30
	weightGreen = 0.59
	weightBlue  = 0.11
)

// distance returns the weighted squared distance between two colors
// in RGB space.
func distance(r1, g1, b1, r2, g2, b2 uint8) float64 {
	dr := float64(r1) - float64(r2)
	dg := float64(g1) - float64(g2)
	db := float64(b1) - float64(b2)
	return weightRed*dr*dr + weightGreen*dg*dg + weightBlue*db*db
}

// nearest returns the index of the palette entry closest to (r, g, b).
// Ties go to the lowest index.
func nearest(r, g, b uint8, palette []paletteColor) uint8 {
	best := 0
	bestDist := distance(r, g, b, palette[0].r, palette[0].g, palette[0].b)
	for i := 1; i < len(palette); i++ {
		d := distance(r, g, b, palette[i].r, palette[i].g, palette[i].b)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(best)
}

// RGBTo16 projects an RGB triple to the nearest entry of the 16-color
// reference palette.
func RGBTo16(r, g, b uint8) uint8 {
	return nearest(r, g, b, ansi16[:])
}

// RGBTo256 projects an RGB triple to the nearest entry of the
// 256-color reference palette.
func RGBTo256(r, g, b uint8) uint8 {
	return nearest(r, g, b, ansi256[:])
}

// RGBTo8 projects an RGB triple to the nearest of the 8 basic colors.
func RGBTo8(r, g, b uint8) uint8 {
	return nearest(r, g, b, ansi16[:8])
}

// indexRGB returns the reference RGB triple for a palette index.
func indexRGB(idx uint8) (r, g, b uint8) {
	c := ansi256[idx]
	return c.r, c.g, c.b
}
