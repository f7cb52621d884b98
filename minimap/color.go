package minimap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"minicat/config"
	"minicat/syntax"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Palette is the resolved class-to-color table consumed by the
// renderer. Unknown classes index nothing; callers clamp to Text.
type Palette [syntax.ClassCount]RGB

// NewPalette resolves a theme's hex color table into concrete RGB
// values.
func NewPalette(colors config.SyntaxColors) Palette {
	var p Palette
	p[syntax.Text] = parseHexColor(colors.Text)
	p[syntax.Keyword] = parseHexColor(colors.Keyword)
	p[syntax.String] = parseHexColor(colors.String)
	p[syntax.Comment] = parseHexColor(colors.Comment)
	p[syntax.Number] = parseHexColor(colors.Number)
	p[syntax.Function] = parseHexColor(colors.Function)
	p[syntax.Type] = parseHexColor(colors.Type)
	p[syntax.Operator] = parseHexColor(colors.Operator)
	p[syntax.Error] = parseHexColor(colors.Error)
	return p
}

// Color returns the palette entry for a class, falling back to the
// Text entry for anything outside the known set.
func (p Palette) Color(c syntax.Class) RGB {
	if int(c) >= len(p) {
		return p[syntax.Text]
	}
	return p[c]
}

// parseHexColor parses #RGB or #RRGGBB to an RGB value
func parseHexColor(hex string) RGB {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		r, _ := strconv.ParseUint(string(hex[0])+string(hex[0]), 16, 8)
		g, _ := strconv.ParseUint(string(hex[1])+string(hex[1]), 16, 8)
		b, _ := strconv.ParseUint(string(hex[2])+string(hex[2]), 16, 8)
		return RGB{uint8(r), uint8(g), uint8(b)}
	}
	if len(hex) == 6 {
		r, _ := strconv.ParseUint(hex[0:2], 16, 8)
		g, _ := strconv.ParseUint(hex[2:4], 16, 8)
		b, _ := strconv.ParseUint(hex[4:6], 16, 8)
		return RGB{uint8(r), uint8(g), uint8(b)}
	}
	return RGB{255, 255, 255} // Default to white on error
}

// TermColor is a terminal-representable color descriptor produced by
// Degrade. Equal TermColors render identically, so run merging in the
// emitter compares them directly.
type TermColor struct {
	mode  config.ColorMode
	index uint8 // 256-color palette index
	rgb   RGB
}

// SGR returns the foreground escape sequence for the color, or the
// empty string in no-color mode.
func (t TermColor) SGR() string {
	switch t.mode {
	case config.ColorTrueColor:
		return fmt.Sprintf("\033[38;2;%d;%d;%dm", t.rgb.R, t.rgb.G, t.rgb.B)
	case config.Color256:
		return fmt.Sprintf("\033[38;5;%dm", t.index)
	default:
		return ""
	}
}

// Degrade maps an RGB color to the best representation the terminal
// supports. Total: every input has exactly one defined output.
func Degrade(c RGB, mode config.ColorMode) TermColor {
	switch mode {
	case config.ColorTrueColor:
		return TermColor{mode: mode, rgb: c}
	case config.Color256:
		return TermColor{mode: mode, index: quantize256(c)}
	default:
		return TermColor{mode: config.ColorNone}
	}
}

// cubeLevels are the channel values of the 6x6x6 color cube
// (palette entries 16-231).
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// palette256 holds entries 16-255: the color cube followed by the
// 24-step grayscale ramp (232-255).
var palette256 [240]RGB

func init() {
	i := 0
	for _, r := range cubeLevels {
		for _, g := range cubeLevels {
			for _, b := range cubeLevels {
				palette256[i] = RGB{r, g, b}
				i++
			}
		}
	}
	for step := 0; step < 24; step++ {
		v := uint8(8 + 10*step)
		palette256[i] = RGB{v, v, v}
		i++
	}
}

// quantize256 returns the nearest palette entry among the color cube
// and grayscale ramp by Euclidean RGB distance, preferring the lower
// index on ties. The base 16 ANSI colors are skipped since their
// actual values vary by terminal.
func quantize256(c RGB) uint8 {
	target := toColorful(c)
	best := 0
	bestDist := target.DistanceRgb(toColorful(palette256[0]))
	for i := 1; i < len(palette256); i++ {
		d := target.DistanceRgb(toColorful(palette256[i]))
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(16 + best)
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
