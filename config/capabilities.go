package config

import (
	"os"
	"strings"
)

// ColorMode represents the terminal color capability. It is resolved
// once at startup and threaded through the renderer as an immutable
// value.
type ColorMode int

const (
	ColorNone      ColorMode = iota // no color escapes emitted
	Color256                        // 256 color palette
	ColorTrueColor                  // 24-bit true color
)

// String returns a human-readable description of the color mode
func (c ColorMode) String() string {
	switch c {
	case ColorNone:
		return "no color"
	case Color256:
		return "256 colors"
	case ColorTrueColor:
		return "TrueColor (24-bit)"
	default:
		return "unknown"
	}
}

// trueColorTerms are TERM values known to support truecolor even when
// COLORTERM is unset.
var trueColorTerms = []string{"xterm-direct", "iterm2", "vte"}

// DetectColorMode detects the terminal's color capability from the
// environment. COLORTERM is matched case-sensitively against the two
// conventional truecolor literals and wins outright; everything else
// falls back to TERM heuristics, degrading to ColorNone for dumb
// terminals and non-tty output.
func DetectColorMode(stdoutIsTTY bool) ColorMode {
	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return ColorTrueColor
	}

	term := os.Getenv("TERM")
	if term == "" || term == "dumb" || !stdoutIsTTY {
		return ColorNone
	}

	if strings.Contains(term, "256color") || strings.Contains(term, "256-color") {
		return Color256
	}

	// Some terminals advertise truecolor via TERM
	if strings.Contains(term, "truecolor") || strings.Contains(term, "24bit") {
		return ColorTrueColor
	}
	for _, t := range trueColorTerms {
		if strings.Contains(term, t) {
			return ColorTrueColor
		}
	}

	// Default to the indexed palette for anything else interactive
	return Color256
}
