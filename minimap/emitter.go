package minimap

import (
	"io"
	"strings"

	"minicat/config"
)

// glyph is the block character used for every non-blank cell; only
// its color varies.
const glyph = "▀"

const resetSGR = "\033[0m"

// emitRow writes one terminal row for a line's cells. Adjacent cells
// that degrade to the same color share a single escape sequence, and
// any row that set a color ends with a reset so no state leaks past
// the output. A zero-cell row is a bare newline.
func emitRow(w io.Writer, cells []ColorCell, mode config.ColorMode) error {
	if len(cells) == 0 {
		_, err := io.WriteString(w, "\n")
		return err
	}

	var b strings.Builder
	colored := false
	for i := 0; i < len(cells); {
		run := cells[i]
		j := i + 1
		if run.Blank {
			for j < len(cells) && cells[j].Blank {
				j++
			}
			if colored {
				b.WriteString(resetSGR)
				colored = false
			}
			b.WriteString(strings.Repeat(" ", j-i))
		} else {
			color := Degrade(run.Color, mode)
			for j < len(cells) && !cells[j].Blank && Degrade(cells[j].Color, mode) == color {
				j++
			}
			if sgr := color.SGR(); sgr != "" {
				b.WriteString(sgr)
				colored = true
			}
			b.WriteString(strings.Repeat(glyph, j-i))
		}
		i = j
	}
	if colored {
		b.WriteString(resetSGR)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
