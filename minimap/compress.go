package minimap

import "unicode"

// ColorCell is the resolved color for one rendered column of one
// source line. Blank marks whitespace-origin cells, which render as a
// bare space so the line's shape survives even without color.
type ColorCell struct {
	Color RGB
	Blank bool
}

// lineWriter turns a line's rune stream into ColorCells: tabs expand
// to the next tab stop carrying their own classified color, and cells
// past the column limit are dropped while the column counter keeps
// advancing so tab stops stay correct.
type lineWriter struct {
	cells    []ColorCell
	col      int
	tabWidth int // <= 1 renders each tab as a single column
	maxCols  int // 0 = unbounded
}

// put accounts for one source rune with its mapped color.
func (w *lineWriter) put(r rune, color RGB) {
	if r == '\t' {
		n := 1
		if w.tabWidth > 1 {
			n = w.tabWidth - w.col%w.tabWidth
		}
		w.emit(ColorCell{Color: color, Blank: true}, n)
		return
	}
	// Every codepoint occupies exactly one display column; multi-width
	// characters are out of scope.
	w.emit(ColorCell{Color: color, Blank: unicode.IsSpace(r)}, 1)
}

func (w *lineWriter) emit(cell ColorCell, n int) {
	for i := 0; i < n; i++ {
		if w.maxCols <= 0 || w.col < w.maxCols {
			w.cells = append(w.cells, cell)
		}
		w.col++
	}
}

// flush returns the finished line and resets for the next one.
func (w *lineWriter) flush() []ColorCell {
	cells := w.cells
	w.cells = nil
	w.col = 0
	return cells
}
