package minimap

import (
	"io"

	"minicat/config"
	"minicat/syntax"
)

// DefaultTabWidth is the conventional tab expansion width.
const DefaultTabWidth = 4

// Options configure a Printer.
type Options struct {
	// Columns bounds the rendered width per line; 0 means unbounded.
	Columns int
	// TabWidth is the tab expansion width; values below 2 render each
	// tab as a single column.
	TabWidth int
	// Mode is the terminal's color capability.
	Mode config.ColorMode
	// Palette maps syntax classes to colors.
	Palette Palette
}

// Printer renders source bytes as a minimap: one colored row per
// source line. A Printer is immutable and can render any number of
// inputs.
type Printer struct {
	opts Options
}

// NewPrinter creates a Printer with the given options.
func NewPrinter(opts Options) *Printer {
	return &Printer{opts: opts}
}

// Print classifies src for the resolved language and writes one
// minimap row per source line to w. Line count is preserved exactly:
// blank lines render as empty rows and a trailing newline does not
// open a final empty line. A classifier failure degrades to plaintext
// rendering of the whole input rather than failing. Returned errors
// are write errors on w.
func (p *Printer) Print(w io.Writer, src []byte, lang syntax.Language, classifier syntax.Classifier) error {
	tokens, err := classifier.Classify(src, lang)
	if err != nil {
		tokens = syntax.PlainTokens(src)
	}

	lw := &lineWriter{tabWidth: p.opts.TabWidth, maxCols: p.opts.Columns}
	started := false

	for {
		tok, ok := tokens()
		if !ok {
			break
		}
		color := p.opts.Palette.Color(tok.Class)
		for _, r := range tok.Value {
			if r == '\r' {
				// Produces no cell, but the line now exists; a file
				// ending in a bare \r still gets its row.
				started = true
				continue
			}
			if r == '\n' {
				if err := emitRow(w, lw.flush(), p.opts.Mode); err != nil {
					return err
				}
				started = false
				continue
			}
			lw.put(r, color)
			started = true
		}
	}

	// A final line without a terminating newline still gets a row.
	if started {
		return emitRow(w, lw.flush(), p.opts.Mode)
	}
	return nil
}
