package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"minicat/config"
	"minicat/minimap"
	"minicat/syntax"
)

const version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	Files    []string         `arg:"" optional:"" name:"file" help:"File(s) to render. Use \"-\" or no argument for standard input."`
	Language string           `short:"l" placeholder:"NAME" help:"Explicitly set the language for syntax highlighting (name or extension, e.g. rust or rs)."`
	Columns  int              `short:"c" placeholder:"N" help:"Maximum number of columns (0 = unbounded)."`
	Tabs     int              `short:"t" default:"4" placeholder:"N" help:"Tab width. Specify 0 to render each tab as a single column."`
	Theme    string           `placeholder:"NAME" help:"Color theme name (builtin or from the user themes directory)."`
	Themes   bool             `help:"List available themes and exit."`
	Color    string           `enum:"auto,always,never" default:"auto" help:"When to color output (auto, always, never)."`
	Version  kong.VersionFlag `short:"v" help:"Show version information."`
}

func main() {
	// Writes to a closed pipe must come back as EPIPE so the run can
	// stop quietly; the default SIGPIPE disposition would kill the
	// process before the error is ever seen.
	signal.Ignore(syscall.SIGPIPE)

	var cli CLI
	kong.Parse(&cli,
		kong.Name("minicat"),
		kong.Description("Render a syntax-colored minimap of source code: one row per line, one block per column."),
		kong.Vars{"version": "minicat " + version},
	)

	logger := log.New(os.Stderr)

	mode := colorMode(cli.Color)

	if cli.Themes {
		listThemes(os.Stdout, mode)
		return
	}

	theme := config.LoadTheme(cli.Theme)

	printer := minimap.NewPrinter(minimap.Options{
		Columns:  cli.Columns,
		TabWidth: cli.Tabs,
		Mode:     mode,
		Palette:  minimap.NewPalette(theme.Syntax),
	})
	classifier := syntax.ChromaClassifier{}

	stdout := bufio.NewWriter(os.Stdout)
	failed := false
	for _, input := range inputs(cli.Files) {
		err := render(stdout, printer, classifier, cli.Language, input)
		if err == nil {
			continue
		}
		if brokenPipe(err) {
			// Expected when the reader exits early; stop quietly.
			os.Exit(0)
		}
		logger.Error("skipping input", "file", displayName(input), "err", err)
		failed = true
	}
	if err := stdout.Flush(); err != nil && !brokenPipe(err) {
		logger.Error("writing output", "err", err)
		failed = true
	}
	if failed {
		os.Exit(1)
	}
}

// colorMode resolves the terminal capability once at startup, honoring
// the --color override.
func colorMode(flag string) config.ColorMode {
	switch flag {
	case "never":
		return config.ColorNone
	case "always":
		mode := config.DetectColorMode(true)
		if mode == config.ColorNone {
			mode = config.Color256
		}
		return mode
	default:
		return config.DetectColorMode(isatty.IsTerminal(os.Stdout.Fd()))
	}
}

// inputs maps the file arguments to render inputs. Standard input is
// used when no files are given or a single "-" is.
func inputs(files []string) []string {
	if len(files) == 0 || (len(files) == 1 && files[0] == "-") {
		return []string{"-"}
	}
	return files
}

func displayName(input string) string {
	if input == "-" {
		return "stdin"
	}
	return input
}

// render reads one input, resolves its language, and prints its
// minimap. Language resolution failure without an explicit override is
// recovered by rendering everything as plain text.
func render(w io.Writer, p *minimap.Printer, classifier syntax.Classifier, override, input string) error {
	var src []byte
	var err error
	filename := input
	if input == "-" {
		filename = ""
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(input)
	}
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	lang, err := syntax.Resolve(override, filename, src)
	if err != nil {
		if !errors.Is(err, syntax.ErrUndetermined) {
			return err
		}
		lang = syntax.Plaintext()
	}

	return p.Print(w, src, lang, classifier)
}

func brokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}

// listThemes prints every available theme name with a swatch of its
// syntax colors, rendered at the resolved color capability.
func listThemes(w io.Writer, mode config.ColorMode) {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(colorProfile(mode))

	names := config.ThemeNames()
	names = append(names, config.ListUserThemes()...)
	for _, name := range names {
		theme := config.LoadTheme(name)
		sw := theme.Syntax
		var swatch string
		for _, hex := range []string{sw.Text, sw.Keyword, sw.String, sw.Comment, sw.Number, sw.Function, sw.Type, sw.Operator, sw.Error} {
			swatch += renderer.NewStyle().Foreground(lipgloss.Color(hex)).Render("▀▀")
		}
		fmt.Fprintf(w, "%-12s %s  %s\n", name, swatch, theme.Description)
	}
}

// colorProfile maps the detected capability onto a termenv profile so
// lipgloss degrades swatches the same way the minimap does.
func colorProfile(mode config.ColorMode) termenv.Profile {
	switch mode {
	case config.ColorTrueColor:
		return termenv.TrueColor
	case config.Color256:
		return termenv.ANSI256
	default:
		return termenv.Ascii
	}
}
