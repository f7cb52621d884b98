package syntax

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Language names a resolved grammar. It is created once per input by
// Resolve and never mutated afterward.
type Language struct {
	name  string
	lexer chroma.Lexer
}

// Name returns the grammar's display name, or "plaintext" for the
// no-highlighting fallback.
func (l Language) Name() string {
	return l.name
}

// ErrUndetermined reports that no language signal was found. Callers
// recover by rendering with Plaintext instead of treating it as a
// failure.
var ErrUndetermined = errors.New("language could not be determined")

// UnknownLanguageError reports an explicit language override that
// matches no known grammar.
type UnknownLanguageError struct {
	Name string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language %q", e.Name)
}

// Plaintext returns the language that classifies every byte as Text.
func Plaintext() Language {
	return Language{name: "plaintext", lexer: lexers.Fallback}
}

// Resolve determines the language for one input. Precedence, highest
// first: explicit override, filename extension, shebang interpreter,
// editor mode-line. An override naming no known grammar is an error;
// finding no signal at all returns ErrUndetermined.
func Resolve(override, filename string, head []byte) (Language, error) {
	if override != "" {
		lexer := lexers.Get(override)
		if lexer == nil {
			return Language{}, &UnknownLanguageError{Name: override}
		}
		return fromLexer(lexer), nil
	}

	if filename != "" {
		if lexer := lexers.Match(filepath.Base(filename)); lexer != nil {
			return fromLexer(lexer), nil
		}
	}

	if name := shebangInterpreter(head); name != "" {
		if lexer := lookupInterpreter(name); lexer != nil {
			return fromLexer(lexer), nil
		}
	}

	if name := modelineLanguage(head); name != "" {
		if lexer := lexers.Get(name); lexer != nil {
			return fromLexer(lexer), nil
		}
	}

	return Language{}, ErrUndetermined
}

func fromLexer(lexer chroma.Lexer) Language {
	return Language{name: lexer.Config().Name, lexer: lexer}
}

// shebangInterpreter extracts the interpreter base name from a first
// line of the form "#!/path/to/interpreter [args]". The env wrapper is
// skipped so "#!/usr/bin/env python3" yields "python3".
func shebangInterpreter(head []byte) string {
	line := firstLine(head)
	if !strings.HasPrefix(line, "#!") {
		return ""
	}
	fields := strings.Fields(line[2:])
	if len(fields) == 0 {
		return ""
	}
	interp := filepath.Base(fields[0])
	if interp == "env" {
		if len(fields) < 2 {
			return ""
		}
		interp = filepath.Base(fields[1])
	}
	return interp
}

// lookupInterpreter resolves an interpreter name against the grammar
// registry, retrying without a trailing version ("ruby3.2" -> "ruby").
func lookupInterpreter(name string) chroma.Lexer {
	if lexer := lexers.Get(name); lexer != nil {
		return lexer
	}
	trimmed := strings.TrimRight(name, "0123456789.")
	if trimmed != "" && trimmed != name {
		return lexers.Get(trimmed)
	}
	return nil
}

var (
	emacsModeline = regexp.MustCompile(`-\*-\s*(?:[Mm]ode:\s*)?([A-Za-z0-9_+#-]+)[\s;].*-\*-|-\*-\s*(?:[Mm]ode:\s*)?([A-Za-z0-9_+#-]+)\s*-\*-`)
	vimModeline   = regexp.MustCompile(`\b(?:vim?|ex):[^\n]*?\b(?:ft|filetype)=([A-Za-z0-9_+#-]+)`)
)

// modelineSearchLines bounds how far into the input mode-lines are
// looked for.
const modelineSearchLines = 5

// modelineLanguage scans the first few lines for an Emacs
// "-*- mode: x -*-" or vim "ft=x" marker and returns the named mode.
func modelineLanguage(head []byte) string {
	lines := strings.SplitN(string(head), "\n", modelineSearchLines+1)
	if len(lines) > modelineSearchLines {
		lines = lines[:modelineSearchLines]
	}
	for _, line := range lines {
		if m := emacsModeline.FindStringSubmatch(line); m != nil {
			if m[1] != "" {
				return m[1]
			}
			return m[2]
		}
		if m := vimModeline.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	return ""
}

func firstLine(head []byte) string {
	s := string(head)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSuffix(s, "\r")
}
