package syntax

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
)

func collect(t *testing.T, it TokenIterator) []Token {
	t.Helper()
	var tokens []Token
	for {
		tok, ok := it()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestChromaClassifierCoversInput(t *testing.T) {
	src := "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"
	lang, err := Resolve("go", "", nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	it, err := ChromaClassifier{}.Classify([]byte(src), lang)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	var b strings.Builder
	for _, tok := range collect(t, it) {
		b.WriteString(tok.Value)
	}
	if b.String() != src {
		t.Errorf("tokens do not cover input exactly:\ngot  %q\nwant %q", b.String(), src)
	}
}

func TestChromaClassifierClassifies(t *testing.T) {
	src := "func main() {\n\t// greet\n\tprintln(\"hi\", 42)\n}\n"
	lang, err := Resolve("go", "", nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	it, err := ChromaClassifier{}.Classify([]byte(src), lang)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	seen := map[Class]string{}
	for _, tok := range collect(t, it) {
		if _, ok := seen[tok.Class]; !ok {
			seen[tok.Class] = tok.Value
		}
	}

	for _, want := range []Class{Keyword, Comment, String, Number} {
		if _, ok := seen[want]; !ok {
			t.Errorf("no %v token classified in %q (saw %v)", want, src, seen)
		}
	}
}

func TestChromaClassifierNilLexerFallsBack(t *testing.T) {
	src := "anything at all"
	it, err := ChromaClassifier{}.Classify([]byte(src), Language{})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	var b strings.Builder
	for _, tok := range collect(t, it) {
		b.WriteString(tok.Value)
		if tok.Class != Text {
			t.Errorf("fallback lexer produced class %v", tok.Class)
		}
	}
	if b.String() != src {
		t.Errorf("fallback tokens = %q, want %q", b.String(), src)
	}
}

func TestPlainTokens(t *testing.T) {
	it := PlainTokens([]byte("ab\ncd"))
	tok, ok := it()
	if !ok || tok.Value != "ab\ncd" || tok.Class != Text {
		t.Fatalf("PlainTokens first token = %+v, %v", tok, ok)
	}
	if _, ok := it(); ok {
		t.Error("PlainTokens yielded more than one token")
	}

	if _, ok := PlainTokens(nil)(); ok {
		t.Error("PlainTokens(nil) yielded a token")
	}
}

func TestNormalizeTotal(t *testing.T) {
	tests := []struct {
		tt   chroma.TokenType
		want Class
	}{
		{chroma.Keyword, Keyword},
		{chroma.KeywordDeclaration, Keyword},
		{chroma.KeywordType, Type},
		{chroma.LiteralString, String},
		{chroma.LiteralStringDouble, String},
		{chroma.LiteralNumberInteger, Number},
		{chroma.Comment, Comment},
		{chroma.CommentSingle, Comment},
		{chroma.Operator, Operator},
		{chroma.NameFunction, Function},
		{chroma.NameClass, Type},
		{chroma.NameBuiltin, Type},
		{chroma.NameConstant, Number},
		{chroma.Error, Error},
		{chroma.GenericError, Error},
		{chroma.Text, Text},
		{chroma.Punctuation, Text},
		{chroma.Name, Text},
	}

	for _, tt := range tests {
		if got := normalize(tt.tt); got != tt.want {
			t.Errorf("normalize(%v) = %v, want %v", tt.tt, got, tt.want)
		}
	}
}
