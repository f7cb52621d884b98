package syntax

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Token is one classified span of input. Successive tokens from a
// Classifier are contiguous and together cover the input exactly once.
type Token struct {
	Value string
	Class Class
}

// TokenIterator yields tokens one at a time; ok is false after the
// last token.
type TokenIterator func() (tok Token, ok bool)

// Classifier turns source bytes into a classified token stream for a
// resolved language. The renderer treats implementations as opaque, so
// tests can substitute a deterministic stub for the grammar engine.
type Classifier interface {
	Classify(src []byte, lang Language) (TokenIterator, error)
}

// PlainTokens classifies the whole input as a single Text token. Used
// when no language could be determined or a classifier fails.
func PlainTokens(src []byte) TokenIterator {
	done := len(src) == 0
	return func() (Token, bool) {
		if done {
			return Token{}, false
		}
		done = true
		return Token{Value: string(src), Class: Text}, true
	}
}

// ChromaClassifier classifies source with the chroma grammar engine,
// normalizing its token taxonomy into the closed Class set.
type ChromaClassifier struct{}

// Classify tokenizes src with the language's lexer. The returned
// iterator is single-pass and lazy.
func (ChromaClassifier) Classify(src []byte, lang Language) (TokenIterator, error) {
	lexer := lang.lexer
	if lexer == nil {
		lexer = lexers.Fallback
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, string(src))
	if err != nil {
		return nil, err
	}
	return func() (Token, bool) {
		t := it()
		if t == chroma.EOF {
			return Token{}, false
		}
		return Token{Value: t.Value, Class: normalize(t.Type)}, true
	}, nil
}

// normalize maps a chroma token type onto the closed Class set.
// Anything unrecognized is Text, so the mapping is total.
func normalize(t chroma.TokenType) Class {
	switch {
	case t == chroma.KeywordType:
		return Type

	case t.InCategory(chroma.Keyword):
		return Keyword

	case t.InSubCategory(chroma.LiteralString):
		return String

	case t.InSubCategory(chroma.LiteralNumber):
		return Number

	case t.InCategory(chroma.Comment):
		return Comment

	case t.InCategory(chroma.Operator):
		return Operator

	case t == chroma.NameFunction,
		t == chroma.NameFunctionMagic:
		return Function

	case t == chroma.NameClass,
		t == chroma.NameBuiltin,
		t == chroma.NameBuiltinPseudo:
		return Type

	// Constants read like literals
	case t == chroma.NameConstant:
		return Number

	case t == chroma.Error,
		t == chroma.GenericError:
		return Error

	default:
		return Text
	}
}
