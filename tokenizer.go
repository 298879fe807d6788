package jaccard

import (
	"strings"
	"unicode"
)

// Tokenizer splits normalized text into a TokenStream.
type Tokenizer interface {
	Tokenize(string) TokenStream
}

// CharTokenizer splits text into individual runes. Whitespace runes are
// dropped unless keepWhitespace is set.
type CharTokenizer struct {
	keepWhitespace bool
}

func NewCharTokenizer(keepWhitespace bool) CharTokenizer {
	return CharTokenizer{keepWhitespace: keepWhitespace}
}

func (t CharTokenizer) Tokenize(s string) TokenStream {
	tokens := make([]Token, 0, len(s))
	for _, r := range s {
		if !t.keepWhitespace && unicode.IsSpace(r) {
			continue
		}
		tokens = append(tokens, NewToken(string(r)))
	}
	return NewTokenStream(tokens)
}

// WordTokenizer splits text on whitespace runs.
type WordTokenizer struct{}

func NewWordTokenizer() WordTokenizer {
	return WordTokenizer{}
}

func (t WordTokenizer) Tokenize(s string) TokenStream {
	terms := strings.Fields(s)
	tokens := make([]Token, len(terms))
	for i, term := range terms {
		tokens[i] = NewToken(term)
	}
	return NewTokenStream(tokens)
}
