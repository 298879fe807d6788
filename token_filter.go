package jaccard

import (
	"strings"
	"unicode/utf8"
)

// TokenFilter transforms a TokenStream into another TokenStream.
type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

type StopWordFilter struct {
	stopWords map[string]struct{}
}

func NewStopWordFilter(stopWords map[string]struct{}) StopWordFilter {
	return StopWordFilter{stopWords: stopWords}
}

func (f StopWordFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if _, ok := f.stopWords[token.Term]; !ok {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

// PluralFilter truncates a trailing `s` from tokens longer than three runes.
// This is a naive heuristic, not linguistic stemming.
type PluralFilter struct{}

func NewPluralFilter() PluralFilter {
	return PluralFilter{}
}

func (f PluralFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		term := token.Term
		if strings.HasSuffix(term, "s") && utf8.RuneCountInString(term) > 3 {
			term = strings.TrimSuffix(term, "s")
		}
		r[i] = NewToken(term)
	}
	return NewTokenStream(r)
}

// SynonymFilter replaces each token by its canonical form. Tokens absent from
// the mapping pass through unchanged.
type SynonymFilter struct {
	synonyms map[string]string
}

func NewSynonymFilter(synonyms map[string]string) SynonymFilter {
	return SynonymFilter{synonyms: synonyms}
}

func (f SynonymFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		if canonical, ok := f.synonyms[token.Term]; ok {
			r[i] = NewToken(canonical)
		} else {
			r[i] = token
		}
	}
	return NewTokenStream(r)
}

// NgramFilter slides a window of n tokens over the stream and joins each
// window into one token. Single-character tokens are joined without a
// separator, anything else with a single space. A stream shorter than n
// collapses to an empty stream.
type NgramFilter struct {
	n int
}

func NewNgramFilter(n int) NgramFilter {
	return NgramFilter{n: n}
}

func (f NgramFilter) Filter(tokenStream TokenStream) TokenStream {
	if f.n <= 1 {
		return tokenStream
	}
	size := tokenStream.Size()
	if size < f.n {
		return NewTokenStream([]Token{})
	}

	joiner := ""
	for _, token := range tokenStream.Tokens {
		if utf8.RuneCountInString(token.Term) != 1 {
			joiner = " "
			break
		}
	}

	terms := tokenStream.Terms()
	r := make([]Token, 0, size-f.n+1)
	for i := 0; i+f.n <= size; i++ {
		r = append(r, NewToken(strings.Join(terms[i:i+f.n], joiner)))
	}
	return NewTokenStream(r)
}
