package jaccard

// Token is an immutable unit of normalized text: a character, a word or an
// n-gram. It has no identity beyond its term.
type Token struct {
	Term string
}

func NewToken(term string) Token {
	return Token{Term: term}
}

// TokenStream is an ordered sequence of tokens produced by an Analyzer.
// Duplicates are allowed and order is preserved.
type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) TokenStream {
	return TokenStream{
		Tokens: tokens,
	}
}

// NewTokenStreamFromTerms builds a stream from raw terms, keeping their order.
func NewTokenStreamFromTerms(terms []string) TokenStream {
	tokens := make([]Token, len(terms))
	for i, term := range terms {
		tokens[i] = NewToken(term)
	}
	return NewTokenStream(tokens)
}

func (ts TokenStream) Size() int {
	return len(ts.Tokens)
}

func (ts TokenStream) Terms() []string {
	terms := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		terms[i] = t.Term
	}
	return terms
}

// TermCounts collapses the stream into a bag: distinct term -> occurrence count.
func (ts TokenStream) TermCounts() map[string]int {
	counts := make(map[string]int, ts.Size())
	for _, t := range ts.Tokens {
		counts[t.Term]++
	}
	return counts
}

// Distinct returns the stream's distinct terms as a Set, dropping counts.
func (ts TokenStream) Distinct() Set {
	return NewSet(ts.Terms()...)
}
