package jaccard

import "fmt"

// Analyzer turns raw text into a TokenStream: char filters, then the
// tokenizer, then token filters, in the order they were assembled.
type Analyzer struct {
	charFilters  []CharFilter
	tokenizer    Tokenizer
	tokenFilters []TokenFilter
}

// NewAnalyzer assembles the normalization pipeline a Config describes. The
// step order is fixed; reordering the filters changes results.
func NewAnalyzer(config Config) (Analyzer, error) {
	var charFilters []CharFilter
	if config.Lowercase {
		charFilters = append(charFilters, NewLowercaseCharFilter())
	}
	if config.StripPunctuation {
		charFilters = append(charFilters, NewPunctuationCharFilter())
	}

	var tokenizer Tokenizer
	switch config.Mode {
	case Char:
		tokenizer = NewCharTokenizer(config.KeepWhitespace)
	case Word:
		tokenizer = NewWordTokenizer()
	default:
		return Analyzer{}, InvalidConfigurationError{Reason: fmt.Sprintf("mode must be %q or %q, got %q", Char, Word, config.Mode)}
	}

	tokenFilters := []TokenFilter{NewStopWordFilter(config.effectiveStopWords())}
	if config.NormalizePlural && config.Mode == Word {
		tokenFilters = append(tokenFilters, NewPluralFilter())
	}
	if synonyms := config.effectiveSynonyms(); len(synonyms) > 0 {
		tokenFilters = append(tokenFilters, NewSynonymFilter(synonyms))
	}
	if config.NgramSize > 1 {
		tokenFilters = append(tokenFilters, NewNgramFilter(config.NgramSize))
	}

	return Analyzer{
		charFilters:  charFilters,
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}, nil
}

func (a Analyzer) Analyze(s string) TokenStream {
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	tokenStream := a.tokenizer.Tokenize(s)
	for _, f := range a.tokenFilters {
		tokenStream = f.Filter(tokenStream)
	}
	return tokenStream
}

// Tokenize is the one-shot entry point: it builds the pipeline for config and
// runs text through it.
func Tokenize(text string, config Config) (TokenStream, error) {
	analyzer, err := NewAnalyzer(config)
	if err != nil {
		return TokenStream{}, err
	}
	return analyzer.Analyze(text), nil
}
