package jaccard

import "strings"

// CharFilter normalizes raw text before it reaches a Tokenizer.
type CharFilter interface {
	Filter(string) string
}

type LowercaseCharFilter struct{}

func NewLowercaseCharFilter() LowercaseCharFilter {
	return LowercaseCharFilter{}
}

func (c LowercaseCharFilter) Filter(s string) string {
	return strings.ToLower(s)
}

// asciiPunctuation is the fixed set of characters removed by
// PunctuationCharFilter.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// PunctuationCharFilter deletes ASCII punctuation outright, without
// substituting whitespace. In word mode `l'auto` therefore becomes `lauto`.
type PunctuationCharFilter struct{}

func NewPunctuationCharFilter() PunctuationCharFilter {
	return PunctuationCharFilter{}
}

func (c PunctuationCharFilter) Filter(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, s)
}

// MappingCharFilter rewrites every occurrence of each key to its value.
type MappingCharFilter struct {
	mapping map[string]string
}

func NewMappingCharFilter(mapping map[string]string) MappingCharFilter {
	return MappingCharFilter{mapping: mapping}
}

func (c MappingCharFilter) Filter(s string) string {
	for from, to := range c.mapping {
		s = strings.ReplaceAll(s, from, to)
	}
	return s
}
