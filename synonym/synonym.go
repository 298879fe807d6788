// Package synonym models the optional lexical-resource collaborator. The
// tokenizer itself only ever consumes a plain word -> canonical form map;
// this package is how such a map gets built from a resource without the core
// owning the resource's lifecycle.
package synonym

import "strings"

// Lexicon looks up the lemmas a lexical resource knows for a word, most
// canonical first. An unknown word yields an empty slice.
type Lexicon interface {
	Lemmas(word string) []string
}

// BuildMap derives a word -> canonical form mapping from a lexicon. Each
// word maps to its first lemma, and up to maxSynonyms-1 further lemmas map to
// the same canonical form. Words the lexicon does not know are skipped.
func BuildMap(lexicon Lexicon, words []string, maxSynonyms int) map[string]string {
	mapping := make(map[string]string)
	for _, word := range words {
		lemmas := lexicon.Lemmas(word)
		if len(lemmas) == 0 {
			continue
		}
		canonical := strings.ToLower(lemmas[0])
		mapping[word] = canonical
		rest := lemmas[1:]
		if len(rest) > maxSynonyms-1 {
			rest = rest[:maxSynonyms-1]
		}
		for _, lemma := range rest {
			mapping[strings.ToLower(lemma)] = canonical
		}
	}
	return mapping
}
