package synonym

// StaticLexicon is an in-memory Lexicon backed by a fixed table. It stands in
// for an external resource such as WordNet when none is available.
type StaticLexicon struct {
	entries map[string][]string
}

func NewStaticLexicon(entries map[string][]string) StaticLexicon {
	return StaticLexicon{entries: entries}
}

func (l StaticLexicon) Lemmas(word string) []string {
	return l.entries[word]
}
