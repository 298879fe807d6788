package jaccard

// Built-in normalization tables. Both are constant data: they are only ever
// read through Config.effectiveStopWords / Config.effectiveSynonyms, which
// copy them before merging caller entries.

// defaultStopWords is a small mixed French/English list covering the function
// words and filler adjectives of the demo sentences. No entry is a single
// character, so char-mode streams pass through the filter unchanged.
var defaultStopWords = []string{
	// French
	"je", "tu", "il", "elle", "nous", "vous", "ils", "elles",
	"le", "la", "les", "de", "des", "du", "un", "une", "et",
	"est", "sont", "plus", "que", "qui", "ce", "cette", "ces",
	"très", "mais", "dans", "sur", "pour", "pas", "ne", "au", "aux",
	"fidèle", "loyale",
	// English
	"the", "an", "of", "to", "is", "are", "be", "and", "or",
	"in", "on", "at", "it", "this", "that", "with", "as", "for",
}

// defaultSynonyms canonicalizes the vehicle vocabulary used throughout the
// demos. Caller-supplied maps overlay these entries.
var defaultSynonyms = map[string]string{
	"auto":    "automobile",
	"voiture": "automobile",
	"bagnole": "automobile",
	"car":     "automobile",
	"vélo":    "bicyclette",
	"bike":    "bicyclette",
	"bicycle": "bicyclette",
}
