package jaccard

import "math"

// IDFTable maps a term to its inverse document frequency. It is built once
// per corpus with ComputeIDF and read-only afterwards, so concurrent weighted
// similarity calls need no locking.
type IDFTable map[string]float64

// ComputeTF returns the relative frequency of each term in the stream. An
// empty stream yields an empty map.
func ComputeTF(tokenStream TokenStream) map[string]float64 {
	total := tokenStream.Size()
	if total == 0 {
		total = 1
	}
	tf := make(map[string]float64)
	for term, count := range tokenStream.TermCounts() {
		tf[term] = float64(count) / float64(total)
	}
	return tf
}

// ComputeIDF builds the IDF table for a corpus of token streams, counting for
// each term the number of documents containing it at least once:
//
//	idf = ln((1 + N) / (1 + df)) + 1
//
// The +1 terms keep every idf strictly positive, even for a term present in
// all documents.
func ComputeIDF(corpus []TokenStream) IDFTable {
	documentFrequency := make(map[string]int)
	for _, doc := range corpus {
		for term := range doc.TermCounts() {
			documentFrequency[term]++
		}
	}
	totalDocs := len(corpus)
	idf := make(IDFTable, len(documentFrequency))
	for term, df := range documentFrequency {
		idf[term] = math.Log(float64(1+totalDocs)/float64(1+df)) + 1
	}
	return idf
}

// WeightedSimilarity is the TF-IDF weighted Jaccard index. Every term of
// either stream contributes weight*min(tfA, tfB) to the numerator and
// weight*max(tfA, tfB) to the denominator, with weight 1.0 for terms the
// table does not know. A zero denominator falls back to the identity
// convention.
func WeightedSimilarity(a, b TokenStream, idf IDFTable) float64 {
	tfA := ComputeTF(a)
	tfB := ComputeTF(b)

	var numerator, denominator float64
	for term := range union(tfA, tfB) {
		weight, ok := idf[term]
		if !ok {
			weight = 1.0
		}
		fa := tfA[term]
		fb := tfB[term]
		numerator += weight * math.Min(fa, fb)
		denominator += weight * math.Max(fa, fb)
	}
	if denominator == 0 {
		return 1.0
	}
	return numerator / denominator
}

func union(a, b map[string]float64) map[string]struct{} {
	r := make(map[string]struct{}, len(a)+len(b))
	for term := range a {
		r[term] = struct{}{}
	}
	for term := range b {
		r[term] = struct{}{}
	}
	return r
}
