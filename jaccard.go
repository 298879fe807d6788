package jaccard

// Set holds distinct terms. Multiplicity and order are irrelevant.
type Set map[string]struct{}

func NewSet(elems ...string) Set {
	s := make(Set, len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

func (s Set) Contains(e string) bool {
	_, ok := s[e]
	return ok
}

// similarity applies the zero-union convention shared by every variant: two
// empty inputs are identical, so an empty union means similarity 1.0.
func similarity(intersection, union int) float64 {
	if union == 0 {
		return 1.0
	}
	return float64(intersection) / float64(union)
}

// SetComponents returns (intersection, union) sizes over distinct elements.
func SetComponents(a, b Set) (int, int) {
	intersection := 0
	union := len(a)
	for e := range b {
		if a.Contains(e) {
			intersection++
		} else {
			union++
		}
	}
	return intersection, union
}

// SetSimilarity is the classic Jaccard index over two sets.
func SetSimilarity(a, b Set) float64 {
	return similarity(SetComponents(a, b))
}

func SetDistance(a, b Set) float64 {
	return 1.0 - SetSimilarity(a, b)
}

// Components returns (intersection, union) treating both streams as
// multisets: intersection sums min(countA, countB) per term, union is
// totalA + totalB - intersection, so every repeated occurrence keeps its
// weight.
func Components(a, b TokenStream) (int, int) {
	countsA := a.TermCounts()
	countsB := b.TermCounts()

	intersection := 0
	for term, countA := range countsA {
		countB, ok := countsB[term]
		if !ok {
			continue
		}
		if countB < countA {
			intersection += countB
		} else {
			intersection += countA
		}
	}
	union := a.Size() + b.Size() - intersection
	return intersection, union
}

// PositionalComponents compares tokens index by index: intersection counts
// positions where both streams carry the same term, union is the larger
// stream length. This is an order-sensitive alternative metric, not set
// Jaccard.
func PositionalComponents(a, b TokenStream) (int, int) {
	limit := a.Size()
	if b.Size() < limit {
		limit = b.Size()
	}
	intersection := 0
	for i := 0; i < limit; i++ {
		if a.Tokens[i].Term == b.Tokens[i].Term {
			intersection++
		}
	}
	union := a.Size()
	if b.Size() > union {
		union = b.Size()
	}
	return intersection, union
}

// Index is the multiset Jaccard index for two token streams.
func Index(a, b TokenStream) float64 {
	return similarity(Components(a, b))
}

// PositionalIndex is the position-aligned index for two token streams.
func PositionalIndex(a, b TokenStream) float64 {
	return similarity(PositionalComponents(a, b))
}

// Distance is 1 - Index.
func Distance(a, b TokenStream) float64 {
	return 1.0 - Index(a, b)
}

// PositionalDistance is 1 - PositionalIndex.
func PositionalDistance(a, b TokenStream) float64 {
	return 1.0 - PositionalIndex(a, b)
}

// TextComponents tokenizes both texts under config and returns the
// (intersection, union) pair of the variant the config selects: positional
// when positions are respected, distinct sets when duplicate counting is
// disabled, multisets otherwise.
func TextComponents(textA, textB string, config Config) (int, int, error) {
	a, b, err := tokenizePair(textA, textB, config)
	if err != nil {
		return 0, 0, err
	}
	if config.RespectPositions {
		intersection, union := PositionalComponents(a, b)
		return intersection, union, nil
	}
	if !config.CountDuplicates {
		intersection, union := SetComponents(a.Distinct(), b.Distinct())
		return intersection, union, nil
	}
	intersection, union := Components(a, b)
	return intersection, union, nil
}

// TextIndex is the Jaccard index for two raw texts under config.
func TextIndex(textA, textB string, config Config) (float64, error) {
	intersection, union, err := TextComponents(textA, textB, config)
	if err != nil {
		return 0, err
	}
	return similarity(intersection, union), nil
}

// TextDistance is 1 - TextIndex.
func TextDistance(textA, textB string, config Config) (float64, error) {
	index, err := TextIndex(textA, textB, config)
	if err != nil {
		return 0, err
	}
	return 1.0 - index, nil
}

func tokenizePair(textA, textB string, config Config) (TokenStream, TokenStream, error) {
	analyzer, err := NewAnalyzer(config)
	if err != nil {
		return TokenStream{}, TokenStream{}, err
	}
	return analyzer.Analyze(textA), analyzer.Analyze(textB), nil
}
