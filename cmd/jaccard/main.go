package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp"

	"github.com/kotaroooo0/jaccard"
	"github.com/kotaroooo0/jaccard/synonym"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	metricStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func main() {
	mode := flag.String("mode", "char", "tokenization mode: char or word")
	positions := flag.Bool("positions", false, "respect token positions (union = max length)")
	lowercase := flag.Bool("lowercase", true, "fold to lowercase before tokenizing")
	keepWhitespace := flag.Bool("keep-whitespace", false, "keep whitespace tokens in char mode")
	stripPunctuation := flag.Bool("strip-punctuation", false, "remove ASCII punctuation")
	stopWords := flag.String("stopwords", "", "extra stop words, comma separated")
	noDefaultStopWords := flag.Bool("no-default-stopwords", false, "disable the built-in stop word list")
	plural := flag.Bool("plural", false, "normalize naive plurals in word mode")
	synonyms := flag.String("synonyms", "", "synonym entries, word=lemma|lemma..., comma separated")
	noDefaultSynonyms := flag.Bool("no-default-synonyms", false, "disable the built-in synonym map")
	ngram := flag.Int("ngram", 1, "n-gram window size")
	noDuplicates := flag.Bool("no-duplicates", false, "collapse each text to distinct tokens")
	charMap := flag.String("charmap", "", "character rewrites applied before tokenizing, from=to pairs, comma separated")
	interactive := flag.Bool("i", false, "read text pairs from stdin, one text per line")
	flag.Parse()

	options := []jaccard.ConfigOption{
		jaccard.WithMode(jaccard.Mode(*mode)),
		jaccard.WithRespectPositions(*positions),
		jaccard.WithLowercase(*lowercase),
		jaccard.WithKeepWhitespace(*keepWhitespace),
		jaccard.WithStripPunctuation(*stripPunctuation),
		jaccard.WithDefaultStopWords(!*noDefaultStopWords),
		jaccard.WithNormalizePlural(*plural),
		jaccard.WithDefaultSynonyms(!*noDefaultSynonyms),
		jaccard.WithNgramSize(*ngram),
		jaccard.WithCountDuplicates(!*noDuplicates),
	}
	if *stopWords != "" {
		options = append(options, jaccard.WithStopWords(splitList(*stopWords)...))
	}
	if *synonyms != "" {
		options = append(options, jaccard.WithSynonyms(buildSynonymMap(*synonyms)))
	}

	config, err := jaccard.NewConfig(options...)
	if err != nil {
		fatal(err)
	}
	rewrite := newRewriter(*charMap)

	switch {
	case *interactive:
		runInteractive(config, rewrite)
	case flag.NArg() == 2:
		if err := compare(rewrite(flag.Arg(0)), rewrite(flag.Arg(1)), config); err != nil {
			fatal(err)
		}
	default:
		runDemo()
	}
}

// compare renders the full score card for one pair of texts.
func compare(textA, textB string, config jaccard.Config) error {
	tokensA, err := jaccard.Tokenize(textA, config)
	if err != nil {
		return err
	}
	tokensB, err := jaccard.Tokenize(textB, config)
	if err != nil {
		return err
	}
	intersection, union, err := jaccard.TextComponents(textA, textB, config)
	if err != nil {
		return err
	}
	index, err := jaccard.TextIndex(textA, textB, config)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", labelStyle.Render("Texte A:"), textA)
	fmt.Printf("%s %s\n", labelStyle.Render("Texte B:"), textB)
	fmt.Printf("%s ", dimStyle.Render("Tokens A:"))
	pp.Println(tokensA.Terms())
	fmt.Printf("%s ", dimStyle.Render("Tokens B:"))
	pp.Println(tokensB.Terms())
	fmt.Printf("%s %s   %s %s\n",
		labelStyle.Render("Intersection:"), metricStyle.Render(fmt.Sprintf("%d", intersection)),
		labelStyle.Render("Union:"), metricStyle.Render(fmt.Sprintf("%d", union)))
	fmt.Printf("%s %s   %s %s\n",
		labelStyle.Render("Indice:"), metricStyle.Render(fmt.Sprintf("%.3f", index)),
		labelStyle.Render("Distance:"), metricStyle.Render(fmt.Sprintf("%.3f", 1.0-index)))
	return nil
}

// runInteractive reads texts from stdin two lines at a time.
func runInteractive(config jaccard.Config, rewrite func(string) string) {
	fmt.Println(titleStyle.Render("Explorateur d'indice de Jaccard"))
	fmt.Println(dimStyle.Render("Entrez deux textes (un par ligne), ligne vide pour quitter."))
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(labelStyle.Render("A> "))
		if !scanner.Scan() {
			return
		}
		textA := scanner.Text()
		if textA == "" {
			return
		}
		fmt.Print(labelStyle.Render("B> "))
		if !scanner.Scan() {
			return
		}
		textB := scanner.Text()
		if err := compare(rewrite(textA), rewrite(textB), config); err != nil {
			fatal(err)
		}
		fmt.Println()
	}
}

// runDemo replays the course walkthrough with its canonical sentences.
func runDemo() {
	charConfig, err := jaccard.NewConfig()
	if err != nil {
		fatal(err)
	}
	fmt.Println(titleStyle.Render("=== Caractères, ordre libre ==="))
	if err := compare("Je mange", "Je suis une grande", charConfig); err != nil {
		fatal(err)
	}

	positionalConfig, err := jaccard.NewConfig(
		jaccard.WithMode(jaccard.Word),
		jaccard.WithRespectPositions(true),
	)
	if err != nil {
		fatal(err)
	}
	fmt.Println(titleStyle.Render("\n=== Mots, positions alignées ==="))
	if err := compare("banane mangue citron", "banane mangues citron", positionalConfig); err != nil {
		fatal(err)
	}

	normalizedConfig, err := jaccard.NewConfig(
		jaccard.WithMode(jaccard.Word),
		jaccard.WithStripPunctuation(true),
		jaccard.WithNormalizePlural(true),
	)
	if err != nil {
		fatal(err)
	}
	fmt.Println(titleStyle.Render("\n=== Mots, stop-words et synonymes ==="))
	if err := compare("La voiture est plus rapide que l'auto", "Cette automobile est très rapide", normalizedConfig); err != nil {
		fatal(err)
	}
}

// buildSynonymMap turns word=lemma|lemma... entries into a canonical-form map
// through a static lexicon, the same path a WordNet-style resource would use.
func buildSynonymMap(spec string) map[string]string {
	entries := make(map[string][]string)
	var words []string
	for _, pair := range splitList(spec) {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}
		word := strings.TrimSpace(parts[0])
		entries[word] = strings.Split(parts[1], "|")
		words = append(words, word)
	}
	return synonym.BuildMap(synonym.NewStaticLexicon(entries), words, 5)
}

// newRewriter builds the pre-tokenization character rewrite from from=to pairs.
func newRewriter(spec string) func(string) string {
	if spec == "" {
		return func(s string) string { return s }
	}
	mapping := make(map[string]string)
	for _, pair := range splitList(spec) {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}
		mapping[parts[0]] = parts[1]
	}
	filter := jaccard.NewMappingCharFilter(mapping)
	return filter.Filter
}

func splitList(s string) []string {
	var r []string
	for _, e := range strings.Split(s, ",") {
		if e = strings.TrimSpace(e); e != "" {
			r = append(r, e)
		}
	}
	return r
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
