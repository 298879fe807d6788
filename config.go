package jaccard

import "fmt"

// Mode selects how a text is split into tokens.
type Mode string

const (
	Char Mode = "char"
	Word Mode = "word"
)

// InvalidConfigurationError reports an option combination rejected at
// construction time. Numeric edge cases (empty inputs, zero union) are
// handled by conventions, never by errors, so this is the only error the
// library produces.
type InvalidConfigurationError struct {
	Reason string
}

func (e InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// Config is an immutable record of tokenization and scoring options. The zero
// value is not meaningful: build one with NewConfig so defaults and validation
// apply.
type Config struct {
	Mode             Mode
	Lowercase        bool
	KeepWhitespace   bool // char mode only
	StripPunctuation bool
	StopWords        []string // merged with the built-in list unless disabled
	DefaultStopWords bool
	NormalizePlural  bool              // word mode only, naive trailing-s truncation
	Synonyms         map[string]string // overlays the built-in map, caller wins
	DefaultSynonyms  bool
	NgramSize        int
	RespectPositions bool
	CountDuplicates  bool
}

type ConfigOption func(*Config)

func WithMode(mode Mode) ConfigOption {
	return func(c *Config) {
		c.Mode = mode
	}
}

func WithLowercase(enabled bool) ConfigOption {
	return func(c *Config) {
		c.Lowercase = enabled
	}
}

func WithKeepWhitespace(enabled bool) ConfigOption {
	return func(c *Config) {
		c.KeepWhitespace = enabled
	}
}

func WithStripPunctuation(enabled bool) ConfigOption {
	return func(c *Config) {
		c.StripPunctuation = enabled
	}
}

func WithStopWords(words ...string) ConfigOption {
	return func(c *Config) {
		c.StopWords = words
	}
}

func WithDefaultStopWords(enabled bool) ConfigOption {
	return func(c *Config) {
		c.DefaultStopWords = enabled
	}
}

func WithNormalizePlural(enabled bool) ConfigOption {
	return func(c *Config) {
		c.NormalizePlural = enabled
	}
}

func WithSynonyms(synonyms map[string]string) ConfigOption {
	return func(c *Config) {
		c.Synonyms = synonyms
	}
}

func WithDefaultSynonyms(enabled bool) ConfigOption {
	return func(c *Config) {
		c.DefaultSynonyms = enabled
	}
}

func WithNgramSize(n int) ConfigOption {
	return func(c *Config) {
		c.NgramSize = n
	}
}

func WithRespectPositions(enabled bool) ConfigOption {
	return func(c *Config) {
		c.RespectPositions = enabled
	}
}

func WithCountDuplicates(enabled bool) ConfigOption {
	return func(c *Config) {
		c.CountDuplicates = enabled
	}
}

// NewConfig builds a Config from explicit defaults plus the given options and
// validates the combination. Validation fails fast: a rejected Config never
// reaches tokenization.
func NewConfig(options ...ConfigOption) (Config, error) {
	config := Config{
		Mode:             Char,
		Lowercase:        true,
		KeepWhitespace:   false,
		StripPunctuation: false,
		DefaultStopWords: true,
		NormalizePlural:  false,
		DefaultSynonyms:  true,
		NgramSize:        1,
		RespectPositions: false,
		CountDuplicates:  true,
	}
	for _, option := range options {
		option(&config)
	}

	if config.Mode != Char && config.Mode != Word {
		return Config{}, InvalidConfigurationError{Reason: fmt.Sprintf("mode must be %q or %q, got %q", Char, Word, config.Mode)}
	}
	if config.NgramSize < 1 {
		return Config{}, InvalidConfigurationError{Reason: fmt.Sprintf("ngram size must be >= 1, got %d", config.NgramSize)}
	}
	// Positional scoring aligns raw positions; collapsing to a set would
	// destroy them. The two switches are mutually exclusive.
	if config.RespectPositions && !config.CountDuplicates {
		return Config{}, InvalidConfigurationError{Reason: "respect positions and collapsed duplicates are mutually exclusive"}
	}
	return config, nil
}

// effectiveStopWords merges the built-in list with the caller's words.
func (c Config) effectiveStopWords() map[string]struct{} {
	stopWords := make(map[string]struct{}, len(defaultStopWords)+len(c.StopWords))
	if c.DefaultStopWords {
		for _, w := range defaultStopWords {
			stopWords[w] = struct{}{}
		}
	}
	for _, w := range c.StopWords {
		stopWords[w] = struct{}{}
	}
	return stopWords
}

// effectiveSynonyms overlays caller entries on the built-in map; on conflict
// the caller's entry wins.
func (c Config) effectiveSynonyms() map[string]string {
	synonyms := make(map[string]string, len(defaultSynonyms)+len(c.Synonyms))
	if c.DefaultSynonyms {
		for from, to := range defaultSynonyms {
			synonyms[from] = to
		}
	}
	for from, to := range c.Synonyms {
		synonyms[from] = to
	}
	return synonyms
}
