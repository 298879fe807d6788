package jaccard

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewConfigDefaults(t *testing.T) {
	got, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	want := Config{
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
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff: (-want +got)\n%s", diff)
	}
}

func TestNewConfigRejectsInvalidCombinations(t *testing.T) {
	tests := []struct {
		name    string
		options []ConfigOption
	}{
		{
			name:    "unknown mode",
			options: []ConfigOption{WithMode("sentence")},
		},
		{
			name:    "ngram size below one",
			options: []ConfigOption{WithNgramSize(0)},
		},
		{
			name:    "positions with collapsed duplicates",
			options: []ConfigOption{WithRespectPositions(true), WithCountDuplicates(false)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.options...)
			var invalid InvalidConfigurationError
			if !errors.As(err, &invalid) {
				t.Errorf("NewConfig() error = %v, want InvalidConfigurationError", err)
			}
		})
	}
}

func TestConfigEffectiveStopWords(t *testing.T) {
	tests := []struct {
		options  []ConfigOption
		contains []string
		excludes []string
	}{
		{
			options:  nil,
			contains: []string{"le", "the"},
		},
		{
			options:  []ConfigOption{WithStopWords("rapide")},
			contains: []string{"le", "rapide"},
		},
		{
			options:  []ConfigOption{WithDefaultStopWords(false), WithStopWords("rapide")},
			contains: []string{"rapide"},
			excludes: []string{"le", "the"},
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("contains = %v, excludes = %v", tt.contains, tt.excludes), func(t *testing.T) {
			config := mustConfig(t, tt.options...)
			stopWords := config.effectiveStopWords()
			for _, w := range tt.contains {
				if _, ok := stopWords[w]; !ok {
					t.Errorf("effectiveStopWords() missing %q", w)
				}
			}
			for _, w := range tt.excludes {
				if _, ok := stopWords[w]; ok {
					t.Errorf("effectiveStopWords() unexpectedly contains %q", w)
				}
			}
		})
	}
}

func TestConfigEffectiveSynonyms(t *testing.T) {
	config := mustConfig(t, WithSynonyms(map[string]string{"voiture": "caisse", "chien": "canin"}))
	synonyms := config.effectiveSynonyms()
	// Caller entries win over the built-in map.
	if got := synonyms["voiture"]; got != "caisse" {
		t.Errorf("effectiveSynonyms()[voiture] = %v, want caisse", got)
	}
	if got := synonyms["chien"]; got != "canin" {
		t.Errorf("effectiveSynonyms()[chien] = %v, want canin", got)
	}
	if got := synonyms["auto"]; got != "automobile" {
		t.Errorf("effectiveSynonyms()[auto] = %v, want automobile", got)
	}
}
