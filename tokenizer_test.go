package jaccard

import (
	"fmt"
	"reflect"
	"testing"
)

func TestCharTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		keepWhitespace bool
		text           string
		want           TokenStream
	}{
		{
			keepWhitespace: false,
			text:           "je mange",
			want:           NewTokenStreamFromTerms([]string{"j", "e", "m", "a", "n", "g", "e"}),
		},
		{
			keepWhitespace: true,
			text:           "je mange",
			want:           NewTokenStreamFromTerms([]string{"j", "e", " ", "m", "a", "n", "g", "e"}),
		},
		{
			keepWhitespace: false,
			text:           "日本 語",
			want:           NewTokenStreamFromTerms([]string{"日", "本", "語"}),
		},
		{
			keepWhitespace: false,
			text:           " \t\n",
			want:           NewTokenStream([]Token{}),
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("keepWhitespace = %v, text = %v", tt.keepWhitespace, tt.text), func(t *testing.T) {
			tr := NewCharTokenizer(tt.keepWhitespace)
			if got := tr.Tokenize(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CharTokenizer.Tokenize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWordTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		text string
		want TokenStream
	}{
		{
			text: "banane mangue citron",
			want: NewTokenStreamFromTerms([]string{"banane", "mangue", "citron"}),
		},
		{
			text: "  espaces \t multiples \n partout  ",
			want: NewTokenStreamFromTerms([]string{"espaces", "multiples", "partout"}),
		},
		{
			text: "",
			want: NewTokenStream([]Token{}),
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("text = %v", tt.text), func(t *testing.T) {
			tr := NewWordTokenizer()
			if got := tr.Tokenize(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WordTokenizer.Tokenize() = %v, want %v", got, tt.want)
			}
		})
	}
}
