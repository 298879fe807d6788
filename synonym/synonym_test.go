package synonym

import (
	"fmt"
	"reflect"
	"testing"

	gomock "github.com/golang/mock/gomock"
)

func TestBuildMap(t *testing.T) {
	cases := []struct {
		words       []string
		lemmas      map[string][]string
		maxSynonyms int
		want        map[string]string
	}{
		{
			words:       []string{"dog"},
			lemmas:      map[string][]string{"dog": {"Canine", "Hound", "Pooch"}},
			maxSynonyms: 5,
			want:        map[string]string{"dog": "canine", "hound": "canine", "pooch": "canine"},
		},
		{
			// maxSynonyms caps how many extra lemmas point at the canonical form.
			words:       []string{"dog"},
			lemmas:      map[string][]string{"dog": {"canine", "hound", "pooch"}},
			maxSynonyms: 2,
			want:        map[string]string{"dog": "canine", "hound": "canine"},
		},
		{
			// Unknown words are skipped.
			words:       []string{"dog", "xyzzy"},
			lemmas:      map[string][]string{"dog": {"canine"}, "xyzzy": nil},
			maxSynonyms: 5,
			want:        map[string]string{"dog": "canine"},
		},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("words = %v, maxSynonyms = %v", tt.words, tt.maxSynonyms), func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()
			mockLexicon := NewMockLexicon(mockCtrl)
			for _, word := range tt.words {
				mockLexicon.EXPECT().Lemmas(word).Return(tt.lemmas[word])
			}

			if got := BuildMap(mockLexicon, tt.words, tt.maxSynonyms); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildMap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStaticLexicon_Lemmas(t *testing.T) {
	lexicon := NewStaticLexicon(map[string][]string{
		"voiture": {"automobile", "auto"},
	})
	if got := lexicon.Lemmas("voiture"); !reflect.DeepEqual(got, []string{"automobile", "auto"}) {
		t.Errorf("StaticLexicon.Lemmas() = %v", got)
	}
	if got := lexicon.Lemmas("inconnu"); got != nil {
		t.Errorf("StaticLexicon.Lemmas() = %v, want nil", got)
	}
}
