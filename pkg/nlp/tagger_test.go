package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagTokens(t *testing.T) {
	tagged := TagTokens([]string{"날씨가", "어떻게", "먹어요", "공부합니다", "2024", "running"})

	want := []TaggedToken{
		{Text: "날씨가", Tag: TagNoun, Lemma: "날씨"},
		{Text: "어떻게", Tag: TagAdverb, Lemma: "어떻게"},
		{Text: "먹어요", Tag: TagVerb, Lemma: "먹다"},
		{Text: "공부합니다", Tag: TagVerb, Lemma: "공부하다"},
		{Text: "2024", Tag: TagNumber, Lemma: "2024"},
		{Text: "running", Tag: TagForeign, Lemma: "runn"},
	}

	assert.Equal(t, want, tagged)
}

func TestLemmatizeEnglish(t *testing.T) {
	cases := map[string]string{
		"stories": "story",
		"classes": "class",
		"glass":   "glass",
		"walked":  "walk",
		"dogs":    "dog",
		"is":      "is",
	}

	for word, want := range cases {
		assert.Equal(t, want, Lemmatize(word, TagForeign), word)
	}
}

func TestNormalizeAndTokenize(t *testing.T) {
	assert.Equal(t, "cafe 날씨 어때", Normalize("  Café, 날씨 어때?! "))
	assert.Equal(t, []string{"cafe", "날씨", "어때"}, Tokenize("Café, 날씨 어때? 응"))
	assert.Empty(t, Tokenize("?!"))
}
