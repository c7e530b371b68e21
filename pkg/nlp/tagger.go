package nlp

import (
	"sort"
	"strings"
	"unicode"
)

type Tag string

const (
	TagNoun    Tag = "NOUN"
	TagVerb    Tag = "VERB"
	TagAdverb  Tag = "ADV"
	TagNumber  Tag = "NUM"
	TagForeign Tag = "FOREIGN"
)

type TaggedToken struct {
	Text  string
	Tag   Tag
	Lemma string
}

var adverbs = map[string]bool{
	"어떻게": true, "왜": true, "언제": true, "어디": true, "어디서": true,
	"누구": true, "무엇": true, "얼마나": true, "정말": true, "너무": true,
	"아주": true, "매우": true, "많이": true, "조금": true, "다시": true,
	"빨리": true, "같이": true, "혹시": true, "이미": true, "아직": true,
}

// Ordered longest first so the most specific suffix wins.
var verbEndings = sortedByLength([]string{
	"습니다", "입니다", "합니다", "됩니다", "니다", "니까", "세요", "어요", "아요",
	"해요", "돼요", "나요", "까요", "는데", "어서", "아서", "했다", "한다", "하다",
	"이다", "되다", "다", "요", "죠",
})

var nounParticles = sortedByLength([]string{
	"에서는", "에게서", "으로서", "으로", "에서", "에게", "한테", "까지", "부터",
	"처럼", "보다", "은", "는", "이", "가", "을", "를", "에", "의", "도", "와",
	"과", "로", "만", "랑",
})

var verbLemmas = map[string]string{
	"합니다": "하다",
	"해요":  "하다",
	"했다":  "하다",
	"한다":  "하다",
	"하다":  "하다",
	"됩니다": "되다",
	"돼요":  "되다",
	"되다":  "되다",
	"이다":  "이다",
	"입니다": "이다",
}

func sortedByLength(values []string) []string {
	sorted := append([]string(nil), values...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	return sorted
}

// TagTokens assigns a coarse part of speech to every token and derives its lemma.
func TagTokens(tokens []string) []TaggedToken {
	tagged := make([]TaggedToken, 0, len(tokens))
	for _, token := range tokens {
		tag := tagOf(token)
		tagged = append(tagged, TaggedToken{
			Text:  token,
			Tag:   tag,
			Lemma: Lemmatize(token, tag),
		})
	}
	return tagged
}

func tagOf(token string) Tag {
	switch {
	case isNumber(token):
		return TagNumber
	case isLatin(token):
		return TagForeign
	case adverbs[token]:
		return TagAdverb
	case hasSuffix(token, verbEndings) != "":
		return TagVerb
	default:
		return TagNoun
	}
}

func isNumber(token string) bool {
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isLatin(token string) bool {
	for _, r := range token {
		if unicode.Is(unicode.Latin, r) {
			return true
		}
	}
	return false
}

// hasSuffix returns the first suffix in candidates that token ends with while
// leaving a non-empty stem, or "" when none does.
func hasSuffix(token string, candidates []string) string {
	for _, suffix := range candidates {
		if strings.HasSuffix(token, suffix) && len(token) > len(suffix) {
			return suffix
		}
	}
	return ""
}
