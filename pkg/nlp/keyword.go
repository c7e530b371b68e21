package nlp

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	StrategyNaive = "naive"
	StrategyTFIDF = "tfidf"
)

func NewKeywordExtractor(strategy string) (KeywordExtractor, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyNaive:
		return NewNaiveExtractor(), nil
	case StrategyTFIDF:
		return NewTFIDFExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown keyword strategy %q", strategy)
	}
}

// NaiveExtractor returns the first whitespace-separated words longer than one character.
type NaiveExtractor struct{}

func NewNaiveExtractor() *NaiveExtractor {
	return &NaiveExtractor{}
}

func (e *NaiveExtractor) Name() string {
	return StrategyNaive
}

func (e *NaiveExtractor) Extract(text string, limit int) ([]string, error) {
	var keywords []string
	for _, word := range strings.Fields(text) {
		if len(keywords) >= limit {
			break
		}
		if utf8.RuneCountInString(word) > 1 {
			keywords = append(keywords, word)
		}
	}
	return keywords, nil
}

// TFIDFExtractor ranks lemmas of the message by a TF-IDF score fitted on the
// message alone. With a single document every idf is 1, so the ranking reduces
// to normalized term frequency with ties broken by term order.
type TFIDFExtractor struct{}

func NewTFIDFExtractor() *TFIDFExtractor {
	return &TFIDFExtractor{}
}

func (e *TFIDFExtractor) Name() string {
	return StrategyTFIDF
}

type TermScore struct {
	Term  string
	Score float64
}

func (e *TFIDFExtractor) Extract(text string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	scores := ScoreTerms(e.process(text))
	if len(scores) > limit {
		scores = scores[:limit]
	}

	keywords := make([]string, 0, len(scores))
	for _, s := range scores {
		keywords = append(keywords, s.Term)
	}
	return keywords, nil
}

// process runs tokenize, tag and lemmatize and returns the lemmas that are still
// long enough to count as terms.
func (e *TFIDFExtractor) process(text string) []string {
	tagged := TagTokens(Tokenize(text))
	terms := make([]string, 0, len(tagged))
	for _, token := range tagged {
		if utf8.RuneCountInString(token.Lemma) >= minTokenRunes {
			terms = append(terms, token.Lemma)
		}
	}
	return terms
}

// ScoreTerms fits a smoothed TF-IDF model on the single document made of terms
// and returns the L2-normalized scores, highest first.
func ScoreTerms(terms []string) []TermScore {
	if len(terms) == 0 {
		return nil
	}

	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		counts[term]++
	}

	const documents, documentFrequency = 1.0, 1.0
	idf := math.Log((1+documents)/(1+documentFrequency)) + 1

	scores := make([]TermScore, 0, len(counts))
	var norm float64
	for term, count := range counts {
		weight := float64(count) * idf
		norm += weight * weight
		scores = append(scores, TermScore{Term: term, Score: weight})
	}

	norm = math.Sqrt(norm)
	for i := range scores {
		scores[i].Score /= norm
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Term < scores[j].Term
	})

	return scores
}
