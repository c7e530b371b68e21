package nlp

import "strings"

// Lemmatize reduces token to a dictionary-like form depending on its tag.
func Lemmatize(token string, tag Tag) string {
	switch tag {
	case TagNoun:
		if suffix := hasSuffix(token, nounParticles); suffix != "" {
			return strings.TrimSuffix(token, suffix)
		}
	case TagVerb:
		suffix := hasSuffix(token, verbEndings)
		if suffix == "" {
			return token
		}
		stem := strings.TrimSuffix(token, suffix)
		if lemma, ok := verbLemmas[suffix]; ok {
			return stem + lemma
		}
		return stem + "다"
	case TagForeign:
		return lemmatizeEnglish(token)
	}
	return token
}

func lemmatizeEnglish(word string) string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return strings.TrimSuffix(word, "ies") + "y"
	case strings.HasSuffix(word, "sses"):
		return strings.TrimSuffix(word, "es")
	case strings.HasSuffix(word, "ing") && len(word) > 5:
		return strings.TrimSuffix(word, "ing")
	case strings.HasSuffix(word, "ed") && len(word) > 4:
		return strings.TrimSuffix(word, "ed")
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 3:
		return strings.TrimSuffix(word, "s")
	}
	return word
}
