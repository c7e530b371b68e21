package nlp

import "strings"

type Classifier struct {
	greetingKeywords []string
	questionKeywords []string
}

func NewClassifier() *Classifier {
	return &Classifier{
		greetingKeywords: []string{"안녕", "하이", "반가워", "hello", "hi"},
		questionKeywords: []string{"뭐", "무엇", "어떻게", "왜", "어떤", "언제", "누구", "어디", "?", "까"},
	}
}

// Classify matches keywords as plain substrings of the lowercased text.
// Greetings win over questions when both appear.
func (c *Classifier) Classify(text string) Intent {
	text = strings.ToLower(text)

	if containsAny(text, c.greetingKeywords) {
		return IntentGreeting
	}

	if containsAny(text, c.questionKeywords) {
		return IntentQuestion
	}

	return IntentUnknown
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
