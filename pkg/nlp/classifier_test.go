package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	classifier := NewClassifier()

	cases := []struct {
		name string
		text string
		want Intent
	}{
		{name: "korean greeting", text: "안녕", want: IntentGreeting},
		{name: "english greeting is case folded", text: "HELLO there", want: IntentGreeting},
		{name: "greeting wins over question", text: "안녕? 뭐야", want: IntentGreeting},
		{name: "greeting keyword as substring", text: "this is fine", want: IntentGreeting},
		{name: "question word", text: "오늘 날씨 어떻게 돼", want: IntentQuestion},
		{name: "question mark only", text: "정말?", want: IntentQuestion},
		{name: "question ending", text: "밥 먹었을까", want: IntentQuestion},
		{name: "plain statement", text: "배고프다", want: IntentUnknown},
		{name: "empty string", text: "", want: IntentUnknown},
		{name: "whitespace", text: "   ", want: IntentUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifier.Classify(tc.text))
		})
	}
}
