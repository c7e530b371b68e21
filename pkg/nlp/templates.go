package nlp

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrMissingTemplates = errors.New("template set is missing an intent")

// TemplateSet maps every intent to its canned responses. It is read-only once built.
type TemplateSet map[Intent][]string

func DefaultTemplates() TemplateSet {
	return TemplateSet{
		IntentGreeting: {
			"안녕하세요! 무엇을 도와드릴까요?",
			"반갑습니다! 오늘은 어떤 이야기를 나눠볼까요?",
			"안녕하세요! 좋은 하루 보내고 계신가요?",
		},
		IntentQuestion: {
			"좋은 질문이네요. 제가 아는 범위에서 답변해 드릴게요.",
			"흥미로운 질문입니다. 조금 더 자세히 알려주시겠어요?",
			"그 부분에 대해 함께 알아볼까요?",
		},
		IntentUnknown: {
			"죄송합니다. 잘 이해하지 못했어요. 다시 말씀해 주시겠어요?",
			"조금 더 구체적으로 말씀해 주시겠어요?",
			"흥미롭네요! 더 이야기해 주세요.",
		},
	}
}

type templateFile struct {
	Templates map[string][]string `yaml:"templates"`
}

// LoadTemplates reads a YAML document of the form
//
//	templates:
//	  greeting: ["..."]
//	  question: ["..."]
//	  unknown: ["..."]
func LoadTemplates(path string) (TemplateSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}

	return ParseTemplates(raw)
}

func ParseTemplates(raw []byte) (TemplateSet, error) {
	var file templateFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	set := make(TemplateSet, len(file.Templates))
	for intent, templates := range file.Templates {
		set[Intent(intent)] = append([]string(nil), templates...)
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	return set, nil
}

func (t TemplateSet) Validate() error {
	for _, intent := range Intents {
		if len(t[intent]) == 0 {
			return fmt.Errorf("%w: %s", ErrMissingTemplates, intent)
		}
	}
	return nil
}

// Contains reports whether response is one of the templates of intent.
func (t TemplateSet) Contains(intent Intent, response string) bool {
	for _, template := range t[intent] {
		if template == response {
			return true
		}
	}
	return false
}
