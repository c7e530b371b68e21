package nlp

type Intent string

const (
	IntentGreeting Intent = "greeting"
	IntentQuestion Intent = "question"
	IntentUnknown  Intent = "unknown"
)

// Intents lists every intent a TemplateSet must cover.
var Intents = []Intent{IntentGreeting, IntentQuestion, IntentUnknown}

func (i Intent) String() string {
	return string(i)
}

// Reply is the outcome of a single Generate call.
type Reply struct {
	Intent   Intent   `json:"intent"`
	Text     string   `json:"text"`
	Keywords []string `json:"keywords,omitempty"`
}

type IClassifier interface {
	Classify(text string) Intent
}

// KeywordExtractor picks at most limit keywords out of a user message.
type KeywordExtractor interface {
	Extract(text string, limit int) ([]string, error)
	Name() string
}

type IGenerator interface {
	Generate(text string) Reply
}
