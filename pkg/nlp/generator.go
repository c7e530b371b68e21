package nlp

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultKeywordLimit = 3
	keywordPrefix       = "관련 키워드: "
)

type GeneratorOption func(*Generator) error

type Generator struct {
	classifier   IClassifier
	templates    TemplateSet
	extractor    KeywordExtractor
	keywordLimit int
	log          *logrus.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGenerator(options ...GeneratorOption) (*Generator, error) {
	g := &Generator{
		classifier:   NewClassifier(),
		templates:    DefaultTemplates(),
		extractor:    NewNaiveExtractor(),
		keywordLimit: defaultKeywordLimit,
		log:          logrus.StandardLogger(),
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, option := range options {
		if err := option(g); err != nil {
			return nil, fmt.Errorf("failed to apply generator option: %w", err)
		}
	}

	if err := g.templates.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

func WithClassifier(classifier IClassifier) GeneratorOption {
	return func(g *Generator) error {
		if classifier == nil {
			return fmt.Errorf("classifier is required")
		}
		g.classifier = classifier
		return nil
	}
}

func WithTemplates(templates TemplateSet) GeneratorOption {
	return func(g *Generator) error {
		if err := templates.Validate(); err != nil {
			return err
		}
		g.templates = templates
		return nil
	}
}

func WithKeywordExtractor(extractor KeywordExtractor) GeneratorOption {
	return func(g *Generator) error {
		if extractor == nil {
			return fmt.Errorf("keyword extractor is required")
		}
		g.extractor = extractor
		return nil
	}
}

// WithRandSource makes template selection reproducible.
func WithRandSource(src rand.Source) GeneratorOption {
	return func(g *Generator) error {
		if src == nil {
			return fmt.Errorf("rand source is required")
		}
		g.rnd = rand.New(src)
		return nil
	}
}

func WithGeneratorLogger(logger *logrus.Logger) GeneratorOption {
	return func(g *Generator) error {
		g.log = logger
		return nil
	}
}

func (g *Generator) Templates() TemplateSet {
	return g.templates
}

func (g *Generator) ExtractorName() string {
	return g.extractor.Name()
}

// Generate never fails: extraction errors and panics fall back to an unknown-intent template.
func (g *Generator) Generate(text string) (reply Reply) {
	defer func() {
		if r := recover(); r != nil {
			g.log.WithFields(logrus.Fields{
				"error": fmt.Sprint(r),
			}).Error("Error generating response")
			reply = g.fallback()
		}
	}()

	intent := g.classifier.Classify(text)
	reply = Reply{
		Intent: intent,
		Text:   g.pick(intent),
	}

	if intent != IntentQuestion {
		return reply
	}

	keywords, err := g.extractor.Extract(text, g.keywordLimit)
	if err != nil {
		g.log.WithFields(logrus.Fields{
			"extractor": g.extractor.Name(),
			"error":     err.Error(),
		}).Error("Error generating response")
		return g.fallback()
	}

	if len(keywords) > 0 {
		reply.Keywords = keywords
		reply.Text += "\n" + keywordPrefix + strings.Join(keywords, ", ")
	}

	return reply
}

func (g *Generator) fallback() Reply {
	return Reply{
		Intent: IntentUnknown,
		Text:   g.pick(IntentUnknown),
	}
}

func (g *Generator) pick(intent Intent) string {
	templates := g.templates[intent]

	g.mu.Lock()
	defer g.mu.Unlock()

	return templates[g.rnd.Intn(len(templates))]
}
