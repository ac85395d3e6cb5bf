package sentiment

import (
	"strings"

	"github.com/wellbeamhq/pulse/internal/config"
)

type Label string

const (
	LabelPositive Label = "POSITIVE"
	LabelNegative Label = "NEGATIVE"
	LabelNeutral  Label = "NEUTRAL"
)

const (
	EmotionJoy    = "joy"
	EmotionStress = "stress"
	EmotionCalm   = "calm"
)

// Result is the classifier output consumed by the rest of the pipeline.
// Callers depend on this shape only, never on the matching strategy.
type Result struct {
	Sentiment Label   `json:"sentiment"`
	Score     float64 `json:"score"`
	Emotion   string  `json:"emotion"`
}

// Classifier scores free text. Implementations must be total: any input,
// including the empty string, yields a result.
type Classifier interface {
	Classify(text string) Result
	Source() string
}

const keywordSource = "keyword-match-v1"

// KeywordClassifier is the default rule-based engine: ordered first-match
// against configured keyword sets, positive before negative.
type KeywordClassifier struct {
	wellbeing *config.WellbeingConfigHolder
}

func NewKeywordClassifier(wellbeing *config.WellbeingConfigHolder) *KeywordClassifier {
	return &KeywordClassifier{wellbeing: wellbeing}
}

func (c *KeywordClassifier) Source() string {
	return keywordSource
}

func (c *KeywordClassifier) Classify(text string) Result {
	normalized := strings.ToLower(text)
	cfg := c.wellbeing.Get()

	if containsAny(normalized, cfg.PositiveKeywords) {
		return Result{Sentiment: LabelPositive, Score: 0.9, Emotion: EmotionJoy}
	}
	if containsAny(normalized, cfg.NegativeKeywords) {
		return Result{Sentiment: LabelNegative, Score: 0.2, Emotion: EmotionStress}
	}
	return Result{Sentiment: LabelNeutral, Score: 0.5, Emotion: EmotionCalm}
}

func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
