package sentiment

import (
	"github.com/jonreiter/govader"
)

const vaderSource = "govader-v1"

// VaderClassifier scores text with the VADER lexicon instead of the keyword
// rules. Same result shape, so it is a drop-in engine swap.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (c *VaderClassifier) Source() string {
	return vaderSource
}

func (c *VaderClassifier) Classify(text string) Result {
	if text == "" {
		return Result{Sentiment: LabelNeutral, Score: 0.5, Emotion: EmotionCalm}
	}

	scores := c.analyzer.PolarityScores(text)
	compound := scores.Compound

	// Compound is in [-1,1]; normalize to the [0,1] scale the pipeline uses.
	normalized := (compound + 1) / 2

	switch {
	case compound >= 0.20:
		return Result{Sentiment: LabelPositive, Score: normalized, Emotion: EmotionJoy}
	case compound <= -0.20:
		return Result{Sentiment: LabelNegative, Score: normalized, Emotion: EmotionStress}
	default:
		return Result{Sentiment: LabelNeutral, Score: normalized, Emotion: EmotionCalm}
	}
}
