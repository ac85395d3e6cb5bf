package risk

import (
	"github.com/wellbeamhq/pulse/internal/config"
	"github.com/wellbeamhq/pulse/internal/sentiment"
)

type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

type Assessment struct {
	Level          Level
	Recommendation string
}

// Assess maps a mood score and an optional sentiment result to a risk level.
// Branches are evaluated in order; a low mood OR a negative sentiment is
// enough for HIGH. moodScore is assumed pre-validated by the caller.
func Assess(moodScore int, sent *sentiment.Result, msgs config.RecommendationMessages) Assessment {
	if moodScore <= 2 || (sent != nil && sent.Sentiment == sentiment.LabelNegative) {
		return Assessment{Level: LevelHigh, Recommendation: msgs.High}
	}
	if moodScore == 3 {
		return Assessment{Level: LevelMedium, Recommendation: msgs.Medium}
	}
	return Assessment{Level: LevelLow, Recommendation: msgs.Low}
}
