package sentiment

import (
	"github.com/wellbeamhq/pulse/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("sentiment",
	fx.Provide(NewClassifier),
)

// NewClassifier selects the engine from configuration. Keyword matching is
// the default; VADER is opt-in.
func NewClassifier(cfg config.Config, wellbeing *config.WellbeingConfigHolder, log *zap.Logger) Classifier {
	switch cfg.SentimentEngine {
	case "vader":
		log.Info("sentiment classifier selected", zap.String("engine", "vader"))
		return NewVaderClassifier()
	default:
		log.Info("sentiment classifier selected", zap.String("engine", "keyword"))
		return NewKeywordClassifier(wellbeing)
	}
}
