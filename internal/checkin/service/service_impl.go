package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/wellbeamhq/pulse/internal/checkin/domain"
	"github.com/wellbeamhq/pulse/internal/clock"
	"github.com/wellbeamhq/pulse/internal/config"
	obsmetrics "github.com/wellbeamhq/pulse/internal/observability/metrics"
	"github.com/wellbeamhq/pulse/internal/risk"
	"github.com/wellbeamhq/pulse/internal/sentiment"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultChannel = "API"

const modelSourceCaller = "caller-provided"

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Repo       domain.Repository
	Classifier sentiment.Classifier
	Clock      clock.Clock
	Wellbeing  *config.WellbeingConfigHolder
	Metrics    *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	repo       domain.Repository
	classifier sentiment.Classifier
	clock      clock.Clock
	wellbeing  *config.WellbeingConfigHolder
	metrics    *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("checkin.service"),
		genID:      p.GenID,
		repo:       p.Repo,
		classifier: p.Classifier,
		clock:      p.Clock,
		wellbeing:  p.Wellbeing,
		metrics:    p.Metrics,
	}
}

// Record validates the submission, classifies it and stores the check-in row
// followed by its analysis row. The analysis write is best-effort: a failure
// after the check-in row exists is logged and counted but the submission
// still succeeds.
func (s *Service) Record(ctx context.Context, req domain.RecordCheckInRequest) (domain.RecordCheckInResponse, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		return domain.RecordCheckInResponse{}, domain.ErrInvalidEmployee
	}
	if req.MoodScore < 1 || req.MoodScore > 5 {
		return domain.RecordCheckInResponse{}, domain.ErrInvalidMoodScore
	}

	sent := req.Sentiment
	source := modelSourceCaller
	if sent == nil {
		result := s.classifier.Classify(req.NoteText)
		sent = &result
		source = s.classifier.Source()
		s.metrics.RecordClassifierRun(ctx, source, string(result.Sentiment))
	}

	assessment := risk.Assess(req.MoodScore, sent, s.wellbeing.Get().Recommendations)

	channel := strings.TrimSpace(req.Channel)
	if channel == "" {
		channel = defaultChannel
	}

	now := s.clock.Now().UTC()
	checkIn := domain.CheckIn{
		ID:         s.genID.Generate(),
		EmployeeID: employeeID,
		MoodScore:  req.MoodScore,
		NoteText:   req.NoteText,
		Channel:    channel,
		CreatedAt:  now,
	}

	if err := s.repo.InsertCheckIn(ctx, s.db, &checkIn); err != nil {
		return domain.RecordCheckInResponse{}, fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}

	label := string(sent.Sentiment)
	analysis := domain.Analysis{
		ID:             s.genID.Generate(),
		CheckinID:      checkIn.ID,
		Sentiment:      &label,
		SentimentScore: &sent.Score,
		Emotion:        &sent.Emotion,
		RiskLevel:      assessment.Level,
		Recommendation: assessment.Recommendation,
		ModelSource:    source,
		CreatedAt:      now,
	}

	if err := s.repo.InsertAnalysis(ctx, s.db, &analysis); err != nil {
		// The check-in row is already durable; do not fail the submission
		// over the derived record.
		s.log.Warn("analysis write failed after check-in was stored",
			zap.Error(err),
			zap.String("employee_id", employeeID),
			zap.String("checkin_id", checkIn.ID.String()),
		)
		s.metrics.RecordAnalysisWriteFailure(ctx)
	}

	s.metrics.RecordCheckin(ctx, string(assessment.Level))

	return domain.RecordCheckInResponse{
		RiskLevel:      assessment.Level,
		Recommendation: assessment.Recommendation,
	}, nil
}
