package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	checkindomain "github.com/wellbeamhq/pulse/internal/checkin/domain"
	"github.com/wellbeamhq/pulse/internal/observability/logger"
	"github.com/wellbeamhq/pulse/internal/sentiment"
	"go.uber.org/zap"
)

type submitCheckInRequest struct {
	EmployeeID string `json:"employeeId"`
	MoodScore  *int   `json:"moodScore"`
	Notes      string `json:"notes"`
	Channel    string `json:"channel"`

	SentimentResult *sentimentResultPayload `json:"sentimentResult"`
}

type sentimentResultPayload struct {
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
	Emotion   string  `json:"emotion"`
}

func (s *Server) SubmitCheckIn(c *gin.Context) {
	var req submitCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	ctx := c.Request.Context()
	employeeID := strings.TrimSpace(req.EmployeeID)

	if s.checkinLimiter.Enabled() && employeeID != "" {
		allowed, err := s.checkinLimiter.AllowEmployee(ctx, employeeID)
		if err != nil {
			logger.FromContext(ctx).Warn("check-in rate limit check failed", zap.Error(err))
			AbortWithError(c, ErrServiceUnavailable)
			return
		}
		if !allowed {
			AbortWithError(c, ErrTooManyRequests)
			return
		}
	}

	moodScore := 0
	if req.MoodScore != nil {
		moodScore = *req.MoodScore
	}

	var precomputed *sentiment.Result
	if req.SentimentResult != nil {
		precomputed = &sentiment.Result{
			Sentiment: sentiment.Label(strings.ToUpper(strings.TrimSpace(req.SentimentResult.Sentiment))),
			Score:     req.SentimentResult.Score,
			Emotion:   req.SentimentResult.Emotion,
		}
	}

	resp, err := s.checkinSvc.Record(ctx, checkindomain.RecordCheckInRequest{
		EmployeeID: employeeID,
		MoodScore:  moodScore,
		NoteText:   req.Notes,
		Channel:    strings.TrimSpace(req.Channel),
		Sentiment:  precomputed,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"riskLevel":      resp.RiskLevel,
		"recommendation": resp.Recommendation,
	})
}
