package domain

import (
	"context"
	"errors"

	"github.com/wellbeamhq/pulse/internal/risk"
	"github.com/wellbeamhq/pulse/internal/sentiment"
)

type RecordCheckInRequest struct {
	EmployeeID string
	MoodScore  int
	NoteText   string
	Channel    string

	// Sentiment carries a precomputed classifier result. When set it is
	// trusted as-is and the classifier is not re-run.
	Sentiment *sentiment.Result
}

// RecordCheckInResponse returns only the classification; the stored rows are
// not echoed back to the caller.
type RecordCheckInResponse struct {
	RiskLevel      risk.Level `json:"riskLevel"`
	Recommendation string     `json:"recommendation"`
}

type Service interface {
	Record(context.Context, RecordCheckInRequest) (RecordCheckInResponse, error)
}

var (
	ErrInvalidEmployee  = errors.New("invalid_employee_id")
	ErrInvalidMoodScore = errors.New("invalid_mood_score")
	ErrStoreWrite       = errors.New("store_write_failed")
	ErrStoreRead        = errors.New("store_read_failed")
)
