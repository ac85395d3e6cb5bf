package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/wellbeamhq/pulse/internal/risk"
)

// CheckIn is one employee's mood submission. Immutable once written.
type CheckIn struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	EmployeeID string       `gorm:"not null;index:idx_check_ins_employee_created,priority:1" json:"employeeId"`
	MoodScore  int          `gorm:"not null" json:"moodScore"`
	NoteText   string       `gorm:"not null;default:''" json:"noteText,omitempty"`
	Channel    string       `gorm:"not null;default:'API'" json:"channel"`
	CreatedAt  time.Time    `gorm:"not null;index:idx_check_ins_employee_created,priority:2" json:"createdAt"`
}

func (CheckIn) TableName() string {
	return "check_ins"
}

// Analysis is the derived record attached one-to-one to a check-in. The
// sentiment columns are nullable; the risk classification always exists.
type Analysis struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	CheckinID      snowflake.ID `gorm:"not null;uniqueIndex" json:"checkinId"`
	Sentiment      *string      `json:"sentiment,omitempty"`
	SentimentScore *float64     `json:"sentimentScore,omitempty"`
	Emotion        *string      `json:"emotion,omitempty"`
	RiskLevel      risk.Level   `gorm:"not null;index" json:"riskLevel"`
	Recommendation string       `gorm:"not null;default:''" json:"recommendation"`
	ModelSource    string       `gorm:"not null;default:''" json:"modelSource"`
	CreatedAt      time.Time    `gorm:"not null" json:"createdAt"`
}

func (Analysis) TableName() string {
	return "analyses"
}
