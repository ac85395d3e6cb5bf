package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/wellbeamhq/pulse/internal/risk"
	"gorm.io/gorm"
)

// CheckInWithAnalysis pairs a check-in with its analysis, if one was stored.
type CheckInWithAnalysis struct {
	CheckIn  CheckIn
	Analysis *Analysis
}

// AnalysisRow is the flat projection the HR aggregation reads: one analysis
// in a window, with the owning employee's department when joined. Department
// is empty when not joined or not resolvable.
type AnalysisRow struct {
	CheckinID  snowflake.ID `gorm:"column:checkin_id"`
	RiskLevel  risk.Level   `gorm:"column:risk_level"`
	Department string       `gorm:"column:department"`
}

// Repository is the record store behind the whole pipeline. Window bounds
// are keyed on the owning check-in's created_at, bounds inclusive.
type Repository interface {
	InsertCheckIn(ctx context.Context, db *gorm.DB, checkIn *CheckIn) error
	InsertAnalysis(ctx context.Context, db *gorm.DB, analysis *Analysis) error
	RecentByEmployee(ctx context.Context, db *gorm.DB, employeeID string, limit int) ([]CheckInWithAnalysis, error)
	CheckInsInWindow(ctx context.Context, db *gorm.DB, start, end time.Time) ([]CheckIn, error)
	AnalysesInWindow(ctx context.Context, db *gorm.DB, start, end time.Time, joinDepartment bool) ([]AnalysisRow, error)
}
