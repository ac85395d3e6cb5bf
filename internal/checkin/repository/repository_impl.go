package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/wellbeamhq/pulse/internal/checkin/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertCheckIn(ctx context.Context, db *gorm.DB, checkIn *domain.CheckIn) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO check_ins (id, employee_id, mood_score, note_text, channel, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		checkIn.ID,
		checkIn.EmployeeID,
		checkIn.MoodScore,
		checkIn.NoteText,
		checkIn.Channel,
		checkIn.CreatedAt,
	).Error
}

func (r *repo) InsertAnalysis(ctx context.Context, db *gorm.DB, analysis *domain.Analysis) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO analyses (id, checkin_id, sentiment, sentiment_score, emotion, risk_level, recommendation, model_source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		analysis.ID,
		analysis.CheckinID,
		analysis.Sentiment,
		analysis.SentimentScore,
		analysis.Emotion,
		analysis.RiskLevel,
		analysis.Recommendation,
		analysis.ModelSource,
		analysis.CreatedAt,
	).Error
}

func (r *repo) RecentByEmployee(ctx context.Context, db *gorm.DB, employeeID string, limit int) ([]domain.CheckInWithAnalysis, error) {
	var checkIns []domain.CheckIn
	err := db.WithContext(ctx).
		Model(&domain.CheckIn{}).
		Where("employee_id = ?", employeeID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	if len(checkIns) == 0 {
		return nil, nil
	}

	ids := make([]snowflake.ID, 0, len(checkIns))
	for _, checkIn := range checkIns {
		ids = append(ids, checkIn.ID)
	}

	var analyses []domain.Analysis
	err = db.WithContext(ctx).
		Model(&domain.Analysis{}).
		Where("checkin_id IN ?", ids).
		Find(&analyses).Error
	if err != nil {
		return nil, err
	}

	byCheckin := make(map[snowflake.ID]*domain.Analysis, len(analyses))
	for i := range analyses {
		byCheckin[analyses[i].CheckinID] = &analyses[i]
	}

	out := make([]domain.CheckInWithAnalysis, 0, len(checkIns))
	for _, checkIn := range checkIns {
		out = append(out, domain.CheckInWithAnalysis{
			CheckIn:  checkIn,
			Analysis: byCheckin[checkIn.ID],
		})
	}
	return out, nil
}

func (r *repo) CheckInsInWindow(ctx context.Context, db *gorm.DB, start, end time.Time) ([]domain.CheckIn, error) {
	var checkIns []domain.CheckIn
	err := db.WithContext(ctx).
		Model(&domain.CheckIn{}).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *repo) AnalysesInWindow(ctx context.Context, db *gorm.DB, start, end time.Time, joinDepartment bool) ([]domain.AnalysisRow, error) {
	var rows []domain.AnalysisRow
	var err error
	if joinDepartment {
		err = db.WithContext(ctx).Raw(
			`SELECT a.checkin_id AS checkin_id, a.risk_level AS risk_level, COALESCE(e.department, '') AS department
			 FROM analyses a
			 JOIN check_ins c ON c.id = a.checkin_id
			 LEFT JOIN employees e ON e.id = c.employee_id
			 WHERE c.created_at >= ? AND c.created_at <= ?`,
			start,
			end,
		).Scan(&rows).Error
	} else {
		err = db.WithContext(ctx).Raw(
			`SELECT a.checkin_id AS checkin_id, a.risk_level AS risk_level, '' AS department
			 FROM analyses a
			 JOIN check_ins c ON c.id = a.checkin_id
			 WHERE c.created_at >= ? AND c.created_at <= ?`,
			start,
			end,
		).Scan(&rows).Error
	}
	if err != nil {
		return nil, err
	}
	return rows, nil
}
