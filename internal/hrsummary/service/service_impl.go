package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	checkindomain "github.com/wellbeamhq/pulse/internal/checkin/domain"
	"github.com/wellbeamhq/pulse/internal/clock"
	"github.com/wellbeamhq/pulse/internal/config"
	"github.com/wellbeamhq/pulse/internal/hrsummary/domain"
	"github.com/wellbeamhq/pulse/internal/risk"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Repo      checkindomain.Repository
	Clock     clock.Clock
	Wellbeing *config.WellbeingConfigHolder
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	repo      checkindomain.Repository
	clock     clock.Clock
	wellbeing *config.WellbeingConfigHolder
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("hrsummary.service"),
		repo:      p.Repo,
		clock:     p.Clock,
		wellbeing: p.Wellbeing,
	}
}

// Summary computes the organization-wide view from three independent
// queries: today's check-in count, today's HIGH-risk analysis count, and the
// per-department risk breakdown over the last seven days. Any query failing
// aborts the whole summary.
func (s *Service) Summary(ctx context.Context) (domain.OrgSummaryResponse, error) {
	now := s.clock.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := now.Add(-7 * 24 * time.Hour)

	todayCheckIns, err := s.repo.CheckInsInWindow(ctx, s.db, dayStart, now)
	if err != nil {
		return domain.OrgSummaryResponse{}, fmt.Errorf("%w: %v", checkindomain.ErrStoreRead, err)
	}

	todayAnalyses, err := s.repo.AnalysesInWindow(ctx, s.db, dayStart, now, false)
	if err != nil {
		return domain.OrgSummaryResponse{}, fmt.Errorf("%w: %v", checkindomain.ErrStoreRead, err)
	}

	weekAnalyses, err := s.repo.AnalysesInWindow(ctx, s.db, weekStart, now, true)
	if err != nil {
		return domain.OrgSummaryResponse{}, fmt.Errorf("%w: %v", checkindomain.ErrStoreRead, err)
	}

	highToday := 0
	for _, row := range todayAnalyses {
		if row.RiskLevel == risk.LevelHigh {
			highToday++
		}
	}

	unknownLabel := s.wellbeing.Get().UnknownDepartment
	perDepartment := make(map[string]domain.RiskBreakdown)
	for _, row := range weekAnalyses {
		department := strings.TrimSpace(row.Department)
		if department == "" {
			department = unknownLabel
		}

		breakdown := perDepartment[department]
		switch row.RiskLevel {
		case risk.LevelHigh:
			breakdown.High++
		case risk.LevelMedium:
			breakdown.Medium++
		default:
			breakdown.Low++
		}
		perDepartment[department] = breakdown
	}

	return domain.OrgSummaryResponse{
		EmployeesAtHighRiskToday: highToday,
		TotalCheckinsToday:       len(todayCheckIns),
		PerDepartment:            perDepartment,
	}, nil
}
