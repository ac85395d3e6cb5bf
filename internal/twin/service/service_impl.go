package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	checkindomain "github.com/wellbeamhq/pulse/internal/checkin/domain"
	"github.com/wellbeamhq/pulse/internal/config"
	"github.com/wellbeamhq/pulse/internal/twin/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultWindow = 5

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Cfg  config.Config
	Repo checkindomain.Repository
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	repo   checkindomain.Repository
	window int
}

func New(p Params) domain.Service {
	window := p.Cfg.TwinWindow
	if window <= 0 {
		window = defaultWindow
	}
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("twin.service"),
		repo:   p.Repo,
		window: window,
	}
}

// State aggregates the employee's most recent check-ins into the twin
// projection. An employee with no check-ins gets an average mood of 0.
func (s *Service) State(ctx context.Context, req domain.StateRequest) (domain.StateResponse, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		return domain.StateResponse{}, domain.ErrInvalidEmployee
	}

	recent, err := s.repo.RecentByEmployee(ctx, s.db, employeeID, s.window)
	if err != nil {
		return domain.StateResponse{}, fmt.Errorf("%w: %v", checkindomain.ErrStoreRead, err)
	}

	avgMood := 0.0
	if len(recent) > 0 {
		total := 0
		for _, row := range recent {
			total += row.CheckIn.MoodScore
		}
		avgMood = float64(total) / float64(len(recent))
	}

	return domain.StateResponse{
		CurrentState: stateFor(avgMood),
		Summary: fmt.Sprintf("Based on your last %d check-ins, your average mood is %.1f out of 5.",
			len(recent), avgMood),
		Metrics: domain.Metrics{
			Physical:     int(math.Round(avgMood * 20)),
			Emotional:    int(math.Round(avgMood * 20)),
			Productivity: int(math.Round(avgMood * 18)),
		},
	}, nil
}

func stateFor(avgMood float64) string {
	switch {
	case avgMood >= 4:
		return domain.StatePositive
	case avgMood >= 2.5:
		return domain.StateNeutral
	default:
		return domain.StateNegative
	}
}
