package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	checkindomain "github.com/wellbeamhq/pulse/internal/checkin/domain"
	"github.com/wellbeamhq/pulse/internal/checkin/repository"
	"github.com/wellbeamhq/pulse/internal/clock"
	"github.com/wellbeamhq/pulse/internal/config"
	employeedomain "github.com/wellbeamhq/pulse/internal/employee/domain"
	"github.com/wellbeamhq/pulse/internal/hrsummary/domain"
	"github.com/wellbeamhq/pulse/internal/risk"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testNode, _ = snowflake.NewNode(1)

// Frozen reference time for every test in this file: 2026-03-10 14:00 UTC.
var testNow = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&employeedomain.Employee{},
		&checkindomain.CheckIn{},
		&checkindomain.Analysis{},
	))
	return db
}

func newTestService(t *testing.T, db *gorm.DB) domain.Service {
	t.Helper()
	return New(Params{
		DB:        db,
		Log:       zap.NewNop(),
		Repo:      repository.Provide(),
		Clock:     clock.NewFakeClock(testNow),
		Wellbeing: config.NewStaticWellbeingConfigHolder(config.DefaultWellbeingConfig()),
	})
}

func seedEmployee(t *testing.T, db *gorm.DB, id, department string) {
	t.Helper()
	require.NoError(t, db.Create(&employeedomain.Employee{
		ID:         id,
		Name:       "Employee " + id,
		Department: department,
		CreatedAt:  testNow.Add(-30 * 24 * time.Hour),
	}).Error)
}

func seedCheckIn(t *testing.T, db *gorm.DB, employeeID string, at time.Time, level risk.Level) {
	t.Helper()

	checkIn := checkindomain.CheckIn{
		ID:         testNode.Generate(),
		EmployeeID: employeeID,
		MoodScore:  3,
		Channel:    "API",
		CreatedAt:  at,
	}
	require.NoError(t, db.Create(&checkIn).Error)

	require.NoError(t, db.Create(&checkindomain.Analysis{
		ID:        testNode.Generate(),
		CheckinID: checkIn.ID,
		RiskLevel: level,
		CreatedAt: at,
	}).Error)
}

func TestSummaryEmpty(t *testing.T) {
	svc := newTestService(t, newTestDB(t))

	resp, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.EmployeesAtHighRiskToday)
	assert.Equal(t, 0, resp.TotalCheckinsToday)
	assert.Empty(t, resp.PerDepartment)
}

func TestSummaryCountsTodayOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	seedEmployee(t, db, "e1", "Engineering")

	seedCheckIn(t, db, "e1", testNow.Add(-2*time.Hour), risk.LevelHigh)       // today
	seedCheckIn(t, db, "e1", testNow.Add(-4*time.Hour), risk.LevelLow)        // today
	seedCheckIn(t, db, "e1", testNow.Add(-20*time.Hour), risk.LevelHigh)      // yesterday
	seedCheckIn(t, db, "e1", testNow.Add(-8*24*time.Hour), risk.LevelHigh)    // outside week
	seedCheckIn(t, db, "e1", testNow.Add(30*time.Minute), risk.LevelHigh)     // future, outside window

	resp, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.EmployeesAtHighRiskToday)
	assert.Equal(t, 2, resp.TotalCheckinsToday)

	// The weekly breakdown includes yesterday's check-in but not the
	// eight-day-old or future ones.
	require.Contains(t, resp.PerDepartment, "Engineering")
	assert.Equal(t, domain.RiskBreakdown{High: 2, Low: 1}, resp.PerDepartment["Engineering"])
}

func TestSummaryPerDepartmentBuckets(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	seedEmployee(t, db, "e1", "Engineering")
	seedEmployee(t, db, "e2", "Engineering")
	seedEmployee(t, db, "e3", "Sales")

	at := testNow.Add(-3 * 24 * time.Hour)
	seedCheckIn(t, db, "e1", at, risk.LevelHigh)
	seedCheckIn(t, db, "e2", at, risk.LevelMedium)
	seedCheckIn(t, db, "e2", at, risk.LevelLow)
	seedCheckIn(t, db, "e3", at, risk.LevelLow)

	resp, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.RiskBreakdown{High: 1, Medium: 1, Low: 1}, resp.PerDepartment["Engineering"])
	assert.Equal(t, domain.RiskBreakdown{Low: 1}, resp.PerDepartment["Sales"])

	total := 0
	for _, breakdown := range resp.PerDepartment {
		total += breakdown.High + breakdown.Medium + breakdown.Low
	}
	assert.Equal(t, 4, total)
}

func TestSummaryUnknownDepartment(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	seedEmployee(t, db, "e4", "") // employee exists but has no department
	at := testNow.Add(-time.Hour)
	seedCheckIn(t, db, "e4", at, risk.LevelMedium)
	seedCheckIn(t, db, "ghost", at, risk.LevelHigh) // no employee row at all

	resp, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.RiskBreakdown{High: 1, Medium: 1}, resp.PerDepartment["Unknown"])
}

func TestSummaryCheckinCountIndependentOfAnalyses(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	// A check-in whose analysis write was lost still counts toward today's
	// total.
	require.NoError(t, db.Create(&checkindomain.CheckIn{
		ID:         testNode.Generate(),
		EmployeeID: "e1",
		MoodScore:  4,
		Channel:    "API",
		CreatedAt:  testNow.Add(-time.Hour),
	}).Error)

	resp, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCheckinsToday)
	assert.Equal(t, 0, resp.EmployeesAtHighRiskToday)
	assert.Empty(t, resp.PerDepartment)
}
