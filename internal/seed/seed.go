package seed

import (
	"time"

	employeedomain "github.com/wellbeamhq/pulse/internal/employee/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnsureDemoEmployees inserts a small employee directory for local and
// self-hosted environments. Idempotent.
func EnsureDemoEmployees(conn *gorm.DB) error {
	now := time.Now().UTC()
	employees := []employeedomain.Employee{
		{ID: "e1", Name: "Ava Chen", Department: "Engineering", CreatedAt: now},
		{ID: "e2", Name: "Noah Patel", Department: "Engineering", CreatedAt: now},
		{ID: "e3", Name: "Mia Torres", Department: "Sales", CreatedAt: now},
		{ID: "e4", Name: "Liam Novak", Department: "Support", CreatedAt: now},
		{ID: "e5", Name: "Zoe Adeyemi", Department: "", CreatedAt: now},
	}

	return conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&employees).Error
}
