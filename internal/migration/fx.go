package migration

import (
	checkindomain "github.com/wellbeamhq/pulse/internal/checkin/domain"
	"github.com/wellbeamhq/pulse/internal/config"
	employeedomain "github.com/wellbeamhq/pulse/internal/employee/domain"
	"github.com/wellbeamhq/pulse/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			if err := conn.AutoMigrate(
				&employeedomain.Employee{},
				&checkindomain.CheckIn{},
				&checkindomain.Analysis{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDemoData {
			return seed.EnsureDemoEmployees(conn)
		}
		return nil
	}),
)
