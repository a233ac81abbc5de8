package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/pet-scheduler/internal/config"
	"github.com/BruksfildServices01/pet-scheduler/internal/logging"
	"github.com/BruksfildServices01/pet-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDB opens the PostgreSQL connection pool. Constraint errors are left
// untranslated so callers see the driver's *pgconn.PgError.
func NewDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	return open(postgres.Open(cfg.DBUrl), cfg, log)
}

func open(dialector gorm.Dialector, cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: true,
		Logger:      logging.Gorm(log, cfg.LogLevel),
	})
	if err != nil {
		// gorm.Open hands back the pool even when the initial ping fails.
		if db != nil {
			_ = Close(db)
		}
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// Migrate creates or upgrades the six tables and their foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
