package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weekendly.app/config"
	"weekendly.app/errors"
	"weekendly.app/models"
)

// PlanRecord is the single row holding the serialized weekend plan
type PlanRecord struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// DatabaseStore persists the serialized plan in a relational database via
// gorm. Sqlite is the default driver for local single-user use; postgres is
// available for a shared deployment.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore opens the configured database and runs migrations
func NewDatabaseStore(cfg *config.DatabaseConfig) (*DatabaseStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("database config cannot be nil", nil)
	}

	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.NewStorageError("connect to database", err)
	}

	if err := db.AutoMigrate(&PlanRecord{}); err != nil {
		return nil, errors.NewStorageError("run plan storage migrations", err)
	}

	slog.Info("Database plan storage ready", "driver", cfg.Driver)
	return &DatabaseStore{db: db}, nil
}

func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.Open(cfg.Path), nil
	case "postgres":
		return postgres.Open(cfg.GetDSN()), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported database driver: %s", cfg.Driver), nil)
	}
}

func (s *DatabaseStore) Load(ctx context.Context) (models.WeekendPlan, bool, error) {
	var record PlanRecord
	err := s.db.WithContext(ctx).First(&record, "key = ?", PlanKey).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.WeekendPlan{}, false, nil
		}
		return models.WeekendPlan{}, false, errors.NewStorageError("read plan record", err)
	}

	plan, err := decodePlan(record.Data)
	if err != nil {
		return models.WeekendPlan{}, false, err
	}
	return plan, true, nil
}

func (s *DatabaseStore) Save(ctx context.Context, plan models.WeekendPlan) error {
	data, err := encodePlan(plan)
	if err != nil {
		return err
	}

	record := PlanRecord{Key: PlanKey, Data: data, UpdatedAt: time.Now()}
	err = s.db.WithContext(ctx).Save(&record).Error
	if err != nil {
		return errors.NewStorageError("write plan record", err)
	}
	return nil
}

func (s *DatabaseStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
