package storage

import (
	"fmt"

	"weekendly.app/config"
	"weekendly.app/errors"
)

// PlanStoreFactory creates the persistence backend selected by configuration
type PlanStoreFactory struct{}

// NewPlanStoreFactory creates a plan store factory
func NewPlanStoreFactory() *PlanStoreFactory {
	return &PlanStoreFactory{}
}

// CreatePlanStore builds the backend for the configured storage type
func (f *PlanStoreFactory) CreatePlanStore(cfg *config.StorageConfig) (PlanStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("storage config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.StorageTypeMemory:
		return NewMemoryStore(), nil
	case config.StorageTypeRedis:
		return NewRedisStore(&cfg.Redis)
	case config.StorageTypeDatabase:
		return NewDatabaseStore(&cfg.Database)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported storage type: %s", cfg.Type), nil)
	}
}
