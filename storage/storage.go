// Package storage provides the plan persistence backends. The whole weekend
// plan is serialized as one JSON blob under a single key; every mutation
// overwrites the previous value (last write wins).
package storage

import (
	"context"
	"encoding/json"

	"weekendly.app/errors"
	"weekendly.app/models"
)

// PlanKey is the single key the serialized plan lives under
const PlanKey = "weekendly-plan"

// PlanStore saves and restores the serialized weekend plan
type PlanStore interface {
	// Load returns the persisted plan. The second return value is false when
	// nothing has been persisted yet; a corrupt blob yields an error.
	Load(ctx context.Context) (models.WeekendPlan, bool, error)
	// Save overwrites the persisted plan.
	Save(ctx context.Context, plan models.WeekendPlan) error
	// Close releases the backend's resources.
	Close() error
}

func encodePlan(plan models.WeekendPlan) ([]byte, error) {
	data, err := json.Marshal(plan)
	if err != nil {
		return nil, errors.NewStorageError("marshal plan", err)
	}
	return data, nil
}

func decodePlan(data []byte) (models.WeekendPlan, error) {
	var plan models.WeekendPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return models.WeekendPlan{}, errors.NewStorageError("unmarshal persisted plan", err)
	}
	if plan.Saturday == nil {
		plan.Saturday = []models.Activity{}
	}
	if plan.Sunday == nil {
		plan.Sunday = []models.Activity{}
	}
	return plan, nil
}
