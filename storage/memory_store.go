package storage

import (
	"context"
	"sync"

	"weekendly.app/models"
)

// MemoryStore keeps the serialized plan in process memory. Used in tests and
// for running without any external backend; the plan does not survive a
// restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStore creates an empty in-memory plan store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (models.WeekendPlan, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return models.WeekendPlan{}, false, nil
	}

	plan, err := decodePlan(s.data)
	if err != nil {
		return models.WeekendPlan{}, false, err
	}
	return plan, true, nil
}

func (s *MemoryStore) Save(_ context.Context, plan models.WeekendPlan) error {
	data, err := encodePlan(plan)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
