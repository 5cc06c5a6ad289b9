package status

import (
	"context"
	"sync"

	"github.com/avolkov/dogshelter/internal/common"
)

// MemoryStore is an in-process Store used in tests and single-node setups.
type MemoryStore struct {
	mu     sync.RWMutex
	stages map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{stages: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stage, ok := s.stages[name]
	if !ok {
		return "", common.ErrorNotFound
	}
	return stage, nil
}

func (s *MemoryStore) Set(_ context.Context, name string, stage string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stages[name] = stage
	return nil
}
