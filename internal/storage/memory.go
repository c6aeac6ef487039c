package storage

import (
	"context"
	"sort"
	"sync"

	"crowdsim/internal/model"
)

type MemoryStore struct {
	mu      sync.RWMutex
	minions map[int]model.MinionRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.minions = make(map[int]model.MinionRecord)
	return nil
}

func (s *MemoryStore) SaveMinion(_ context.Context, rec model.MinionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.minions[rec.ID] = rec
	return nil
}

func (s *MemoryStore) GetMinion(_ context.Context, id int) (model.MinionRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.minions[id]
	return rec, ok, nil
}

func (s *MemoryStore) ListMinions(_ context.Context) ([]model.MinionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.MinionRecord, 0, len(s.minions))
	for _, rec := range s.minions {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) DeleteMinion(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.minions, id)
	return nil
}
