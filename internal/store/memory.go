package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Memory is a process-local Store.
type Memory struct {
	mu      sync.RWMutex
	records map[uuid.UUID]Record
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[uuid.UUID]Record)}
}

func (m *Memory) Save(_ context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[r.ID] = cloneRecord(r)
	return nil
}

func (m *Memory) Get(_ context.Context, id uuid.UUID) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return cloneRecord(r), nil
}

func (m *Memory) List(_ context.Context, limit int) ([]Record, error) {
	m.mu.RLock()
	out := make([]Record, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r.Summary())
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() > out[j].ID.String()
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit = clampLimit(limit); len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Constraints = append([]string(nil), out[i].Constraints...)
	}
	return out, nil
}

func (m *Memory) Close() error { return nil }

func cloneRecord(r Record) Record {
	r.Constraints = append([]string(nil), r.Constraints...)
	r.History = append([]byte(nil), r.History...)
	r.Solution = append([]byte(nil), r.Solution...)
	if len(r.History) == 0 {
		r.History = nil
	}
	if len(r.Solution) == 0 {
		r.Solution = nil
	}
	return r
}
