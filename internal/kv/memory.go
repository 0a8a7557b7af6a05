package kv

import (
	"context"
	"sync"
)

// Memory is an in-process Store with no durability. It backs unit tests and
// ephemeral runs (STORE_DRIVER=memory).
type Memory struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string][]byte)}
}

// Get returns a copy of the stored value so callers cannot mutate the map's
// backing bytes.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.records[key]
	if !ok {
		return nil, ErrNoRecord
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// Put stores a copy of value under key.
func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw := make([]byte, len(value))
	copy(raw, value)
	m.records[key] = raw
	return nil
}

// Delete removes key. Absent keys are a no-op.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, key)
	return nil
}
