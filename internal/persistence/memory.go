package persistence

import (
	"context"
	"sync"
)

// MemoryKV is an in-process KVStore used for tests and ephemeral sessions
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
	writes int
}

// NewMemoryKV creates an empty store
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// GetValue returns the stored value or ErrNotFound
func (m *MemoryKV) GetValue(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// PutValue stores value under key
func (m *MemoryKV) PutValue(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	m.writes++
	return nil
}

// Writes returns how many PutValue calls succeeded
func (m *MemoryKV) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
