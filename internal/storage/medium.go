// Package storage persists the application state document on a pluggable
// key/value medium and recovers from quota exhaustion by culling images.
package storage

import (
	"sync"

	apperrors "github.com/julianstephens/hurryup/internal/errors"
)

// Medium is a byte-oriented key/value backend.
type Medium interface {
	// Get returns apperrors.ErrNotFound when the key has never been written.
	Get(key string) ([]byte, error)
	// Set replaces the value atomically; on failure the previous value survives.
	Set(key string, value []byte) error
	Remove(key string) error
	Close() error
	// Location describes where the data lives, for diagnostics.
	Location() string
}

// MemoryMedium keeps values in a map. Used for ephemeral sessions and tests.
type MemoryMedium struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{data: make(map[string][]byte)}
}

func (m *MemoryMedium) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryMedium) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryMedium) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryMedium) Close() error     { return nil }
func (m *MemoryMedium) Location() string { return "memory" }
