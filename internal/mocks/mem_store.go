package mocks

import (
	"sync"

	"github.com/showsphere/showsphere-cli/internal/store"
)

// MemStore is an in-memory store.Store for tests.
type MemStore struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{data: map[string]string{}}
}

func (m *MemStore) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.data[key]
	if !ok {
		return "", store.ErrNotFound
	}

	return value, nil
}

func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value

	return nil
}

func (m *MemStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)

	return nil
}

// Has reports whether key is present, for assertions.
func (m *MemStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.data[key]

	return ok
}
