package state

import "sync"

// MemStore is the in-memory world state used by tests and by deployments that
// run without a database.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: map[string][]byte{}}
}

func (m *MemStore) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemStore) ApplyBatch(writes map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, value := range writes {
		if value == nil {
			delete(m.data, key)
			continue
		}
		stored := make([]byte, len(value))
		copy(stored, value)
		m.data[key] = stored
	}
	return nil
}

// Len reports the number of stored keys.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
