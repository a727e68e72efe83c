package secrets

import "sync"

// MemoryProvider keeps entries in process memory. It exists for tests and
// for environments without a usable OS secret service; nothing survives a
// restart. Status semantics match the real backends: inserting over an
// existing entry reports a duplicate, deleting or updating a missing entry
// reports not found.
type MemoryProvider struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{entries: make(map[string][]byte)}
}

func (m *MemoryProvider) Delete(service, key string) Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := service + ":" + key
	if _, ok := m.entries[k]; !ok {
		return StatusItemNotFound
	}
	delete(m.entries, k)
	return StatusSuccess
}

func (m *MemoryProvider) Insert(service, key string, value []byte) Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := service + ":" + key
	if _, ok := m.entries[k]; ok {
		return StatusDuplicateItem
	}
	m.entries[k] = append([]byte(nil), value...)
	return StatusSuccess
}

func (m *MemoryProvider) QueryOne(service, key string, wantData bool) (Status, []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[service+":"+key]
	if !ok {
		return StatusItemNotFound, nil
	}
	if !wantData {
		return StatusSuccess, nil
	}
	return StatusSuccess, append([]byte(nil), v...)
}

func (m *MemoryProvider) UpdateAttributes(service, key string, value []byte) Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := service + ":" + key
	if _, ok := m.entries[k]; !ok {
		return StatusItemNotFound
	}
	m.entries[k] = append([]byte(nil), value...)
	return StatusSuccess
}
