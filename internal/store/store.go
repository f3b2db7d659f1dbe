// Package store provides the key-value slot storage that backs taskdeck.
// All persistent state lives in named slots holding opaque serialized
// payloads; higher layers decide the encoding.
package store

import "sync"

// Slot names used by the application.
const (
	SlotTasks = "user_tasks"
	SlotUsers = "mock_users"
)

// Store is the storage port. Read returns nil data and a nil error when the
// slot has never been written.
type Store interface {
	Read(slot string) ([]byte, error)
	Write(slot string, data []byte) error
}

// Memory is an in-memory Store, used by tests and as a fake backend.
type Memory struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

// Read returns the slot contents, or nil if the slot is absent.
func (m *Memory) Read(slot string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.slots[slot]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write replaces the slot contents.
func (m *Memory) Write(slot string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.slots[slot] = stored
	return nil
}
