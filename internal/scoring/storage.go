package scoring

import (
	"slices"
	"sync"
)

// ScoreStorage defines the interface for loading and saving score data.
// This allows for mocking the storage layer during tests.
type ScoreStorage interface {
	// LoadAll returns every round filed so far.
	LoadAll() ([]ScoreHistoryEntry, error)
	// SaveAll replaces the stored rounds with entries.
	SaveAll(entries []ScoreHistoryEntry) error
}

// MemoryStorage keeps finished rounds for the lifetime of the process only.
type MemoryStorage struct {
	mu      sync.Mutex
	entries []ScoreHistoryEntry
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// LoadAll returns a copy so callers may sort or filter it freely.
func (m *MemoryStorage) LoadAll() ([]ScoreHistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		return []ScoreHistoryEntry{}, nil
	}
	return slices.Clone(m.entries), nil
}

func (m *MemoryStorage) SaveAll(entries []ScoreHistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = slices.Clone(entries)
	return nil
}

// Len reports how many rounds have been filed.
func (m *MemoryStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
