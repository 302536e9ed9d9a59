package audit

import (
	"context"
	"sync"

	"github.com/noteshq/notesapi/internal/models"
)

// MemoryLogStore keeps log entries in process memory, in arrival order.
type MemoryLogStore struct {
	mu      sync.RWMutex
	entries []models.LogEntry
}

func NewMemoryLogStore() *MemoryLogStore {
	return &MemoryLogStore{}
}

func (s *MemoryLogStore) Insert(ctx context.Context, e *models.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *e)
	return nil
}

func (s *MemoryLogStore) List(ctx context.Context, limit, offset int) ([]models.LogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.entries
	if limit > 0 {
		if offset < 0 {
			offset = 0
		}
		if offset >= len(entries) {
			return nil, nil
		}
		entries = entries[offset:]
		if len(entries) > limit {
			entries = entries[:limit]
		}
	}
	out := make([]models.LogEntry, len(entries))
	copy(out, entries)
	return out, nil
}
